package collision

// slot is the primary index record for one hash value.
type slot struct {
	value string
	pos   int
}

// Index maps token values to positions using their 64-bit hashes.
//
// The primary map is keyed by hash. When two different values share a hash,
// the later one is kept in an overflow map keyed by the value itself, so
// lookups stay exact while the common case costs a single integer-keyed probe.
type Index struct {
	slots        map[uint64]slot // Hash → first value seen with that hash
	overflow     map[string]int  // Values whose hash collided with a different value
	hasCollision bool            // Whether any collision has been detected
}

// NewIndex creates an index sized for capacity distinct values.
func NewIndex(capacity int) *Index {
	if capacity < 0 {
		capacity = 0
	}

	return &Index{
		slots: make(map[uint64]slot, capacity),
	}
}

// Get returns the position recorded for value, or false when value is unknown.
func (x *Index) Get(hash uint64, value string) (int, bool) {
	s, ok := x.slots[hash]
	if !ok {
		return 0, false
	}
	if s.value == value {
		return s.pos, true
	}
	if x.overflow == nil {
		return 0, false
	}
	pos, ok := x.overflow[value]

	return pos, ok
}

// Put records pos for value, replacing any previous position of the same value.
//
// A different value that already owns the hash is left untouched; the new
// value goes to the overflow map and the collision flag is raised.
func (x *Index) Put(hash uint64, value string, pos int) {
	s, ok := x.slots[hash]
	if !ok || s.value == value {
		x.slots[hash] = slot{value: value, pos: pos}
		return
	}

	if x.overflow == nil {
		x.overflow = make(map[string]int)
	}
	x.overflow[value] = pos
	x.hasCollision = true
}

// HasCollision returns true if two different values have shared a hash.
func (x *Index) HasCollision() bool {
	return x.hasCollision
}

// Len returns the number of distinct values in the index.
func (x *Index) Len() int {
	return len(x.slots) + len(x.overflow)
}

// Reset clears all positions and collision state.
// Map capacity is kept so that a pooled table can be refilled without allocating.
func (x *Index) Reset() {
	clear(x.slots)
	clear(x.overflow)
	x.hasCollision = false
}
