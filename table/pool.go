package table

import "sync"

// maxPooledEntries bounds the size of tables kept for reuse.
const maxPooledEntries = 1 << 16

var tablePool = sync.Pool{
	New: func() any { return New(64) },
}

// Acquire returns an empty table from the pool.
func Acquire() *Table {
	t, _ := tablePool.Get().(*Table)
	return t
}

// Release resets t and returns it to the pool. t must not be used afterwards.
func Release(t *Table) {
	if t == nil {
		return
	}
	if cap(t.entries) > maxPooledEntries {
		return
	}

	t.Reset()
	tablePool.Put(t)
}
