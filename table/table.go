// Package table implements the token table: an insertion-ordered set of
// distinct string values with occurrence counts.
//
// A table is built by a single linear pass over an input column. Entries keep
// first-seen order until the table is reordered by SortByFrequency or Reverse.
// The position of an entry in the current order is its rank, which is the
// integer code assigned to every occurrence of that value.
//
// Tables are not safe for concurrent use. A table is meant to be owned by a
// single pipeline run; Acquire and Release recycle them between runs.
package table

import (
	"github.com/arloliu/vectorize/internal/collision"
	"github.com/arloliu/vectorize/internal/hash"
)

// Entry is one distinct value and the number of times it occurred.
type Entry struct {
	Value string
	Count int
}

// Table is an ordered, deduplicated collection of entries.
type Table struct {
	entries []Entry
	ids     []uint64 // xxHash64 of entries[i].Value, kept in step with entries
	index   *collision.Index
	dirty   bool // index positions are stale after a reorder
}

// New creates an empty table with room for capacity distinct values.
func New(capacity int) *Table {
	if capacity < 0 {
		capacity = 0
	}

	return &Table{
		entries: make([]Entry, 0, capacity),
		ids:     make([]uint64, 0, capacity),
		index:   collision.NewIndex(capacity),
	}
}

// Build creates a table from values in a single pass.
func Build(values []string) *Table {
	t := New(0)
	t.AddAll(values)

	return t
}

// Add records one occurrence of value.
//
// An existing entry has its count incremented; a new value is appended with
// a count of 1, preserving first-seen order.
func (t *Table) Add(value string) {
	t.ensureIndex()

	id := hash.ID(value)
	if pos, ok := t.index.Get(id, value); ok {
		t.entries[pos].Count++
		return
	}

	pos := len(t.entries)
	t.entries = append(t.entries, Entry{Value: value, Count: 1})
	t.ids = append(t.ids, id)
	t.index.Put(id, value, pos)
}

// AddAll records every element of values in order.
func (t *Table) AddAll(values []string) {
	for _, v := range values {
		t.Add(v)
	}
}

// Len returns the number of distinct values.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns the entry at rank i. It panics if i is out of range.
func (t *Table) Entry(i int) Entry {
	return t.entries[i]
}

// Entries returns a copy of the entries in current order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// Values returns the distinct values in current order.
func (t *Table) Values() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Value
	}

	return out
}

// Counts returns the occurrence counts in current order.
func (t *Table) Counts() []int {
	out := make([]int, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Count
	}

	return out
}

// Total returns the number of occurrences recorded, i.e. the input length.
func (t *Table) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}

	return total
}

// Rank returns the position of value in the current order.
func (t *Table) Rank(value string) (int, bool) {
	t.ensureIndex()

	return t.index.Get(hash.ID(value), value)
}

// ScanRank returns the position of the first entry equal to value, scanning
// from rank 0. It does not use the hash index.
func (t *Table) ScanRank(value string) (int, bool) {
	for i := range t.entries {
		if t.entries[i].Value == value {
			return i, true
		}
	}

	return 0, false
}

// HasHashCollision reports whether two distinct values in the table share an xxHash64.
func (t *Table) HasHashCollision() bool {
	return t.index.HasCollision()
}

// Reset removes all entries but keeps allocated memory.
func (t *Table) Reset() {
	clear(t.entries)
	t.entries = t.entries[:0]
	t.ids = t.ids[:0]
	t.index.Reset()
	t.dirty = false
}

func (t *Table) swap(i, j int) {
	t.entries[i], t.entries[j] = t.entries[j], t.entries[i]
	t.ids[i], t.ids[j] = t.ids[j], t.ids[i]
	t.dirty = true
}

// ensureIndex re-points the index at current positions after a reorder.
func (t *Table) ensureIndex() {
	if !t.dirty {
		return
	}

	t.index.Reset()
	for i := range t.entries {
		t.index.Put(t.ids[i], t.entries[i].Value, i)
	}
	t.dirty = false
}
