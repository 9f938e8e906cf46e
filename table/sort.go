package table

// SortByFrequency reorders entries by descending occurrence count.
//
// The sort is a quicksort using the last entry of each range as pivot and a
// Lomuto partition: every entry counted strictly more often than the pivot is
// moved to the front of the range, then the pivot is swapped into the slot
// after them and both sides are sorted recursively.
//
// The sort is not stable. Entries with equal counts end up in an order that
// depends on the partitioning, not on first appearance. The result is
// deterministic for a given table.
func (t *Table) SortByFrequency() {
	if len(t.entries) < 2 {
		return
	}

	t.quickSort(0, len(t.entries)-1)
}

func (t *Table) quickSort(lo, hi int) {
	for lo < hi {
		p := t.partition(lo, hi)

		// Recurse on the smaller side, loop on the larger one.
		if p-lo < hi-p {
			t.quickSort(lo, p-1)
			lo = p + 1
		} else {
			t.quickSort(p+1, hi)
			hi = p - 1
		}
	}
}

// partition places the pivot entries[hi] at its final position and returns it.
func (t *Table) partition(lo, hi int) int {
	pivot := t.entries[hi].Count
	store := lo

	for i := lo; i < hi; i++ {
		if t.entries[i].Count > pivot {
			if i != store {
				t.swap(i, store)
			}
			store++
		}
	}

	if store != hi {
		t.swap(store, hi)
	}

	return store
}

// Reverse inverts the order of all entries in place.
func (t *Table) Reverse() {
	for i, j := 0, len(t.entries)-1; i < j; i, j = i+1, j-1 {
		t.swap(i, j)
	}
}

// IsSortedByFrequency reports whether counts are non-increasing in current order.
func (t *Table) IsSortedByFrequency() bool {
	for i := 1; i < len(t.entries); i++ {
		if t.entries[i-1].Count < t.entries[i].Count {
			return false
		}
	}

	return true
}
