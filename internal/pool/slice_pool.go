package pool

import "sync"

var (
	stringSlicePool = sync.Pool{
		New: func() any { return &[]string{} },
	}
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
)

// GetStringSlice retrieves an empty string slice with at least sizeHint capacity.
//
// It is used to buffer one-shot input sequences before encoding. Hand the
// final slice (after any appends) back with PutStringSlice once nothing
// references it anymore.
//
// Example:
//
//	values := pool.GetStringSlice(0)
//	for v := range seq {
//	    values = append(values, v)
//	}
//	defer pool.PutStringSlice(values)
func GetStringSlice(sizeHint int) []string {
	ptr, _ := stringSlicePool.Get().(*[]string)
	slice := (*ptr)[:0]

	if cap(slice) < sizeHint {
		slice = make([]string, 0, sizeHint)
	}

	return slice
}

// PutStringSlice returns a slice obtained from GetStringSlice to the pool.
func PutStringSlice(slice []string) {
	if cap(slice) == 0 {
		return
	}

	// Drop references so pooled memory does not keep input strings alive.
	clear(slice[:cap(slice)])
	slice = slice[:0]
	stringSlicePool.Put(&slice)
}

// GetIntSlice retrieves an int slice of exactly size elements.
//
// The contents are unspecified. The caller must call the returned cleanup
// function to return the slice to the pool.
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}
