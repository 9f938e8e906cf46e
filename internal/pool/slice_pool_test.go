package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetStringSlice(t *testing.T) {
	t.Run("returns empty slice with capacity hint", func(t *testing.T) {
		s := GetStringSlice(32)
		require.Empty(t, s)
		require.GreaterOrEqual(t, cap(s), 32)
		PutStringSlice(s)
	})

	t.Run("append and return", func(t *testing.T) {
		s := GetStringSlice(0)
		for _, v := range []string{"a", "b", "c"} {
			s = append(s, v)
		}
		require.Equal(t, []string{"a", "b", "c"}, s)
		PutStringSlice(s)

		s2 := GetStringSlice(0)
		require.Empty(t, s2, "pooled slices come back empty")
		PutStringSlice(s2)
	})

	t.Run("put clears references", func(t *testing.T) {
		s := GetStringSlice(4)
		s = append(s, "x", "y")
		backing := s[:cap(s)]
		PutStringSlice(s)

		require.Equal(t, "", backing[0])
		require.Equal(t, "", backing[1])
	})

	t.Run("put zero capacity is ignored", func(t *testing.T) {
		require.NotPanics(t, func() { PutStringSlice(nil) })
	})
}

func TestGetIntSlice(t *testing.T) {
	s, cleanup := GetIntSlice(10)
	require.Len(t, s, 10)
	for i := range s {
		s[i] = i
	}
	cleanup()

	s2, cleanup2 := GetIntSlice(5)
	defer cleanup2()
	require.Len(t, s2, 5)

	s3, cleanup3 := GetIntSlice(0)
	defer cleanup3()
	require.Empty(t, s3)
}

func TestSlicePoolConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s := GetStringSlice(n)
				s = append(s, "v")
				PutStringSlice(s)

				ints, cleanup := GetIntSlice(n + j)
				ints[0] = j
				cleanup()
			}
		}(i + 1)
	}
	wg.Wait()
}
