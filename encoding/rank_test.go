package encoding

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/table"
)

func TestLookupStrategy_String(t *testing.T) {
	require.Equal(t, "Index", LookupIndex.String())
	require.Equal(t, "Scan", LookupScan.String())
	require.Equal(t, "Unknown", LookupStrategy(0).String())
}

func TestNewRankEncoder_InvalidStrategyFallsBack(t *testing.T) {
	enc := NewRankEncoder(LookupStrategy(99))
	require.Equal(t, LookupIndex, enc.Strategy())
}

func TestRankEncoder_Encode(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		frequency bool
		reversed  bool
		expected  []int
	}{
		{
			name:     "first-seen order",
			input:    []string{"a", "b", "a", "c", "b", "a"},
			expected: []int{0, 1, 0, 2, 1, 0},
		},
		{
			name:      "frequency order",
			input:     []string{"b", "a", "a", "b", "a"},
			frequency: true,
			expected:  []int{1, 0, 0, 1, 0},
		},
		{
			name:     "reversed order",
			input:    []string{"a", "b", "c"},
			reversed: true,
			expected: []int{2, 1, 0},
		},
		{
			name:      "frequency then reversed",
			input:     []string{"b", "a", "a", "b", "a", "c"},
			frequency: true,
			reversed:  true,
			expected:  []int{1, 2, 2, 1, 2, 0},
		},
		{
			name:     "single repeated value",
			input:    []string{"x", "x", "x"},
			reversed: true,
			expected: []int{0, 0, 0},
		},
	}

	for _, strategy := range []LookupStrategy{LookupIndex, LookupScan} {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%s", strategy, tt.name), func(t *testing.T) {
				tbl := table.Build(tt.input)
				if tt.frequency {
					tbl.SortByFrequency()
				}
				if tt.reversed {
					tbl.Reverse()
				}

				codes := NewRankEncoder(strategy).Encode(tbl, tt.input)
				require.Equal(t, tt.expected, codes)
			})
		}
	}
}

func TestRankEncoder_StrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	values := make([]string, 2000)
	for i := range values {
		values[i] = fmt.Sprintf("cat-%d", r.Intn(150))
	}

	tbl := table.Build(values)
	tbl.SortByFrequency()

	byIndex := NewRankEncoder(LookupIndex).Encode(tbl, values)
	byScan := NewRankEncoder(LookupScan).Encode(tbl, values)

	require.Equal(t, byScan, byIndex)
}

func TestRankEncoder_EncodeTo(t *testing.T) {
	values := []string{"p", "q", "p"}
	tbl := table.Build(values)

	dst := make([]int, 5)
	NewRankEncoder(LookupIndex).EncodeTo(tbl, values, dst)
	require.Equal(t, []int{0, 1, 0, 0, 0}, dst)

	require.Panics(t, func() {
		NewRankEncoder(LookupIndex).EncodeTo(tbl, values, make([]int, 2))
	})
}

func TestRankEncoder_MissingValuePanics(t *testing.T) {
	tbl := table.Build([]string{"a", "b"})

	for _, strategy := range []LookupStrategy{LookupIndex, LookupScan} {
		t.Run(strategy.String(), func(t *testing.T) {
			var recovered any
			func() {
				defer func() { recovered = recover() }()
				NewRankEncoder(strategy).Encode(tbl, []string{"a", "z"})
			}()

			err, ok := recovered.(error)
			require.True(t, ok, "panic value should be an error")
			require.True(t, errors.Is(err, errs.ErrInconsistentTable))
			require.Contains(t, err.Error(), `"z"`)
		})
	}
}

func TestRankEncoder_EmptyInput(t *testing.T) {
	tbl := table.New(0)
	codes := NewRankEncoder(LookupIndex).Encode(tbl, nil)
	require.Empty(t, codes)
}

func BenchmarkRankEncoder(b *testing.B) {
	r := rand.New(rand.NewSource(3))
	values := make([]string, 10000)
	for i := range values {
		values[i] = fmt.Sprintf("cat-%d", r.Intn(500))
	}
	tbl := table.Build(values)
	dst := make([]int, len(values))

	for _, strategy := range []LookupStrategy{LookupIndex, LookupScan} {
		b.Run(strategy.String(), func(b *testing.B) {
			enc := NewRankEncoder(strategy)
			for b.Loop() {
				enc.EncodeTo(tbl, values, dst)
			}
		})
	}
}
