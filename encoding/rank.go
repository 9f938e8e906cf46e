package encoding

import (
	"fmt"

	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/table"
)

// LookupStrategy selects how RankEncoder finds the entry of a value.
type LookupStrategy uint8

const (
	LookupIndex LookupStrategy = 0x1 // LookupIndex uses the table's hash index.
	LookupScan  LookupStrategy = 0x2 // LookupScan scans the table from rank 0.
)

func (s LookupStrategy) String() string {
	switch s {
	case LookupIndex:
		return "Index"
	case LookupScan:
		return "Scan"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is a known strategy.
func (s LookupStrategy) IsValid() bool {
	return s == LookupIndex || s == LookupScan
}

// RankEncoder replaces values with the rank of their entry in a token table.
type RankEncoder struct {
	strategy LookupStrategy
}

// NewRankEncoder creates a rank encoder using the given lookup strategy.
// An unknown strategy falls back to LookupIndex.
func NewRankEncoder(strategy LookupStrategy) RankEncoder {
	if !strategy.IsValid() {
		strategy = LookupIndex
	}

	return RankEncoder{strategy: strategy}
}

// Strategy returns the lookup strategy in use.
func (e RankEncoder) Strategy() LookupStrategy {
	return e.strategy
}

// Encode returns one code per element of values.
//
// Every value must have an entry in t. The table is read but not modified.
//
// Parameters:
//   - t: Token table with its final order
//   - values: The column the table was built from
//
// Returns:
//   - []int: Codes in [0, t.Len()), same length and order as values
func (e RankEncoder) Encode(t *table.Table, values []string) []int {
	codes := make([]int, len(values))
	e.EncodeTo(t, values, codes)

	return codes
}

// EncodeTo writes the code of values[i] into dst[i].
// It panics if dst is shorter than values.
func (e RankEncoder) EncodeTo(t *table.Table, values []string, dst []int) {
	if len(dst) < len(values) {
		panic(fmt.Sprintf("EncodeTo: destination length %d is shorter than input length %d", len(dst), len(values)))
	}

	lookup := t.Rank
	if e.strategy == LookupScan {
		lookup = t.ScanRank
	}

	for i, v := range values {
		rank, ok := lookup(v)
		if !ok {
			panic(fmt.Errorf("%w: value %q at position %d has no entry", errs.ErrInconsistentTable, v, i))
		}
		dst[i] = rank
	}
}
