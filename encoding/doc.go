// Package encoding maps input columns to integer codes and provides the
// low-level string codec used by persisted vocabularies.
//
// # Rank Encoding
//
// RankEncoder is the final pass of the vectorize pipeline. Given a token table
// whose order is fixed, it replaces every input value with the rank of its
// entry:
//
//	tbl := table.Build(values)
//	tbl.SortByFrequency()
//	codes := encoding.NewRankEncoder(encoding.LookupIndex).Encode(tbl, values)
//
// Two lookup strategies produce identical output:
//   - LookupIndex: hash-indexed, O(1) per element (default)
//   - LookupScan: first-match linear scan from rank 0, O(m) per element
//
// The encoder expects values to be the same column the table was built from.
// A value without an entry means the table and its input disagree, which is a
// programming error; the encoder panics with errs.ErrInconsistentTable.
//
// # Variable-Length Strings
//
// VarStringEncoder and VarStringDecoder store strings as a uvarint byte length
// followed by the raw bytes. Strings are opaque: no normalization is applied.
package encoding
