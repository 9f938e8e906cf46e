// Package vectorize converts categorical string columns into ordinal integer codes.
//
// Each distinct value of a column gets the code equal to its position in a
// token table. By default the table is in order of first appearance; it can
// be sorted by descending occurrence count and/or reversed before encoding.
//
// # Basic Usage
//
//	codes, err := vectorize.ComputeList([]string{"a", "b", "a", "c", "b", "a"})
//	// codes == [0 1 0 2 1 0]
//
//	codes, err = vectorize.ComputeList([]string{"b", "a", "a", "b", "a"},
//	    vectorize.WithFrequency(true),
//	)
//	// "a" occurs most often: codes == [1 0 0 1 0]
//
// Frequency ties are not broken in any particular order. Encoding the same
// column twice with the same options always yields the same codes.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the pipeline
// package. Use table and encoding directly for custom pipelines, and blob to
// persist a fitted vocabulary and apply it to new data.
package vectorize

import (
	"iter"

	"github.com/arloliu/vectorize/pipeline"
)

// Option configures an encoding call.
type Option = pipeline.Option

// Result holds the codes and the vocabulary they index into.
type Result = pipeline.Result

// WithFrequency orders codes by descending occurrence count.
func WithFrequency(enabled bool) Option {
	return pipeline.WithFrequency(enabled)
}

// WithReversed reverses the code order. It is applied after WithFrequency.
func WithReversed(enabled bool) Option {
	return pipeline.WithReversed(enabled)
}

// ComputeList encodes values into ordinal codes.
//
// The result has the same length as values, and every code lies in
// [0, number of distinct values).
//
// Parameters:
//   - values: Input column; must be non-nil and non-empty
//   - opts: WithFrequency, WithReversed, or any pipeline.Option
//
// Returns:
//   - []int: One code per input element
//   - error: errs.ErrMissingInput / errs.ErrEmptyInput (both errs.ErrUsage), or an invalid option
//
// Example:
//
//	codes, err := vectorize.ComputeList([]string{"a", "b", "c"}, vectorize.WithReversed(true))
//	// codes == [2 1 0]
func ComputeList(values []string, opts ...Option) ([]int, error) {
	res, err := Fit(values, opts...)
	if err != nil {
		return nil, err
	}

	return res.Codes, nil
}

// ComputeSeq encodes a sequence that may only be iterated once.
// The sequence is buffered before encoding starts.
func ComputeSeq(seq iter.Seq[string], opts ...Option) ([]int, error) {
	p, err := pipeline.New(opts...)
	if err != nil {
		return nil, err
	}

	res, err := p.RunSeq(seq)
	if err != nil {
		return nil, err
	}

	return res.Codes, nil
}

// Compute encodes a column of any string-kinded type.
func Compute[T ~string](values []T, opts ...Option) ([]int, error) {
	if values == nil {
		return ComputeList(nil, opts...)
	}

	converted := make([]string, len(values))
	for i, v := range values {
		converted[i] = string(v)
	}

	return ComputeList(converted, opts...)
}

// Fit encodes values and also returns the fitted vocabulary, which can be
// saved with the blob package and applied to new data later.
func Fit(values []string, opts ...Option) (*Result, error) {
	p, err := pipeline.New(opts...)
	if err != nil {
		return nil, err
	}

	return p.Run(values)
}
