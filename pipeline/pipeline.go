// Package pipeline runs the vectorize encoding sequence over one input column.
//
// A run builds a token table from the input, optionally sorts it by
// descending frequency, optionally reverses it, encodes the input against the
// final order and releases the table. The table is never shared between runs,
// so a Pipeline may be used from several goroutines at once.
package pipeline

import (
	"fmt"
	"iter"

	"github.com/arloliu/vectorize/encoding"
	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/internal/options"
	"github.com/arloliu/vectorize/internal/pool"
	"github.com/arloliu/vectorize/table"
)

// Pipeline encodes columns of strings into ordinal codes.
type Pipeline struct {
	cfg     Config
	encoder encoding.RankEncoder
}

// Result is the outcome of one run.
type Result struct {
	// Codes holds one code per input element, in input order.
	Codes []int
	// Vocabulary holds the distinct values in code order: the value with code i
	// is Vocabulary[i].
	Vocabulary []table.Entry
	// Frequency and Reversed echo the ordering that produced the codes.
	Frequency bool
	Reversed  bool
}

// New creates a pipeline with the given options applied over DefaultConfig.
//
// Returns an error if an option is invalid.
func New(opts ...Option) (*Pipeline, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("invalid pipeline option: %w", err)
	}

	return &Pipeline{
		cfg:     cfg,
		encoder: encoding.NewRankEncoder(cfg.Lookup),
	}, nil
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Run encodes values.
//
// The steps run in a fixed order: validate, build the token table, sort by
// frequency, reverse, encode, release the table. No partial result is returned
// on failure.
//
// Returns errs.ErrMissingInput for a nil slice and errs.ErrEmptyInput for an
// empty one; both wrap errs.ErrUsage.
func (p *Pipeline) Run(values []string) (*Result, error) {
	if values == nil {
		return nil, errs.ErrMissingInput
	}
	if len(values) == 0 {
		return nil, errs.ErrEmptyInput
	}

	t := table.Acquire()
	defer table.Release(t)

	t.AddAll(values)
	if p.cfg.Frequency {
		t.SortByFrequency()
	}
	if p.cfg.Reversed {
		t.Reverse()
	}

	return &Result{
		Codes:      p.encoder.Encode(t, values),
		Vocabulary: t.Entries(),
		Frequency:  p.cfg.Frequency,
		Reversed:   p.cfg.Reversed,
	}, nil
}

// RunSeq buffers seq once and encodes the buffered values.
//
// seq is consumed exactly once, before any table work, so one-shot sources
// such as readers or channels are safe to pass.
func (p *Pipeline) RunSeq(seq iter.Seq[string]) (*Result, error) {
	if seq == nil {
		return nil, errs.ErrMissingInput
	}

	values := pool.GetStringSlice(0)
	for v := range seq {
		values = append(values, v)
	}
	defer pool.PutStringSlice(values)

	if len(values) == 0 {
		return nil, errs.ErrEmptyInput
	}

	return p.Run(values)
}

// Encode is a shortcut for Run that returns only the codes.
func (p *Pipeline) Encode(values []string) ([]int, error) {
	res, err := p.Run(values)
	if err != nil {
		return nil, err
	}

	return res.Codes, nil
}
