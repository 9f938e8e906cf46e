package blob

import (
	"fmt"

	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/format"
	"github.com/arloliu/vectorize/internal/collision"
	"github.com/arloliu/vectorize/internal/hash"
	"github.com/arloliu/vectorize/table"
)

// VocabularyBlob is a decoded vocabulary. Code i belongs to the i-th entry.
type VocabularyBlob struct {
	entries     []table.Entry
	index       *collision.Index
	ordering    format.Ordering
	compression format.CompressionType
	total       uint64
}

func newVocabularyBlob(entries []table.Entry, ordering format.Ordering, compression format.CompressionType) (*VocabularyBlob, error) {
	b := &VocabularyBlob{
		entries:     entries,
		index:       collision.NewIndex(len(entries)),
		ordering:    ordering,
		compression: compression,
	}

	for i, entry := range entries {
		id := hash.ID(entry.Value)
		if prev, ok := b.index.Get(id, entry.Value); ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", errs.ErrDuplicateValue, entry.Value, prev, i)
		}
		b.index.Put(id, entry.Value, i)
		b.total += uint64(entry.Count) //nolint:gosec
	}

	return b, nil
}

// Len returns the number of distinct values.
func (b *VocabularyBlob) Len() int {
	return len(b.entries)
}

// Entries returns a copy of the entries in code order.
func (b *VocabularyBlob) Entries() []table.Entry {
	out := make([]table.Entry, len(b.entries))
	copy(out, b.entries)

	return out
}

// Values returns the distinct values in code order.
func (b *VocabularyBlob) Values() []string {
	out := make([]string, len(b.entries))
	for i, entry := range b.entries {
		out[i] = entry.Value
	}

	return out
}

// Value returns the value assigned to code, or false if code is out of range.
func (b *VocabularyBlob) Value(code int) (string, bool) {
	if code < 0 || code >= len(b.entries) {
		return "", false
	}

	return b.entries[code].Value, true
}

// Ordering returns the ordering recorded when the vocabulary was fitted.
func (b *VocabularyBlob) Ordering() format.Ordering {
	return b.ordering
}

// Compression returns the payload compression the blob was stored with.
func (b *VocabularyBlob) Compression() format.CompressionType {
	return b.compression
}

// TotalCount returns the number of values the vocabulary was fitted on.
func (b *VocabularyBlob) TotalCount() uint64 {
	return b.total
}

// Lookup returns the code of value.
func (b *VocabularyBlob) Lookup(value string) (int, bool) {
	return b.index.Get(hash.ID(value), value)
}

// Transform encodes values against the saved vocabulary.
//
// Returns an error wrapping errs.ErrUnknownValue for the first value that was
// not present when the vocabulary was fitted, and errs.ErrMissingInput for a
// nil slice.
func (b *VocabularyBlob) Transform(values []string) ([]int, error) {
	if values == nil {
		return nil, errs.ErrMissingInput
	}

	codes := make([]int, len(values))
	if err := b.TransformTo(values, codes); err != nil {
		return nil, err
	}

	return codes, nil
}

// TransformTo is Transform writing into dst, which must hold len(values) codes.
//
// On error dst holds the codes of the values before the unknown one.
func (b *VocabularyBlob) TransformTo(values []string, dst []int) error {
	if len(dst) < len(values) {
		return fmt.Errorf("destination holds %d codes, need %d", len(dst), len(values))
	}

	for i, v := range values {
		code, ok := b.Lookup(v)
		if !ok {
			return fmt.Errorf("%w: %q at position %d", errs.ErrUnknownValue, v, i)
		}
		dst[i] = code
	}

	return nil
}

// Decode maps codes back to their values.
//
// Returns an error for any code outside [0, Len()).
func (b *VocabularyBlob) Decode(codes []int) ([]string, error) {
	values := make([]string, len(codes))
	for i, code := range codes {
		v, ok := b.Value(code)
		if !ok {
			return nil, fmt.Errorf("code %d at position %d is outside [0, %d)", code, i, len(b.entries))
		}
		values[i] = v
	}

	return values, nil
}
