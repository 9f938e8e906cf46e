package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/vectorize/encoding"
	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/format"
	"github.com/arloliu/vectorize/internal/collision"
	"github.com/arloliu/vectorize/internal/hash"
	"github.com/arloliu/vectorize/internal/options"
	"github.com/arloliu/vectorize/pipeline"
	"github.com/arloliu/vectorize/section"
	"github.com/arloliu/vectorize/table"
)

// VocabularyEncoder serializes vocabularies into the binary blob format.
//
// An encoder keeps no state between calls and may encode any number of
// vocabularies.
type VocabularyEncoder struct {
	*VocabularyEncoderConfig
}

// NewVocabularyEncoder creates a new VocabularyEncoder.
//
// Parameters:
//   - opts: Optional configuration (compression, endianness)
//
// Returns:
//   - *VocabularyEncoder: New encoder instance
//   - error: Configuration error if invalid options provided
func NewVocabularyEncoder(opts ...VocabularyEncoderOption) (*VocabularyEncoder, error) {
	config := NewVocabularyEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &VocabularyEncoder{VocabularyEncoderConfig: config}, nil
}

// Encode serializes entries in their current order.
//
// Entry i is stored at position i, so a decoded vocabulary assigns code i to
// entries[i].Value. ordering is recorded in the header for inspection; it
// does not change the stored order.
//
// Parameters:
//   - entries: Distinct values with occurrence counts, in code order
//   - ordering: How the entries were ordered when fitted
//
// Returns:
//   - []byte: Header followed by the (possibly compressed) payload
//   - error: ErrEmptyVocabulary, ErrInvalidEntryCount, ErrInvalidOccurrence,
//     ErrDuplicateValue, value length errors or compression errors
func (e *VocabularyEncoder) Encode(entries []table.Entry, ordering format.Ordering) ([]byte, error) {
	if len(entries) == 0 {
		return nil, errs.ErrEmptyVocabulary
	}

	header, err := section.NewVocabHeader(len(entries))
	if err != nil {
		return nil, fmt.Errorf("%w: %d entries", err, len(entries))
	}
	header.Flag = e.flag
	header.Flag.SetOrdering(ordering)

	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	payload := encoding.NewVarStringEncoder()
	defer payload.Reset()

	var total uint64
	for _, entry := range entries {
		if err := payload.Write(entry.Value); err != nil {
			return nil, err
		}
	}
	for _, entry := range entries {
		payload.WriteUvarint(uint64(entry.Count))
		total += uint64(entry.Count)
	}

	data := payload.Bytes()
	compressed, err := e.codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress vocabulary: %w", err)
	}

	header.DataSize = uint32(len(data))             //nolint:gosec
	header.CompressedSize = uint32(len(compressed)) //nolint:gosec
	header.Checksum = hash.Checksum(data)
	header.TotalCount = total

	// compressed may alias the pooled payload buffer, copy before Reset runs
	out := make([]byte, 0, section.HeaderSize+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// EncodeResult serializes the vocabulary of a pipeline result.
func (e *VocabularyEncoder) EncodeResult(res *pipeline.Result) ([]byte, error) {
	if res == nil {
		return nil, errs.ErrEmptyVocabulary
	}

	return e.Encode(res.Vocabulary, format.OrderingOf(res.Frequency, res.Reversed))
}

func validateEntries(entries []table.Entry) error {
	seen := collision.NewIndex(len(entries))
	for i, entry := range entries {
		if entry.Count < 1 || entry.Count > math.MaxInt32 {
			return fmt.Errorf("%w: %q has count %d", errs.ErrInvalidOccurrence, entry.Value, entry.Count)
		}

		id := hash.ID(entry.Value)
		if prev, ok := seen.Get(id, entry.Value); ok {
			return fmt.Errorf("%w: %q at positions %d and %d", errs.ErrDuplicateValue, entry.Value, prev, i)
		}
		seen.Put(id, entry.Value, i)
	}

	return nil
}
