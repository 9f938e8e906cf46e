package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/vectorize/compress"
	"github.com/arloliu/vectorize/encoding"
	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/internal/hash"
	"github.com/arloliu/vectorize/section"
	"github.com/arloliu/vectorize/table"
)

// minEntrySize is the smallest encoded entry: an empty value and a one-byte count.
const minEntrySize = 2

// VocabularyDecoder decodes a vocabulary blob.
//
// The decoder handles:
//   - Header parsing with validation
//   - Payload size checks against the header
//   - Payload decompression and checksum verification
//   - Entry decoding with duplicate and count validation
//
// Note: The VocabularyDecoder is NOT thread-safe and NOT reusable.
type VocabularyDecoder struct {
	data   []byte
	header *section.VocabHeader
}

// NewVocabularyDecoder creates a decoder for data and validates its header.
//
// The payload is not decompressed until Decode is called.
//
// Returns:
//   - *VocabularyDecoder: New decoder instance
//   - error: Header parsing error or invalid data format
func NewVocabularyDecoder(data []byte) (*VocabularyDecoder, error) {
	header, err := section.ParseVocabHeader(data)
	if err != nil {
		return nil, err
	}

	if header.EntryCount == 0 {
		return nil, errs.ErrEmptyVocabulary
	}
	if header.EntryCount > section.MaxEntryCount {
		return nil, fmt.Errorf("%w: %d entries", errs.ErrInvalidEntryCount, header.EntryCount)
	}
	if uint64(header.EntryCount)*minEntrySize > uint64(header.DataSize) {
		return nil, fmt.Errorf("%w: %d entries cannot fit in %d bytes",
			errs.ErrInvalidEntryCount, header.EntryCount, header.DataSize)
	}

	end := uint64(header.DataOffset) + uint64(header.CompressedSize)
	if end != uint64(len(data)) {
		return nil, fmt.Errorf("%w: payload ends at %d, blob has %d bytes",
			errs.ErrInvalidDataSize, end, len(data))
	}

	return &VocabularyDecoder{data: data, header: header}, nil
}

// Header returns the parsed header.
func (d *VocabularyDecoder) Header() section.VocabHeader {
	return *d.header
}

// Decode decompresses the payload and reconstructs the vocabulary.
//
// Returns:
//   - *VocabularyBlob: Decoded vocabulary
//   - error: Decompression errors, ErrInvalidDataSize, ErrChecksumMismatch,
//     ErrTruncatedData, ErrInvalidOccurrence or ErrDuplicateValue
func (d *VocabularyDecoder) Decode() (*VocabularyBlob, error) {
	payload, err := d.decompressPayload()
	if err != nil {
		return nil, err
	}

	if sum := hash.Checksum(payload); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: expected 0x%08x, got 0x%08x", errs.ErrChecksumMismatch, d.header.Checksum, sum)
	}

	entries, err := d.decodeEntries(payload)
	if err != nil {
		return nil, err
	}

	vocab, err := newVocabularyBlob(entries, d.header.Flag.GetOrdering(), d.header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}

	if vocab.total != d.header.TotalCount {
		return nil, fmt.Errorf("%w: counts sum to %d, header records %d",
			errs.ErrInvalidOccurrence, vocab.total, d.header.TotalCount)
	}

	return vocab, nil
}

func (d *VocabularyDecoder) decompressPayload() ([]byte, error) {
	compressed := d.data[d.header.DataOffset:]

	codec, err := compress.GetCodec(d.header.Flag.GetCompression())
	if err != nil {
		return nil, fmt.Errorf("failed to create decompression codec: %w", err)
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress vocabulary: %w", err)
	}

	if uint64(len(payload)) != uint64(d.header.DataSize) {
		return nil, fmt.Errorf("%w: decompressed %d bytes, expected %d",
			errs.ErrInvalidDataSize, len(payload), d.header.DataSize)
	}

	return payload, nil
}

func (d *VocabularyDecoder) decodeEntries(payload []byte) ([]table.Entry, error) {
	count := int(d.header.EntryCount)
	entries := make([]table.Entry, count)
	decoder := encoding.NewVarStringDecoder(payload)

	for i := range entries {
		value, err := decoder.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to decode value %d: %w", i, err)
		}
		entries[i].Value = value
	}

	for i := range entries {
		n, err := decoder.NextUvarint()
		if err != nil {
			return nil, fmt.Errorf("failed to decode count %d: %w", i, err)
		}
		if n == 0 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %q has count %d", errs.ErrInvalidOccurrence, entries[i].Value, n)
		}
		entries[i].Count = int(n)
	}

	if rest := decoder.Remaining(); rest != 0 {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidDataSize, rest)
	}

	return entries, nil
}

// DecodeVocabulary decodes a vocabulary blob produced by VocabularyEncoder.
func DecodeVocabulary(data []byte) (*VocabularyBlob, error) {
	decoder, err := NewVocabularyDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
