package section

import (
	"github.com/arloliu/vectorize/endian"
	"github.com/arloliu/vectorize/errs"
)

// VocabHeader is the fixed-size 32 byte header of a vocabulary blob.
type VocabHeader struct {
	// Flag holds the magic number, ordering, endianness and compression.
	Flag VocabFlag // 3 bytes, offset 0-2

	Reserved uint8 // must be zero, offset 3

	// EntryCount is the number of distinct values.
	EntryCount uint32 // 4 bytes, offset 4-7
	// DataOffset is the byte offset of the payload.
	DataOffset uint32 // 4 bytes, offset 8-11
	// DataSize is the uncompressed payload size in bytes.
	DataSize uint32 // 4 bytes, offset 12-15
	// CompressedSize is the stored payload size in bytes.
	CompressedSize uint32 // 4 bytes, offset 16-19
	// Checksum is the folded xxHash64 of the uncompressed payload.
	Checksum uint32 // 4 bytes, offset 20-23
	// TotalCount is the sum of all occurrence counts, i.e. the fitted column length.
	TotalCount uint64 // 8 bytes, offset 24-31
}

// NewVocabHeader creates a header for entryCount values.
func NewVocabHeader(entryCount int) (*VocabHeader, error) {
	if entryCount < 0 || entryCount > MaxEntryCount {
		return nil, errs.ErrInvalidEntryCount
	}

	return &VocabHeader{
		Flag:       NewVocabFlag(),
		EntryCount: uint32(entryCount), //nolint:gosec
		DataOffset: DataOffsetOffset,
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if data is not exactly HeaderSize bytes or the flags are invalid.
func (h *VocabHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian, it tells us the order of everything else.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Reserved = data[3]

	engine := h.GetEndianEngine()

	h.EntryCount = engine.Uint32(data[4:8])
	h.DataOffset = engine.Uint32(data[8:12])
	h.DataSize = engine.Uint32(data[12:16])
	h.CompressedSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint32(data[20:24])
	h.TotalCount = engine.Uint64(data[24:32])

	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if h.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if h.DataOffset < DataOffsetOffset {
		return errs.ErrInvalidDataOffset
	}

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *VocabHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = h.Reserved
	engine.PutUint32(b[4:8], h.EntryCount)
	engine.PutUint32(b[8:12], h.DataOffset)
	engine.PutUint32(b[12:16], h.DataSize)
	engine.PutUint32(b[16:20], h.CompressedSize)
	engine.PutUint32(b[20:24], h.Checksum)
	engine.PutUint64(b[24:32], h.TotalCount)

	return b
}

// GetEndianEngine returns the endian engine selected by the header flags.
func (h *VocabHeader) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// ParseVocabHeader parses a header from the first HeaderSize bytes of data.
func ParseVocabHeader(data []byte) (*VocabHeader, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	h := &VocabHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}

	return h, nil
}
