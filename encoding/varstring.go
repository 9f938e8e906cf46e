package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/internal/pool"
)

// MaxTextLength is the maximum byte length of a single encoded string.
const MaxTextLength = 1<<16 - 1

// VarStringEncoder encodes strings as a uvarint byte length followed by the bytes.
//
// The encoder writes into a pooled buffer. Call Reset once the bytes are no
// longer needed to hand the buffer back.
type VarStringEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewVarStringEncoder creates a new variable-length string encoder.
func NewVarStringEncoder() *VarStringEncoder {
	return &VarStringEncoder{
		buf: pool.GetVocabBuffer(),
	}
}

// Write encodes a single string.
//
// Returns an error if text is longer than MaxTextLength bytes; nothing is
// written in that case.
func (e *VarStringEncoder) Write(text string) error {
	if len(text) > MaxTextLength {
		return fmt.Errorf("text length %d exceeds maximum %d", len(text), MaxTextLength)
	}

	e.buf.Grow(binary.MaxVarintLen32 + len(text))
	e.buf.WriteUvarint(uint64(len(text)))
	e.buf.WriteString(text)
	e.count++

	return nil
}

// WriteSlice encodes all texts, validating every length before writing any.
func (e *VarStringEncoder) WriteSlice(texts []string) error {
	totalSize := 0
	for _, text := range texts {
		if len(text) > MaxTextLength {
			return fmt.Errorf("text length %d exceeds maximum %d", len(text), MaxTextLength)
		}
		totalSize += binary.MaxVarintLen32 + len(text)
	}

	e.buf.Grow(totalSize)
	for _, text := range texts {
		e.buf.WriteUvarint(uint64(len(text)))
		e.buf.WriteString(text)
	}
	e.count += len(texts)

	return nil
}

// WriteUvarint appends an unsigned integer after the strings written so far.
func (e *VarStringEncoder) WriteUvarint(v uint64) {
	e.buf.WriteUvarint(v)
}

// Bytes returns the encoded data.
//
// The returned slice shares the encoder's buffer and is invalid after Reset.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of strings encoded.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the total size of encoded data in bytes.
func (e *VarStringEncoder) Size() int {
	return e.buf.Len()
}

// Reset returns the buffer to the pool. The encoder must not be used afterwards.
func (e *VarStringEncoder) Reset() {
	if e.buf != nil {
		pool.PutVocabBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// VarStringDecoder reads values written by VarStringEncoder.
type VarStringDecoder struct {
	data   []byte
	offset int
}

// NewVarStringDecoder creates a decoder over data.
func NewVarStringDecoder(data []byte) *VarStringDecoder {
	return &VarStringDecoder{data: data}
}

// Next decodes the next string.
//
// The returned string is a copy and does not alias data.
func (d *VarStringDecoder) Next() (string, error) {
	n, err := d.NextUvarint()
	if err != nil {
		return "", err
	}
	if n > MaxTextLength {
		return "", fmt.Errorf("text length %d exceeds maximum %d", n, MaxTextLength)
	}

	end := d.offset + int(n)
	if end > len(d.data) {
		return "", fmt.Errorf("%w: string of %d bytes at offset %d", errs.ErrTruncatedData, n, d.offset)
	}

	s := string(d.data[d.offset:end])
	d.offset = end

	return s, nil
}

// NextUvarint decodes the next unsigned varint.
func (d *VarStringDecoder) NextUvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.offset:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: bad uvarint at offset %d", errs.ErrTruncatedData, d.offset)
	}
	d.offset += n

	return v, nil
}

// Remaining returns the number of undecoded bytes.
func (d *VarStringDecoder) Remaining() int {
	return len(d.data) - d.offset
}
