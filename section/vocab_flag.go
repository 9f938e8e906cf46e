package section

import (
	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/format"
)

// VocabFlag represents the packed flag fields of a vocabulary header.
type VocabFlag struct {
	// Options is a packed field for ordering bits, endianness and the magic number.
	// See the package documentation for the bit layout.
	Options uint16

	// Compression indicates the compression used for the payload.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	Compression uint8
}

// NewVocabFlag creates a little-endian, first-seen, uncompressed flag.
func NewVocabFlag() VocabFlag {
	flag := VocabFlag{
		Options:     MagicVocabV1Opt,
		Compression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f VocabFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f VocabFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *VocabFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *VocabFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetOrdering records how the vocabulary was ordered.
func (f *VocabFlag) SetOrdering(o format.Ordering) {
	f.Options &^= FrequencyMask | ReversedMask
	if o.Frequency() {
		f.Options |= FrequencyMask
	}
	if o.Reversed() {
		f.Options |= ReversedMask
	}
}

// GetOrdering returns how the vocabulary was ordered.
func (f VocabFlag) GetOrdering() format.Ordering {
	return format.OrderingOf(f.Options&FrequencyMask != 0, f.Options&ReversedMask != 0)
}

// SetCompression sets the payload compression type.
func (f *VocabFlag) SetCompression(c format.CompressionType) {
	f.Compression = uint8(c)
}

// GetCompression returns the payload compression type.
func (f VocabFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// GetMagicNumber returns the magic number from the Options field.
func (f VocabFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, reserved bits and compression type.
func (f VocabFlag) Validate() error {
	if f.GetMagicNumber() != MagicVocabV1Opt {
		return errs.ErrInvalidHeaderFlags
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.GetCompression().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
