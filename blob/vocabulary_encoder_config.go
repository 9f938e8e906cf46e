package blob

import (
	"fmt"

	"github.com/arloliu/vectorize/compress"
	"github.com/arloliu/vectorize/endian"
	"github.com/arloliu/vectorize/format"
	"github.com/arloliu/vectorize/internal/options"
	"github.com/arloliu/vectorize/section"
)

// VocabularyEncoderConfig holds the header flags and codec used by a VocabularyEncoder.
type VocabularyEncoderConfig struct {
	flag  section.VocabFlag
	codec compress.Codec
}

// NewVocabularyEncoderConfig creates a little-endian, Zstd-compressed configuration.
func NewVocabularyEncoderConfig() *VocabularyEncoderConfig {
	flag := section.NewVocabFlag()
	flag.SetCompression(format.CompressionZstd)

	return &VocabularyEncoderConfig{
		flag:  flag,
		codec: compress.NewZstdCompressor(),
	}
}

// Compression returns the configured payload compression.
func (c *VocabularyEncoderConfig) Compression() format.CompressionType {
	return c.flag.GetCompression()
}

// IsBigEndian returns whether header fields are written big-endian.
func (c *VocabularyEncoderConfig) IsBigEndian() bool {
	return c.flag.IsBigEndian()
}

func (c *VocabularyEncoderConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.CreateCodec(comp, "vocabulary")
	if err != nil {
		return err
	}

	c.flag.SetCompression(comp)
	c.codec = codec

	return nil
}

// VocabularyEncoderOption is a functional option for configuring VocabularyEncoder.
type VocabularyEncoderOption = options.Option[*VocabularyEncoderConfig]

// WithCompression configures the payload compression.
// Available compression types: format.CompressionZstd, format.CompressionS2,
// format.CompressionLZ4, format.CompressionNone.
// Default is format.CompressionZstd.
func WithCompression(comp format.CompressionType) VocabularyEncoderOption {
	return options.New(func(cfg *VocabularyEncoderConfig) error {
		if err := cfg.setCompression(comp); err != nil {
			return fmt.Errorf("invalid vocabulary option: %w", err)
		}

		return nil
	})
}

// WithLittleEndian writes header fields in little-endian byte order. This is the default.
func WithLittleEndian() VocabularyEncoderOption {
	return options.NoError(func(cfg *VocabularyEncoderConfig) {
		cfg.flag.WithLittleEndian()
	})
}

// WithBigEndian writes header fields in big-endian byte order.
func WithBigEndian() VocabularyEncoderOption {
	return options.NoError(func(cfg *VocabularyEncoderConfig) {
		cfg.flag.WithBigEndian()
	})
}

// WithNativeEndian writes header fields in the host byte order.
func WithNativeEndian() VocabularyEncoderOption {
	return options.NoError(func(cfg *VocabularyEncoderConfig) {
		if endian.IsNativeLittleEndian() {
			cfg.flag.WithLittleEndian()
		} else {
			cfg.flag.WithBigEndian()
		}
	})
}
