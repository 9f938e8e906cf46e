package compress

// ZstdCompressor provides Zstandard compression for vocabulary payloads.
//
// It gives the best ratio of the built-in codecs and is the default for
// saved vocabularies. See zstd_pure.go and zstd_cgo.go for the backends.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
