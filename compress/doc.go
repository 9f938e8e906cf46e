// Package compress provides the codecs applied to serialized vocabulary payloads.
//
// A vocabulary payload is a run of length-prefixed strings followed by their
// occurrence counts. Categorical columns repeat prefixes heavily, so the
// general-purpose codecs below usually shrink it well.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio, the default for saved vocabularies
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Every codec implements Codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// # Zstd Backends
//
// The default Zstd backend is the pure Go github.com/klauspost/compress/zstd.
// Building with the zstd_cgo tag (and cgo enabled) switches to
// github.com/valyala/gozstd. Both produce standard Zstandard frames, so blobs
// written by one backend decode with the other.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Encoders and
// decoders used internally are pooled.
package compress
