// Package blob persists fitted vocabularies so that codes can be reproduced
// on new data.
//
// A vocabulary is the ordered list of distinct values produced by a pipeline
// run, together with the occurrence counts seen while fitting. Position i in
// the list is code i. Saving it and decoding it later gives a fit/transform
// split: the codes of a second column are computed against the first
// column's ordering instead of its own.
//
// # Encoding
//
//	encoder, err := blob.NewVocabularyEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	data, err := encoder.EncodeResult(result)
//
// # Decoding
//
//	vocab, err := blob.DecodeVocabulary(data)
//	if err != nil {
//	    return err
//	}
//	codes, err := vocab.Transform([]string{"a", "b"})
//	if errors.Is(err, errs.ErrUnknownValue) {
//	    // value never seen while fitting
//	}
//
// See the section package for the binary layout.
//
// Encoders and decoders are not safe for concurrent use. A decoded
// VocabularyBlob is immutable and may be shared between goroutines.
package blob
