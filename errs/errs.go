// Package errs defines the sentinel errors shared by the vectorize packages.
//
// Callers should compare against these values with errors.Is, since most
// call sites wrap them with additional context.
package errs

import (
	"errors"
	"fmt"
)

// ErrUsage is the root of every caller mistake detected before processing starts.
var ErrUsage = errors.New("usage error")

// Input validation errors. Both wrap ErrUsage.
var (
	ErrMissingInput = fmt.Errorf("%w: missing argument 'List'", ErrUsage)
	ErrEmptyInput   = fmt.Errorf("%w: input sequence is empty", ErrUsage)
)

// ErrInconsistentTable signals that the token table does not contain a value
// it was built from. It is only ever raised through a panic.
var ErrInconsistentTable = errors.New("token table is inconsistent with its input")

// ErrUnknownValue is returned when a saved vocabulary is applied to a value it never saw.
var ErrUnknownValue = errors.New("value not present in vocabulary")

// Vocabulary blob errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrInvalidEntryCount  = errors.New("invalid vocabulary entry count")
	ErrInvalidDataOffset  = errors.New("invalid vocabulary data offset")
	ErrInvalidDataSize    = errors.New("invalid vocabulary data size")
	ErrChecksumMismatch   = errors.New("vocabulary checksum mismatch")
	ErrInvalidOccurrence  = errors.New("vocabulary entry has invalid occurrence count")
	ErrDuplicateValue     = errors.New("duplicate value in vocabulary")
	ErrEmptyVocabulary    = errors.New("vocabulary has no entries")
)

// ErrTruncatedData is returned when an encoded payload ends in the middle of a value.
var ErrTruncatedData = errors.New("truncated data")
