package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vectorize/endian"
	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/format"
)

func TestNewVocabHeader(t *testing.T) {
	t.Run("valid entry count", func(t *testing.T) {
		header, err := NewVocabHeader(100)

		require.NoError(t, err)
		require.Equal(t, uint32(100), header.EntryCount)
		require.Equal(t, uint32(DataOffsetOffset), header.DataOffset)
		require.True(t, header.Flag.IsLittleEndian())
	})

	t.Run("zero entries", func(t *testing.T) {
		header, err := NewVocabHeader(0)
		require.NoError(t, err)
		require.Equal(t, uint32(0), header.EntryCount)
	})

	t.Run("negative entry count", func(t *testing.T) {
		header, err := NewVocabHeader(-1)
		require.ErrorIs(t, err, errs.ErrInvalidEntryCount)
		require.Nil(t, header)
	})
}

func newTestHeader(t *testing.T, bigEndian bool) *VocabHeader {
	t.Helper()

	header, err := NewVocabHeader(42)
	require.NoError(t, err)
	if bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetOrdering(format.OrderFrequency)
	header.Flag.SetCompression(format.CompressionZstd)
	header.DataSize = 1000
	header.CompressedSize = 400
	header.Checksum = 0xdeadbeef
	header.TotalCount = 1 << 40

	return header
}

func TestVocabHeader_RoundTrip(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		name := "little endian"
		if bigEndian {
			name = "big endian"
		}
		t.Run(name, func(t *testing.T) {
			original := newTestHeader(t, bigEndian)
			data := original.Bytes()
			require.Len(t, data, HeaderSize)

			parsed := &VocabHeader{}
			require.NoError(t, parsed.Parse(data))
			require.Equal(t, *original, *parsed)
		})
	}
}

func TestVocabHeader_OptionsAlwaysLittleEndian(t *testing.T) {
	header := newTestHeader(t, true)
	data := header.Bytes()

	options := uint16(data[0]) | uint16(data[1])<<8
	require.Equal(t, header.Flag.Options, options)
	require.Equal(t, endian.GetBigEndianEngine(), header.GetEndianEngine())
	require.Equal(t, uint32(42), endian.GetBigEndianEngine().Uint32(data[4:8]))
}

func TestVocabHeader_Parse_Errors(t *testing.T) {
	t.Run("invalid size", func(t *testing.T) {
		err := (&VocabHeader{}).Parse([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("invalid magic", func(t *testing.T) {
		err := (&VocabHeader{}).Parse(make([]byte, HeaderSize))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("reserved byte set", func(t *testing.T) {
		data := newTestHeader(t, false).Bytes()
		data[3] = 1
		err := (&VocabHeader{}).Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("data offset inside header", func(t *testing.T) {
		header := newTestHeader(t, false)
		header.DataOffset = 8
		err := (&VocabHeader{}).Parse(header.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidDataOffset)
	})
}

func TestParseVocabHeader(t *testing.T) {
	original := newTestHeader(t, false)
	data := append(original.Bytes(), 0xAA, 0xBB)

	parsed, err := ParseVocabHeader(data)
	require.NoError(t, err)
	require.Equal(t, original.EntryCount, parsed.EntryCount)
	require.Equal(t, original.Checksum, parsed.Checksum)

	_, err = ParseVocabHeader(data[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}
