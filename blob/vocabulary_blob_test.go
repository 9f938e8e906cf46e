package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vectorize/encoding"
	"github.com/arloliu/vectorize/errs"
	"github.com/arloliu/vectorize/format"
	"github.com/arloliu/vectorize/pipeline"
	"github.com/arloliu/vectorize/table"
)

func decodeSample(t *testing.T) *VocabularyBlob {
	t.Helper()

	vocab, err := DecodeVocabulary(encodeSample(t, sampleEntries()))
	require.NoError(t, err)

	return vocab
}

func TestVocabularyBlob_Accessors(t *testing.T) {
	vocab := decodeSample(t)

	require.Equal(t, []string{"a", "b", "", "日本語"}, vocab.Values())
	require.Equal(t, uint64(7), vocab.TotalCount())
	require.Equal(t, format.OrderFirstSeen, vocab.Ordering())

	v, ok := vocab.Value(3)
	require.True(t, ok)
	require.Equal(t, "日本語", v)

	_, ok = vocab.Value(4)
	require.False(t, ok)
	_, ok = vocab.Value(-1)
	require.False(t, ok)
}

func TestVocabularyBlob_EntriesIsCopy(t *testing.T) {
	vocab := decodeSample(t)

	entries := vocab.Entries()
	entries[0].Value = "mutated"

	require.Equal(t, "a", vocab.Entries()[0].Value)
}

func TestVocabularyBlob_Lookup(t *testing.T) {
	vocab := decodeSample(t)

	for i, value := range []string{"a", "b", "", "日本語"} {
		code, ok := vocab.Lookup(value)
		require.True(t, ok)
		require.Equal(t, i, code)
	}

	_, ok := vocab.Lookup("z")
	require.False(t, ok)
}

func TestVocabularyBlob_Transform(t *testing.T) {
	vocab := decodeSample(t)

	codes, err := vocab.Transform([]string{"b", "a", "", "a"})
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 2, 0}, codes)

	codes, err = vocab.Transform([]string{})
	require.NoError(t, err)
	require.Empty(t, codes)

	_, err = vocab.Transform([]string{"a", "zzz"})
	require.ErrorIs(t, err, errs.ErrUnknownValue)
	require.Contains(t, err.Error(), `"zzz" at position 1`)

	_, err = vocab.Transform(nil)
	require.ErrorIs(t, err, errs.ErrMissingInput)
}

func TestVocabularyBlob_TransformTo(t *testing.T) {
	vocab := decodeSample(t)

	dst := make([]int, 3)
	require.NoError(t, vocab.TransformTo([]string{"日本語", "b"}, dst))
	require.Equal(t, []int{3, 1, 0}, dst)

	err := vocab.TransformTo([]string{"a", "b"}, make([]int, 1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "need 2")
}

func TestVocabularyBlob_Decode(t *testing.T) {
	vocab := decodeSample(t)

	values, err := vocab.Decode([]int{1, 0, 3})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "日本語"}, values)

	_, err = vocab.Decode([]int{0, 9})
	require.Error(t, err)
}

func TestVocabularyBlob_TransformMatchesFit(t *testing.T) {
	input := []string{"red", "green", "red", "blue", "green", "red", "amber"}

	for _, cfg := range []pipeline.Config{
		{Lookup: encoding.LookupIndex},
		{Frequency: true, Lookup: encoding.LookupIndex},
		{Frequency: true, Reversed: true, Lookup: encoding.LookupScan},
	} {
		p, err := pipeline.New(pipeline.WithConfig(cfg))
		require.NoError(t, err)
		res, err := p.Run(input)
		require.NoError(t, err)

		for _, comp := range allCompressions {
			data, err := newEncoder(t, WithCompression(comp)).EncodeResult(res)
			require.NoError(t, err)

			vocab, err := DecodeVocabulary(data)
			require.NoError(t, err)

			codes, err := vocab.Transform(input)
			require.NoError(t, err)
			require.Equal(t, res.Codes, codes)
		}
	}
}

func TestNewVocabularyBlob_Duplicate(t *testing.T) {
	_, err := newVocabularyBlob([]table.Entry{{Value: "a", Count: 1}, {Value: "a", Count: 2}}, format.OrderFirstSeen, format.CompressionNone)
	require.ErrorIs(t, err, errs.ErrDuplicateValue)
}
