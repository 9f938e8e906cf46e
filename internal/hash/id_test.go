package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		id    uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.value))
			assert.Equal(t, tt.id, IDBytes([]byte(tt.value)))
		})
	}
}

func TestID_DistinctTokens(t *testing.T) {
	assert.NotEqual(t, ID("red"), ID("green"))
	assert.NotEqual(t, ID("a"), ID("A"))
}

func TestChecksum(t *testing.T) {
	data := []byte("category-0001")
	sum := IDBytes(data)

	assert.Equal(t, uint32(sum>>32)^uint32(sum), Checksum(data))
	assert.Equal(t, Checksum(data), Checksum([]byte("category-0001")))
	assert.NotEqual(t, Checksum(data), Checksum([]byte("category-0002")))
}

func randToken(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkID(b *testing.B) {
	token := randToken(20)
	b.ResetTimer()
	for b.Loop() {
		ID(token)
	}
}
