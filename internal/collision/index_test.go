package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIndex(t *testing.T) {
	idx := NewIndex(16)

	require.NotNil(t, idx)
	require.Equal(t, 0, idx.Len())
	require.False(t, idx.HasCollision())

	_, ok := idx.Get(0x1, "missing")
	require.False(t, ok)
}

func TestNewIndex_NegativeCapacity(t *testing.T) {
	idx := NewIndex(-1)
	idx.Put(0x1, "a", 0)

	pos, ok := idx.Get(0x1, "a")
	require.True(t, ok)
	require.Equal(t, 0, pos)
}

func TestIndex_PutGet(t *testing.T) {
	idx := NewIndex(0)

	idx.Put(0x1111, "red", 0)
	idx.Put(0x2222, "green", 1)

	pos, ok := idx.Get(0x1111, "red")
	require.True(t, ok)
	require.Equal(t, 0, pos)

	pos, ok = idx.Get(0x2222, "green")
	require.True(t, ok)
	require.Equal(t, 1, pos)

	require.Equal(t, 2, idx.Len())
	require.False(t, idx.HasCollision())
}

func TestIndex_Put_UpdatesPosition(t *testing.T) {
	idx := NewIndex(0)

	idx.Put(0x1111, "red", 0)
	idx.Put(0x1111, "red", 5)

	pos, ok := idx.Get(0x1111, "red")
	require.True(t, ok)
	require.Equal(t, 5, pos)
	require.Equal(t, 1, idx.Len())
	require.False(t, idx.HasCollision())
}

func TestIndex_Collision(t *testing.T) {
	idx := NewIndex(0)

	// Same hash, different values
	idx.Put(0xabcd, "cpu", 0)
	idx.Put(0xabcd, "mem", 1)

	require.True(t, idx.HasCollision())
	require.Equal(t, 2, idx.Len())

	pos, ok := idx.Get(0xabcd, "cpu")
	require.True(t, ok)
	require.Equal(t, 0, pos)

	pos, ok = idx.Get(0xabcd, "mem")
	require.True(t, ok)
	require.Equal(t, 1, pos)

	// Unknown value with a colliding hash
	_, ok = idx.Get(0xabcd, "disk")
	require.False(t, ok)
}

func TestIndex_Collision_UpdatesOverflow(t *testing.T) {
	idx := NewIndex(0)

	idx.Put(0xabcd, "cpu", 0)
	idx.Put(0xabcd, "mem", 1)
	idx.Put(0xabcd, "mem", 7)

	pos, ok := idx.Get(0xabcd, "mem")
	require.True(t, ok)
	require.Equal(t, 7, pos)
	require.Equal(t, 2, idx.Len())
}

func TestIndex_Reset(t *testing.T) {
	idx := NewIndex(0)

	idx.Put(0xabcd, "cpu", 0)
	idx.Put(0xabcd, "mem", 1)
	require.True(t, idx.HasCollision())

	idx.Reset()

	require.Equal(t, 0, idx.Len())
	require.False(t, idx.HasCollision())
	_, ok := idx.Get(0xabcd, "cpu")
	require.False(t, ok)

	// Index is reusable after reset
	idx.Put(0x1, "disk", 3)
	pos, ok := idx.Get(0x1, "disk")
	require.True(t, ok)
	require.Equal(t, 3, pos)
}
