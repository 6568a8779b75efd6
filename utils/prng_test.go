package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedPRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xc7, 0x12, 0x6a, 0x01, 0xd4, 0xaa, 0x2b}

	t.Run("Deterministic", func(t *testing.T) {
		a, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		b, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		bufA, bufB := make([]byte, 512), make([]byte, 512)
		_, err = a.Read(bufA)
		require.NoError(t, err)
		_, err = b.Read(bufB)
		require.NoError(t, err)
		require.Equal(t, bufA, bufB)
	})

	t.Run("Reset", func(t *testing.T) {
		p, err := NewKeyedPRNG(key)
		require.NoError(t, err)

		first := make([]byte, 64)
		_, err = p.Read(first)
		require.NoError(t, err)

		p.Reset()
		again := make([]byte, 64)
		_, err = p.Read(again)
		require.NoError(t, err)
		require.Equal(t, first, again)
	})

	t.Run("DistinctKeys", func(t *testing.T) {
		a, err := NewKeyedPRNG(key)
		require.NoError(t, err)
		b, err := NewKeyedPRNG(nil)
		require.NoError(t, err)

		bufA, bufB := make([]byte, 64), make([]byte, 64)
		_, err = a.Read(bufA)
		require.NoError(t, err)
		_, err = b.Read(bufB)
		require.NoError(t, err)
		require.NotEqual(t, bufA, bufB)
	})

	t.Run("Random", func(t *testing.T) {
		p, err := NewRandomPRNG()
		require.NoError(t, err)
		buf := make([]byte, 64)
		_, err = p.Read(buf)
		require.NoError(t, err)
	})
}

func TestSlices(t *testing.T) {

	t.Run("SortedKeys", func(t *testing.T) {
		m := map[int]string{3: "c", 1: "a", 2: "b"}
		require.Equal(t, []int{1, 2, 3}, GetSortedKeys(m))
		require.ElementsMatch(t, []int{1, 2, 3}, GetKeys(m))
	})

	t.Run("EqualSlice", func(t *testing.T) {
		require.True(t, EqualSlice([]int{1, 2}, []int{1, 2}))
		require.False(t, EqualSlice([]int{1, 2}, []int{2, 1}))
	})

	t.Run("Max", func(t *testing.T) {
		require.Equal(t, 7, Max(7, 2))
		require.Equal(t, 7, Max(2, 7))
	})
}
