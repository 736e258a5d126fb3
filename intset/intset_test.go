package intset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_AddContainsRemove(t *testing.T) {
	s := New(8)
	require.False(t, s.Contains(3))

	require.True(t, s.Add(3))
	require.True(t, s.Contains(3))
	require.False(t, s.Add(3), "re-adding an existing member reports false")

	s.Remove(3)
	require.False(t, s.Contains(3))
}

func TestSet_Clear(t *testing.T) {
	s := New(4)
	for i := 0; i < 4; i++ {
		s.Add(i)
	}
	s.Clear()
	for i := 0; i < 4; i++ {
		require.False(t, s.Contains(i))
	}
	// Members can be re-added after clearing.
	require.True(t, s.Add(2))
	require.True(t, s.Contains(2))
}

func TestSet_ClearManyTimesStaysConsistent(t *testing.T) {
	s := New(16)
	for round := 0; round < 1000; round++ {
		s.Clear()
		require.True(t, s.Add(round%16))
		require.True(t, s.Contains(round%16))
	}
}

func TestSet_GenerationOverflowResets(t *testing.T) {
	s := New(4)
	s.gen = (1 << 31) - 1 // next Clear overflows, without 2^31 iterations
	s.Add(1)
	s.Clear()
	require.True(t, s.Contains(1) == false)
	require.Equal(t, int32(1), s.gen)
}
