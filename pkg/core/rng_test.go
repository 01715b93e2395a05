package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
	}
	ca, cb := a.Child(), b.Child()
	assert.Equal(t, ca.IntRange(0, 1<<30), cb.IntRange(0, 1<<30))
}

func TestIntRange(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(25, 100)
		require.GreaterOrEqual(t, v, 25)
		require.Less(t, v, 100)
	}
	assert.Equal(t, 7, r.IntRange(7, 7))
	assert.Equal(t, 7, r.IntRange(7, 3))
}

func TestChanceBounds(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 100; i++ {
		require.False(t, r.Chance(0))
		require.True(t, r.Chance(1))
		require.False(t, r.Chance(-2))
	}
}

func TestShufflePermutes(t *testing.T) {
	r := NewRNG(5)
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	got := Shuffle(r, append([]int(nil), s...))
	assert.ElementsMatch(t, s, got)
}

func TestPick(t *testing.T) {
	r := NewRNG(9)
	_, ok := Pick[int](r, nil)
	assert.False(t, ok)

	s := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		v, ok := Pick(r, s)
		require.True(t, ok)
		assert.Contains(t, s, v)
	}
}
