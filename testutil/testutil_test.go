package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64s(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Int64s(1000, 10000, 99999)

	require.Len(t, v, 1000)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, int64(10000))
		assert.LessOrEqual(t, x, int64(99999))
	}
}

func TestClustered(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Clustered(500, 1, 1_000_000, 4)

	require.Len(t, v, 500)
	distinct := slices.Compact(slices.Sorted(slices.Values(v)))
	assert.LessOrEqual(t, len(distinct), 4)
}

func TestSkewed(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Skewed(1000, 100, 200, 1.5)

	require.Len(t, v, 1000)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, int64(100))
		assert.LessOrEqual(t, x, int64(200))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Int64s(10, 0, 100)

	rng.Reset()
	second := rng.Int64s(10, 0, 100)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestShuffled(t *testing.T) {
	rng := NewRNG(7)
	in := []int64{1, 2, 3, 4, 5, 6, 7, 8}

	out := rng.Shuffled(in)

	assert.ElementsMatch(t, in, out)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, in, "input must not be mutated")
}

func TestReferenceDistance(t *testing.T) {
	assert.Equal(t, int64(9), ReferenceDistance([]int64{3, 1, 2}, []int64{6, 5, 4}))
	assert.Equal(t, int64(0), ReferenceDistance(nil, nil))
	assert.Panics(t, func() { ReferenceDistance([]int64{1}, nil) })
}
