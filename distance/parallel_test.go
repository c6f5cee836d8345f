package distance

import (
	"context"
	"testing"

	"github.com/hupe1980/sortdist/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingParallel(t *testing.T) {
	rng := testutil.NewRNG(4711)
	d := DefaultDomain
	n := 5*minShardLen + 123

	a := rng.Int64s(n, d.Min, d.Max)
	b := rng.Clustered(n, d.Min, d.Max, 1000)

	want, err := Counting(a, b, d)
	require.NoError(t, err)

	for _, shards := range []int{0, 1, 2, 3, 8, 64} {
		got, err := CountingParallel(context.Background(), a, b, d, shards)
		require.NoError(t, err)
		assert.Equal(t, want, got, "shards=%d", shards)
	}
}

func TestCountingParallel_SmallInputFallsBack(t *testing.T) {
	got, err := CountingParallel(context.Background(), []int64{3, 1, 2}, []int64{6, 5, 4}, Domain{1, 9}, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got)
}

func TestCountingParallel_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := CountingParallel(ctx, []int64{1}, nil, DefaultDomain, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CountingParallel(ctx, nil, nil, Domain{2, 1}, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	n := 4 * minShardLen
	a := make([]int64, n)
	b := make([]int64, n)
	for i := range a {
		a[i] = 10000
		b[i] = 10000
	}
	bad := 3*minShardLen + 7
	b[bad] = 5

	_, err = CountingParallel(ctx, a, b, DefaultDomain, 4)
	var od *OutOfDomainError
	require.ErrorAs(t, err, &od)
	assert.Equal(t, "right", od.Column)
	assert.Equal(t, bad, od.Index, "index must be global, not shard-relative")
	assert.Equal(t, int64(5), od.Value)
}

func TestCountingParallel_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := 4 * minShardLen
	a := make([]int64, n)
	b := make([]int64, n)
	for i := range a {
		a[i] = 10000
		b[i] = 10001
	}

	_, err := CountingParallel(ctx, a, b, DefaultDomain, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEffectiveShards(t *testing.T) {
	assert.Equal(t, 1, EffectiveShards(0, 8))
	assert.Equal(t, 1, EffectiveShards(minShardLen*8, 0))
	assert.Equal(t, 1, EffectiveShards(minShardLen-1, 8))
	assert.Equal(t, 4, EffectiveShards(minShardLen*4, 8))
	assert.Equal(t, 8, EffectiveShards(minShardLen*100, 8))
}
