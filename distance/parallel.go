package distance

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sortdist/internal/bucket"
)

// minShardLen keeps shards large enough that a private table is worth it.
const minShardLen = 1 << 16

// CountingParallel computes the same result as Counting, but tallies the
// columns on up to shards goroutines.
//
// Each goroutine fills a private table for its slice of one column. The
// tables are merged by elementwise addition and the pairing walk then runs
// once, sequentially, because its cursor carries state across buckets.
// Memory: 2 * shards tables of d.Range() counters at peak.
//
// shards <= 1, or columns too short to split, fall back to Counting.
func CountingParallel(ctx context.Context, a, b []int64, d Domain, shards int) (int64, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{Left: len(a), Right: len(b)}
	}
	if err := d.Validate(); err != nil {
		return 0, err
	}

	shards = EffectiveShards(len(a), shards)
	if shards <= 1 {
		return Counting(a, b, d)
	}

	size := int(d.Range())
	left := make([]*bucket.Table, shards)
	right := make([]*bucket.Table, shards)

	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(a) + shards - 1) / shards

	for s := range shards {
		lo := min(s*chunk, len(a))
		hi := min(lo+chunk, len(a))

		g.Go(func() error {
			t, err := fillShard(gctx, "left", a, lo, hi, d, size)
			left[s] = t
			return err
		})
		g.Go(func() error {
			t, err := fillShard(gctx, "right", b, lo, hi, d, size)
			right[s] = t
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	ta, tb := left[0], right[0]
	for s := 1; s < shards; s++ {
		ta.Merge(left[s])
		tb.Merge(right[s])
	}

	return bucket.Walk(ta, tb), nil
}

// EffectiveShards returns the number of shards CountingParallel uses for
// columns of length n.
func EffectiveShards(n, shards int) int {
	return max(1, min(shards, n/minShardLen))
}

func fillShard(ctx context.Context, column string, values []int64, lo, hi int, d Domain, size int) (*bucket.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := bucket.New(d.Min, size)
	if i, ok := t.Fill(values[lo:hi]); !ok {
		return nil, &OutOfDomainError{Column: column, Index: lo + i, Value: values[lo+i], Domain: d}
	}
	return t, nil
}
