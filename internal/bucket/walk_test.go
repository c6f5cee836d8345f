package bucket

import (
	"fmt"
	"testing"

	"github.com/hupe1980/sortdist/testutil"
	"github.com/stretchr/testify/assert"
)

func tables(lo int64, size int, a, b []int64) (*Table, *Table) {
	ta := New(lo, size)
	tb := New(lo, size)
	ta.Fill(a)
	tb.Fill(b)
	return ta, tb
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name     string
		lo       int64
		size     int
		a, b     []int64
		expected int64
	}{
		{"Simple", 1, 9, []int64{3, 1, 2}, []int64{6, 5, 4}, 9},
		{"Duplicates", 10000, 90000, []int64{10000, 10000, 99999}, []int64{10000, 99999, 99999}, 89999},
		{"Empty", 0, 4, nil, nil, 0},
		{"Single", 0, 10, []int64{7}, []int64{2}, 5},
		{"Identical", 0, 10, []int64{4, 4, 1}, []int64{1, 4, 4}, 0},
		{"CrossingRuns", 0, 10, []int64{0, 0, 0, 9}, []int64{5, 9, 9, 9}, 5 + 9 + 9 + 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta, tb := tables(tt.lo, tt.size, tt.a, tt.b)
			assert.Equal(t, tt.expected, Walk(ta, tb))
			assert.Equal(t, tt.expected, WalkSparse(ta, tb))
		})
	}
}

func TestWalk_DoesNotModifyTables(t *testing.T) {
	ta, tb := tables(0, 8, []int64{1, 1, 7}, []int64{0, 3, 3})

	first := Walk(ta, tb)
	second := Walk(ta, tb)

	assert.Equal(t, first, second)
	assert.Equal(t, []int64{1, 1, 7}, ta.Values())
	assert.Equal(t, []int64{0, 3, 3}, tb.Values())
}

func TestWalk_MatchesReference(t *testing.T) {
	rng := testutil.NewRNG(4711)
	const lo, hi = 10000, 99999

	for _, n := range []int{1, 2, 17, 256, 5000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := rng.Int64s(n, lo, hi)
			b := rng.Clustered(n, lo, hi, 8)

			ta, tb := tables(lo, hi-lo+1, a, b)
			want := testutil.ReferenceDistance(a, b)

			assert.Equal(t, want, Walk(ta, tb))
			assert.Equal(t, want, WalkSparse(ta, tb))
			assert.Equal(t, want, Walk(tb, ta), "walk must be symmetric")
		})
	}
}
