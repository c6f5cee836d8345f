package distance

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/sortdist/testutil"
)

func BenchmarkKernels(b *testing.B) {
	rng := testutil.NewRNG(4711)
	d := DefaultDomain

	for _, n := range []int{1_000, 100_000, 1_000_000} {
		left := rng.Int64s(n, d.Min, d.Max)
		right := rng.Int64s(n, d.Min, d.Max)

		for _, k := range kernels {
			fn, _ := Provider(k)
			b.Run(fmt.Sprintf("%s/n=%d", k, n), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					if _, err := fn(left, right, d); err != nil {
						b.Fatal(err)
					}
				}
			})
		}

		b.Run(fmt.Sprintf("parallel/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := CountingParallel(context.Background(), left, right, d, 4); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
