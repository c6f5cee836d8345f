package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int64s returns n values drawn uniformly from the closed range [lo, hi].
func (r *RNG) Int64s(n int, lo, hi int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := hi - lo + 1
	out := make([]int64, n)
	for i := range out {
		out[i] = lo + r.rand.Int63n(span)
	}
	return out
}

// Clustered returns n values in [lo, hi] drawn from only `distinct` different
// values, which gives a high duplicate density.
func (r *RNG) Clustered(n int, lo, hi int64, distinct int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if distinct < 1 {
		distinct = 1
	}
	span := hi - lo + 1
	pool := make([]int64, distinct)
	for i := range pool {
		pool[i] = lo + r.rand.Int63n(span)
	}

	out := make([]int64, n)
	for i := range out {
		out[i] = pool[r.rand.Intn(distinct)]
	}
	return out
}

// Skewed returns n values in [lo, hi] following a Zipf distribution anchored
// at lo. s > 1 is the skew; larger values pile more mass onto small values.
func (r *RNG) Skewed(n int, lo, hi int64, s float64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	z := rand.NewZipf(r.rand, s, 1, uint64(hi-lo))
	out := make([]int64, n)
	for i := range out {
		out[i] = lo + int64(z.Uint64())
	}
	return out
}

// Shuffled returns a shuffled copy of values.
func (r *RNG) Shuffled(values []int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(values)
	r.rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// ReferenceDistance sorts copies of a and b with slices.Sort and sums the
// absolute differences of the index-aligned pairs. It panics if the lengths
// differ.
func ReferenceDistance(a, b []int64) int64 {
	if len(a) != len(b) {
		panic("testutil: length mismatch")
	}

	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)

	var total int64
	for k := range sa {
		d := sa[k] - sb[k]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}
