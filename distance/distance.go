package distance

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hupe1980/sortdist/internal/bucket"
)

// Counting returns the sorted L1 distance between a and b using counting
// buckets over d.
//
// It allocates two tables of d.Range() counters, tallies both columns while
// checking every value against d, and pairs the units with a single forward
// walk. Cost: O(N + RANGE) time, O(RANGE) space. The inputs are not modified.
//
// Errors: *LengthMismatchError or *InvalidDomainError (both match
// ErrInvalidInput), *OutOfDomainError (matches ErrOutOfDomain).
func Counting(a, b []int64, d Domain) (int64, error) {
	ta, tb, err := fill(a, b, d)
	if err != nil {
		return 0, err
	}
	return bucket.Walk(ta, tb), nil
}

// Sparse returns the same result as Counting, but the pairing walk visits
// only the occupied buckets. Table allocation is still O(RANGE).
func Sparse(a, b []int64, d Domain) (int64, error) {
	ta, tb, err := fill(a, b, d)
	if err != nil {
		return 0, err
	}
	return bucket.WalkSparse(ta, tb), nil
}

// SortZip returns the sorted L1 distance by sorting copies of a and b and
// summing the index-aligned differences. O(N log N) time, O(N) space.
//
// This is the fallback for domains too wide for bucket tables. d is only used
// to check the values; for unbounded input pass
// Domain{Min: math.MinInt64, Max: math.MaxInt64}. A distance that does not
// fit in an int64 is reported as *OverflowError (matches ErrInvalidInput).
func SortZip(a, b []int64, d Domain) (int64, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{Left: len(a), Right: len(b)}
	}
	if d.Min > d.Max {
		return 0, &InvalidDomainError{Domain: d}
	}
	if err := checkValues("left", a, d); err != nil {
		return 0, err
	}
	if err := checkValues("right", b, d); err != nil {
		return 0, err
	}

	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)

	var total uint64
	for k := range sa {
		diff := absDiff64(sa[k], sb[k])
		if diff > math.MaxInt64-total {
			return 0, &OverflowError{Index: k}
		}
		total += diff
	}
	return int64(total), nil
}

// absDiff64 returns |x - y| without overflow.
func absDiff64(x, y int64) uint64 {
	if x < y {
		x, y = y, x
	}
	return uint64(x) - uint64(y)
}

func fill(a, b []int64, d Domain) (*bucket.Table, *bucket.Table, error) {
	if len(a) != len(b) {
		return nil, nil, &LengthMismatchError{Left: len(a), Right: len(b)}
	}
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	size := int(d.Range())
	ta := bucket.New(d.Min, size)
	if i, ok := ta.Fill(a); !ok {
		return nil, nil, &OutOfDomainError{Column: "left", Index: i, Value: a[i], Domain: d}
	}
	tb := bucket.New(d.Min, size)
	if i, ok := tb.Fill(b); !ok {
		return nil, nil, &OutOfDomainError{Column: "right", Index: i, Value: b[i], Domain: d}
	}
	return ta, tb, nil
}

func checkValues(column string, values []int64, d Domain) error {
	for i, v := range values {
		if !d.Contains(v) {
			return &OutOfDomainError{Column: column, Index: i, Value: v, Domain: d}
		}
	}
	return nil
}

// TableBytes returns the memory the bucket kernels allocate for d: two tables
// of d.Range() counters. It returns 0 for invalid domains.
func TableBytes(d Domain) int64 {
	if d.Validate() != nil {
		return 0
	}
	return 2 * bucket.Bytes(int(d.Range()))
}

// Kernel selects the algorithm used to compute the distance.
type Kernel int

const (
	KernelCounting Kernel = iota
	KernelSparse
	KernelSort
)

func (k Kernel) String() string {
	switch k {
	case KernelCounting:
		return "counting"
	case KernelSparse:
		return "sparse"
	case KernelSort:
		return "sort"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Buckets reports whether the kernel allocates bucket tables.
func (k Kernel) Buckets() bool {
	return k == KernelCounting || k == KernelSparse
}

// ParseKernel returns the kernel with the given name (case-insensitive).
func ParseKernel(name string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "counting", "":
		return KernelCounting, nil
	case "sparse":
		return KernelSparse, nil
	case "sort":
		return KernelSort, nil
	default:
		return 0, fmt.Errorf("unknown kernel %q", name)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []int64, d Domain) (int64, error)

// Provider returns the distance function for the given kernel.
func Provider(k Kernel) (Func, error) {
	switch k {
	case KernelCounting:
		return Counting, nil
	case KernelSparse:
		return Sparse, nil
	case KernelSort:
		return SortZip, nil
	default:
		return nil, fmt.Errorf("unsupported kernel: %v", k)
	}
}
