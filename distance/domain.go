package distance

import "fmt"

// Domain is the closed integer interval [Min, Max] all input values must lie
// in.
type Domain struct {
	Min int64
	Max int64
}

// DefaultDomain covers 5-digit positive integers.
var DefaultDomain = Domain{Min: 10000, Max: 99999}

// Range returns the number of distinct values in the domain (Max - Min + 1).
// It is non-positive when Min > Max.
func (d Domain) Range() int64 {
	return d.Max - d.Min + 1
}

// Contains reports whether v lies within the domain.
func (d Domain) Contains(v int64) bool {
	return v >= d.Min && v <= d.Max
}

// Validate returns an *InvalidDomainError if the domain is empty or too wide
// to index a bucket table.
func (d Domain) Validate() error {
	r := d.Range()
	if d.Min > d.Max || r <= 0 || r > MaxRange {
		return &InvalidDomainError{Domain: d}
	}
	return nil
}

func (d Domain) String() string {
	return fmt.Sprintf("[%d, %d]", d.Min, d.Max)
}

// MaxRange is the widest domain the bucket kernels accept. Wider domains must
// use KernelSort.
const MaxRange = 1 << 32
