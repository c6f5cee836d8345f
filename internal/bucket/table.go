package bucket

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Table is a dense counting table over the domain [min, min+size).
type Table struct {
	min    int64
	counts []uint64
	total  uint64
}

// New returns a zeroed table for the domain [lo, lo+size).
func New(lo int64, size int) *Table {
	return &Table{
		min:    lo,
		counts: make([]uint64, size),
	}
}

// Bytes returns the heap footprint of a table with size buckets.
func Bytes(size int) int64 {
	return int64(size) * 8
}

// Min returns the value represented by index 0.
func (t *Table) Min() int64 { return t.min }

// Size returns the number of buckets.
func (t *Table) Size() int { return len(t.counts) }

// Total returns the number of units tallied so far.
func (t *Table) Total() uint64 { return t.total }

// Count returns the count stored for index i.
func (t *Table) Count(i int) uint64 { return t.counts[i] }

// Fill tallies every value into the table.
//
// Values are checked against the domain while they are counted. On the first
// value outside the domain Fill stops and returns its position and false;
// counts added before that point are kept, so callers should discard the
// table on failure.
func (t *Table) Fill(values []int64) (int, bool) {
	size := uint64(len(t.counts))
	for i, v := range values {
		// A single unsigned compare covers both v < min and v >= min+size.
		idx := uint64(v - t.min)
		if idx >= size {
			return i, false
		}
		t.counts[idx]++
	}
	t.total += uint64(len(values))
	return -1, true
}

// Merge adds the counts of other into t. Both tables must cover the same
// domain.
func (t *Table) Merge(other *Table) {
	if other.min != t.min || len(other.counts) != len(t.counts) {
		panic("bucket: merge of tables with different domains")
	}
	for i, c := range other.counts {
		t.counts[i] += c
	}
	t.total += other.total
}

// Occupancy returns a bitmap of the indexes holding a non-zero count.
func (t *Table) Occupancy() *roaring.Bitmap {
	rb := roaring.New()
	for i, c := range t.counts {
		if c != 0 {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// Values expands the table back into an ascending sequence.
func (t *Table) Values() []int64 {
	out := make([]int64, 0, t.total)
	for i, c := range t.counts {
		v := t.min + int64(i)
		for range c {
			out = append(out, v)
		}
	}
	return out
}
