// Package bucket implements the counting tables behind the bounded distance
// kernels.
//
// A Table holds one non-negative count per value of a closed integer domain
// [min, min+size). Index i represents the value min+i. Tables are transient:
// the distance kernels allocate two per call and drop them on return.
//
// # Pairing Walk
//
// Walk and WalkSparse pair the units of two tables in ascending value order,
// which is the same pairing as sorting both sequences and zipping them by
// index. The cursor over the second table only ever moves forward, so the
// dense walk touches every bucket at most twice: O(size) regardless of how
// the counts are distributed.
//
//	a := bucket.New(10000, 90000)
//	b := bucket.New(10000, 90000)
//	a.Fill(left)
//	b.Fill(right)
//	total := bucket.Walk(a, b)
//
// # Shards
//
// Population is commutative under addition. Callers that fill tables on
// several goroutines give each goroutine a private table and Merge them
// before walking.
package bucket
