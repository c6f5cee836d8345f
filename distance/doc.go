// Package distance computes the sorted L1 distance between two integer
// columns.
//
// Given two sequences A and B of equal length N, the distance is
//
//	sum over k in [0, N) of |sorted(A)[k] - sorted(B)[k]|
//
// which is the Wasserstein-1 distance between the two empirical
// distributions. Pairing the k-th smallest values is the L1-optimal transport
// plan on a line, so no search over pairings is needed. Only the sort is.
//
// # Kernels
//
//   - KernelCounting: counting buckets over a bounded Domain. O(N + RANGE)
//     time, O(RANGE) space. The primary path.
//   - KernelSparse: the same buckets, but the pairing walk only visits
//     occupied values (Roaring bitmaps). Use it when N is far below RANGE.
//   - KernelSort: general comparison sort and zip. O(N log N). The documented
//     fallback for domains too wide to allocate buckets for.
//
// The counting kernel beats a comparison sort once RANGE is small relative
// to N log N. For tiny N it still pays for two RANGE-sized tables, so
// callers pick the kernel for their sizes.
//
// # Usage
//
//	d, err := distance.Counting(left, right, distance.DefaultDomain)
//
//	fn, _ := distance.Provider(distance.KernelSparse)
//	d, err = fn(left, right, distance.DefaultDomain)
//
// # Triangle Inequality
//
// The result is a metric between multisets of equal size, but callers should
// not rely on the triangle inequality between arbitrary index-paired columns:
// it holds for the sorted pairing computed here, not for the raw input order.
// Tests assert symmetry, non-negativity and zero on permutations only.
package distance
