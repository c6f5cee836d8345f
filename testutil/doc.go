// Package testutil provides testing utilities for sortdist.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for integer columns and a ground-truth
// distance computed with a general-purpose sort.
//
// # Random Columns
//
//	rng := testutil.NewRNG(seed)
//	a := rng.Int64s(1000, 10000, 99999)        // uniform
//	b := rng.Clustered(1000, 10000, 99999, 16) // many duplicates
//	c := rng.Skewed(1000, 10000, 99999, 1.5)   // power law
//
// # Ground Truth
//
//	want := testutil.ReferenceDistance(a, b)
package testutil
