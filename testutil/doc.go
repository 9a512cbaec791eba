// Package testutil provides testing utilities for fusevec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded thread-safe random source, bulk element
// generators, and plain-slice reference implementations of the vector
// combinators used as ground truth in property tests.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Ints(1000, 100) // 1000 values in [0, 100)
//
// # Reference Models
//
//	want := testutil.FilterSlice(xs, even)
//	got := fusevec.ToSlice(fusevec.Filter(v, even))
package testutil
