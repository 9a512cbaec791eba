// Package fusevec provides immutable, representation-agnostic vectors
// with single-pass operation fusion.
//
// Fusevec separates what a vector stores from how it is stored:
//
//   - A four-primitive capability contract (Vector): length, zero-copy
//     slicing, continuation element access and builder construction.
//     Implement it and every combinator works unchanged.
//   - A lazy pull-stream layer (package stream) every combinator is
//     written against, so chained operations run as one pass with no
//     intermediate vectors.
//   - Generic combinators for construction, access, slicing, update,
//     map/zip, filter, search, fold and conversion.
//
// # Quick Start
//
//	v := fusevec.Of(1, 2, 3, 4, 5)
//	odd := fusevec.Filter(v, func(x int) bool { return x%2 == 1 })
//	sum := fusevec.Foldl(odd, 0, func(a, x int) int { return a + x })
//
// Fluent chains stay single-pass and keep the source representation:
//
//	out := fusevec.Pipe(v).
//	    Filter(func(x int) bool { return x > 1 }).
//	    MapSame(func(x int) int { return x * x }).
//	    Take(2).
//	    Vector()
//
// # Representations
//
// The default representation is a contiguous slice. Package chunked
// provides segmented storage for large vectors. Same-element-type
// combinators rebuild through the source vector's builder and keep its
// representation; type-changing Map and the sourceless constructors
// target the default representation.
//
// # Checked and Unsafe Access
//
// Checked operations return errors classified by the sentinels
// ErrOutOfRange, ErrEmpty and ErrPrecondition; the typed errors
// (OutOfRangeError, BoundsError, EmptyError) carry the offending values
// and unwrap to their sentinel. The Unsafe-suffixed contract methods skip
// validation entirely and are caller-responsibility-only.
//
// # Index Sets
//
// FindIndices collects matching positions into an IndexSet backed by a
// Roaring Bitmap; Select gathers elements back out of one. Sets compose
// with And/Or before selecting.
//
// # Observability
//
// SetLogger installs a structured slog-based Logger (noop by default);
// SetStatsCollector counts materializations, aliasing views and search
// scans. Both are package-level and safe for concurrent use.
package fusevec
