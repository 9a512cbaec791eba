// Package chunked provides a segmented-storage vector representation.
//
// Elements live in fixed-size segments addressed by two-level indexing,
// so building a large vector never reallocates or copies what has
// already been appended, and zero-copy views share segments with their
// source. Chunked vectors implement the fusevec capability contract;
// every fusevec combinator works on them unchanged.
package chunked
