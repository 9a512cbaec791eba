package fusevec

import "github.com/hupe1980/fusevec/stream"

// Vector is the capability contract every representation must satisfy.
// Four primitives give a representation the whole combinator layer:
// length, zero-copy slicing, continuation element access and builder
// construction.
//
// Implementations must be immutable: no method may mutate the receiver,
// and finalized vectors are safe for concurrent readers. The Unsafe
// methods perform no validation; each has a checked package-level wrapper
// that callers should normally use instead.
type Vector[T any] interface {
	// Len returns the number of elements. O(1).
	Len() int

	// SliceUnsafe returns a view of n elements starting at i without
	// checking bounds. The view aliases the receiver's storage; no copy
	// is made. Callers must guarantee 0 <= i, 0 <= n and i+n <= Len.
	SliceUnsafe(i, n int) Vector[T]

	// AtUnsafe applies use to the element at i without checking bounds.
	// The element is handed to a continuation instead of being returned,
	// so element-copy loops never retain the receiver's storage through a
	// returned reference. Callers must guarantee 0 <= i < Len.
	AtUnsafe(i int, use func(T))

	// NewBuilder returns an empty builder producing this vector's
	// representation, preallocated from hint.
	NewBuilder(hint stream.SizeHint) Builder[T]
}

// Builder is the mutable scratch a vector is materialized through. A
// builder is exclusively owned by its creator until Finalize and must not
// be touched afterwards, so a partially constructed vector is never
// observable.
type Builder[T any] interface {
	// Append adds x after the last appended element.
	Append(x T)

	// Set overwrites the element at i within the appended prefix, without
	// checking bounds. Callers must guarantee 0 <= i < Len.
	Set(i int, x T)

	// Len returns the number of elements appended so far.
	Len() int

	// Finalize returns the immutable vector holding the appended
	// elements. The builder's storage now belongs to the returned vector;
	// the builder must not be used again.
	Finalize() Vector[T]
}

// IndexedValue names one element overwrite for Update and DrainUpdate.
type IndexedValue[T any] struct {
	Index int
	Value T
}
