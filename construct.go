package fusevec

import (
	"iter"

	"github.com/hupe1980/fusevec/stream"
)

// Empty returns the empty vector in the default representation.
func Empty[T any]() Vector[T] {
	return sliceVector[T]{}
}

// Singleton returns a one-element vector.
func Singleton[T any](x T) Vector[T] {
	return sliceVector[T]{data: []T{x}}
}

// Of returns a vector holding the given elements.
func Of[T any](xs ...T) Vector[T] {
	return FromSlice(xs)
}

// FromSlice returns a vector holding a copy of xs.
func FromSlice[T any](xs []T) Vector[T] {
	data := make([]T, len(xs))
	copy(data, xs)
	return sliceVector[T]{data: data}
}

// WrapSlice returns a vector aliasing xs without copying. The caller must
// treat xs as immutable afterwards; mutating it corrupts the result and
// every view derived from it.
func WrapSlice[T any](xs []T) Vector[T] {
	return sliceVector[T]{data: xs}
}

// FromSeq materializes a range-over-func sequence into a vector.
func FromSeq[T any](seq iter.Seq[T]) Vector[T] {
	return Materialize(stream.FromSeq(seq))
}

// Replicate returns a vector of n copies of x. n < 0 yields the empty
// vector.
func Replicate[T any](n int, x T) Vector[T] {
	return Materialize(stream.Replicate(n, x))
}

// Generate returns a vector of n elements where element i is f(i). n < 0
// yields the empty vector.
func Generate[T any](n int, f func(int) T) Vector[T] {
	return Materialize(stream.Generate(n, f))
}

// Cons prepends x to v, keeping v's representation.
func Cons[T any](x T, v Vector[T]) Vector[T] {
	return rebuild(v, stream.Concat(stream.Of(x), ToStream(v)))
}

// Snoc appends x to v, keeping v's representation.
func Snoc[T any](v Vector[T], x T) Vector[T] {
	return rebuild(v, stream.Concat(ToStream(v), stream.Of(x)))
}

// Concat returns the concatenation of v and w in v's representation.
func Concat[T any](v, w Vector[T]) Vector[T] {
	return rebuild(v, stream.Concat(ToStream(v), ToStream(w)))
}
