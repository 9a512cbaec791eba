package fusevec

import (
	"iter"

	"github.com/hupe1980/fusevec/stream"
)

// ToSlice returns v's elements as a freshly allocated slice.
func ToSlice[T any](v Vector[T]) []T {
	return stream.Collect(ToStream(v))
}

// Values returns a range-over-func iterator over v's elements. Unlike a
// stream, the result may be ranged over any number of times.
func Values[T any](v Vector[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := v.Len()
		for i := 0; i < n; i++ {
			var x T
			v.AtUnsafe(i, func(e T) { x = e })
			if !yield(x) {
				return
			}
		}
	}
}

// Indexed returns a range-over-func iterator over v's index/element
// pairs. Like Values, it may be ranged over repeatedly.
func Indexed[T any](v Vector[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := v.Len()
		for i := 0; i < n; i++ {
			var x T
			v.AtUnsafe(i, func(e T) { x = e })
			if !yield(i, x) {
				return
			}
		}
	}
}

// Equal reports whether v and w have the same length and equal elements
// in the same order, regardless of representation.
func Equal[T comparable](v, w Vector[T]) bool {
	return EqualFunc(v, w, func(a, b T) bool { return a == b })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[A, B any](v Vector[A], w Vector[B], eq func(A, B) bool) bool {
	if v.Len() != w.Len() {
		return false
	}
	sv, sw := ToStream(v), ToStream(w)
	for {
		a, ok := sv.Next()
		if !ok {
			return true
		}
		b, _ := sw.Next()
		if !eq(a, b) {
			return false
		}
	}
}
