package fusevec

import (
	"cmp"

	"github.com/hupe1980/fusevec/stream"
)

// Foldl reduces v left to right. The accumulator is evaluated at every
// step (Go is strict), so memory stays bounded by the accumulator itself
// however long the input is.
func Foldl[T, A any](v Vector[T], init A, f func(A, T) A) A {
	return stream.Fold(ToStream(v), init, f)
}

// Foldl1 reduces a non-empty vector left to right using the first element
// as the initial accumulator. Fails with ErrEmpty on an empty vector.
func Foldl1[T any](v Vector[T], f func(T, T) T) (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, &EmptyError{Op: "foldl1"}
	}
	s := ToStream(v)
	acc, _ := s.Next()
	for x, ok := s.Next(); ok; x, ok = s.Next() {
		acc = f(acc, x)
	}
	return acc, nil
}

// Foldr reduces v right to left.
func Foldr[T, A any](v Vector[T], init A, f func(T, A) A) A {
	acc := init
	for i := v.Len() - 1; i >= 0; i-- {
		v.AtUnsafe(i, func(x T) { acc = f(x, acc) })
	}
	return acc
}

// Foldr1 reduces a non-empty vector right to left using the last element
// as the initial accumulator. Fails with ErrEmpty on an empty vector.
func Foldr1[T any](v Vector[T], f func(T, T) T) (T, error) {
	n := v.Len()
	if n == 0 {
		var zero T
		return zero, &EmptyError{Op: "foldr1"}
	}
	var acc T
	v.AtUnsafe(n-1, func(x T) { acc = x })
	for i := n - 2; i >= 0; i-- {
		v.AtUnsafe(i, func(x T) { acc = f(x, acc) })
	}
	return acc, nil
}

// Maximum returns the largest element. Fails with ErrEmpty on an empty
// vector.
func Maximum[T cmp.Ordered](v Vector[T]) (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, &EmptyError{Op: "maximum"}
	}
	return Foldl1(v, func(a, b T) T { return max(a, b) })
}

// Minimum returns the smallest element. Fails with ErrEmpty on an empty
// vector.
func Minimum[T cmp.Ordered](v Vector[T]) (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, &EmptyError{Op: "minimum"}
	}
	return Foldl1(v, func(a, b T) T { return min(a, b) })
}

// CountBy returns the number of elements satisfying p.
func CountBy[T any](v Vector[T], p func(T) bool) int {
	return Foldl(v, 0, func(n int, x T) int {
		if p(x) {
			n++
		}
		return n
	})
}

// Any reports whether some element satisfies p, short-circuiting at the
// first match.
func Any[T any](v Vector[T], p func(T) bool) bool {
	return FindIndex(v, p) >= 0
}

// All reports whether every element satisfies p, short-circuiting at the
// first violation.
func All[T any](v Vector[T], p func(T) bool) bool {
	return FindIndex(v, func(x T) bool { return !p(x) }) < 0
}
