package stream

import "iter"

// Stream is a lazy, single-pass element producer.
//
// A Stream is consumed by calling Next until it reports exhaustion. Once
// drained, or partially drained and abandoned, it must not be reused.
type Stream[T any] struct {
	next func() (T, bool)
	hint SizeHint
}

// New creates a Stream from a pull function and a size hint.
//
// next returns the next element and true, or the zero value and false once
// the stream is exhausted. After reporting false it must keep reporting
// false.
func New[T any](hint SizeHint, next func() (T, bool)) Stream[T] {
	return Stream[T]{next: next, hint: hint}
}

// Next advances the stream by one element.
func (s Stream[T]) Next() (T, bool) {
	return s.next()
}

// Hint returns the stream's cardinality hint.
func (s Stream[T]) Hint() SizeHint {
	return s.hint
}

// WithHint returns the stream with its hint replaced. Useful when the
// caller knows more about the length than the producer does.
func (s Stream[T]) WithHint(hint SizeHint) Stream[T] {
	s.hint = hint
	return s
}

// Empty returns a stream that yields nothing.
func Empty[T any]() Stream[T] {
	return New(Exact(0), func() (T, bool) {
		var zero T
		return zero, false
	})
}

// Of returns a stream over the given elements.
func Of[T any](xs ...T) Stream[T] {
	return FromSlice(xs)
}

// FromSlice returns a stream over xs. The slice is not copied; it must not
// be mutated while the stream is live.
func FromSlice[T any](xs []T) Stream[T] {
	i := 0
	return New(Exact(len(xs)), func() (T, bool) {
		if i >= len(xs) {
			var zero T
			return zero, false
		}
		x := xs[i]
		i++
		return x, true
	})
}

// Generate returns a stream of n elements where element i is f(i).
// n < 0 is treated as zero.
func Generate[T any](n int, f func(int) T) Stream[T] {
	if n < 0 {
		n = 0
	}
	i := 0
	return New(Exact(n), func() (T, bool) {
		if i >= n {
			var zero T
			return zero, false
		}
		x := f(i)
		i++
		return x, true
	})
}

// Replicate returns a stream of n copies of x. n < 0 is treated as zero.
func Replicate[T any](n int, x T) Stream[T] {
	if n < 0 {
		n = 0
	}
	left := n
	return New(Exact(n), func() (T, bool) {
		if left <= 0 {
			var zero T
			return zero, false
		}
		left--
		return x, true
	})
}

// FromSeq adapts a range-over-func sequence into a stream with unknown
// size. The sequence is pulled lazily and released once exhausted.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	next, stop := iter.Pull(seq)
	return New(Unknown(), func() (T, bool) {
		x, ok := next()
		if !ok {
			stop()
		}
		return x, ok
	})
}

// Seq adapts the stream into a range-over-func sequence. Ranging over the
// result consumes the stream; it cannot be ranged twice.
func (s Stream[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x, ok := s.next(); ok; x, ok = s.next() {
			if !yield(x) {
				return
			}
		}
	}
}
