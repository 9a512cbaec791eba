package stream

// Map returns a stream applying f to every element of s.
func Map[S, T any](s Stream[S], f func(S) T) Stream[T] {
	return New(s.hint, func() (T, bool) {
		x, ok := s.next()
		if !ok {
			var zero T
			return zero, false
		}
		return f(x), true
	})
}

// Filter returns a stream keeping only the elements of s satisfying p.
// The hint loses exactness but keeps its upper bound.
func Filter[T any](s Stream[T], p func(T) bool) Stream[T] {
	return New(s.hint.Relaxed(), func() (T, bool) {
		for {
			x, ok := s.next()
			if !ok {
				var zero T
				return zero, false
			}
			if p(x) {
				return x, true
			}
		}
	})
}

// Take limits s to its first n elements. n < 0 is treated as zero.
func Take[T any](s Stream[T], n int) Stream[T] {
	if n < 0 {
		n = 0
	}
	left := n
	return New(s.hint.Cap(n), func() (T, bool) {
		if left <= 0 {
			var zero T
			return zero, false
		}
		x, ok := s.next()
		if !ok {
			left = 0
			var zero T
			return zero, false
		}
		left--
		return x, true
	})
}

// Drop discards the first n elements of s. n < 0 is treated as zero.
func Drop[T any](s Stream[T], n int) Stream[T] {
	if n < 0 {
		n = 0
	}
	pending := n
	return New(s.hint.Sub(n), func() (T, bool) {
		for pending > 0 {
			pending--
			if _, ok := s.next(); !ok {
				pending = 0
				var zero T
				return zero, false
			}
		}
		return s.next()
	})
}

// TakeWhile yields elements of s while p holds, then stops for good.
func TakeWhile[T any](s Stream[T], p func(T) bool) Stream[T] {
	done := false
	return New(s.hint.Relaxed(), func() (T, bool) {
		var zero T
		if done {
			return zero, false
		}
		x, ok := s.next()
		if !ok || !p(x) {
			done = true
			return zero, false
		}
		return x, true
	})
}

// DropWhile discards the leading run of elements satisfying p and yields
// everything after it.
func DropWhile[T any](s Stream[T], p func(T) bool) Stream[T] {
	dropping := true
	return New(s.hint.Relaxed(), func() (T, bool) {
		for {
			x, ok := s.next()
			if !ok {
				var zero T
				return zero, false
			}
			if dropping {
				if p(x) {
					continue
				}
				dropping = false
			}
			return x, true
		}
	})
}

// Concat yields all elements of the given streams in order.
func Concat[T any](ss ...Stream[T]) Stream[T] {
	hint := Exact(0)
	for _, s := range ss {
		hint = hint.Add(s.Hint())
	}
	i := 0
	return New(hint, func() (T, bool) {
		for i < len(ss) {
			if x, ok := ss[i].next(); ok {
				return x, true
			}
			i++
		}
		var zero T
		return zero, false
	})
}

// ZipWith pairs the two streams elementwise through f, stopping with the
// shorter input.
func ZipWith[A, B, C any](a Stream[A], b Stream[B], f func(A, B) C) Stream[C] {
	return New(a.hint.Min(b.hint), func() (C, bool) {
		var zero C
		x, ok := a.next()
		if !ok {
			return zero, false
		}
		y, ok := b.next()
		if !ok {
			return zero, false
		}
		return f(x, y), true
	})
}
