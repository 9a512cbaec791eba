package stream

// Collect drains s into a freshly allocated slice, presized from the hint.
func Collect[T any](s Stream[T]) []T {
	capacity := 0
	if n, ok := s.hint.Upper(); ok {
		capacity = n
	}
	out := make([]T, 0, capacity)
	for x, ok := s.next(); ok; x, ok = s.next() {
		out = append(out, x)
	}
	return out
}

// Count returns the number of elements s yields. When s carries an exact
// hint the count is returned without draining the stream.
func Count[T any](s Stream[T]) int {
	if n, ok := s.hint.Size(); ok {
		return n
	}
	n := 0
	for _, ok := s.next(); ok; _, ok = s.next() {
		n++
	}
	return n
}

// Nth returns element i of s, advancing past it. It reports false when s
// has i or fewer elements, or when i is negative.
func Nth[T any](s Stream[T], i int) (T, bool) {
	var zero T
	if i < 0 {
		return zero, false
	}
	for ; i > 0; i-- {
		if _, ok := s.next(); !ok {
			return zero, false
		}
	}
	return s.next()
}

// Fold drains s into an accumulator. The accumulator is evaluated at every
// step, so memory stays bounded by the accumulator itself.
func Fold[T, A any](s Stream[T], init A, f func(A, T) A) A {
	acc := init
	for x, ok := s.next(); ok; x, ok = s.next() {
		acc = f(acc, x)
	}
	return acc
}

// Find returns the first element satisfying p, stopping the scan at the
// match.
func Find[T any](s Stream[T], p func(T) bool) (T, bool) {
	for x, ok := s.next(); ok; x, ok = s.next() {
		if p(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the position of the first element satisfying p, or -1
// when no element does.
func FindIndex[T any](s Stream[T], p func(T) bool) int {
	i := 0
	for x, ok := s.next(); ok; x, ok = s.next() {
		if p(x) {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether s yields an element equal to x, stopping the
// scan at the first match.
func Contains[T comparable](s Stream[T], x T) bool {
	_, ok := Find(s, func(y T) bool { return y == x })
	return ok
}
