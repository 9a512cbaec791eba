package fusevec

import "github.com/hupe1980/fusevec/stream"

// Slice returns the window [i, i+n) as a zero-copy view of v. Negative
// bounds fail with ErrPrecondition, a window beyond the end with
// ErrOutOfRange.
func Slice[T any](v Vector[T], i, n int) (Vector[T], error) {
	if err := checkBounds(i, n, v.Len()); err != nil {
		return nil, err
	}
	return aliasView(v, i, n), nil
}

// Extract returns a copy of the window [i, i+n), materialized through the
// sequence path in v's representation. Bounds are validated like Slice.
func Extract[T any](v Vector[T], i, n int) (Vector[T], error) {
	if err := checkBounds(i, n, v.Len()); err != nil {
		return nil, err
	}
	return rebuild(v, stream.Take(stream.Drop(ToStream(v), i), n)), nil
}

// Take returns a copy of the first n elements, clamping n to [0, Len].
// It never fails.
func Take[T any](v Vector[T], n int) Vector[T] {
	return rebuild(v, stream.Take(ToStream(v), n))
}

// Drop returns a copy of v without its first n elements, clamping n to
// [0, Len]. It never fails.
func Drop[T any](v Vector[T], n int) Vector[T] {
	return rebuild(v, stream.Drop(ToStream(v), n))
}

// TakeSlice returns the first n elements as a zero-copy view, clamping n.
// When n covers the whole vector the source is returned unchanged.
func TakeSlice[T any](v Vector[T], n int) Vector[T] {
	n = clampLen(n, v.Len())
	if n == v.Len() {
		return v
	}
	return aliasView(v, 0, n)
}

// DropSlice returns everything after the first n elements as a zero-copy
// view, clamping n. When n is zero the source is returned unchanged.
func DropSlice[T any](v Vector[T], n int) Vector[T] {
	n = clampLen(n, v.Len())
	if n == 0 {
		return v
	}
	return aliasView(v, n, v.Len()-n)
}

// SplitAt returns the aliasing pair (TakeSlice(v, i), DropSlice(v, i)).
// It never fails.
func SplitAt[T any](v Vector[T], i int) (Vector[T], Vector[T]) {
	return TakeSlice(v, i), DropSlice(v, i)
}

// Init returns all elements but the last as a zero-copy view, failing
// with ErrEmpty on an empty vector.
func Init[T any](v Vector[T]) (Vector[T], error) {
	n := v.Len()
	if n == 0 {
		return nil, &EmptyError{Op: "init"}
	}
	return aliasView(v, 0, n-1), nil
}

// Tail returns all elements but the first as a zero-copy view, failing
// with ErrEmpty on an empty vector.
func Tail[T any](v Vector[T]) (Vector[T], error) {
	n := v.Len()
	if n == 0 {
		return nil, &EmptyError{Op: "tail"}
	}
	return aliasView(v, 1, n-1), nil
}

// TakeWhile returns a copy of the longest prefix satisfying p.
func TakeWhile[T any](v Vector[T], p func(T) bool) Vector[T] {
	return rebuild(v, stream.TakeWhile(ToStream(v), p))
}

// DropWhile returns a copy of v without the longest prefix satisfying p.
func DropWhile[T any](v Vector[T], p func(T) bool) Vector[T] {
	return rebuild(v, stream.DropWhile(ToStream(v), p))
}

// TakeWhileSlice returns the longest prefix satisfying p as a zero-copy
// view. When p holds for every element the source is returned unchanged
// and nothing is copied.
func TakeWhileSlice[T any](v Vector[T], p func(T) bool) Vector[T] {
	k := boundary(v, p)
	if k == v.Len() {
		return v
	}
	return aliasView(v, 0, k)
}

// DropWhileSlice returns the suffix after the longest prefix satisfying p
// as a zero-copy view. When p holds for no leading element the source is
// returned unchanged.
func DropWhileSlice[T any](v Vector[T], p func(T) bool) Vector[T] {
	k := boundary(v, p)
	if k == 0 {
		return v
	}
	return aliasView(v, k, v.Len()-k)
}

// boundary locates the first element violating p, or Len when p holds
// everywhere.
func boundary[T any](v Vector[T], p func(T) bool) int {
	k := stream.FindIndex(ToStream(v), func(x T) bool { return !p(x) })
	if k < 0 {
		return v.Len()
	}
	return k
}

// aliasView wraps SliceUnsafe with observability; bounds must already be
// validated.
func aliasView[T any](v Vector[T], i, n int) Vector[T] {
	logger().LogAlias(i, n)
	stats().RecordAlias(n)
	return v.SliceUnsafe(i, n)
}

func clampLen(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
