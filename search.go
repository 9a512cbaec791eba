package fusevec

import "github.com/hupe1980/fusevec/stream"

// FindIndex returns the position of the first element satisfying p, or -1
// when no element does. The scan short-circuits at the first match
// without materializing anything.
func FindIndex[T any](v Vector[T], p func(T) bool) int {
	idx := stream.FindIndex(ToStream(v), p)
	scanned := idx + 1
	if idx < 0 {
		scanned = v.Len()
	}
	logger().LogScan("findIndex", scanned, idx >= 0)
	stats().RecordScan(scanned, idx >= 0)
	return idx
}

// Find returns the first element satisfying p.
func Find[T any](v Vector[T], p func(T) bool) (T, bool) {
	idx := FindIndex(v, p)
	if idx < 0 {
		var zero T
		return zero, false
	}
	var out T
	v.AtUnsafe(idx, func(x T) { out = x })
	return out, true
}

// ElemIndex returns the position of the first element equal to x, or -1.
func ElemIndex[T comparable](v Vector[T], x T) int {
	return FindIndex(v, func(y T) bool { return y == x })
}

// Elem reports whether x occurs in v.
func Elem[T comparable](v Vector[T], x T) bool {
	return ElemIndex(v, x) >= 0
}

// NotElem reports whether x does not occur in v.
func NotElem[T comparable](v Vector[T], x T) bool {
	return !Elem(v, x)
}

// FindIndices returns the positions of every element satisfying p as a
// compressed index set. It fails only when a position overflows the
// 32-bit index space of the set.
func FindIndices[T any](v Vector[T], p func(T) bool) (*IndexSet, error) {
	set := NewIndexSet()
	i := 0
	s := ToStream(v)
	for x, ok := s.Next(); ok; x, ok = s.Next() {
		if p(x) {
			if err := set.Add(i); err != nil {
				return nil, err
			}
		}
		i++
	}
	return set, nil
}

// Select gathers the elements of v at the positions in set, ascending, in
// v's representation. A position at or beyond Len fails with
// ErrOutOfRange.
func Select[T any](v Vector[T], set *IndexSet) (Vector[T], error) {
	n := v.Len()
	b := v.NewBuilder(stream.Bounded(n))
	for i := range set.Iterator() {
		if err := checkIndex(i, n); err != nil {
			return nil, err
		}
		v.AtUnsafe(i, b.Append)
	}
	return b.Finalize(), nil
}
