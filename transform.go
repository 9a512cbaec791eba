package fusevec

import "github.com/hupe1980/fusevec/stream"

// Map returns f applied elementwise. The result uses the default
// slice-backed representation; to keep the source representation on a
// same-type transform, use Pipe(v).MapSame(f) or DrainMap with a builder
// of your choosing.
func Map[S, T any](v Vector[S], f func(S) T) Vector[T] {
	return Materialize(stream.Map(ToStream(v), f))
}

// Reverse returns a copy of v in reverse order, keeping v's
// representation.
func Reverse[T any](v Vector[T]) Vector[T] {
	n := v.Len()
	i := n - 1
	s := stream.New(stream.Exact(n), func() (T, bool) {
		var x T
		if i < 0 {
			return x, false
		}
		v.AtUnsafe(i, func(e T) { x = e })
		i--
		return x, true
	})
	return rebuild(v, s)
}

// Backpermute gathers v's elements at the given positions:
// result[k] = v[indices[k]]. Positions may repeat and appear in any
// order. An index outside [0, Len) fails with ErrOutOfRange.
func Backpermute[T any](v Vector[T], indices Vector[int]) (Vector[T], error) {
	n := v.Len()
	b := v.NewBuilder(stream.Exact(indices.Len()))
	s := ToStream(indices)
	for idx, ok := s.Next(); ok; idx, ok = s.Next() {
		if err := checkIndex(idx, n); err != nil {
			return nil, err
		}
		v.AtUnsafe(idx, b.Append)
	}
	return b.Finalize(), nil
}
