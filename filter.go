package fusevec

import "github.com/hupe1980/fusevec/stream"

// Filter returns a copy of v keeping only the elements satisfying p,
// order preserved, in v's representation.
func Filter[T any](v Vector[T], p func(T) bool) Vector[T] {
	return rebuild(v, stream.Filter(ToStream(v), p))
}

// Partition splits v into the elements satisfying p and those that do
// not, both order preserving, in a single pass.
func Partition[T any](v Vector[T], p func(T) bool) (Vector[T], Vector[T]) {
	hint := stream.Bounded(v.Len())
	yes := v.NewBuilder(hint)
	no := v.NewBuilder(hint)
	s := ToStream(v)
	for x, ok := s.Next(); ok; x, ok = s.Next() {
		if p(x) {
			yes.Append(x)
		} else {
			no.Append(x)
		}
	}
	return yes.Finalize(), no.Finalize()
}
