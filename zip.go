package fusevec

import "github.com/hupe1980/fusevec/stream"

// Pair groups two zipped elements.
type Pair[A, B any] struct {
	First  A
	Second B
}

// ZipWith combines v and w elementwise through f, stopping at the shorter
// input. The result uses the default representation.
func ZipWith[A, B, C any](v Vector[A], w Vector[B], f func(A, B) C) Vector[C] {
	return Materialize(stream.ZipWith(ToStream(v), ToStream(w), f))
}

// Zip pairs v and w elementwise, stopping at the shorter input.
func Zip[A, B any](v Vector[A], w Vector[B]) Vector[Pair[A, B]] {
	return ZipWith(v, w, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// Unzip splits a vector of pairs into its component vectors in a single
// pass.
func Unzip[A, B any](v Vector[Pair[A, B]]) (Vector[A], Vector[B]) {
	hint := stream.Exact(v.Len())
	ba := NewBuilder[A](hint)
	bb := NewBuilder[B](hint)
	s := ToStream(v)
	for p, ok := s.Next(); ok; p, ok = s.Next() {
		ba.Append(p.First)
		bb.Append(p.Second)
	}
	return ba.Finalize(), bb.Finalize()
}
