package fusevec

import "github.com/hupe1980/fusevec/stream"

// ToStream returns a lazy single-pass view of v carrying an exact size
// hint. The stream reads v on demand through the contract's continuation
// access; creating it allocates nothing but the closure.
func ToStream[T any](v Vector[T]) stream.Stream[T] {
	n := v.Len()
	i := 0
	return stream.New(stream.Exact(n), func() (T, bool) {
		var x T
		if i >= n {
			return x, false
		}
		v.AtUnsafe(i, func(e T) { x = e })
		i++
		return x, true
	})
}

// Materialize drains s into the default slice-backed representation.
func Materialize[T any](s stream.Stream[T]) Vector[T] {
	return MaterializeInto(NewBuilder[T](s.Hint()), s)
}

// MaterializeInto drains s into b and finalizes it. This is the only
// materialization path; every producing combinator funnels through it.
func MaterializeInto[T any](b Builder[T], s stream.Stream[T]) Vector[T] {
	hint := s.Hint()
	n := drainInto(b, s)
	_, exact := hint.Size()
	logger().LogMaterialize(n, hint)
	stats().RecordMaterialize(n, exact)
	return b.Finalize()
}

func drainInto[T any](b Builder[T], s stream.Stream[T]) int {
	n := 0
	for x, ok := s.Next(); ok; x, ok = s.Next() {
		b.Append(x)
		n++
	}
	return n
}

// DrainMap drains s into b through f in one pass, without the intermediate
// vector that Materialize(stream.Map(s, f)) composed with a copy would
// build.
func DrainMap[S, T any](b Builder[T], f func(S) T, s stream.Stream[S]) Vector[T] {
	return MaterializeInto(b, stream.Map(s, f))
}

// DrainUpdate applies element overwrites to the appended prefix of b. For
// duplicate indices the last pair in input order wins. An index outside
// [0, b.Len()) fails with ErrOutOfRange and leaves b unchanged.
func DrainUpdate[T any](b Builder[T], pairs []IndexedValue[T]) error {
	n := b.Len()
	for _, p := range pairs {
		if err := checkIndex(p.Index, n); err != nil {
			return err
		}
	}
	for _, p := range pairs {
		b.Set(p.Index, p.Value)
	}
	return nil
}

// rebuild materializes s through v's own builder, so the result keeps v's
// representation.
func rebuild[T any](v Vector[T], s stream.Stream[T]) Vector[T] {
	return MaterializeInto(v.NewBuilder(s.Hint()), s)
}
