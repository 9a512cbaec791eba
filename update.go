package fusevec

import "github.com/hupe1980/fusevec/stream"

// Update returns a copy of v with the given element overwrites applied,
// keeping v's representation. For duplicate indices the last pair in
// input order wins. An index outside [0, Len) fails with ErrOutOfRange.
func Update[T any](v Vector[T], pairs []IndexedValue[T]) (Vector[T], error) {
	n := v.Len()
	b := v.NewBuilder(stream.Exact(n))
	drainInto(b, ToStream(v))
	if err := DrainUpdate(b, pairs); err != nil {
		return nil, err
	}
	logger().LogMaterialize(n, stream.Exact(n))
	stats().RecordMaterialize(n, true)
	return b.Finalize(), nil
}
