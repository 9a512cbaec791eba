package fusevec

import "github.com/hupe1980/fusevec/stream"

// sliceVector is the default representation: a single contiguous backing
// slice. Views produced by SliceUnsafe reslice the same backing array; the
// immutability contract keeps that sharing invisible to callers.
type sliceVector[T any] struct {
	data []T
}

// Len returns the number of elements.
func (v sliceVector[T]) Len() int {
	return len(v.data)
}

// SliceUnsafe returns a view without checking bounds.
func (v sliceVector[T]) SliceUnsafe(i, n int) Vector[T] {
	return sliceVector[T]{data: v.data[i : i+n]}
}

// AtUnsafe applies use to the element at i without checking bounds.
func (v sliceVector[T]) AtUnsafe(i int, use func(T)) {
	use(v.data[i])
}

// NewBuilder returns a builder for the default representation.
func (v sliceVector[T]) NewBuilder(hint stream.SizeHint) Builder[T] {
	return NewBuilder[T](hint)
}

// sliceBuilder grows a backing slice with append semantics and hands it
// over to the finalized vector.
type sliceBuilder[T any] struct {
	buf  []T
	done bool
}

// NewBuilder returns a builder for the default slice-backed
// representation, preallocated from hint.
func NewBuilder[T any](hint stream.SizeHint) Builder[T] {
	capacity := 0
	if n, ok := hint.Upper(); ok {
		capacity = n
	}
	return &sliceBuilder[T]{buf: make([]T, 0, capacity)}
}

// Append adds x after the last appended element.
func (b *sliceBuilder[T]) Append(x T) {
	b.buf = append(b.buf, x)
}

// Set overwrites the element at i without checking bounds.
func (b *sliceBuilder[T]) Set(i int, x T) {
	b.buf[i] = x
}

// Len returns the number of elements appended so far.
func (b *sliceBuilder[T]) Len() int {
	return len(b.buf)
}

// Finalize hands the buffer over to an immutable vector.
func (b *sliceBuilder[T]) Finalize() Vector[T] {
	if b.done {
		panic("fusevec: builder finalized twice")
	}
	b.done = true
	v := sliceVector[T]{data: b.buf}
	b.buf = nil
	return v
}

var (
	_ Vector[int]  = sliceVector[int]{}
	_ Builder[int] = (*sliceBuilder[int])(nil)
)
