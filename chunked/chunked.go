package chunked

import (
	"github.com/hupe1980/fusevec"
	"github.com/hupe1980/fusevec/stream"
)

// Vector is an immutable vector backed by fixed-size segments with
// two-level indexing. Views produced by SliceUnsafe carry an offset into
// the shared segment table instead of copying.
type Vector[T any] struct {
	segments [][]T
	bits     uint
	mask     int
	off      int
	n        int
}

// From builds a chunked vector holding a copy of xs.
func From[T any](xs []T, opts ...Option) Vector[T] {
	b := newBuilder[T](stream.Exact(len(xs)), applyOptions(opts))
	for _, x := range xs {
		b.Append(x)
	}
	return b.finalize()
}

// FromVector rebuilds any vector into chunked storage.
func FromVector[T any](v fusevec.Vector[T], opts ...Option) Vector[T] {
	b := newBuilder[T](stream.Exact(v.Len()), applyOptions(opts))
	s := fusevec.ToStream(v)
	for x, ok := s.Next(); ok; x, ok = s.Next() {
		b.Append(x)
	}
	return b.finalize()
}

// Len returns the number of elements. O(1).
func (v Vector[T]) Len() int {
	return v.n
}

// SliceUnsafe returns a view of n elements starting at i without checking
// bounds. The view shares v's segments.
func (v Vector[T]) SliceUnsafe(i, n int) fusevec.Vector[T] {
	v.off += i
	v.n = n
	return v
}

// AtUnsafe applies use to the element at i without checking bounds.
func (v Vector[T]) AtUnsafe(i int, use func(T)) {
	idx := v.off + i
	use(v.segments[idx>>v.bits][idx&v.mask])
}

// NewBuilder returns a builder producing chunked storage with v's segment
// size, preallocated from hint.
func (v Vector[T]) NewBuilder(hint stream.SizeHint) fusevec.Builder[T] {
	return newBuilder[T](hint, options{segmentBits: v.bits})
}

// NewBuilder returns a builder for chunked storage, preallocated from
// hint.
func NewBuilder[T any](hint stream.SizeHint, opts ...Option) fusevec.Builder[T] {
	return newBuilder[T](hint, applyOptions(opts))
}

// Builder appends into fixed-capacity segments. It satisfies
// fusevec.Builder and is exclusively owned until Finalize.
type Builder[T any] struct {
	segments [][]T
	bits     uint
	mask     int
	n        int
	done     bool
}

func newBuilder[T any](hint stream.SizeHint, o options) *Builder[T] {
	b := &Builder[T]{
		bits: o.segmentBits,
		mask: (1 << o.segmentBits) - 1,
	}
	if upper, ok := hint.Upper(); ok && upper > 0 {
		segs := (upper + b.mask) >> b.bits
		b.segments = make([][]T, 0, segs)
	}
	return b
}

// Append adds x after the last appended element, allocating a fresh
// segment when the current one is full.
func (b *Builder[T]) Append(x T) {
	if b.n>>b.bits == len(b.segments) {
		b.segments = append(b.segments, make([]T, 0, 1<<b.bits))
	}
	seg := b.n >> b.bits
	b.segments[seg] = append(b.segments[seg], x)
	b.n++
}

// Set overwrites the element at i within the appended prefix, without
// checking bounds.
func (b *Builder[T]) Set(i int, x T) {
	b.segments[i>>b.bits][i&b.mask] = x
}

// Len returns the number of elements appended so far.
func (b *Builder[T]) Len() int {
	return b.n
}

// Finalize hands the segments over to an immutable chunked vector. The
// builder must not be used again.
func (b *Builder[T]) Finalize() fusevec.Vector[T] {
	return b.finalize()
}

func (b *Builder[T]) finalize() Vector[T] {
	if b.done {
		panic("chunked: builder finalized twice")
	}
	b.done = true
	v := Vector[T]{
		segments: b.segments,
		bits:     b.bits,
		mask:     b.mask,
		n:        b.n,
	}
	b.segments = nil
	return v
}

var (
	_ fusevec.Vector[int]  = Vector[int]{}
	_ fusevec.Builder[int] = (*Builder[int])(nil)
)
