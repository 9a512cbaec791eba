package fusevec

import (
	"slices"

	"github.com/hupe1980/fusevec/stream"
)

// Pipeline is a fluent, single-pass chain of same-type transforms over a
// source vector. Transforms stack lazily on the source's stream view;
// terminals consume it. A Pipeline is single-use, like the stream it
// wraps.
//
// The element type is fixed by the source; for type-changing transforms
// use the package-level Map.
type Pipeline[T any] struct {
	src Vector[T]
	s   stream.Stream[T]
}

// Pipe opens a pipeline over v.
func Pipe[T any](v Vector[T]) *Pipeline[T] {
	return &Pipeline[T]{src: v, s: ToStream(v)}
}

// Filter keeps the elements satisfying p.
func (p *Pipeline[T]) Filter(pred func(T) bool) *Pipeline[T] {
	p.s = stream.Filter(p.s, pred)
	return p
}

// MapSame applies f elementwise.
func (p *Pipeline[T]) MapSame(f func(T) T) *Pipeline[T] {
	p.s = stream.Map(p.s, f)
	return p
}

// Take limits the chain to its first n elements, clamping n.
func (p *Pipeline[T]) Take(n int) *Pipeline[T] {
	p.s = stream.Take(p.s, n)
	return p
}

// Drop discards the first n elements of the chain, clamping n.
func (p *Pipeline[T]) Drop(n int) *Pipeline[T] {
	p.s = stream.Drop(p.s, n)
	return p
}

// TakeWhile keeps the longest prefix satisfying pred.
func (p *Pipeline[T]) TakeWhile(pred func(T) bool) *Pipeline[T] {
	p.s = stream.TakeWhile(p.s, pred)
	return p
}

// DropWhile discards the longest prefix satisfying pred.
func (p *Pipeline[T]) DropWhile(pred func(T) bool) *Pipeline[T] {
	p.s = stream.DropWhile(p.s, pred)
	return p
}

// Reverse reverses the chain. This buffers the elements produced so far;
// the stages before and after it each remain single-pass.
func (p *Pipeline[T]) Reverse() *Pipeline[T] {
	xs := stream.Collect(p.s)
	slices.Reverse(xs)
	p.s = stream.FromSlice(xs)
	return p
}

// Append concatenates w's elements after the current chain.
func (p *Pipeline[T]) Append(w Vector[T]) *Pipeline[T] {
	p.s = stream.Concat(p.s, ToStream(w))
	return p
}

// Vector materializes the chain through the source vector's builder,
// preserving its representation.
func (p *Pipeline[T]) Vector() Vector[T] {
	return MaterializeInto(p.src.NewBuilder(p.s.Hint()), p.s)
}

// Slice drains the chain into a plain slice.
func (p *Pipeline[T]) Slice() []T {
	return stream.Collect(p.s)
}

// Count drains the chain and returns its element count.
func (p *Pipeline[T]) Count() int {
	return stream.Count(p.s)
}

// First returns the first element of the chain, failing with ErrEmpty
// when the chain is empty.
func (p *Pipeline[T]) First() (T, error) {
	x, ok := p.s.Next()
	if !ok {
		var zero T
		return zero, &EmptyError{Op: "first"}
	}
	return x, nil
}

// Fold drains the chain into an accumulator of the element type.
func (p *Pipeline[T]) Fold(init T, f func(T, T) T) T {
	return stream.Fold(p.s, init, f)
}
