// Package stream provides the lazy, single-pass sequence layer that
// operation fusion is built on.
//
// A Stream yields elements one at a time through Next and carries a
// SizeHint (exact, bounded or unknown) that consumers use to preallocate.
// Transforms (Map, Filter, Take, ...) wrap the pull function without
// buffering, so a chain of transforms consumes its source in a single
// pass. Terminals (Collect, Fold, Find, ...) drain the stream.
//
// Streams are ephemeral: a Stream is consumed at most once, and consuming
// one from more than one goroutine is undefined.
package stream
