package stream

import "fmt"

// HintKind classifies how much a SizeHint knows about a stream's length.
type HintKind uint8

const (
	// HintExact means the stream yields exactly N elements.
	HintExact HintKind = iota
	// HintBounded means the stream yields at most N elements.
	HintBounded
	// HintUnknown means nothing is known about the stream's length.
	HintUnknown
)

// SizeHint is the cardinality estimate carried by every Stream. Builders
// use it to preallocate; transforms propagate it through the rules below.
type SizeHint struct {
	Kind HintKind
	N    int
}

// Exact returns a hint for a stream of exactly n elements.
// n < 0 is treated as zero.
func Exact(n int) SizeHint {
	if n < 0 {
		n = 0
	}
	return SizeHint{Kind: HintExact, N: n}
}

// Bounded returns a hint for a stream of at most n elements.
// n < 0 is treated as zero.
func Bounded(n int) SizeHint {
	if n < 0 {
		n = 0
	}
	return SizeHint{Kind: HintBounded, N: n}
}

// Unknown returns a hint carrying no length information.
func Unknown() SizeHint {
	return SizeHint{Kind: HintUnknown}
}

// Size returns the exact element count, if known.
func (h SizeHint) Size() (int, bool) {
	return h.N, h.Kind == HintExact
}

// Upper returns a known upper bound on the element count.
func (h SizeHint) Upper() (int, bool) {
	if h.Kind == HintUnknown {
		return 0, false
	}
	return h.N, true
}

// Relaxed weakens an exact hint to an upper bound. Filtering transforms
// keep the bound but lose exactness.
func (h SizeHint) Relaxed() SizeHint {
	if h.Kind == HintExact {
		return SizeHint{Kind: HintBounded, N: h.N}
	}
	return h
}

// Add combines the hints of two concatenated streams.
func (h SizeHint) Add(o SizeHint) SizeHint {
	if h.Kind == HintUnknown || o.Kind == HintUnknown {
		return Unknown()
	}
	if h.Kind == HintExact && o.Kind == HintExact {
		return Exact(h.N + o.N)
	}
	return Bounded(h.N + o.N)
}

// Min combines the hints of two zipped streams: the result length is the
// minimum of the inputs.
func (h SizeHint) Min(o SizeHint) SizeHint {
	if h.Kind == HintExact && o.Kind == HintExact {
		return Exact(min(h.N, o.N))
	}
	hn, hok := h.Upper()
	on, ook := o.Upper()
	switch {
	case hok && ook:
		return Bounded(min(hn, on))
	case hok:
		return Bounded(hn)
	case ook:
		return Bounded(on)
	default:
		return Unknown()
	}
}

// Cap limits a hint to at most n elements (take).
func (h SizeHint) Cap(n int) SizeHint {
	if n < 0 {
		n = 0
	}
	switch h.Kind {
	case HintExact:
		return Exact(min(h.N, n))
	case HintBounded:
		return Bounded(min(h.N, n))
	default:
		return Bounded(n)
	}
}

// Sub removes n leading elements from a hint (drop).
func (h SizeHint) Sub(n int) SizeHint {
	if n < 0 {
		n = 0
	}
	switch h.Kind {
	case HintExact:
		return Exact(max(0, h.N-n))
	case HintBounded:
		return Bounded(max(0, h.N-n))
	default:
		return Unknown()
	}
}

// String implements fmt.Stringer.
func (h SizeHint) String() string {
	switch h.Kind {
	case HintExact:
		return fmt.Sprintf("exact(%d)", h.N)
	case HintBounded:
		return fmt.Sprintf("bounded(%d)", h.N)
	default:
		return "unknown"
	}
}
