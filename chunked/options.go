package chunked

const (
	// DefaultSegmentBits sizes segments at 1<<10 = 1024 elements.
	DefaultSegmentBits = 10

	minSegmentBits = 4
	maxSegmentBits = 20
)

type options struct {
	segmentBits uint
}

// Option configures chunked vector construction.
type Option func(*options)

// WithSegmentBits sets the segment size to 1<<bits elements. Values are
// clamped to [4, 20]. Larger segments mean fewer indirections per access;
// smaller segments waste less space on the final partial segment.
func WithSegmentBits(bits int) Option {
	return func(o *options) {
		if bits < minSegmentBits {
			bits = minSegmentBits
		}
		if bits > maxSegmentBits {
			bits = maxSegmentBits
		}
		o.segmentBits = uint(bits)
	}
}

func applyOptions(opts []Option) options {
	o := options{segmentBits: DefaultSegmentBits}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
