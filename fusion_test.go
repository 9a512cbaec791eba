package fusevec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fusevec"
	"github.com/hupe1980/fusevec/stream"
	"github.com/hupe1980/fusevec/testutil"
)

// The laws below are the correctness contract of the bridge: every fused
// form must be observably equal to its unfused counterpart.

func TestLawStreamVectorRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(21)
	xs := rng.Ints(100, 1000)

	// toStream(fromStream(s)) yields s's elements.
	got := stream.Collect(fusevec.ToStream(fusevec.Materialize(stream.FromSlice(xs))))
	assert.Equal(t, xs, got)

	// Materializing a round-tripped vector changes nothing.
	p := fusevec.Materialize(stream.FromSlice(xs))
	q := fusevec.Materialize(fusevec.ToStream(p))
	assert.True(t, fusevec.Equal(p, q))
}

func TestLawCountWithoutMaterializing(t *testing.T) {
	s := stream.Map(stream.FromSlice([]int{1, 2, 3, 4}), func(x int) int { return x * 2 })

	// The pipeline carries an exact hint, so Count needs no drain and
	// must agree with the length of the materialized result.
	twin := stream.Map(stream.FromSlice([]int{1, 2, 3, 4}), func(x int) int { return x * 2 })

	assert.Equal(t, fusevec.Materialize(twin).Len(), stream.Count(s))
}

func TestLawNthEqualsMaterializedIndex(t *testing.T) {
	xs := []int{10, 20, 30, 40}

	for i := range xs {
		fromStream, ok := stream.Nth(stream.FromSlice(xs), i)
		require.True(t, ok)

		fromVector, err := fusevec.At(fusevec.Materialize(stream.FromSlice(xs)), i)
		require.NoError(t, err)

		assert.Equal(t, fromVector, fromStream)
	}

	_, ok := stream.Nth(stream.FromSlice(xs), len(xs))
	assert.False(t, ok)
}

func TestLawSliceOverStreamIsExtract(t *testing.T) {
	rng := testutil.NewRNG(22)
	xs := rng.Ints(50, 1000)

	// Over a not-yet-materialized stream there is no allocation to
	// alias, so take+drop composes to the same elements either way.
	windowed := fusevec.Materialize(stream.Take(stream.Drop(stream.FromSlice(xs), 10), 20))

	v := fusevec.FromSlice(xs)
	aliased, err := fusevec.Slice(v, 10, 20)
	require.NoError(t, err)
	copied, err := fusevec.Extract(v, 10, 20)
	require.NoError(t, err)

	assert.True(t, fusevec.Equal(aliased, windowed))
	assert.True(t, fusevec.Equal(copied, windowed))
}

func TestLawDrainMapSkipsIntermediate(t *testing.T) {
	rng := testutil.NewRNG(23)
	xs := rng.Ints(64, 1000)
	double := func(x int) int { return x * 2 }

	fused := fusevec.DrainMap(
		fusevec.NewBuilder[int](stream.Exact(len(xs))),
		double,
		stream.FromSlice(xs),
	)

	unfused := fusevec.Map(fusevec.Materialize(stream.FromSlice(xs)), double)

	assert.True(t, fusevec.Equal(fused, unfused))
}

func TestLawMaterializeIntoMatchesMaterialize(t *testing.T) {
	xs := []int{1, 2, 3}

	b := fusevec.NewBuilder[int](stream.Exact(3))
	v := fusevec.MaterializeInto(b, stream.FromSlice(xs))

	assert.Equal(t, xs, fusevec.ToSlice(v))
}
