package fusevec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fusevec"
	"github.com/hupe1980/fusevec/chunked"
	"github.com/hupe1980/fusevec/testutil"
)

// Finalized vectors are immutable, so any number of goroutines may read
// the same vector concurrently. Run with -race.
func TestConcurrentReaders(t *testing.T) {
	rng := testutil.NewRNG(31)
	xs := rng.Ints(5000, 1000)

	wantSum := testutil.FoldlSlice(xs, 0, func(a, x int) int { return a + x })

	for _, rep := range reps {
		t.Run(rep.name, func(t *testing.T) {
			v := rep.from(xs)

			var g errgroup.Group
			for w := 0; w < 16; w++ {
				g.Go(func() error {
					sum := fusevec.Foldl(v, 0, func(a, x int) int { return a + x })
					assert.Equal(t, wantSum, sum)

					s, err := fusevec.Slice(v, 100, 200)
					if err != nil {
						return err
					}
					assert.Equal(t, 200, s.Len())

					assert.Equal(t, testutil.FindIndexSlice(xs, even), fusevec.FindIndex(v, even))
					return nil
				})
			}
			require.NoError(t, g.Wait())
		})
	}
}

// Two goroutines materializing pipelines from the same source vector use
// independent streams and builders; their results must not interfere.
func TestConcurrentPipelines(t *testing.T) {
	rng := testutil.NewRNG(32)
	xs := rng.Ints(2000, 100)
	v := chunked.From(xs, chunked.WithSegmentBits(6))

	var g errgroup.Group
	results := make([]fusevec.Vector[int], 8)
	for i := range results {
		g.Go(func() error {
			results[i] = fusevec.Pipe[int](v).Filter(even).Vector()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	want := testutil.FilterSlice(xs, even)
	for _, r := range results {
		assert.Equal(t, want, fusevec.ToSlice(r))
	}
}
