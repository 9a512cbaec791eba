package fusevec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fusevec"
	"github.com/hupe1980/fusevec/chunked"
)

func TestPipeline(t *testing.T) {
	t.Run("ChainToVector", func(t *testing.T) {
		v := fusevec.Of(1, 2, 3, 4, 5, 6)

		out := fusevec.Pipe(v).
			Filter(even).
			MapSame(func(x int) int { return x * 10 }).
			Take(2).
			Vector()

		assert.Equal(t, []int{20, 40}, fusevec.ToSlice(out))
	})

	t.Run("ChainToSlice", func(t *testing.T) {
		v := fusevec.Of(1, 2, 3, 4)

		xs := fusevec.Pipe(v).Drop(1).TakeWhile(func(x int) bool { return x < 4 }).Slice()

		assert.Equal(t, []int{2, 3}, xs)
	})

	t.Run("Reverse", func(t *testing.T) {
		v := fusevec.Of(1, 2, 3)

		out := fusevec.Pipe(v).Reverse().MapSame(func(x int) int { return x * 2 }).Vector()

		assert.Equal(t, []int{6, 4, 2}, fusevec.ToSlice(out))
	})

	t.Run("Append", func(t *testing.T) {
		out := fusevec.Pipe(fusevec.Of(1, 2)).Append(fusevec.Of(3)).Vector()
		assert.Equal(t, []int{1, 2, 3}, fusevec.ToSlice(out))
	})

	t.Run("Count", func(t *testing.T) {
		n := fusevec.Pipe(fusevec.Of(1, 2, 3, 4)).Filter(even).Count()
		assert.Equal(t, 2, n)
	})

	t.Run("First", func(t *testing.T) {
		x, err := fusevec.Pipe(fusevec.Of(1, 2, 3)).DropWhile(func(x int) bool { return x < 3 }).First()
		require.NoError(t, err)
		assert.Equal(t, 3, x)

		_, err = fusevec.Pipe(fusevec.Empty[int]()).First()
		assert.ErrorIs(t, err, fusevec.ErrEmpty)
	})

	t.Run("Fold", func(t *testing.T) {
		sum := fusevec.Pipe(fusevec.Of(1, 2, 3)).MapSame(func(x int) int { return x * x }).
			Fold(0, func(a, x int) int { return a + x })
		assert.Equal(t, 14, sum)
	})
}

func TestPipelineKeepsRepresentation(t *testing.T) {
	v := chunked.From([]int{1, 2, 3, 4}, chunked.WithSegmentBits(4))

	out := fusevec.Pipe[int](v).Filter(even).Vector()

	_, ok := out.(chunked.Vector[int])
	assert.True(t, ok, "terminal rebuilds through the source builder")
	assert.Equal(t, []int{2, 4}, fusevec.ToSlice(out))
}
