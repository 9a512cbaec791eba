package stream

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	s := Map(FromSlice([]int{1, 2, 3}), strconv.Itoa)

	n, exact := s.Hint().Size()
	assert.True(t, exact, "map preserves exactness")
	assert.Equal(t, 3, n)

	assert.Equal(t, []string{"1", "2", "3"}, drain(s))
}

func TestFilter(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	s := Filter(FromSlice([]int{1, 2, 3, 4, 5, 6}), even)

	_, exact := s.Hint().Size()
	assert.False(t, exact, "filter loses exactness")
	n, ok := s.Hint().Upper()
	assert.True(t, ok)
	assert.Equal(t, 6, n)

	assert.Equal(t, []int{2, 4, 6}, drain(s))
}

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "Part", n: 3, want: []int{1, 2, 3}},
		{name: "All", n: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "Over", n: 9, want: []int{1, 2, 3, 4, 5}},
		{name: "Zero", n: 0, want: []int{}},
		{name: "Negative", n: -2, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Take(FromSlice([]int{1, 2, 3, 4, 5}), tt.n)
			assert.Equal(t, tt.want, drain(s))
		})
	}
}

func TestDrop(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "Part", n: 3, want: []int{4, 5}},
		{name: "All", n: 5, want: []int{}},
		{name: "Over", n: 9, want: []int{}},
		{name: "Zero", n: 0, want: []int{1, 2, 3, 4, 5}},
		{name: "Negative", n: -2, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Drop(FromSlice([]int{1, 2, 3, 4, 5}), tt.n)
			assert.Equal(t, tt.want, drain(s))
		})
	}
}

func TestTakeWhile(t *testing.T) {
	s := TakeWhile(FromSlice([]int{1, 2, 3, 1, 2}), func(x int) bool { return x < 3 })
	assert.Equal(t, []int{1, 2}, drain(s))

	// The boundary element is consumed but everything after it stays
	// unread; the stream stops for good.
	s = TakeWhile(FromSlice([]int{5, 1, 2}), func(x int) bool { return x < 3 })
	assert.Equal(t, []int{}, drain(s))
}

func TestDropWhile(t *testing.T) {
	lt3 := func(x int) bool { return x < 3 }

	assert.Equal(t, []int{3, 1, 2}, drain(DropWhile(FromSlice([]int{1, 2, 3, 1, 2}), lt3)))
	assert.Equal(t, []int{}, drain(DropWhile(FromSlice([]int{1, 2}), lt3)))
	assert.Equal(t, []int{5, 1}, drain(DropWhile(FromSlice([]int{5, 1}), lt3)))
}

func TestConcat(t *testing.T) {
	s := Concat(FromSlice([]int{1, 2}), Empty[int](), FromSlice([]int{3}))

	n, exact := s.Hint().Size()
	assert.True(t, exact)
	assert.Equal(t, 3, n)

	assert.Equal(t, []int{1, 2, 3}, drain(s))
}

func TestZipWith(t *testing.T) {
	s := ZipWith(FromSlice([]int{1, 2, 3, 4, 5}), FromSlice([]int{10, 20, 30}),
		func(a, b int) int { return a + b })

	n, exact := s.Hint().Size()
	assert.True(t, exact)
	assert.Equal(t, 3, n)

	assert.Equal(t, []int{11, 22, 33}, drain(s))
}

func TestChainSinglePass(t *testing.T) {
	// Count how many times the source is pulled: a fused chain must read
	// each consumed element exactly once.
	pulls := 0
	src := Map(FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8}), func(x int) int {
		pulls++
		return x
	})

	s := Take(Map(Filter(src, func(x int) bool { return x%2 == 0 }), func(x int) int { return x * 10 }), 2)

	assert.Equal(t, []int{20, 40}, drain(s))
	assert.Equal(t, 4, pulls, "stops after the second even element")
}
