package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Ints generates n random values in [0, bound).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, bound int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(bound)
	}

	return out
}

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Runs generates n values forming ascending runs of the given mean
// length, useful for exercising takeWhile/dropWhile boundaries.
func (r *RNG) Runs(n, meanRunLen int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	v := 0
	for i := range out {
		if r.rand.Intn(meanRunLen) == 0 {
			v = 0
		}
		out[i] = v
		v++
	}

	return out
}

// MapSlice is the reference model for Map.
func MapSlice[S, T any](xs []S, f func(S) T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// FilterSlice is the reference model for Filter.
func FilterSlice[T any](xs []T, p func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if p(x) {
			out = append(out, x)
		}
	}
	return out
}

// TakeWhileSlice is the reference model for TakeWhile.
func TakeWhileSlice[T any](xs []T, p func(T) bool) []T {
	for i, x := range xs {
		if !p(x) {
			return xs[:i:i]
		}
	}
	return xs
}

// DropWhileSlice is the reference model for DropWhile.
func DropWhileSlice[T any](xs []T, p func(T) bool) []T {
	for i, x := range xs {
		if !p(x) {
			return xs[i:]
		}
	}
	return xs[len(xs):]
}

// FoldlSlice is the reference model for Foldl.
func FoldlSlice[T, A any](xs []T, init A, f func(A, T) A) A {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// FoldrSlice is the reference model for Foldr.
func FoldrSlice[T, A any](xs []T, init A, f func(T, A) A) A {
	acc := init
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// ZipWithSlice is the reference model for ZipWith.
func ZipWithSlice[A, B, C any](as []A, bs []B, f func(A, B) C) []C {
	n := min(len(as), len(bs))
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = f(as[i], bs[i])
	}
	return out
}

// FindIndexSlice is the reference model for FindIndex.
func FindIndexSlice[T any](xs []T, p func(T) bool) int {
	for i, x := range xs {
		if p(x) {
			return i
		}
	}
	return -1
}

// ReverseSlice is the reference model for Reverse.
func ReverseSlice[T any](xs []T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}
