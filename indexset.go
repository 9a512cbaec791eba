package fusevec

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/fusevec/internal/conv"
)

// IndexSet is a set of vector positions backed by a 32-bit Roaring
// Bitmap. It wraps the official roaring implementation. Positions are
// non-negative ints no larger than MaxUint32.
//
// Unlike vectors, an IndexSet is mutable; it is a query-building scratch
// value, not part of the immutable data model.
type IndexSet struct {
	rb *roaring.Bitmap
}

// NewIndexSet creates a new empty index set.
func NewIndexSet() *IndexSet {
	return &IndexSet{
		rb: roaring.New(),
	}
}

// IndexSetOf creates an index set holding the given positions.
func IndexSetOf(indices ...int) (*IndexSet, error) {
	s := NewIndexSet()
	for _, i := range indices {
		if err := s.Add(i); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add adds a position to the set. Negative positions and positions beyond
// MaxUint32 fail.
func (s *IndexSet) Add(i int) error {
	u, err := conv.IntToUint32(i)
	if err != nil {
		return err
	}
	s.rb.Add(u)
	return nil
}

// Remove removes a position from the set. Positions the set cannot hold
// are ignored.
func (s *IndexSet) Remove(i int) {
	if u, err := conv.IntToUint32(i); err == nil {
		s.rb.Remove(u)
	}
}

// Contains checks if a position is in the set.
func (s *IndexSet) Contains(i int) bool {
	u, err := conv.IntToUint32(i)
	if err != nil {
		return false
	}
	return s.rb.Contains(u)
}

// IsEmpty returns true if the set is empty.
func (s *IndexSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of positions in the set.
func (s *IndexSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *IndexSet) Clone() *IndexSet {
	return &IndexSet{
		rb: s.rb.Clone(),
	}
}

// Iterator returns an iterator over the positions in ascending order.
func (s *IndexSet) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the positions in ascending order.
func (s *IndexSet) ToSlice() []int {
	n, err := conv.Uint64ToInt(s.rb.GetCardinality())
	if err != nil {
		n = 0
	}
	out := make([]int, 0, n)
	for i := range s.Iterator() {
		out = append(out, i)
	}
	return out
}

// And computes the intersection with other in place.
func (s *IndexSet) And(other *IndexSet) {
	s.rb.And(other.rb)
}

// Or computes the union with other in place.
func (s *IndexSet) Or(other *IndexSet) {
	s.rb.Or(other.rb)
}

// Clear removes all positions from the set.
func (s *IndexSet) Clear() {
	s.rb.Clear()
}
