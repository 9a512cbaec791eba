package fusevec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is the category for checked index, slice and update
	// operations whose bounds fall outside the vector.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmpty is the category for operations that require at least one
	// element.
	ErrEmpty = errors.New("empty vector")

	// ErrPrecondition is the category for malformed arguments such as
	// negative counts or offsets.
	ErrPrecondition = errors.New("precondition violated")
)

// OutOfRangeError indicates a checked index outside [0, Len).
//
// errors.Is(err, ErrOutOfRange) reports true for it.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// BoundsError indicates a slice window [Offset, Offset+Count) that is not
// contained in a vector of length Len.
//
// A negative Offset or Count unwraps to ErrPrecondition, any other
// violation to ErrOutOfRange.
type BoundsError struct {
	Offset int
	Count  int
	Len    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("slice bounds [%d:%d] out of range for length %d", e.Offset, e.Offset+e.Count, e.Len)
}

func (e *BoundsError) Unwrap() error {
	if e.Offset < 0 || e.Count < 0 {
		return ErrPrecondition
	}
	return ErrOutOfRange
}

// EmptyError indicates an operation that requires a non-empty vector.
//
// errors.Is(err, ErrEmpty) reports true for it.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%s on empty vector", e.Op)
}

func (e *EmptyError) Unwrap() error { return ErrEmpty }

// checkIndex validates a single element index against length n.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &OutOfRangeError{Index: i, Len: n}
	}
	return nil
}

// checkBounds validates the window [i, i+n) against length total.
// The comparison form avoids overflow for large i and n.
func checkBounds(i, n, total int) error {
	if i < 0 || n < 0 || n > total || i > total-n {
		return &BoundsError{Offset: i, Count: n, Len: total}
	}
	return nil
}
