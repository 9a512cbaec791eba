package fusevec

// At returns the element at i, failing with ErrOutOfRange when i is
// outside [0, Len).
func At[T any](v Vector[T], i int) (T, error) {
	var out T
	if err := checkIndex(i, v.Len()); err != nil {
		return out, err
	}
	v.AtUnsafe(i, func(x T) { out = x })
	return out, nil
}

// IndexApply applies f to the element at i and returns f's result. The
// element reaches f through the contract's continuation, so the caller
// never holds a reference into v's storage.
func IndexApply[T, R any](v Vector[T], i int, f func(T) R) (R, error) {
	var out R
	if err := checkIndex(i, v.Len()); err != nil {
		return out, err
	}
	v.AtUnsafe(i, func(x T) { out = f(x) })
	return out, nil
}

// Head returns the first element, failing with ErrEmpty on an empty
// vector.
func Head[T any](v Vector[T]) (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, &EmptyError{Op: "head"}
	}
	return At(v, 0)
}

// Last returns the final element, failing with ErrEmpty on an empty
// vector.
func Last[T any](v Vector[T]) (T, error) {
	n := v.Len()
	if n == 0 {
		var zero T
		return zero, &EmptyError{Op: "last"}
	}
	return At(v, n-1)
}

// IsEmpty reports whether v has no elements.
func IsEmpty[T any](v Vector[T]) bool {
	return v.Len() == 0
}
