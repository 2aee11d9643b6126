package lens

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange reports an index outside [0, len) of the focused slice.
var ErrIndexOutOfRange = errors.New("lens: index out of range")

// checkIndex bounds-checks idx against the slice focused by a without
// touching any element.
func checkIndex[T, E any](a Accessor[T, []E], root *T, idx int) ([]E, error) {
	s := *a.Get(root)
	if idx < 0 || idx >= len(s) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, idx, len(s))
	}

	return s, nil
}

// GetAt returns a pointer aliasing element idx of the slice focused by a.
func GetAt[T, E any](a Accessor[T, []E], root *T, idx int) (*E, error) {
	s, err := checkIndex(a, root, idx)
	if err != nil {
		return nil, err
	}

	return &s[idx], nil
}

// SetAt moves v into element idx of the slice focused by a.
func SetAt[T, E any](a Accessor[T, []E], root *T, idx int, v E) error {
	s, err := checkIndex(a, root, idx)
	if err != nil {
		return err
	}

	s[idx] = v

	return nil
}

// UpdateAt applies an in-place transformation to element idx of the slice
// focused by a.
func UpdateAt[T, E any](a Accessor[T, []E], root *T, idx int, f func(*E)) error {
	s, err := checkIndex(a, root, idx)
	if err != nil {
		return err
	}

	f(&s[idx])

	return nil
}

// SetCloneAt writes a duplicate of *v into element idx of the slice focused
// by a. As with [SetClone], only the element type needs to implement
// [Cloner].
func SetCloneAt[T any, E Cloner[E]](a Accessor[T, []E], root *T, idx int, v *E) error {
	s, err := checkIndex(a, root, idx)
	if err != nil {
		return err
	}

	s[idx] = (*v).Clone()

	return nil
}
