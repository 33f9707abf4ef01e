package twoway

import "errors"

var (
	// ErrNullKey is returned when a nil pointer, map, slice, func, chan or
	// interface is used as a key.
	ErrNullKey = errors.New("null key")

	// ErrDuplicateKey is returned when an insertion would break the one-to-one
	// correspondence in either direction.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyNotFound is returned by View.Get for an absent key.
	ErrKeyNotFound = errors.New("key not found")
)
