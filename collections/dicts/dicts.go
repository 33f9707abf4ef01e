// Package dicts holds helpers over plain Go maps.
package dicts

import (
	"errors"
	"fmt"
)

var ErrKeyNotFound = errors.New("key not found")

// GetOrAdd returns m[k], storing create() first if k is absent.
func GetOrAdd[M ~map[K]V, K comparable, V any](m M, k K, create func() V) V {
	if v, ok := m[k]; ok {
		return v
	}
	v := create()
	m[k] = v
	return v
}

// GetOrErr returns m[k], or an error naming the key if it is absent.
func GetOrErr[M ~map[K]V, K comparable, V any](m M, k K) (V, error) {
	v, ok := m[k]
	if !ok {
		return v, fmt.Errorf("%w: '%v'", ErrKeyNotFound, k)
	}
	return v, nil
}
