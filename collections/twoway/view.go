package twoway

import (
	"fmt"
	"iter"
	"sync"
)

// View is a live, read-only projection of one direction of a Map.
// The zero View is empty.
type View[K, V any] struct {
	s *store[K, V]
	// rl is the read lock of a Synced map; nil for a plain Map.
	rl sync.Locker
}

func noop() {}

func (v View[K, V]) guard() func() {
	if v.rl == nil {
		return noop
	}
	v.rl.Lock()
	return v.rl.Unlock
}

// Contains reports whether k is present.
func (v View[K, V]) Contains(k K) bool {
	_, ok := v.Load(k)
	return ok
}

// Load returns the value bound to k, and whether k is present.
func (v View[K, V]) Load(k K) (val V, ok bool) {
	if v.s == nil {
		return
	}
	defer v.guard()()
	return v.s.get(k)
}

// Get returns the value bound to k, or an error wrapping ErrKeyNotFound.
func (v View[K, V]) Get(k K) (V, error) {
	val, ok := v.Load(k)
	if !ok {
		return val, fmt.Errorf("%w: '%v'", ErrKeyNotFound, k)
	}
	return val, nil
}

// Len returns the number of keys.
func (v View[K, V]) Len() int {
	if v.s == nil {
		return 0
	}
	defer v.guard()()
	return v.s.len()
}

// All yields key/value pairs in insertion order. On a Synced map it yields a
// snapshot taken under the read lock, and the loop body may use the map freely.
func (v View[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if v.s == nil {
			return
		}
		if v.rl == nil {
			for k, val := range v.s.all() {
				if !yield(k, val) {
					return
				}
			}
			return
		}
		for _, e := range v.snapshot() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

func (v View[K, V]) snapshot() []entry[K, V] {
	defer v.guard()()
	out := make([]entry[K, V], 0, v.s.len())
	for k, val := range v.s.all() {
		out = append(out, entry[K, V]{key: k, value: val})
	}
	return out
}

// Keys yields keys in insertion order.
func (v View[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range v.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields values in key insertion order.
func (v View[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, val := range v.All() {
			if !yield(val) {
				return
			}
		}
	}
}
