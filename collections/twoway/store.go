package twoway

import (
	"iter"
	"reflect"

	"github.com/on-the-ground/utilities_go/internal/helper"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type entry[K, V any] struct {
	key   K
	value V
	hash  uint64
	seq   uint64
}

// store is one direction of a Map. Keys live in hash buckets resolved with the
// store's Comparer; order indexes the same entries by insertion sequence.
type store[K, V any] struct {
	cmp      Comparer[K]
	nillable bool
	buckets  map[uint64][]*entry[K, V]
	order    *orderedmap.OrderedMap[uint64, *entry[K, V]]
	nextSeq  uint64

	// nil unless the key space has a Cloner
	cloneKey   func(K) K
	cloneValue func(V) V
}

func newStore[K, V any](cmp Comparer[K], capacity int) *store[K, V] {
	if cmp == nil {
		panic("twoway: nil comparer")
	}
	return &store[K, V]{
		cmp:      cmp,
		nillable: helper.Nillable(reflect.TypeFor[K]()),
		cloneKey: clonerOf(cmp),
		buckets:  make(map[uint64][]*entry[K, V], capacity),
		order:    orderedmap.New[uint64, *entry[K, V]](capacity),
	}
}

// link links two stores so that each clones its values with the other's keys.
func link[A, B any](forward *store[A, B], backward *store[B, A]) {
	forward.cloneValue = backward.cloneKey
	backward.cloneValue = forward.cloneKey
}

func (s *store[K, V]) isNil(k K) bool {
	return s.nillable && helper.IsNil(k)
}

// find returns the entry for k, its position in the bucket and the hash of k.
// The entry is nil if k is absent.
func (s *store[K, V]) find(k K) (*entry[K, V], int, uint64) {
	if s.isNil(k) {
		return nil, -1, 0
	}
	h := s.cmp.Hash(k)
	for i, e := range s.buckets[h] {
		if s.cmp.Equal(e.key, k) {
			return e, i, h
		}
	}
	return nil, -1, h
}

// load returns the stored value itself; callers outside the package go
// through get.
func (s *store[K, V]) load(k K) (v V, ok bool) {
	if e, _, _ := s.find(k); e != nil {
		return e.value, true
	}
	return
}

func (s *store[K, V]) get(k K) (v V, ok bool) {
	if v, ok = s.load(k); ok {
		v = s.copyValue(v)
	}
	return
}

func (s *store[K, V]) copyKey(k K) K {
	if s.cloneKey == nil {
		return k
	}
	return s.cloneKey(k)
}

func (s *store[K, V]) copyValue(v V) V {
	if s.cloneValue == nil {
		return v
	}
	return s.cloneValue(v)
}

// insert adds (k, v) unless k is already present, in which case the value
// already bound to k is returned with inserted == false. The store keeps k
// and v as given.
func (s *store[K, V]) insert(k K, v V) (existing V, inserted bool) {
	found, _, h := s.find(k)
	if found != nil {
		return found.value, false
	}
	e := &entry[K, V]{
		key:   k,
		value: v,
		hash:  h,
		seq:   s.nextSeq,
	}
	s.nextSeq++
	s.buckets[h] = append(s.buckets[h], e)
	s.order.Set(e.seq, e)
	return existing, true
}

func (s *store[K, V]) remove(k K) (v V, removed bool) {
	e, i, _ := s.find(k)
	if e == nil {
		return
	}
	bucket := s.buckets[e.hash]
	last := len(bucket) - 1
	bucket[i] = bucket[last]
	bucket[last] = nil
	if last == 0 {
		delete(s.buckets, e.hash)
	} else {
		s.buckets[e.hash] = bucket[:last]
	}
	s.order.Delete(e.seq)
	return e.value, true
}

func (s *store[K, V]) clear() {
	clear(s.buckets)
	s.order = orderedmap.New[uint64, *entry[K, V]]()
}

func (s *store[K, V]) len() int {
	return s.order.Len()
}

// all yields entries oldest first, cloned when the key spaces have Cloners.
// Removing the entry being yielded is safe; any other mutation during
// iteration is not.
func (s *store[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := s.order.Oldest(); pair != nil; {
			next := pair.Next()
			if !yield(s.copyKey(pair.Value.key), s.copyValue(pair.Value.value)) {
				return
			}
			pair = next
		}
	}
}
