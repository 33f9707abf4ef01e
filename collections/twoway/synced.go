package twoway

import (
	"iter"
	"sync"
)

// Synced is a Map guarded by one read/write lock. It is safe for concurrent use.
type Synced[A, B any] struct {
	mu sync.RWMutex
	m  *Map[A, B]
}

// NewSynced wraps m. The caller hands over ownership and must not use m directly
// afterwards.
func NewSynced[A, B any](m *Map[A, B]) *Synced[A, B] {
	if m == nil {
		panic("twoway: NewSynced on nil map")
	}
	return &Synced[A, B]{m: m}
}

func (s *Synced[A, B]) Add(a A, b B) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Add(a, b)
}

func (s *Synced[A, B]) AddEntry(e Entry[A, B]) error {
	return s.Add(e.A, e.B)
}

func (s *Synced[A, B]) Remove(a A) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Remove(a)
}

func (s *Synced[A, B]) RemoveBackward(b B) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.RemoveBackward(b)
}

func (s *Synced[A, B]) RemoveEntry(e Entry[A, B]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.RemoveEntry(e)
}

func (s *Synced[A, B]) Contains(a A, b B) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Contains(a, b)
}

func (s *Synced[A, B]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Clear()
}

func (s *Synced[A, B]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// Update runs fn with exclusive access to the underlying map, so that several
// mutations (a remove followed by an add, say) are observed as one.
// fn must not retain the map.
func (s *Synced[A, B]) Update(fn func(m *Map[A, B]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.m)
}

// Forward returns a live A → B view that takes the read lock on every call.
func (s *Synced[A, B]) Forward() View[A, B] {
	return View[A, B]{s: s.m.forward, rl: s.mu.RLocker()}
}

// Backward returns a live B → A view that takes the read lock on every call.
func (s *Synced[A, B]) Backward() View[B, A] {
	return View[B, A]{s: s.m.backward, rl: s.mu.RLocker()}
}

// All yields a snapshot of every entry in forward insertion order. The lock is
// released before the first entry is yielded.
func (s *Synced[A, B]) All() iter.Seq2[A, B] {
	return s.Forward().All()
}

func (s *Synced[A, B]) Entries() []Entry[A, B] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Entries()
}

func (s *Synced[A, B]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.String()
}
