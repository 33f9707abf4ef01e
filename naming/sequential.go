// Package naming hands out unique names derived from a base name.
package naming

import (
	"strconv"
	"sync"
)

// Sequential numbers repeated requests for the same base name. It is safe for
// concurrent use.
type Sequential struct {
	mu       sync.Mutex
	names    map[string]int
	skipZero bool
}

// NewSequential returns a Sequential. With skipZero the first name is the bare
// base name, otherwise it is suffixed with 0.
func NewSequential(skipZero bool) *Sequential {
	return &Sequential{
		names:    make(map[string]int),
		skipZero: skipZero,
	}
}

// Next returns the next unused name for name.
func (s *Sequential) Next(name string) string {
	s.mu.Lock()
	n := s.names[name]
	s.names[name] = n + 1
	s.mu.Unlock()

	if n == 0 && s.skipZero {
		return name
	}
	return name + strconv.Itoa(n)
}
