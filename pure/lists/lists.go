// Package lists holds slice helpers that copy rather than alias their input.
package lists

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
)

var (
	ErrNegativeMargin = errors.New("negative margin")
	ErrNegativeCount  = errors.New("negative count")
	ErrSampleTooLarge = errors.New("sample larger than source")
)

// Splice returns a copy of s without its first preMargin and last postMargin
// elements. Overlapping margins give an empty slice.
func Splice[S ~[]T, T any](s S, preMargin, postMargin int) (S, error) {
	if preMargin < 0 || postMargin < 0 {
		return nil, fmt.Errorf("%w: pre %d, post %d", ErrNegativeMargin, preMargin, postMargin)
	}
	end := len(s) - postMargin
	if preMargin >= end {
		return S{}, nil
	}
	return append(S{}, s[preMargin:end]...), nil
}

// TakeRandom returns n distinct elements of s in random order. A nil rnd uses
// the global source.
func TakeRandom[S ~[]T, T any](s S, n int, rnd *rand.Rand) (S, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	case n > len(s):
		return nil, fmt.Errorf("%w: %d of %d", ErrSampleTooLarge, n, len(s))
	}
	perm := rand.Perm
	if rnd != nil {
		perm = rnd.Perm
	}
	out := make(S, 0, n)
	for _, i := range perm(len(s))[:n] {
		out = append(out, s[i])
	}
	return out, nil
}

// Partition yields consecutive chunks of s holding size elements each; the
// last chunk may be shorter. Chunks are copies. It panics if size < 1.
func Partition[S ~[]T, T any](s S, size int) iter.Seq[S] {
	if size < 1 {
		panic(fmt.Errorf("invalid partition size: %d", size))
	}
	return func(yield func(S) bool) {
		for start := 0; start < len(s); start += size {
			end := min(start+size, len(s))
			if !yield(append(S{}, s[start:end]...)) {
				return
			}
		}
	}
}
