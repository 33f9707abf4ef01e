// Package seqs provides lazy transforms over iter.Seq.
//
// Every function returns a new sequence and consumes its input only while the
// result is being ranged over. Sequences built from restartable inputs are
// restartable.
package seqs

import (
	"fmt"
	"iter"
	"strings"
)

// Yield returns a sequence holding v alone.
func Yield[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}

// OrEmpty returns seq, or an empty sequence if seq is nil.
func OrEmpty[T any](seq iter.Seq[T]) iter.Seq[T] {
	if seq == nil {
		return func(func(T) bool) {}
	}
	return seq
}

// Concat returns seq followed by elems.
func Concat[T any](seq iter.Seq[T], elems ...T) iter.Seq[T] {
	seq = OrEmpty(seq)
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
		}
		for _, v := range elems {
			if !yield(v) {
				return
			}
		}
	}
}

// SkipLast returns seq without its last element.
func SkipLast[T any](seq iter.Seq[T]) iter.Seq[T] {
	return SkipLastN(seq, 1)
}

// SkipLastN returns seq without its last n elements. It holds at most n
// elements back at any time. n <= 0 returns seq unchanged.
func SkipLastN[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	seq = OrEmpty(seq)
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		ring := make([]T, n)
		seen := 0
		for v := range seq {
			slot := seen % n
			if seen >= n && !yield(ring[slot]) {
				return
			}
			ring[slot] = v
			seen++
		}
	}
}

// Interleave alternates elements of a and b, starting with a: for {a,b,c,d}
// and {1,2,3} it yields a,1,b,2,c,3 then, if appendTail is set, d.
func Interleave[T any](a, b iter.Seq[T], appendTail bool) iter.Seq[T] {
	a, b = OrEmpty(a), OrEmpty(b)
	return func(yield func(T) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		va, okA := nextA()
		vb, okB := nextB()
		for okA && okB {
			if !yield(va) || !yield(vb) {
				return
			}
			va, okA = nextA()
			vb, okB = nextB()
		}
		if !appendTail {
			return
		}
		for ; okA; va, okA = nextA() {
			if !yield(va) {
				return
			}
		}
		for ; okB; vb, okB = nextB() {
			if !yield(vb) {
				return
			}
		}
	}
}

// SafeMap projects every element through fn, skipping those for which fn
// returns an error or panics. Skipped elements are reported to onErr, which may
// be nil.
func SafeMap[T, R any](seq iter.Seq[T], fn func(T) (R, error), onErr func(T, error)) iter.Seq[R] {
	seq = OrEmpty(seq)
	return func(yield func(R) bool) {
		for v := range seq {
			r, err := safeCall(fn, v)
			if err != nil {
				if onErr != nil {
					onErr(v, err)
				}
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

func safeCall[T, R any](fn func(T) (R, error), v T) (r R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = fmt.Errorf("panic: %w", e)
			} else {
				err = fmt.Errorf("panic: %v", rec)
			}
		}
	}()
	return fn(v)
}

// JoinCSV renders every element with fmt and joins them with commas.
func JoinCSV[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	first := true
	for v := range OrEmpty(seq) {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
