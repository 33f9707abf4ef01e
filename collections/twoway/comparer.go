package twoway

import (
	"bytes"
	"fmt"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
)

// Comparer is the equality and hashing strategy of one key space.
// Implementations must guarantee that Equal(a, b) implies Hash(a) == Hash(b).
type Comparer[K any] interface {
	Equal(a, b K) bool
	Hash(k K) uint64
}

// Cloner is implemented by Comparers whose keys share mutable memory with the
// caller. A Map stores a clone of every such key and hands out clones, so
// neither the caller's copy nor one read from a View aliases the stored key.
type Cloner[K any] interface {
	Clone(k K) K
}

func clonerOf[K any](cmp Comparer[K]) func(K) K {
	if c, ok := cmp.(Cloner[K]); ok {
		return c.Clone
	}
	return nil
}

// ComparerFunc builds a Comparer from an equality and a hash function.
func ComparerFunc[K any](equal func(a, b K) bool, hash func(k K) uint64) Comparer[K] {
	if equal == nil || hash == nil {
		panic("twoway: ComparerFunc requires both equal and hash")
	}
	return funcComparer[K]{equal: equal, hash: hash}
}

type funcComparer[K any] struct {
	equal func(a, b K) bool
	hash  func(k K) uint64
}

func (c funcComparer[K]) Equal(a, b K) bool { return c.equal(a, b) }
func (c funcComparer[K]) Hash(k K) uint64   { return c.hash(k) }

// Default compares keys with == and hashes them with a per-comparer seed.
func Default[K comparable]() Comparer[K] {
	return defaultComparer[K]{seed: maphash.MakeSeed()}
}

type defaultComparer[K comparable] struct {
	seed maphash.Seed
}

func (defaultComparer[K]) Equal(a, b K) bool  { return a == b }
func (c defaultComparer[K]) Hash(k K) uint64 { return maphash.Comparable(c.seed, k) }

// Strings compares strings byte for byte.
func Strings() Comparer[string] {
	return stringComparer{}
}

type stringComparer struct{}

func (stringComparer) Equal(a, b string) bool { return a == b }
func (stringComparer) Hash(k string) uint64   { return xxhash.Sum64String(k) }

// FoldStrings compares strings case-insensitively using Unicode case folding
// ("ΣΊΣΥΦΟΣ" and "Σίσυφος" are equal).
func FoldStrings() Comparer[string] {
	return foldComparer{}
}

type foldComparer struct{}

// Casers are not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

func (foldComparer) Equal(a, b string) bool { return a == b || fold(a) == fold(b) }
func (foldComparer) Hash(k string) uint64   { return xxhash.Sum64String(fold(k)) }

// Bytes compares byte slices by content. Keys are cloned on the way in and out.
func Bytes() Comparer[[]byte] {
	return bytesComparer{}
}

type bytesComparer struct{}

func (bytesComparer) Equal(a, b []byte) bool { return bytes.Equal(a, b) }
func (bytesComparer) Hash(k []byte) uint64   { return xxhash.Sum64(k) }
func (bytesComparer) Clone(k []byte) []byte  { return bytes.Clone(k) }

// Stringers compares keys by their String rendering. It lets types that are
// not comparable (slices inside structs, for instance) serve as keys.
func Stringers[K fmt.Stringer]() Comparer[K] {
	return stringerComparer[K]{}
}

type stringerComparer[K fmt.Stringer] struct{}

func (stringerComparer[K]) Equal(a, b K) bool { return a.String() == b.String() }
func (stringerComparer[K]) Hash(k K) uint64   { return xxhash.Sum64String(k.String()) }
