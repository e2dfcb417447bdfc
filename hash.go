package chainmap

import (
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// HashFunc projects a key onto the non-negative integer its bucket is derived from.
type HashFunc[K comparable] func(K) uint64

// IntegerHash uses the key's own value as its hash source.
// Negative values are taken by their two's-complement bit pattern, so the
// result is deterministic and never negative.
func IntegerHash[K constraints.Integer](k K) uint64 {
	return uint64(k)
}

// MakeDefaultHashFunc returns a maphash based hash with a fresh random seed.
// The seed is fixed for the lifetime of the returned function, so a table keeps
// placing a key in the same bucket until its capacity changes.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
