package chainmap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Set is a keys-only variant of Map. It follows the same chaining and growth
// rules, it just doesn't store values.
type Set[K comparable] struct {
	table[K, struct{}]
}

// Returns a new set of integers, hashed by their own value.
func NewSet[K constraints.Integer](opts ...Option[K, struct{}]) (*Set[K], error) {
	return NewComparableSet(append([]Option[K, struct{}]{WithHashFunc[K, struct{}](IntegerHash[K])}, opts...)...)
}

// Returns a new set for any comparable key type.
func NewComparableSet[K comparable](opts ...Option[K, struct{}]) (*Set[K], error) {
	var s Set[K]
	if err := s.init(MakeDefaultHashFunc[K](), opts...); err != nil {
		return nil, err
	}

	return &s, nil
}

// Puts a key in the set. Returns whether the key is new.
func (s *Set[K]) Put(key K) bool {
	return s.insert(key, struct{}{})
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.lookup(key)
	return ok
}

// All iterates over every key in bucket order, then insertion order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.all() {
			if !yield(k) {
				return
			}
		}
	}
}
