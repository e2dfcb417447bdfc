package chainmap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Map is a key/value table using separate chaining.
// It doubles its bucket array whenever the load factor reaches 0.7 before an
// insertion, so chains stay short on average. Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map keyed by integers, hashed by their own value.
func New[K constraints.Integer, V any](opts ...Option[K, V]) (*Map[K, V], error) {
	return NewComparable(append([]Option[K, V]{WithHashFunc[K, V](IntegerHash[K])}, opts...)...)
}

// Returns a new map for any comparable key type.
// Keys are hashed with MakeDefaultHashFunc unless WithHashFunc is given.
func NewComparable[K comparable, V any](opts ...Option[K, V]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(MakeDefaultHashFunc[K](), opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Inserts a key or overwrites the value of an existing one.
// Returns whether the key is new.
func (m *Map[K, V]) Insert(key K, value V) bool {
	return m.insert(key, value)
}

// Returns the value stored for a key and whether the key was found.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	return m.lookup(key)
}

// Checks whether a key is in the map.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.lookup(key)
	return ok
}

// All iterates over every entry in bucket order, then insertion order.
// The map must not be modified while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.all()
}

// Keys iterates over every key in the same order as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.all() {
			if !yield(k) {
				return
			}
		}
	}
}
