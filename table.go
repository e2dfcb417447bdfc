package chainmap

import (
	"fmt"
	"iter"
)

const (
	// DefaultCapacity is the number of buckets a table starts with when
	// WithCapacity is not given.
	DefaultCapacity = 10

	// The table grows once size/capacity reaches maxLoadNum/maxLoadDen (0.7).
	// Kept as a fraction so the check is exact integer arithmetic.
	maxLoadNum = 7
	maxLoadDen = 10
)

type table[K comparable, V any] struct {
	buckets []bucket[K, V]

	capacity int
	size     int
	grows    int

	hashFunc HashFunc[K]
}

type Option[K comparable, V any] func(t *table[K, V])

// Sets the initial number of buckets. It must be positive.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.capacity = capacity
	}
}

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(defaultHash HashFunc[K], opts ...Option[K, V]) error {
	t.capacity = DefaultCapacity
	t.hashFunc = defaultHash

	for _, opt := range opts {
		opt(t)
	}

	if t.capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, t.capacity)
	}

	if t.hashFunc == nil {
		return ErrNilHashFunc
	}

	t.buckets = make([]bucket[K, V], t.capacity)
	t.size = 0
	t.grows = 0

	return nil
}

// index is recomputed on every call, so it always follows the current capacity.
func (t *table[K, V]) index(key K) int {
	return int(t.hashFunc(key) % uint64(t.capacity))
}

// needsGrow counts the entry about to be placed, so the load factor never
// reaches 0.7 after an insertion returns.
func (t *table[K, V]) needsGrow() bool {
	return (t.size+1)*maxLoadDen >= t.capacity*maxLoadNum
}

// insert places the key, overwriting the value of an existing equal key.
// Returns whether a new entry was added.
func (t *table[K, V]) insert(key K, value V) bool {
	// Growth happens before the new entry is placed, never after.
	if t.needsGrow() {
		t.grow()
	}

	if !t.buckets[t.index(key)].set(key, value) {
		return false
	}

	t.size++

	return true
}

func (t *table[K, V]) lookup(key K) (V, bool) {
	b := &t.buckets[t.index(key)]
	if i := b.find(key); i >= 0 {
		return b.entries[i].value, true
	}

	var zero V

	return zero, false
}

// grow doubles the capacity and re-places every entry.
// The new bucket array is filled completely before it replaces the old one,
// so the table is never observed half-migrated.
func (t *table[K, V]) grow() {
	newCapacity := t.capacity * 2
	buckets := make([]bucket[K, V], newCapacity)

	for i := range t.buckets {
		for _, e := range t.buckets[i].entries {
			// Keys are already unique, no need to scan the target chain.
			idx := int(t.hashFunc(e.key) % uint64(newCapacity))
			buckets[idx].entries = append(buckets[idx].entries, e)
		}
	}

	t.buckets = buckets
	t.capacity = newCapacity
	t.grows++
}

// all yields every entry in bucket order, then in insertion order within a bucket.
func (t *table[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.buckets {
			for _, e := range t.buckets[i].entries {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (t *table[K, V]) Len() int {
	return t.size
}

func (t *table[K, V]) Capacity() int {
	return t.capacity
}
