package chainmap

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket is a single chain. Entries are kept in the order they were placed.
type bucket[K comparable, V any] struct {
	entries []entry[K, V]
}

func (b *bucket[K, V]) find(key K) int {
	for i := range b.entries {
		if b.entries[i].key == key {
			return i
		}
	}

	return -1
}

// set overwrites the value of an equal key in place, or appends a new entry.
// Returns whether an entry was appended.
func (b *bucket[K, V]) set(key K, value V) bool {
	if i := b.find(key); i >= 0 {
		b.entries[i].value = value
		return false
	}

	b.entries = append(b.entries, entry[K, V]{key: key, value: value})

	return true
}

func (b *bucket[K, V]) len() int {
	return len(b.entries)
}
