// Package chainmap provides a generic key/value table that resolves collisions
// with separate chaining and grows by doubling its bucket array.
//
// Every key is mapped to a bucket with hash(key) % capacity. Keys that land in
// the same bucket are kept in insertion order inside that bucket. Before each
// insertion the table checks its load factor; once size/capacity reaches 0.7
// the bucket array is doubled and every entry is re-placed against the new
// capacity before the new entry goes in.
//
// Integer keys use their own value as the hash source:
//
//	m, err := chainmap.New[int, string]()
//	if err != nil {
//		return err
//	}
//	m.Insert(12, "Twelve")
//	v, ok := m.Lookup(12)
//
// Any other comparable key type can be used through NewComparable, which hashes
// with a seeded hash/maphash function unless WithHashFunc overrides it.
//
// The table has no internal locking. Callers sharing one instance between
// goroutines must serialize all access themselves. There is no removal
// operation.
package chainmap
