package chainmap

type Stats struct {
	Size         int
	Capacity     int
	UsedBuckets  int
	LongestChain int
	Grows        int
	LoadFactor   float32
}

// Stats walks every bucket once. It does not modify the table.
func (t *table[K, V]) Stats() Stats {
	stats := Stats{
		Size:       t.size,
		Capacity:   t.capacity,
		Grows:      t.grows,
		LoadFactor: float32(t.size) / float32(t.capacity),
	}

	for i := range t.buckets {
		n := t.buckets[i].len()
		if n == 0 {
			continue
		}

		stats.UsedBuckets++
		stats.LongestChain = max(stats.LongestChain, n)
	}

	return stats
}
