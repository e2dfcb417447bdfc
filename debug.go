package chainmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dump writes a human readable listing of the table, one line per non-empty
// bucket:
//
//	Bucket 2: (2, Two)(12, Twelve)
//
// The output is meant for debugging and is not a stable format.
func (t *table[K, V]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i := range t.buckets {
		b := &t.buckets[i]
		if b.len() == 0 {
			continue
		}

		fmt.Fprintf(bw, "Bucket %d: ", i)
		for _, e := range b.entries {
			fmt.Fprintf(bw, "(%v, %v)", e.key, e.value)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func (t *table[K, V]) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb)

	return sb.String()
}
