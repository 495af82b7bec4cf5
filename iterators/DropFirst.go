package iterators

import (
	"github.com/adamluzsi/sequences"
)

// DropFirst returns every element that remains after skipping the first n.
// Skipping more than the source holds yields an empty result.
// A negative n yields ErrNegativeCount before anything would be consumed.
//
// When the skipping should stay lazy, use LazyDropFirst instead.
func DropFirst[V any](i sequences.Iterator[V], n int) ([]V, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	defer i.Close()

	for skipped := 0; skipped < n; skipped++ {
		if !i.Next() {
			return nil, i.Err()
		}
	}

	var vs []V
	for i.Next() {
		vs = append(vs, i.Value())
	}

	if err := i.Err(); err != nil {
		return nil, err
	}

	return vs, nil
}
