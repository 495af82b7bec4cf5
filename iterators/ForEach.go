package iterators

import (
	"github.com/adamluzsi/sequences"
)

// ForEach calls the block with every element of the iterator and closes it.
// An error returned by the block aborts the iteration and propagates unchanged.
func ForEach[V any](i sequences.Iterator[V], blk func(V) error) (rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		if err := blk(i.Value()); err != nil {
			return err
		}
	}

	return i.Err()
}
