package iterators

import (
	"github.com/adamluzsi/sequences"
)

// First returns the first element of the iterator and closes it.
// On an empty source it returns sequences.ErrNotFound.
func First[V any](i sequences.Iterator[V]) (v V, rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	if !i.Next() {
		if err := i.Err(); err != nil {
			return v, err
		}
		return v, sequences.ErrNotFound
	}

	return i.Value(), nil
}
