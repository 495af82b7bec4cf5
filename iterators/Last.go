package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Last drains the iterator and returns its final element.
// On an empty source it returns sequences.ErrNotFound.
func Last[V any](i sequences.Iterator[V]) (v V, rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	iterated := false

	for i.Next() {
		iterated = true
		v = i.Value()
	}

	if err := i.Err(); err != nil {
		return v, err
	}

	if !iterated {
		return v, sequences.ErrNotFound
	}

	return v, nil
}
