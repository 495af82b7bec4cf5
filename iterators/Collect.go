package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Collect drains the iterator into a slice and closes it.
func Collect[V any](i sequences.Iterator[V]) (vs []V, rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		vs = append(vs, i.Value())
	}

	if err := i.Err(); err != nil {
		return nil, err
	}

	return vs, nil
}
