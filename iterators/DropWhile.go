package iterators

import (
	"github.com/adamluzsi/sequences"
)

// DropWhile returns the elements starting at the first one for which the predicate reports false.
// The predicate is evaluated left to right and is not called again once it reported false.
// When the predicate never reports false, the result is empty.
//
// An error returned by the predicate aborts the operation and propagates unchanged,
// no partial result is retained on this path.
func DropWhile[V any](i sequences.Iterator[V], pred func(V) (bool, error)) ([]V, error) {
	defer i.Close()

	var (
		vs       []V
		dropping = true
	)
	for i.Next() {
		if dropping {
			ok, err := pred(i.Value())
			if err != nil {
				return nil, err
			}
			if ok {
				continue
			}
			dropping = false
		}
		vs = append(vs, i.Value())
	}

	if err := i.Err(); err != nil {
		return nil, err
	}

	return vs, nil
}
