package iterators

import (
	"github.com/adamluzsi/sequences"
)

// PrefixWhile returns the maximal leading run of elements for which the predicate reports true.
// The predicate is evaluated left to right and the scan stops at the first element where it reports false,
// that element is excluded from the result and no further element is consumed.
//
// An error returned by the predicate aborts the operation and propagates unchanged,
// no partial result is retained on this path.
func PrefixWhile[V any](i sequences.Iterator[V], pred func(V) (bool, error)) ([]V, error) {
	defer i.Close()

	var vs []V
	for i.Next() {
		ok, err := pred(i.Value())
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		vs = append(vs, i.Value())
	}

	if err := i.Err(); err != nil {
		return nil, err
	}

	return vs, nil
}
