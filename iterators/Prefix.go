package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Prefix consumes at most maxLength elements from the iterator and returns them in order.
// When the source holds fewer elements than maxLength, all of them are returned.
// A negative maxLength yields ErrNegativeCount before anything would be consumed.
//
// Prefix materializes its result, so after it returns,
// the returned slice no longer depends on the source in any way.
// When the source should stay lazy, use LazyPrefix instead.
func Prefix[V any](i sequences.Iterator[V], maxLength int) ([]V, error) {
	if maxLength < 0 {
		return nil, ErrNegativeCount
	}

	defer i.Close()

	var vs []V
	for len(vs) < maxLength && i.Next() {
		vs = append(vs, i.Value())
	}

	if err := i.Err(); err != nil {
		return nil, err
	}

	return vs, nil
}
