package iterators

import (
	"github.com/adamluzsi/sequences"
)

// DropLast returns every element except the trailing n.
// Dropping more than the source holds yields an empty result.
// A negative n yields ErrNegativeCount before anything would be consumed.
//
// The implementation keeps a sliding window of n elements,
// so memory usage is bounded by n plus the size of the result.
func DropLast[V any](i sequences.Iterator[V], n int) ([]V, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	defer i.Close()

	var vs []V

	if n == 0 {
		for i.Next() {
			vs = append(vs, i.Value())
		}
		if err := i.Err(); err != nil {
			return nil, err
		}
		return vs, nil
	}

	var (
		window = make([]V, n)
		count  int
	)
	for i.Next() {
		pos := count % n
		if count >= n {
			vs = append(vs, window[pos])
		}
		window[pos] = i.Value()
		count++
	}

	if err := i.Err(); err != nil {
		return nil, err
	}

	return vs, nil
}
