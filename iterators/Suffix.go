package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Suffix consumes the whole iterator and returns its last maxLength elements, order preserved.
// When the source holds fewer elements than maxLength, all of them are returned.
// A negative maxLength yields ErrNegativeCount before anything would be consumed.
//
// The implementation keeps a ring buffer of maxLength elements,
// the source is never buffered in full.
func Suffix[V any](i sequences.Iterator[V], maxLength int) ([]V, error) {
	if maxLength < 0 {
		return nil, ErrNegativeCount
	}

	defer i.Close()

	if maxLength == 0 {
		return nil, nil
	}

	var (
		window = make([]V, maxLength)
		count  int
	)
	for i.Next() {
		window[count%maxLength] = i.Value()
		count++
	}

	if err := i.Err(); err != nil {
		return nil, err
	}

	length := count
	if maxLength < length {
		length = maxLength
	}

	vs := make([]V, 0, length)
	for index := 0; index < length; index++ {
		vs = append(vs, window[(count-length+index)%maxLength])
	}

	return vs, nil
}
