package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Func wraps a pull function into the iterator contract.
// The function returns the next value and whether the production should continue.
// Func is the simplest way to represent generated, possibly unbounded sequences.
func Func[V any](next func() (V, bool)) sequences.Iterator[V] {
	return &funcIter[V]{next: next}
}

type funcIter[V any] struct {
	next func() (V, bool)

	done  bool
	value V
}

func (i *funcIter[V]) Close() error {
	i.done = true
	return nil
}

func (i *funcIter[V]) Err() error {
	return nil
}

func (i *funcIter[V]) Next() bool {
	if i.done {
		return false
	}

	v, ok := i.next()
	if !ok {
		i.done = true
		return false
	}

	i.value = v
	return true
}

func (i *funcIter[V]) Value() V {
	return i.value
}
