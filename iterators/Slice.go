package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Slice returns an iterator that traverses the given slice in order.
func Slice[V any](vs []V) sequences.Iterator[V] {
	return &sliceIter[V]{values: vs}
}

type sliceIter[V any] struct {
	values []V

	closed bool
	index  int
	value  V
}

func (i *sliceIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter[V]) Err() error {
	return nil
}

func (i *sliceIter[V]) Next() bool {
	if i.closed {
		return false
	}

	if len(i.values) <= i.index {
		return false
	}

	i.value = i.values[i.index]
	i.index++
	return true
}

func (i *sliceIter[V]) Value() V {
	return i.value
}
