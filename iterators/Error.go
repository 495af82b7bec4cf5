package iterators

import (
	"github.com/adamluzsi/sequences"
)

// NewError returns an iterator that never has a next element and reports the given error cause.
//
// It is used when a source encounters a non recoverable error before it could produce anything,
// for example when a lazy constructor receives an invalid argument,
// so the failure surfaces through the regular Err() path of the iterator contract.
func NewError[V any](err error) sequences.Iterator[V] {
	return &errorIter[V]{err}
}

type errorIter[V any] struct {
	err error
}

func (i *errorIter[V]) Close() error {
	return nil
}

func (i *errorIter[V]) Next() bool {
	return false
}

func (i *errorIter[V]) Err() error {
	return i.err
}

func (i *errorIter[V]) Value() V {
	var v V
	return v
}
