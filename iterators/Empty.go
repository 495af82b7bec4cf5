package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Empty iterator is used to represent nil result with Null object pattern
func Empty[V any]() sequences.Iterator[V] {
	return emptyIter[V]{}
}

type emptyIter[V any] struct{}

func (i emptyIter[V]) Close() error {
	return nil
}

func (i emptyIter[V]) Next() bool {
	return false
}

func (i emptyIter[V]) Err() error {
	return nil
}

func (i emptyIter[V]) Value() V {
	var v V
	return v
}
