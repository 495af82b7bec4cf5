package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Filter wraps the iterator so only elements matching the selector are yielded.
// The filtering is lazy, each Next call pulls the source until a match is found or it exhausts.
func Filter[V any](i sequences.Iterator[V], match func(V) bool) sequences.Iterator[V] {
	return &filterIter[V]{src: i, match: match}
}

type filterIter[V any] struct {
	src   sequences.Iterator[V]
	match func(V) bool

	value V
}

func (i *filterIter[V]) Close() error {
	return i.src.Close()
}

func (i *filterIter[V]) Err() error {
	return i.src.Err()
}

func (i *filterIter[V]) Next() bool {
	for i.src.Next() {
		if i.match(i.src.Value()) {
			i.value = i.src.Value()
			return true
		}
	}
	return false
}

func (i *filterIter[V]) Value() V {
	return i.value
}
