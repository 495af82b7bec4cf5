package iterators

import (
	"github.com/adamluzsi/sequences"
)

// LazyPrefix returns an iterator that yields at most maxLength elements of the source.
// Construction costs O(1) and consumes nothing,
// each Next call before the limit pulls exactly one element from the source,
// and once the limit is reached the source is not pulled again.
//
// A negative maxLength is reported through the returned iterator's Err method,
// still without consuming anything.
func LazyPrefix[V any](i sequences.Iterator[V], maxLength int) sequences.Iterator[V] {
	if maxLength < 0 {
		return NewError[V](ErrNegativeCount)
	}
	return &lazyPrefixIter[V]{src: i, limit: maxLength}
}

type lazyPrefixIter[V any] struct {
	src   sequences.Iterator[V]
	limit int

	yielded int
	done    bool
}

func (i *lazyPrefixIter[V]) Close() error {
	return i.src.Close()
}

func (i *lazyPrefixIter[V]) Err() error {
	return i.src.Err()
}

func (i *lazyPrefixIter[V]) Next() bool {
	if i.done {
		return false
	}

	if i.limit <= i.yielded {
		i.done = true
		return false
	}

	if !i.src.Next() {
		i.done = true
		return false
	}

	i.yielded++
	return true
}

func (i *lazyPrefixIter[V]) Value() V {
	return i.src.Value()
}
