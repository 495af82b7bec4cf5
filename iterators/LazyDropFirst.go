package iterators

import (
	"github.com/adamluzsi/sequences"
)

// LazyDropFirst returns an iterator that skips the first n elements of the source.
// Construction costs O(1) and consumes nothing,
// the skipping happens on the first Next call against the returned iterator.
// When the source exhausts during the skipping, the returned iterator reports exhaustion right away.
//
// A negative n is reported through the returned iterator's Err method,
// still without consuming anything.
func LazyDropFirst[V any](i sequences.Iterator[V], n int) sequences.Iterator[V] {
	if n < 0 {
		return NewError[V](ErrNegativeCount)
	}
	return &lazyDropFirstIter[V]{src: i, n: n}
}

type lazyDropFirstIter[V any] struct {
	src sequences.Iterator[V]
	n   int

	skipped bool
	done    bool
}

func (i *lazyDropFirstIter[V]) Close() error {
	return i.src.Close()
}

func (i *lazyDropFirstIter[V]) Err() error {
	return i.src.Err()
}

func (i *lazyDropFirstIter[V]) Next() bool {
	if i.done {
		return false
	}

	if !i.skipped {
		i.skipped = true
		for skipped := 0; skipped < i.n; skipped++ {
			if !i.src.Next() {
				i.done = true
				return false
			}
		}
	}

	if !i.src.Next() {
		i.done = true
		return false
	}

	return true
}

func (i *lazyDropFirstIter[V]) Value() V {
	return i.src.Value()
}
