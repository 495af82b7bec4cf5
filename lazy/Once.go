package lazy

import (
	"sync"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

// Once adapts a single use iterator into a sequence.
// The first Iterate call hands out the wrapped iterator,
// every later call returns an iterator that reports ErrSingleUse,
// which makes re-traversal of a single pass source an explicit error
// instead of an undefined behavior.
func Once[V any](i sequences.Iterator[V]) sequences.Sequence[V] {
	return &onceSequence[V]{iterator: i}
}

type onceSequence[V any] struct {
	mutex    sync.Mutex
	iterator sequences.Iterator[V]
	used     bool
}

func (seq *onceSequence[V]) Iterate() sequences.Iterator[V] {
	seq.mutex.Lock()
	defer seq.mutex.Unlock()

	if seq.used {
		return iterators.NewError[V](ErrSingleUse)
	}

	seq.used = true
	return seq.iterator
}
