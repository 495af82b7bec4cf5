package iterators

import (
	"sync"

	"github.com/adamluzsi/sequences"
)

// WithConcurrentAccess allows you to convert any iterator into one that is safe to use from concurrent access.
// The caveat with this, that this protection only allows 1 Value call for each Next call.
func WithConcurrentAccess[V any](i sequences.Iterator[V]) *ConcurrentAccessIterator[V] {
	return &ConcurrentAccessIterator[V]{src: i}
}

type ConcurrentAccessIterator[V any] struct {
	src   sequences.Iterator[V]
	mutex sync.Mutex
}

func (i *ConcurrentAccessIterator[V]) Close() error {
	return i.src.Close()
}

func (i *ConcurrentAccessIterator[V]) Err() error {
	return i.src.Err()
}

func (i *ConcurrentAccessIterator[V]) Next() bool {
	i.mutex.Lock()
	if !i.src.Next() {
		i.mutex.Unlock()
		return false
	}
	return true
}

func (i *ConcurrentAccessIterator[V]) Value() V {
	defer i.mutex.Unlock()
	return i.src.Value()
}
