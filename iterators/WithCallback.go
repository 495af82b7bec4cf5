package iterators

import (
	"io"

	"github.com/adamluzsi/sequences"
)

// WithCallback decorates the iterator with hooks.
// Currently the closing of the iterator can be intercepted with it.
func WithCallback[V any](i sequences.Iterator[V], c Callback) sequences.Iterator[V] {
	return &CallbackIterator[V]{Iterator: i, Callback: c}
}

type Callback struct {
	OnClose func(io.Closer) error
}

type CallbackIterator[V any] struct {
	sequences.Iterator[V]
	Callback
}

func (i *CallbackIterator[V]) Close() error {
	if i.Callback.OnClose != nil {
		return i.Callback.OnClose(i.Iterator)
	}
	return i.Iterator.Close()
}
