package iterators

import (
	"github.com/adamluzsi/sequences"
)

// NewMock wraps an iterator with stub points for each method of the contract,
// which makes testing failure paths of iterator consumers easy.
func NewMock[V any](i sequences.Iterator[V]) *Mock[V] {
	return &Mock[V]{
		Iterator:  i,
		StubValue: i.Value,
		StubClose: i.Close,
		StubNext:  i.Next,
		StubErr:   i.Err,
	}
}

type Mock[V any] struct {
	Iterator  sequences.Iterator[V]
	StubValue func() V
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error
}

func (m *Mock[V]) Close() error {
	return m.StubClose()
}

func (m *Mock[V]) Next() bool {
	return m.StubNext()
}

func (m *Mock[V]) Err() error {
	return m.StubErr()
}

func (m *Mock[V]) Value() V {
	return m.StubValue()
}
