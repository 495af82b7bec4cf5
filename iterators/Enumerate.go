package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Enumerated pairs a produced element with its position in the traversal.
// The offset is a pure position counter,
// it is independent of any index type the source itself may have.
type Enumerated[V any] struct {
	Offset int
	Value  V
}

// Enumerate wraps the iterator so each produced element is paired with its offset, counted from zero.
func Enumerate[V any](i sequences.Iterator[V]) sequences.Iterator[Enumerated[V]] {
	return EnumerateFrom(i, 0)
}

// EnumerateFrom wraps the iterator so each produced element is paired with its offset,
// where the counting is seeded with the given start value
// and increments by one on every successful production.
// Exhaustion of the source exhausts the wrapper right away.
func EnumerateFrom[V any](i sequences.Iterator[V], start int) sequences.Iterator[Enumerated[V]] {
	return &enumerateIter[V]{src: i, offset: start}
}

type enumerateIter[V any] struct {
	src    sequences.Iterator[V]
	offset int

	value Enumerated[V]
}

func (i *enumerateIter[V]) Close() error {
	return i.src.Close()
}

func (i *enumerateIter[V]) Err() error {
	return i.src.Err()
}

func (i *enumerateIter[V]) Next() bool {
	if !i.src.Next() {
		return false
	}

	i.value = Enumerated[V]{Offset: i.offset, Value: i.src.Value()}
	i.offset++
	return true
}

func (i *enumerateIter[V]) Value() Enumerated[V] {
	return i.value
}
