// Package lazy provides sequence level views on top of the iterator contract.
//
// A view holds only its source and the adaptor parameters,
// constructing one costs O(1) and consumes nothing.
// Every Iterate call against a view wraps a fresh iterator of the source,
// so a view can be traversed any number of times
// and each traversal carries an independent cursor state.
package lazy

import (
	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

const (
	// ErrSingleUse is reported when a single use sequence is traversed a second time.
	ErrSingleUse sequences.Error = "SingleUse"
)

// FromSlice exposes a slice as a multi pass sequence.
func FromSlice[V any](vs []V) sequences.Sequence[V] {
	return sequences.SequenceFunc[V](func() sequences.Iterator[V] {
		return iterators.Slice(vs)
	})
}

// FromFunc exposes an iterator factory as a sequence.
// The factory must return an independent iterator on every call.
func FromFunc[V any](factory func() sequences.Iterator[V]) sequences.Sequence[V] {
	return sequences.SequenceFunc[V](factory)
}

// Prefix returns a view that yields at most maxLength elements of the sequence.
func Prefix[V any](seq sequences.Sequence[V], maxLength int) sequences.Sequence[V] {
	return sequences.SequenceFunc[V](func() sequences.Iterator[V] {
		return iterators.LazyPrefix(seq.Iterate(), maxLength)
	})
}

// DropFirst returns a view that skips the first n elements of the sequence.
func DropFirst[V any](seq sequences.Sequence[V], n int) sequences.Sequence[V] {
	return sequences.SequenceFunc[V](func() sequences.Iterator[V] {
		return iterators.LazyDropFirst(seq.Iterate(), n)
	})
}

// Enumerate returns a view that pairs each element of the sequence with its offset,
// where the offset counting is seeded with the from value.
func Enumerate[V any](seq sequences.Sequence[V], from int) sequences.Sequence[iterators.Enumerated[V]] {
	return sequences.SequenceFunc[iterators.Enumerated[V]](func() sequences.Iterator[iterators.Enumerated[V]] {
		return iterators.EnumerateFrom(seq.Iterate(), from)
	})
}
