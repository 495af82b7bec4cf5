package sequences

import (
	"io"
)

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	//
	// After Next returned false once, it must keep returning false on every further call.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// Sequence represents a source that can be traversed.
// Each Iterate call must return an independent Iterator with its own fresh cursor state,
// so the same Sequence value can be traversed multiple times.
// Sources that can only be consumed once should not be exposed as a Sequence directly,
// use lazy.Once to make the single-use property explicit.
type Sequence[V any] interface {
	Iterate() Iterator[V]
}

// SequenceFunc enables to use an anonymous function as a valid Sequence.
type SequenceFunc[V any] func() Iterator[V]

// Iterate proxy the call to the wrapped function.
func (fn SequenceFunc[V]) Iterate() Iterator[V] {
	return fn()
}
