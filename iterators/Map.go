package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you read lines from an input stream,
// and then you map the line content to a certain data structure,
// in order to not expose what steps needed in order to unserialize the input stream,
// thus protect the business rules from this information.
//
// The transformation is lazy, it runs when the consumer pulls the next value.
// An error returned by the transform surfaces through the Err method and stops the iteration,
// it is never wrapped and the iteration is never retried.
func Map[From, To any](i sequences.Iterator[From], transform func(From) (To, error)) sequences.Iterator[To] {
	return &mapIter[From, To]{src: i, transform: transform}
}

type mapIter[From, To any] struct {
	src       sequences.Iterator[From]
	transform func(From) (To, error)

	value To
	err   error
}

func (i *mapIter[From, To]) Close() error {
	return i.src.Close()
}

func (i *mapIter[From, To]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *mapIter[From, To]) Next() bool {
	if i.err != nil {
		return false
	}

	if !i.src.Next() {
		return false
	}

	v, err := i.transform(i.src.Value())
	if err != nil {
		i.err = err
		return false
	}

	i.value = v
	return true
}

func (i *mapIter[From, To]) Value() To {
	return i.value
}
