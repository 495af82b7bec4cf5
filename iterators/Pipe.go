package iterators

// Pipe returns a sender and a receiver pair.
// The sender side feeds values from a producer goroutine,
// the receiver side exposes them through the iterator contract.
// This can be used with resources where the production is event driven or streamed.
func Pipe[V any]() (*PipeIn[V], *PipeOut[V]) {
	pipe := &pipe[V]{
		values: make(chan V),
		done:   make(chan struct{}, 1),
		errs:   make(chan error, 1),
	}
	return &PipeIn[V]{pipe: pipe}, &PipeOut[V]{pipe: pipe}
}

type pipe[V any] struct {
	values chan V
	done   chan struct{}
	errs   chan error
}

// PipeOut implements the iterator contract while it's still being able to receive values, used for streaming
type PipeOut[V any] struct {
	pipe *pipe[V]

	value   V
	lastErr error
}

// Close sends a signal back that no more value should be sent because receiver stop listening
func (i *PipeOut[V]) Close() error {
	defer func() { recover() }()
	i.pipe.done <- struct{}{}
	close(i.pipe.done)
	return nil
}

// Next blocks until the sender provides the next value or closes the pipe.
func (i *PipeOut[V]) Next() bool {
	v, ok := <-i.pipe.values
	if !ok {
		return false
	}

	i.value = v
	return true
}

// Err returns an error object that the pipe sender want to present for the pipe receiver
func (i *PipeOut[V]) Err() error {
	err, ok := <-i.pipe.errs
	if ok {
		i.lastErr = err
	}

	return i.lastErr
}

// Value returns the current value in the iterator.
func (i *PipeOut[V]) Value() V {
	return i.value
}

// PipeIn provides access to feed a pipe receiver with values
type PipeIn[V any] struct {
	pipe *pipe[V]
}

// Value sends a value to the receiver side,
// and reports false if no more value is expected because the receiver stopped listening.
func (f *PipeIn[V]) Value(v V) (ok bool) {
	select {
	case f.pipe.values <- v:
		return true
	case <-f.pipe.done:
		return false
	}
}

// Error sends an error object to the receiver side, so it will be accessible with the iterator Err method.
func (f *PipeIn[V]) Error(err error) {
	if err == nil {
		return
	}

	defer func() { recover() }()
	f.pipe.errs <- err
}

// Close closes the feed and the err channel, which eventually notify the receiver that no more value expected
func (f *PipeIn[V]) Close() error {
	defer func() { recover() }()
	close(f.pipe.values)
	close(f.pipe.errs)
	return nil
}
