package iterators

import (
	"bufio"
	"io"

	"github.com/adamluzsi/sequences"
)

// NewScanner exposes the lines of a reader through the iterator contract.
// When the reader also implements io.Closer, closing the iterator closes the reader.
func NewScanner[T string | []byte](r io.Reader) sequences.Iterator[T] {
	return &scannerIter[T]{
		scanner: bufio.NewScanner(r),
		reader:  r,
	}
}

type scannerIter[T string | []byte] struct {
	scanner *bufio.Scanner
	reader  io.Reader

	value T
}

func (i *scannerIter[T]) Close() error {
	rc, ok := i.reader.(io.ReadCloser)
	if !ok {
		return nil
	}

	return rc.Close()
}

func (i *scannerIter[T]) Err() error {
	return i.scanner.Err()
}

func (i *scannerIter[T]) Next() bool {
	if i.scanner.Err() != nil {
		return false
	}
	if !i.scanner.Scan() {
		return false
	}
	var v T
	switch any(v).(type) {
	case string:
		i.value = T(i.scanner.Text())
	case []byte:
		i.value = T(i.scanner.Bytes())
	}
	return true
}

func (i *scannerIter[T]) Value() T {
	return i.value
}
