package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences"
)

// Counting is an unbounded source that produces 0, 1, 2, ...
// and records how many times it was pulled,
// so the laziness of the wrappers can be asserted.
type Counting struct {
	Pulls int

	closed bool
	value  int
	next   int
}

func (c *Counting) Close() error {
	c.closed = true
	return nil
}

func (c *Counting) Err() error {
	return nil
}

func (c *Counting) Next() bool {
	if c.closed {
		return false
	}

	c.Pulls++
	c.value = c.next
	c.next++
	return true
}

func (c *Counting) Value() int {
	return c.value
}

// assertExhaustionIsFinal verifies the contract that once Next returned false,
// every further call keeps returning false.
func assertExhaustionIsFinal[V any](tb testing.TB, i sequences.Iterator[V]) {
	tb.Helper()

	for i.Next() {
	}

	require.False(tb, i.Next())
	require.False(tb, i.Next())
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
