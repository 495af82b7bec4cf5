package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/fixtures"
	"github.com/adamluzsi/sequences/iterators"
	"github.com/adamluzsi/sequences/lazy"
)

// countingSource is a multi pass source that records
// how many elements were produced across all of its traversals.
type countingSource struct {
	Pulls int
}

func (src *countingSource) Iterate() sequences.Iterator[int] {
	var n int
	return iterators.Func(func() (int, bool) {
		src.Pulls++
		v := n
		n++
		return v, true
	})
}

func TestFromSlice(t *testing.T) {
	t.Parallel()

	input := fixtures.Ints(fixtures.Number(3, 7))
	seq := lazy.FromSlice(input)

	t.Run("it can be traversed multiple times", func(t *testing.T) {
		for round := 0; round < 2; round++ {
			vs, err := iterators.Collect(seq.Iterate())
			require.Nil(t, err)
			require.Equal(t, input, vs)
		}
	})

	t.Run("interleaved traversals carry independent cursor state", func(t *testing.T) {
		a := seq.Iterate()
		b := seq.Iterate()

		require.True(t, a.Next())
		require.True(t, a.Next())
		require.True(t, b.Next())

		require.Equal(t, input[1], a.Value())
		require.Equal(t, input[0], b.Value())
	})
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	t.Run("constructing the view consumes nothing", func(t *testing.T) {
		src := &countingSource{}
		_ = lazy.Prefix[int](src, 5)
		require.Equal(t, 0, src.Pulls)
	})

	t.Run("given the source is unbounded, the view still yields a bounded traversal", func(t *testing.T) {
		src := &countingSource{}
		view := lazy.Prefix[int](src, 5)

		vs, err := iterators.Collect(view.Iterate())
		require.Nil(t, err)
		require.Equal(t, []int{0, 1, 2, 3, 4}, vs)
		require.Equal(t, 5, src.Pulls)
	})

	t.Run("every traversal is freshly seeded", func(t *testing.T) {
		view := lazy.Prefix(lazy.FromSlice([]int{1, 2, 3, 4}), 2)

		first, err := iterators.Collect(view.Iterate())
		require.Nil(t, err)

		second, err := iterators.Collect(view.Iterate())
		require.Nil(t, err)

		require.Equal(t, first, second)
		require.Equal(t, []int{1, 2}, second)
	})
}

func TestDropFirst(t *testing.T) {
	t.Parallel()

	t.Run("the view skips the leading elements on each traversal", func(t *testing.T) {
		view := lazy.DropFirst(lazy.FromSlice([]int{1, 2, 3, 4}), 2)

		for round := 0; round < 2; round++ {
			vs, err := iterators.Collect(view.Iterate())
			require.Nil(t, err)
			require.Equal(t, []int{3, 4}, vs)
		}
	})
}

func TestComposition(t *testing.T) {
	t.Parallel()

	t.Run("views compose without forcing materialization at any intermediate step", func(t *testing.T) {
		src := &countingSource{}
		view := lazy.Prefix(lazy.DropFirst[int](src, 2), 3)
		require.Equal(t, 0, src.Pulls)

		vs, err := iterators.Collect(view.Iterate())
		require.Nil(t, err)
		require.Equal(t, []int{2, 3, 4}, vs)
		require.Equal(t, 5, src.Pulls)
	})
}

func TestEnumerate(t *testing.T) {
	t.Parallel()

	view := lazy.Enumerate(lazy.FromSlice([]string{"a", "b"}), 6)

	for round := 0; round < 2; round++ {
		vs, err := iterators.Collect(view.Iterate())
		require.Nil(t, err)
		require.Equal(t, []iterators.Enumerated[string]{
			{Offset: 6, Value: "a"},
			{Offset: 7, Value: "b"},
		}, vs)
	}
}
