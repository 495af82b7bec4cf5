package iterators_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences/iterators"
)

func ExampleFilter() {
	i := iterators.Filter(iterators.Slice([]int{0, 1, 2, 3, 4, 5}), func(n int) bool { return n > 2 })

	defer i.Close()
	for i.Next() {
		fmt.Println(i.Value())
	}
	// Output:
	// 3
	// 4
	// 5
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("given the iterator has a set of elements", func(t *testing.T) {
		originalInput := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		t.Run("when the filter allows everything", func(t *testing.T) {
			i := iterators.Filter(iterators.Slice(originalInput), func(int) bool { return true })

			numbers, err := iterators.Collect(i)
			require.Nil(t, err)
			require.Equal(t, originalInput, numbers)
		})

		t.Run("when the filter disallows part of the value stream", func(t *testing.T) {
			i := iterators.Filter(iterators.Slice(originalInput), func(n int) bool { return 5 < n })

			numbers, err := iterators.Collect(i)
			require.Nil(t, err)
			require.Equal(t, []int{6, 7, 8, 9}, numbers)
		})

		t.Run("but the source iterator encounters an exception", func(t *testing.T) {
			expected := fmt.Errorf("Boom!")
			m := iterators.NewMock[int](iterators.Slice(originalInput))
			m.StubErr = func() error { return expected }

			i := iterators.Filter[int](m, func(int) bool { return true })
			require.Equal(t, expected, i.Err())
		})
	})
}

func BenchmarkFilter(b *testing.B) {
	var inputs []int
	for i := 0; i < 1024; i++ {
		inputs = append(inputs, rand.Intn(1000))
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, err := iterators.Count(iterators.Filter(iterators.Slice(inputs), func(n int) bool { return n > 500 }))
		require.Nil(b, err)
	}
}
