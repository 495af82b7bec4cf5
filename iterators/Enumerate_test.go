package iterators_test

import (
	"fmt"
	"testing"

	"github.com/adamluzsi/testcase"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

func ExampleEnumerateFrom() {
	i := iterators.EnumerateFrom(iterators.Slice([]int{6, 7, 8}), 6)
	for i.Next() {
		pair := i.Value()
		fmt.Println(pair.Offset, pair.Value)
	}
	// Output:
	// 6 6
	// 7 7
	// 8 8
}

func TestEnumerate(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		values = testcase.Let[[]string](s, func(t *testcase.T) []string {
			var vs []string
			for i, l := 0, t.Random.IntB(3, 7); i < l; i++ {
				vs = append(vs, t.Random.String())
			}
			return vs
		})
		start = testcase.Let[int](s, func(t *testcase.T) int {
			return 0
		})
		src = testcase.Let[sequences.Iterator[string]](s, func(t *testcase.T) sequences.Iterator[string] {
			return iterators.Slice(values.Get(t))
		})
		subject = testcase.Let[sequences.Iterator[iterators.Enumerated[string]]](s, func(t *testcase.T) sequences.Iterator[iterators.Enumerated[string]] {
			return iterators.EnumerateFrom(src.Get(t), start.Get(t))
		})
	)

	ThenOffsetsArePositional := func(s *testcase.Spec) {
		s.Then("each element is paired positionally with its offset, counted from the start value", func(t *testcase.T) {
			iter := subject.Get(t)

			var got []iterators.Enumerated[string]
			for iter.Next() {
				t.Must.Equal(iter.Value(), iter.Value())
				got = append(got, iter.Value())
			}

			t.Must.Equal(len(values.Get(t)), len(got))
			for index, pair := range got {
				t.Must.Equal(start.Get(t)+index, pair.Offset)
				t.Must.Equal(values.Get(t)[index], pair.Value)
			}
		})

		s.Then("exhaustion of the source exhausts the wrapper", func(t *testcase.T) {
			iter := subject.Get(t)
			for iter.Next() {
			}
			t.Must.False(iter.Next())
			t.Must.Nil(iter.Err())
		})
	}

	ThenOffsetsArePositional(s)

	s.When("the start value is a custom one", func(s *testcase.Spec) {
		start.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 42)
		})

		ThenOffsetsArePositional(s)
	})

	s.When("the start value is negative", func(s *testcase.Spec) {
		start.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 42) * -1
		})

		ThenOffsetsArePositional(s)
	})

	s.When("the source is empty", func(s *testcase.Spec) {
		src.Let(s, func(t *testcase.T) sequences.Iterator[string] {
			return iterators.Empty[string]()
		})

		s.Then("the wrapper is exhausted right away", func(t *testcase.T) {
			t.Must.False(subject.Get(t).Next())
			t.Must.Nil(subject.Get(t).Err())
		})
	})

	s.Test("Enumerate counts from zero, preserving the historical meaning of the plain call", func(t *testcase.T) {
		iter := iterators.Enumerate(iterators.Slice(values.Get(t)))

		var offsets []int
		for iter.Next() {
			offsets = append(offsets, iter.Value().Offset)
		}

		for index, offset := range offsets {
			t.Must.Equal(index, offset)
		}
	})

	s.Test("the offset is a pure position counter, independent of the source indexing", func(t *testcase.T) {
		iter := iterators.EnumerateFrom(iterators.LazyDropFirst[string](iterators.Slice(values.Get(t)), 1), 0)

		var got []iterators.Enumerated[string]
		for iter.Next() {
			got = append(got, iter.Value())
		}

		for index, pair := range got {
			t.Must.Equal(index, pair.Offset)
			t.Must.Equal(values.Get(t)[index+1], pair.Value)
		}
	})
}
