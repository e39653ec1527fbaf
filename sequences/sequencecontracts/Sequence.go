package sequencecontracts

import (
	"testing"

	"github.com/adamluzsi/mixedproduct"
	"github.com/adamluzsi/mixedproduct/iterators"
	"github.com/adamluzsi/mixedproduct/iterators/iteratorcontracts"
	"github.com/adamluzsi/testcase"
)

// Sequence is a contract for non-empty Sequence[T] implementations.
// A product relies on a sequence replaying the same elements on every pass.
type Sequence[T any] func(tb testing.TB) mixedproduct.Sequence[T]

func (c Sequence[T]) Spec(s *testcase.Spec) {
	subject := testcase.Let(s, func(t *testcase.T) mixedproduct.Sequence[T] {
		return c(t)
	})

	iteratorcontracts.Iterator[T](func(tb testing.TB) iterators.Iterator[T] {
		return c(tb).Iterate()
	}).Spec(s)

	s.Describe("it behaves like a sequence", func(s *testcase.Spec) {
		s.Then("every pass yields the same elements in the same order", func(t *testcase.T) {
			seq := subject.Get(t)
			first, err := iterators.Collect(seq.Iterate())
			t.Must.NoError(err)
			t.Must.NotEmpty(first)

			for i, n := 0, t.Random.IntB(1, 3); i < n; i++ {
				again, err := iterators.Collect(seq.Iterate())
				t.Must.NoError(err)
				t.Must.Equal(first, again)
			}
		})

		s.Then("passes are independent from each other", func(t *testcase.T) {
			seq := subject.Get(t)
			a := seq.Iterate()
			t.Defer(a.Close)
			t.Must.True(a.Next())
			first := a.Value()

			b := seq.Iterate()
			t.Defer(b.Close)
			t.Must.True(b.Next())
			t.Must.Equal(first, b.Value())
		})

		s.Then("a product of the sequence alone reproduces it", func(t *testcase.T) {
			seq := subject.Get(t)
			expected, err := iterators.Collect(seq.Iterate())
			t.Must.NoError(err)

			combinations, err := iterators.Collect[[]T](mixedproduct.Of(seq))
			t.Must.NoError(err)
			t.Must.Equal(len(expected), len(combinations))
			for i, comb := range combinations {
				t.Must.Equal([]T{expected[i]}, comb)
			}
		})
	})
}

func (c Sequence[T]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Sequence[T]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
