package odometer_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/adamluzsi/mixedproduct/internal/mathkit"
	"github.com/adamluzsi/mixedproduct/internal/odometer"
	"github.com/adamluzsi/mixedproduct/iterators"
	"github.com/adamluzsi/testcase"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func sliceSource(vs ...int) odometer.Source {
	return odometer.SourceFunc(func() odometer.Cursor {
		return iterators.Slice(vs)
	})
}

func collect(tb testing.TB, c *odometer.Chain) [][]int {
	tb.Helper()
	var out [][]int
	for c.Next() {
		comb := make([]int, c.Len())
		for i := range comb {
			comb[i] = c.Cursor(i).(iterators.Iterator[int]).Value()
		}
		out = append(out, comb)
	}
	require.NoError(tb, c.Err())
	return out
}

func TestChain_orderOfCombinations(t *testing.T) {
	t.Run("coprime lengths", func(t *testing.T) {
		c := odometer.NewChain(sliceSource(0, 1), sliceSource('a', 'b', 'c'))
		defer c.Close()
		require.Equal(t, [][]int{
			{0, 'a'}, {1, 'b'}, {0, 'c'},
			{1, 'a'}, {0, 'b'}, {1, 'c'},
		}, collect(t, c))
	})

	t.Run("three sequences", func(t *testing.T) {
		c := odometer.NewChain(sliceSource(0, 1), sliceSource('a', 'b'), sliceSource(2))
		defer c.Close()
		require.Equal(t, [][]int{
			{0, 'a', 2}, {1, 'b', 2}, {1, 'a', 2}, {0, 'b', 2},
		}, collect(t, c))
	})

	t.Run("non coprime lengths", func(t *testing.T) {
		c := odometer.NewChain(sliceSource(0, 1), sliceSource(0, 1, 2, 3))
		defer c.Close()
		require.Equal(t, [][]int{
			{0, 0}, {1, 1}, {0, 2}, {1, 3},
			{1, 0}, {0, 1}, {1, 2}, {0, 3},
		}, collect(t, c))

		levels := c.Levels()
		require.Equal(t, uint64(2), levels[0].Period)
		require.Equal(t, uint64(4), levels[1].TrueLength)
		require.Equal(t, uint64(5), levels[1].Period)
		require.Equal(t, uint64(10), c.Product())
		require.Equal(t, uint64(10), c.Ticks())
	})

	t.Run("single sequence", func(t *testing.T) {
		c := odometer.NewChain(sliceSource(3, 1, 2))
		defer c.Close()
		require.Equal(t, [][]int{{3}, {1}, {2}}, collect(t, c))
	})
}

func TestChain(t *testing.T) {
	s := testcase.NewSpec(t)

	lengths := testcase.Let(s, func(t *testcase.T) []int {
		var ls []int
		for i, n := 0, t.Random.IntB(1, 4); i < n; i++ {
			ls = append(ls, t.Random.IntB(1, 6))
		}
		return ls
	})
	emptyAt := testcase.LetValue(s, -1)
	subject := testcase.Let(s, func(t *testcase.T) *odometer.Chain {
		var srcs []odometer.Source
		for _, l := range lengths.Get(t) {
			var vs []int
			for v := 0; v < l; v++ {
				vs = append(vs, v)
			}
			srcs = append(srcs, sliceSource(vs...))
		}
		if at := emptyAt.Get(t); 0 <= at {
			srcs = append(srcs[:at], append([]odometer.Source{sliceSource()}, srcs[at:]...)...)
		}
		c := odometer.NewChain(srcs...)
		t.Defer(c.Close)
		return c
	})

	s.Then("every combination is produced exactly once", func(t *testcase.T) {
		expected := 1
		for _, l := range lengths.Get(t) {
			expected *= l
		}

		seen := make(map[string]struct{})
		for _, comb := range collect(t, subject.Get(t)) {
			for i, v := range comb {
				t.Must.True(0 <= v && v < lengths.Get(t)[i])
			}
			key := fmt.Sprint(comb)
			_, ok := seen[key]
			t.Must.False(ok, "duplicate combination "+key)
			seen[key] = struct{}{}
		}
		t.Must.Equal(expected, len(seen))
	})

	s.Then("the periods end up pairwise coprime and cover the true lengths", func(t *testcase.T) {
		c := subject.Get(t)
		collect(t, c)

		levels := c.Levels()
		product := uint64(1)
		for i, lvl := range levels {
			t.Must.Equal(uint64(lengths.Get(t)[i]), lvl.TrueLength)
			t.Must.True(lvl.TrueLength <= lvl.Period)
			product *= lvl.Period
			for j := i + 1; j < len(levels); j++ {
				t.Must.True(mathkit.Coprime(lvl.Period, levels[j].Period))
			}
		}
		t.Must.Equal(product, c.Product())
		t.Must.Equal(product, c.Ticks())
	})

	s.Then("a spent chain stays spent", func(t *testcase.T) {
		c := subject.Get(t)
		collect(t, c)
		t.Must.True(c.Spent())
		t.Must.False(c.Valid())
		t.Must.False(c.Next())
	})

	s.When("one of the sequences is empty", func(s *testcase.Spec) {
		emptyAt.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(0, len(lengths.Get(t)))
		})

		s.Then("the product is empty", func(t *testcase.T) {
			c := subject.Get(t)
			t.Must.False(c.Next())
			t.Must.NoError(c.Err())
			t.Must.True(c.Spent())
		})
	})
}

func TestChain_zeroLevels(t *testing.T) {
	c := odometer.NewChain()
	require.False(t, c.Next())
	require.True(t, c.Spent())
	require.NoError(t, c.Close())
}

func TestChain_unstableSequence(t *testing.T) {
	t.Run("shrinking", func(t *testing.T) {
		lengths := []int{3, 2}
		var opened int
		src := odometer.SourceFunc(func() odometer.Cursor {
			n := lengths[min(opened, len(lengths)-1)]
			opened++
			return iterators.Slice(make([]int, n))
		})
		c := odometer.NewChain(sliceSource(0, 1), src)
		defer c.Close()
		for c.Next() {
		}
		require.ErrorIs(t, c.Err(), odometer.ErrUnstableSequence)
	})

	t.Run("growing", func(t *testing.T) {
		lengths := []int{2, 4}
		var opened int
		src := odometer.SourceFunc(func() odometer.Cursor {
			n := lengths[min(opened, len(lengths)-1)]
			opened++
			return iterators.Slice(make([]int, n))
		})
		c := odometer.NewChain(src, sliceSource(0, 1, 2))
		defer c.Close()
		for c.Next() {
		}
		require.ErrorIs(t, c.Err(), odometer.ErrUnstableSequence)
	})
}

func TestChain_cursorFailures(t *testing.T) {
	s := testcase.NewSpec(t)

	ctrl := testcase.Let(s, func(t *testcase.T) *gomock.Controller {
		return gomock.NewController(t)
	})
	cursor := testcase.Let(s, func(t *testcase.T) *MockCursor {
		return NewMockCursor(ctrl.Get(t))
	})
	source := testcase.Let(s, func(t *testcase.T) *MockSource {
		m := NewMockSource(ctrl.Get(t))
		m.EXPECT().Open().Return(cursor.Get(t)).AnyTimes()
		return m
	})
	subject := testcase.Let(s, func(t *testcase.T) *odometer.Chain {
		return odometer.NewChain(sliceSource(1, 2), source.Get(t))
	})

	s.When("the cursor fails before its first element", func(s *testcase.Spec) {
		expectedErr := errors.New("boom")

		s.Before(func(t *testcase.T) {
			cursor.Get(t).EXPECT().Next().Return(false)
			cursor.Get(t).EXPECT().Err().Return(expectedErr)
			cursor.Get(t).EXPECT().Close().Return(nil)
		})

		s.Then("the chain ends with the cursor error", func(t *testcase.T) {
			c := subject.Get(t)
			t.Must.False(c.Next())
			t.Must.Equal(expectedErr, c.Err())
			t.Must.NoError(c.Close())
		})
	})

	s.When("the cursor fails during iteration", func(s *testcase.Spec) {
		expectedErr := errors.New("boom")

		s.Before(func(t *testcase.T) {
			gomock.InOrder(
				cursor.Get(t).EXPECT().Next().Return(true),
				cursor.Get(t).EXPECT().Next().Return(false),
			)
			cursor.Get(t).EXPECT().Err().Return(expectedErr)
			cursor.Get(t).EXPECT().Close().Return(nil)
		})

		s.Then("the failure is reported with the level it happened on", func(t *testcase.T) {
			c := subject.Get(t)
			t.Must.True(c.Next())
			t.Must.False(c.Next())
			t.Must.True(errors.Is(c.Err(), expectedErr))
			t.Must.Contain(c.Err().Error(), "level 1")
			t.Must.NoError(c.Close())
		})
	})

	s.When("closing the cursor fails", func(s *testcase.Spec) {
		expectedErr := errors.New("close")

		s.Before(func(t *testcase.T) {
			cursor.Get(t).EXPECT().Next().Return(true)
			cursor.Get(t).EXPECT().Close().Return(expectedErr)
		})

		s.Then("Close returns the error, and closing again is a no-op", func(t *testcase.T) {
			c := subject.Get(t)
			t.Must.True(c.Next())
			t.Must.True(errors.Is(c.Close(), expectedErr))
			t.Must.NoError(c.Close())
			t.Must.True(c.Spent())
		})
	})
}
