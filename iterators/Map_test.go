package iterators_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/adamluzsi/mixedproduct/iterators"
	"github.com/adamluzsi/testcase"
)

func ExampleMap() {
	rawNumbers := iterators.Slice([]string{"1", "2", "42"})
	numbers := iterators.Map[int](rawNumbers, strconv.Atoi)
	_ = numbers
}

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	inputStream := testcase.Let(s, func(t *testcase.T) iterators.Iterator[string] {
		return iterators.Slice([]string{`a`, `b`, `c`})
	})
	transform := testcase.Let(s, func(t *testcase.T) func(string) (string, error) {
		return func(in string) (string, error) {
			return strings.ToUpper(in), nil
		}
	})
	subject := func(t *testcase.T) iterators.Iterator[string] {
		return iterators.Map(inputStream.Get(t), transform.Get(t))
	}

	s.Then(`the new iterator yields the transformed values`, func(t *testcase.T) {
		vs, err := iterators.Collect[string](subject(t))
		t.Must.Nil(err)
		t.Must.Equal([]string{`A`, `B`, `C`}, vs)
	})

	s.When(`an error happens during mapping`, func(s *testcase.Spec) {
		expectedErr := errors.New(`boom`)
		transform.Let(s, func(t *testcase.T) func(string) (string, error) {
			return func(string) (string, error) {
				return "", expectedErr
			}
		})

		s.Then(`the error is reported and the iteration ends`, func(t *testcase.T) {
			i := subject(t)
			t.Must.False(i.Next())
			t.Must.Equal(expectedErr, i.Err())
			t.Must.False(i.Next())
		})
	})

	s.When(`the source fails`, func(s *testcase.Spec) {
		expectedErr := errors.New(`source`)
		inputStream.Let(s, func(t *testcase.T) iterators.Iterator[string] {
			return iterators.Error[string](expectedErr)
		})

		s.Then(`the source error is reported`, func(t *testcase.T) {
			_, err := iterators.Collect(subject(t))
			t.Must.ErrorIs(err, expectedErr)
		})
	})
}
