package mixedproduct

import (
	"errors"
	"io"

	"github.com/adamluzsi/mixedproduct/iterators"
)

// Sequence is a finite, re-iterable source of elements.
//
// Iterate must return a new Iterator positioned before the first element,
// and every Iterator must traverse the same elements in the same order.
// A Sequence is never asked for its length.
type Sequence[T any] interface {
	Iterate() iterators.Iterator[T]
}

// SequenceFunc enables to use anonymous functions as a Sequence.
type SequenceFunc[T any] func() iterators.Iterator[T]

// Iterate implements the Sequence interface
func (fn SequenceFunc[T]) Iterate() iterators.Iterator[T] {
	return fn()
}

// Own marks a sequence as handed over to the product that receives it.
// When that product is closed, the sequence is closed too if it implements io.Closer.
func Own[T any](seq Sequence[T]) Sequence[T] {
	if o, ok := seq.(owned[T]); ok {
		return o
	}
	return owned[T]{Sequence: seq}
}

// Borrow marks a sequence as only referenced by the product that receives it.
// This is the default for every sequence that was not wrapped with Own.
func Borrow[T any](seq Sequence[T]) Sequence[T] {
	if o, ok := seq.(owned[T]); ok {
		return o.Sequence
	}
	return seq
}

type owned[T any] struct {
	Sequence[T]
}

func (o owned[T]) release() error {
	if closer, ok := o.Sequence.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type releaser interface {
	release() error
}

func releaseAll(rs []releaser) error {
	var errs []error
	for _, r := range rs {
		errs = append(errs, r.release())
	}
	return errors.Join(errs...)
}
