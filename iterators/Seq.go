package iterators

import (
	"iter"
)

// FromSeq turns a range-over-func sequence into a pull based Iterator.
// Closing the Iterator stops the underlying sequence.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &pullIter[T]{next: next, stop: stop}
}

type pullIter[T any] struct {
	next  func() (T, bool)
	stop  func()
	value T
	done  bool
}

func (i *pullIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, ok := i.next()
	if !ok {
		i.done = true
		return false
	}
	i.value = v
	return true
}

func (i *pullIter[T]) Value() T { return i.value }

func (i *pullIter[T]) Err() error { return nil }

func (i *pullIter[T]) Close() error {
	i.done = true
	i.stop()
	return nil
}

// ToSeq makes an Iterator usable in a for range loop.
// The Iterator is closed once the loop ends.
// Iteration errors are reported through the errp pointer when it is not nil.
func ToSeq[T any](i Iterator[T], errp *error) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer func() {
			cErr := i.Close()
			if errp != nil && *errp == nil {
				*errp = cErr
			}
		}()
		for i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
		if errp != nil {
			*errp = i.Err()
		}
	}
}
