package iterators

func Slice[T any](slice []T) Iterator[T] {
	return &sliceIter[T]{Slice: slice}
}

type sliceIter[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

func (i *sliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter[T]) Err() error {
	return nil
}

func (i *sliceIter[T]) Next() bool {
	if i.closed {
		return false
	}

	if len(i.Slice) <= i.index {
		return false
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *sliceIter[T]) Value() T {
	return i.value
}

// SlicePointers iterates over the addresses of the slice elements,
// so large or non-copyable values can be consumed without copying them.
func SlicePointers[T any](slice []T) Iterator[*T] {
	return &slicePtrIter[T]{Slice: slice, index: -1}
}

type slicePtrIter[T any] struct {
	Slice []T

	closed bool
	index  int
}

func (i *slicePtrIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *slicePtrIter[T]) Err() error {
	return nil
}

func (i *slicePtrIter[T]) Next() bool {
	if i.closed || len(i.Slice) <= i.index+1 {
		return false
	}
	i.index++
	return true
}

func (i *slicePtrIter[T]) Value() *T {
	if i.index < 0 || len(i.Slice) <= i.index {
		return nil
	}
	return &i.Slice[i.index]
}
