package iterators

// Func enables you to create an iterator with a lambda expression.
// Func is very useful when you have to deal with non type safe iterators
// that you would like to map into a type safe variant.
// In case you need to close the currently mapped resource, wrap the result with WithCallback.
func Func[T any](next func() (v T, ok bool, err error)) Iterator[T] {
	return &funcIter[T]{NextFn: next}
}

type funcIter[T any] struct {
	NextFn func() (v T, ok bool, err error)

	value  T
	err    error
	closed bool
}

func (i *funcIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *funcIter[T]) Err() error {
	return i.err
}

func (i *funcIter[T]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	value, ok, err := i.NextFn()
	if err != nil {
		i.err = err
		return false
	}
	if !ok {
		return false
	}
	i.value = value
	return true
}

func (i *funcIter[T]) Value() T {
	return i.value
}
