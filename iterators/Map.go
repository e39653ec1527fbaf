package iterators

// Map transforms the values of an iterator, possibly into another type.
// The first transformation error ends the iteration and is reported by Err.
func Map[To any, From any](iter Iterator[From], transform func(From) (To, error)) Iterator[To] {
	return &mapIter[From, To]{
		Iterator:  iter,
		Transform: transform,
	}
}

type mapIter[From any, To any] struct {
	Iterator  Iterator[From]
	Transform func(From) (To, error)

	err   error
	value To
}

func (i *mapIter[From, To]) Close() error {
	return i.Iterator.Close()
}

func (i *mapIter[From, To]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.Iterator.Next() {
		return false
	}
	v, err := i.Transform(i.Iterator.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *mapIter[From, To]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.Iterator.Err()
}

func (i *mapIter[From, To]) Value() To {
	return i.value
}
