package iterators

import "errors"

func Collect[T any](i Iterator[T]) (vs []T, err error) {
	defer func() {
		err = errors.Join(err, i.Close())
	}()
	vs = make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i Iterator[T]) (total int, err error) {
	defer func() {
		err = errors.Join(err, i.Close())
	}()
	total = 0
	for i.Next() {
		total++
	}
	return total, i.Err()
}

// Limit caps the number of iterated elements at n.
// A non-positive n disables the limit.
func Limit[V any](iter Iterator[V], n int) Iterator[V] {
	if n <= 0 {
		return iter
	}
	return &limitIter[V]{
		Iterator: iter,
		Limit:    n,
	}
}

type limitIter[V any] struct {
	Iterator[V]
	Limit int
	index int
}

func (li *limitIter[V]) Next() bool {
	if !(li.index < li.Limit) {
		return false
	}
	if !li.Iterator.Next() {
		return false
	}
	li.index++
	return true
}
