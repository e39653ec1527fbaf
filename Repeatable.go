package mixedproduct

import (
	"github.com/adamluzsi/mixedproduct/iterators"
)

// Repeatable returns the product of the sequences as a Sequence,
// so it can be iterated multiple times or used as an input of another product.
// Every Iterate call starts an independent product that borrows the sequences.
// Closing the returned Sequence closes the sequences marked with Own.
func Repeatable[T any](seqs ...Sequence[T]) Sequence[[]T] {
	return &repeatable[T]{seqs: seqs}
}

type repeatable[T any] struct {
	seqs []Sequence[T]
}

func (r *repeatable[T]) Iterate() iterators.Iterator[[]T] {
	borrowed := make([]Sequence[T], 0, len(r.seqs))
	for _, seq := range r.seqs {
		borrowed = append(borrowed, Borrow(seq))
	}
	return Of(borrowed...)
}

func (r *repeatable[T]) Close() error {
	var owned []releaser
	for _, seq := range r.seqs {
		if o := ownerOf(seq); o != nil {
			owned = append(owned, o)
		}
	}
	return releaseAll(owned)
}
