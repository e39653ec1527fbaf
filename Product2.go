package mixedproduct

import (
	"github.com/adamluzsi/mixedproduct/internal/odometer"
	"github.com/adamluzsi/mixedproduct/iterators"
)

type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Of2 is the product of two sequences with different element types.
func Of2[A, B any](a Sequence[A], b Sequence[B]) *Product2[A, B] {
	p := &Product2[A, B]{}
	p.init(2, func(i int) (odometer.Source, releaser) {
		if i == 0 {
			return sourceOf(a), ownerOf(a)
		}
		return sourceOf(b), ownerOf(b)
	})
	return p
}

type Product2[A, B any] struct{ engine }

var _ iterators.Iterator[Pair[int, string]] = &Product2[int, string]{}

func (p *Product2[A, B]) Value() Pair[A, B] {
	if !p.valid() {
		return Pair[A, B]{}
	}
	return Pair[A, B]{
		First:  valueAt[A](p.chain, 0),
		Second: valueAt[B](p.chain, 1),
	}
}

// Of3 is the product of three sequences with different element types.
func Of3[A, B, C any](a Sequence[A], b Sequence[B], c Sequence[C]) *Product3[A, B, C] {
	p := &Product3[A, B, C]{}
	p.init(3, func(i int) (odometer.Source, releaser) {
		switch i {
		case 0:
			return sourceOf(a), ownerOf(a)
		case 1:
			return sourceOf(b), ownerOf(b)
		default:
			return sourceOf(c), ownerOf(c)
		}
	})
	return p
}

type Product3[A, B, C any] struct{ engine }

var _ iterators.Iterator[Triple[int, string, bool]] = &Product3[int, string, bool]{}

func (p *Product3[A, B, C]) Value() Triple[A, B, C] {
	if !p.valid() {
		return Triple[A, B, C]{}
	}
	return Triple[A, B, C]{
		First:  valueAt[A](p.chain, 0),
		Second: valueAt[B](p.chain, 1),
		Third:  valueAt[C](p.chain, 2),
	}
}
