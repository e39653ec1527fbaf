package mixedproduct

import (
	"errors"

	"github.com/adamluzsi/mixedproduct/internal/odometer"
	"github.com/adamluzsi/mixedproduct/iterators"
)

// Of returns the lazy Cartesian product of the given sequences.
// Every combination holds one element of each sequence, in the order the sequences were given.
//
// The product of zero sequences is a single empty combination,
// and the product is empty when any of the sequences is empty.
func Of[T any](seqs ...Sequence[T]) *Product[T] {
	p := &Product[T]{}
	p.init(len(seqs), func(i int) (odometer.Source, releaser) {
		return sourceOf(seqs[i]), ownerOf(seqs[i])
	})
	return p
}

// Product is a single pass iterator over the combinations of its sequences.
type Product[T any] struct{ engine }

var _ iterators.Iterator[[]int] = &Product[int]{}

// Value returns the current combination.
// The elements are the values of the sequence iterators at their current position.
func (p *Product[T]) Value() []T {
	if !p.valid() {
		return nil
	}
	vs := make([]T, p.chain.Len())
	for i := range vs {
		vs[i] = valueAt[T](p.chain, i)
	}
	return vs
}

// engine is shared by the typed products.
// It owns the odometer chain and deals with the zero input case and ownership.
type engine struct {
	chain  *odometer.Chain
	owned  []releaser
	empty  emptyState
	closed bool
}

type emptyState int

const (
	// notIdentity is a product with at least one input
	notIdentity emptyState = iota
	identityPending
	identityCurrent
	identitySpent
)

func (e *engine) init(n int, level func(i int) (odometer.Source, releaser)) {
	var srcs []odometer.Source
	for i := 0; i < n; i++ {
		src, r := level(i)
		srcs = append(srcs, src)
		if r != nil {
			e.owned = append(e.owned, r)
		}
	}
	e.chain = odometer.NewChain(srcs...)
	if n == 0 {
		e.empty = identityPending
	}
}

func (e *engine) Next() bool {
	if e.closed {
		return false
	}
	switch e.empty {
	case identityPending:
		e.empty = identityCurrent
		return true
	case identityCurrent, identitySpent:
		e.empty = identitySpent
		return false
	}
	return e.chain.Next()
}

func (e *engine) Err() error {
	return e.chain.Err()
}

// Close releases every iterator the product opened and every sequence it owns.
func (e *engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return errors.Join(e.chain.Close(), releaseAll(e.owned))
}

// Spent reports whether the product is consumed or closed.
func (e *engine) Spent() bool {
	if e.closed || e.empty == identitySpent {
		return true
	}
	if e.empty != notIdentity {
		return false
	}
	return e.chain.Spent()
}

func (e *engine) valid() bool {
	if e.closed {
		return false
	}
	if e.empty != notIdentity {
		return e.empty == identityCurrent
	}
	return e.chain.Valid()
}

// Stats tells what the product learned about its sequences so far.
func (e *engine) Stats() Stats {
	var stats = Stats{
		Period: e.chain.Product(),
		Ticks:  e.chain.Ticks(),
	}
	for _, lvl := range e.chain.Levels() {
		stats.Levels = append(stats.Levels, LevelStats{
			Length: lvl.TrueLength,
			Period: lvl.Period,
		})
	}
	return stats
}

type Stats struct {
	// Levels has the per sequence discoveries in input order
	Levels []LevelStats
	// Period is the product of the fixed padded periods.
	// Once every length is known, it is the number of ticks a full pass takes.
	Period uint64
	// Ticks is the number of ticks taken so far, padding ticks included.
	Ticks uint64
}

type LevelStats struct {
	// Length is the number of elements in the sequence,
	// zero while the sequence has not wrapped around yet.
	Length uint64
	// Period is the padded cycle length of the sequence, zero while not fixed.
	Period uint64
}

func sourceOf[T any](seq Sequence[T]) odometer.Source {
	return odometer.SourceFunc(func() odometer.Cursor {
		return seq.Iterate()
	})
}

func ownerOf[T any](seq Sequence[T]) releaser {
	if o, ok := seq.(owned[T]); ok {
		return o
	}
	return nil
}

func valueAt[T any](chain *odometer.Chain, i int) T {
	return chain.Cursor(i).(iterators.Iterator[T]).Value()
}
