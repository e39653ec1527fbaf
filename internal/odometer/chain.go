package odometer

import (
	"errors"
	"fmt"
)

type state int

const (
	fresh state = iota
	running
	exhausted
	closed
)

// Chain is the odometer: one cursor per level, all of them ticking together.
//
// Levels are kept in a flat slice ordered as the sources were given,
// and every piece of level state is only mutated through the Chain.
type Chain struct {
	sources  []Source
	cursors  []Cursor
	counters []uint64
	resolver *Resolver
	ticks    uint64
	state    state
	err      error
}

func NewChain(sources ...Source) *Chain {
	return &Chain{
		sources:  sources,
		cursors:  make([]Cursor, len(sources)),
		counters: make([]uint64, len(sources)),
		resolver: NewResolver(len(sources)),
	}
}

// Next moves the chain onto its next combination.
// The first call positions every cursor on its first element.
// Once it returned false, the chain is spent and stays so.
func (c *Chain) Next() bool {
	switch c.state {
	case fresh:
		return c.start()
	case running:
		return c.step()
	default:
		return false
	}
}

func (c *Chain) start() bool {
	if len(c.sources) == 0 {
		c.state = exhausted
		return false
	}
	c.state = running
	for i, src := range c.sources {
		cur := src.Open()
		c.cursors[i] = cur
		if !cur.Next() {
			// an empty sequence makes the whole product empty
			c.finish(cur.Err())
			return false
		}
	}
	return true
}

// step ticks until a tick lands on a real combination or the full period is consumed.
func (c *Chain) step() bool {
	for {
		padding, err := c.advanceAll()
		if err != nil {
			c.finish(err)
			return false
		}
		if c.resolver.AllFixed() && c.ticks == c.resolver.Product {
			c.finish(nil)
			return false
		}
		if !padding {
			return true
		}
	}
}

// advanceAll ticks every level once, in input order.
// It reports whether any level is in its padding region after the tick.
func (c *Chain) advanceAll() (bool, error) {
	var padding bool
	for i := range c.cursors {
		p, err := c.advance(i)
		if err != nil {
			return false, fmt.Errorf("level %d: %w", i, err)
		}
		padding = padding || p
	}
	c.ticks++
	return padding, nil
}

func (c *Chain) advance(i int) (bool, error) {
	var (
		lvl   = &c.resolver.Levels[i]
		cur   = c.cursors[i]
		atEnd = lvl.Padding(c.counters[i])
	)
	if !atEnd && !cur.Next() {
		if err := cur.Err(); err != nil {
			return false, err
		}
		atEnd = true
	}
	c.counters[i]++
	counter := c.counters[i]

	if !atEnd {
		if lvl.Fixed() && lvl.TrueLength <= counter {
			return false, ErrUnstableSequence
		}
		return false, nil
	}

	if !lvl.Fixed() {
		if err := c.resolver.Resolve(i, counter); err != nil {
			return false, err
		}
	} else if counter < lvl.TrueLength {
		return false, ErrUnstableSequence
	}

	if lvl.Padding(counter) {
		return true, nil
	}
	return false, c.rewind(i)
}

// rewind starts the level over after a full padded period.
func (c *Chain) rewind(i int) error {
	if err := c.cursors[i].Close(); err != nil {
		return err
	}
	cur := c.sources[i].Open()
	c.cursors[i] = cur
	c.counters[i] = 0
	if !cur.Next() {
		if err := cur.Err(); err != nil {
			return err
		}
		return ErrUnstableSequence
	}
	return nil
}

func (c *Chain) finish(err error) {
	c.state = exhausted
	c.err = err
}

// Valid reports whether every cursor currently points at a real element.
func (c *Chain) Valid() bool {
	return c.state == running
}

// Spent reports whether the chain reached its terminal state.
func (c *Chain) Spent() bool {
	return exhausted <= c.state
}

func (c *Chain) Err() error {
	return c.err
}

// Close releases every cursor the chain opened.
func (c *Chain) Close() error {
	if c.state == closed {
		return nil
	}
	c.state = closed
	var errs []error
	for i, cur := range c.cursors {
		if cur == nil {
			continue
		}
		errs = append(errs, cur.Close())
		c.cursors[i] = nil
	}
	return errors.Join(errs...)
}

func (c *Chain) Len() int {
	return len(c.sources)
}

// Cursor returns the current cursor of the level at index.
func (c *Chain) Cursor(index int) Cursor {
	return c.cursors[index]
}

// Levels returns a snapshot of the level bookkeeping.
func (c *Chain) Levels() []Level {
	return append([]Level(nil), c.resolver.Levels...)
}

// Product returns the product of the periods fixed so far.
func (c *Chain) Product() uint64 {
	return c.resolver.Product
}

// Ticks returns the number of global ticks elapsed since the start.
func (c *Chain) Ticks() uint64 {
	return c.ticks
}
