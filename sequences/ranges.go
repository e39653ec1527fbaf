package sequences

import (
	"github.com/adamluzsi/mixedproduct"
	"github.com/adamluzsi/mixedproduct/iterators"
)

// Int is the inclusive range of integers between begin and end.
// The range is empty when end is less than begin.
func Int(begin, end int) mixedproduct.Sequence[int] {
	return mixedproduct.SequenceFunc[int](func() iterators.Iterator[int] {
		return &intRange{Begin: begin, End: end}
	})
}

type intRange struct {
	Begin, End int
	nextIndex  int
	closed     bool
}

func (ir *intRange) Close() error {
	ir.closed = true
	return nil
}

func (ir *intRange) Err() error {
	return nil
}

func (ir *intRange) Next() bool {
	if ir.closed {
		return false
	}
	if ir.End < ir.Begin+ir.nextIndex {
		return false
	}
	ir.nextIndex++
	return true
}

func (ir *intRange) Value() int {
	return ir.Begin + ir.nextIndex - 1
}

// Char is the inclusive range of runes between begin and end.
func Char(begin, end rune) mixedproduct.Sequence[rune] {
	return mixedproduct.SequenceFunc[rune](func() iterators.Iterator[rune] {
		return &charRange{Begin: begin, End: end}
	})
}

type charRange struct {
	Begin, End rune
	nextIndex  rune
	closed     bool
}

func (rr *charRange) Close() error {
	rr.closed = true
	return nil
}

func (rr *charRange) Err() error {
	return nil
}

func (rr *charRange) Next() bool {
	if rr.closed {
		return false
	}
	if rr.End < rr.Begin+rr.nextIndex {
		return false
	}
	rr.nextIndex++
	return true
}

func (rr *charRange) Value() rune {
	return rr.Begin + rr.nextIndex - 1
}
