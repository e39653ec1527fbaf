// Package sequences provides re-iterable inputs for mixedproduct.
package sequences

import (
	"bufio"
	"fmt"
	"iter"
	"os"

	"github.com/adamluzsi/mixedproduct"
	"github.com/adamluzsi/mixedproduct/iterators"
)

// Slice iterates over the values of a slice.
func Slice[T any](vs ...T) mixedproduct.Sequence[T] {
	return mixedproduct.SequenceFunc[T](func() iterators.Iterator[T] {
		return iterators.Slice(vs)
	})
}

// Pointers iterates over the addresses of the slice elements,
// so the elements themselves are never copied.
func Pointers[T any](vs []T) mixedproduct.Sequence[*T] {
	return mixedproduct.SequenceFunc[*T](func() iterators.Iterator[*T] {
		return iterators.SlicePointers(vs)
	})
}

// String iterates over the runes of a string.
func String(s string) mixedproduct.Sequence[rune] {
	return Slice([]rune(s)...)
}

// Func makes a Sequence from an Iterator constructor.
// The constructor must return an Iterator over the same elements on every call.
func Func[T any](fn func() iterators.Iterator[T]) mixedproduct.Sequence[T] {
	return mixedproduct.SequenceFunc[T](fn)
}

// Seq adapts a range-over-func sequence.
// The iter.Seq is expected to be re-iterable, as most of them are.
func Seq[T any](seq iter.Seq[T]) mixedproduct.Sequence[T] {
	return mixedproduct.SequenceFunc[T](func() iterators.Iterator[T] {
		return iterators.FromSeq(seq)
	})
}

// Lines iterates over the lines of a file.
// The file is opened again on every pass, and closed when the pass' Iterator is closed.
func Lines(path string) mixedproduct.Sequence[string] {
	return mixedproduct.SequenceFunc[string](func() iterators.Iterator[string] {
		f, err := os.Open(path)
		if err != nil {
			return iterators.Error[string](fmt.Errorf("lines: %w", err))
		}
		return iterators.BufioScanner[string](bufio.NewScanner(f), f)
	})
}

// Map transforms the elements of a sequence on every pass.
func Map[To any, From any](seq mixedproduct.Sequence[From], transform func(From) (To, error)) mixedproduct.Sequence[To] {
	return mixedproduct.SequenceFunc[To](func() iterators.Iterator[To] {
		return iterators.Map(seq.Iterate(), transform)
	})
}
