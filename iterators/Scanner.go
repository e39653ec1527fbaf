package iterators

import (
	"bufio"
	"io"
)

func BufioScanner[T string | []byte](s *bufio.Scanner, closer io.Closer) Iterator[T] {
	return &bufioScannerIter[T]{
		Scanner: s,
		Closer:  closer,
	}
}

type bufioScannerIter[T string | []byte] struct {
	*bufio.Scanner
	Closer io.Closer
	value  T
	closed bool
}

func (i *bufioScannerIter[T]) Next() bool {
	if i.closed || i.Scanner.Err() != nil {
		return false
	}
	if !i.Scanner.Scan() {
		return false
	}
	var v T
	var iface interface{} = v
	switch iface.(type) {
	case string:
		i.value = T(i.Scanner.Text())
	case []byte:
		i.value = T(i.Scanner.Bytes())
	}
	return true
}

func (i *bufioScannerIter[T]) Err() error {
	return i.Scanner.Err()
}

func (i *bufioScannerIter[T]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if i.Closer == nil {
		return nil
	}
	return i.Closer.Close()
}

func (i *bufioScannerIter[T]) Value() T {
	return i.value
}
