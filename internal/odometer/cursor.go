package odometer

// Cursor is the forward-only position of one level inside its sequence.
// Next moves onto the following element and reports false at the end of the sequence,
// Err tells whether that end was caused by a failure.
type Cursor interface {
	Next() bool
	Err() error
	Close() error
}

// Source hands out fresh cursors positioned before the first element of a sequence.
// Every Open must traverse the same elements in the same order.
type Source interface {
	Open() Cursor
}

type SourceFunc func() Cursor

func (fn SourceFunc) Open() Cursor { return fn() }
