package mixedproduct

import "github.com/adamluzsi/mixedproduct/internal/odometer"

const (
	// ErrPeriodOverflow means the padded periods of the inputs multiply beyond uint64.
	ErrPeriodOverflow = odometer.ErrPeriodOverflow
	// ErrUnstableSequence means an input did not yield the same number of elements on every pass.
	ErrUnstableSequence = odometer.ErrUnstableSequence
)
