package odometer

import "github.com/adamluzsi/mixedproduct/consterror"

const (
	// ErrPeriodOverflow is returned when the product of the padded periods no longer fits into uint64.
	ErrPeriodOverflow consterror.Error = "padded period product overflows uint64"
	// ErrUnstableSequence is returned when a sequence yields a different number of elements on a later pass.
	ErrUnstableSequence consterror.Error = "sequence length changed between passes"
)
