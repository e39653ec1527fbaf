package odometer

// Level is the bookkeeping of one input sequence.
type Level struct {
	// TrueLength is the observed number of elements, zero until the first wraparound.
	TrueLength uint64
	// Period is the padded cycle length of the level, zero until it is fixed.
	Period uint64
	// RunningProduct is the product of every period fixed up to and including this level.
	RunningProduct uint64
}

func (l Level) Fixed() bool {
	return l.Period != 0
}

// Padding reports whether a level counter points past the real elements
// but still inside the padded period.
func (l Level) Padding(counter uint64) bool {
	if !l.Fixed() || counter < l.TrueLength {
		return false
	}
	return counter < l.Period
}
