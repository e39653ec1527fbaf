package odometer

import (
	"fmt"
	"log/slog"

	"github.com/adamluzsi/mixedproduct/internal/mathkit"
)

// Resolver fixes the padded period of levels as their true lengths get discovered.
//
// Every period is chosen coprime with the product of the periods fixed before it,
// which makes all periods pairwise coprime.
// By the Chinese Remainder Theorem, ticking all levels together then visits
// every combination of level positions exactly once within Product ticks.
type Resolver struct {
	Levels []Level
	// Product is the product of every fixed period, zero while none is fixed.
	Product uint64

	fixed int
}

func NewResolver(n int) *Resolver {
	return &Resolver{Levels: make([]Level, n)}
}

// Resolve fixes the period of the level at index to the smallest value
// not below trueLength that is coprime with the current Product.
// The period of a level can be fixed only once.
func (r *Resolver) Resolve(index int, trueLength uint64) error {
	lvl := &r.Levels[index]
	if lvl.Fixed() {
		panic(fmt.Sprintf("odometer: period of level %d is already fixed", index))
	}
	if trueLength == 0 {
		panic(fmt.Sprintf("odometer: level %d resolved with zero length", index))
	}

	period := trueLength
	product := period
	if r.Product != 0 {
		for !mathkit.Coprime(period, r.Product) {
			period++
		}
		var ok bool
		product, ok = mathkit.MulUInt(period, r.Product)
		if !ok {
			return fmt.Errorf("level %d: %w", index, ErrPeriodOverflow)
		}
	}

	lvl.TrueLength = trueLength
	lvl.Period = period
	lvl.RunningProduct = product
	r.Product = product
	r.fixed++

	slog.Debug("Level period fixed.",
		"level", index,
		"length", trueLength,
		"period", period,
		"product", product)
	return nil
}

// AllFixed reports whether every level has its period.
func (r *Resolver) AllFixed() bool {
	return r.fixed == len(r.Levels)
}
