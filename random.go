package decfloat

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Random returns a pseudo-random number in the half-open interval [lo, hi)
// rounded to the specified number of digits after the decimal point.
// Rounding may produce hi itself when the precision is coarse.
// It uses the default source of package [golang.org/x/exp/rand],
// which is safe for concurrent use.
//
// Random panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func Random(lo, hi float64, prec int) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("Random(%v, %v, %v) failed: %v", lo, hi, prec, errPrecisionRange))
	}
	return randomFloat(rand.Float64(), lo, hi, prec)
}

// RandomFrom is like [Random], but it draws from the given generator.
// Unlike the default source, r is not safe for concurrent use.
//
// RandomFrom panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func RandomFrom(r *rand.Rand, lo, hi float64, prec int) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("RandomFrom(%v, %v, %v) failed: %v", lo, hi, prec, errPrecisionRange))
	}
	return randomFloat(r.Float64(), lo, hi, prec)
}

// randomFloat maps u from [0, 1) to [lo, hi).
func randomFloat(u, lo, hi float64, prec int) float64 {
	return roundFloat(lo+u*(hi-lo), prec, ToNearest)
}
