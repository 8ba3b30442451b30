package decfloat

import (
	"fmt"
	"math"
)

// DefaultRoundEqualPrec is the precision suitable for [RoundEqual] when the
// operands should be compared with all their significant digits.
const DefaultRoundEqualPrec = MaxPrec

// ApproxEqual reports whether the distance between a and b does not exceed delta.
// Before the comparison, the distance is rounded to the greatest scale of
// a, b and delta, which removes the representation error introduced by
// the subtraction:
//
//	ApproxEqual(0.1+0.2, 0.3, 0.1) = true
//	ApproxEqual(0.4, 0.3, 0.1) = true, while 0.4 - 0.3 = 0.10000000000000003
//	ApproxEqual(35.5, 35.55, 0) = false
//
// If any of the arguments is NaN or ±Inf, the distance is compared without
// rounding.
func ApproxEqual(a, b, delta float64) bool {
	d := math.Abs(a - b)
	if prec, ok := maxScale(a, b, delta); ok {
		d = roundFloat(d, prec, ToNearest)
	}
	return d <= delta
}

// RoundEqual reports whether a and b are equal after rounding both of them
// to the specified number of digits after the decimal point:
//
//	RoundEqual(1.234, 1.2341, 3) = true
//	RoundEqual(1.234, 1.2341, 4) = false
//
// NaN is not equal to anything.
//
// RoundEqual panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func RoundEqual(a, b float64, prec int) bool {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("RoundEqual(%v, %v, %v) failed: %v", a, b, prec, errPrecisionRange))
	}
	return roundFloat(a, prec, ToNearest) == roundFloat(b, prec, ToNearest)
}
