package decfloat

import (
	"fmt"
	"math"
)

// Scale returns the number of significant digits after the decimal point
// in the shortest decimal representation of x.
// For integers with trailing zeros the scale is negative and equals the
// number of trailing zeros with the opposite sign:
//
//	Scale(0.001) = 3
//	Scale(12.34) = 2
//	Scale(2024)  = 0
//	Scale(1000)  = -3
//	Scale(0)     = 0
//
// The scale is not limited to the range from [MinPrec] to [MaxPrec].
// Scale returns ok == false if x is NaN or ±Inf, since such values
// have no scale.
func Scale(x float64) (scale int, ok bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	s, err := newSci(x)
	if err != nil {
		panic(fmt.Sprintf("Scale(%v) failed: %v", x, err)) // unexpected by design
	}
	return s.scale(), true
}

// Unit returns the smallest positive increment at the scale of x:
//
//	Unit(12.347) = 0.001
//	Unit(2000)   = 1000
//	Unit(2024)   = 1
//	Unit(0)      = 1
//
// Unit returns NaN if x is NaN or ±Inf.
func Unit(x float64) float64 {
	scale, ok := Scale(x)
	if !ok {
		return math.NaN()
	}
	u := math.Pow10(-scale)
	if scale < MinPrec || MaxPrec < scale {
		return u
	}
	return Round(u, scale)
}

// maxScale returns the greatest scale of the given values,
// limited to the range from [MinPrec] to [MaxPrec].
// It returns ok == false if any of the values is NaN or ±Inf.
func maxScale(x float64, ys ...float64) (prec int, ok bool) {
	prec, ok = Scale(x)
	if !ok {
		return 0, false
	}
	for _, y := range ys {
		s, ok := Scale(y)
		if !ok {
			return 0, false
		}
		prec = max(prec, s)
	}
	return clampPrec(prec), true
}
