package decfloat

import (
	"fmt"
	"math"
)

const (
	MinPrec = -100 // minimum number of digits after the decimal point
	MaxPrec = 100  // maximum number of digits after the decimal point
)

// RoundingMode determines which neighbouring value is chosen when a number
// cannot be represented exactly with the requested precision.
type RoundingMode int8

const (
	ToNearest     RoundingMode = iota // nearest value, ties towards positive infinity
	ToNegativeInf                     // towards negative infinity, as in [math.Floor]
	ToPositiveInf                     // towards positive infinity, as in [math.Ceil]
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearest:
		return "ToNearest"
	case ToNegativeInf:
		return "ToNegativeInf"
	case ToPositiveInf:
		return "ToPositiveInf"
	}
	return fmt.Sprintf("RoundingMode(%d)", int8(m))
}

func (m RoundingMode) valid() bool {
	return ToNearest <= m && m <= ToPositiveInf
}

// integer rounds x to an integer using mode m.
func (m RoundingMode) integer(x float64) float64 {
	switch m {
	case ToNegativeInf:
		return math.Floor(x)
	case ToPositiveInf:
		return math.Ceil(x)
	}
	// The fractional part x - f is computed exactly.
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// Round returns x rounded to the specified number of digits after the decimal
// point.
// Ties are rounded towards positive infinity, so 1.25 becomes 1.3 and -1.25
// becomes -1.2.
// A negative precision rounds to the left of the decimal point:
// Round(1250, -2) is 1300.
// NaN and ±Inf are returned unchanged, and the result is never negative zero.
//
// Round does not multiply x by a power of ten.
// Instead, the exponent of the shortest decimal representation of x is
// shifted by the precision, the shifted value is rounded to an integer,
// and the exponent is shifted back.
//
// Round panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func Round(x float64, prec int) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("Round(%v, %v) failed: %v", x, prec, errPrecisionRange))
	}
	return roundFloat(x, prec, ToNearest)
}

// Floor returns x rounded towards negative infinity to the specified number
// of digits after the decimal point.
// Also see function [Ceil].
//
// Floor panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func Floor(x float64, prec int) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("Floor(%v, %v) failed: %v", x, prec, errPrecisionRange))
	}
	return roundFloat(x, prec, ToNegativeInf)
}

// Ceil returns x rounded towards positive infinity to the specified number
// of digits after the decimal point.
// Also see function [Floor].
//
// Ceil panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func Ceil(x float64, prec int) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("Ceil(%v, %v) failed: %v", x, prec, errPrecisionRange))
	}
	return roundFloat(x, prec, ToPositiveInf)
}

// RoundMode is like [Round], but it allows you to choose the rounding mode.
//
// RoundMode panics if:
//   - the precision is less than [MinPrec] or greater than [MaxPrec];
//   - the mode is not one of the declared rounding modes.
func RoundMode(x float64, prec int, mode RoundingMode) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("RoundMode(%v, %v, %v) failed: %v", x, prec, mode, errPrecisionRange))
	}
	if !mode.valid() {
		panic(fmt.Sprintf("RoundMode(%v, %v, %v) failed: %v", x, prec, mode, errRoundingMode))
	}
	return roundFloat(x, prec, mode)
}

// roundFloat assumes that the precision and the mode are valid.
// The decimal exponent of x is shifted by prec, the shifted value is rounded
// to an integer, and the exponent is shifted back.
func roundFloat(x float64, prec int, mode RoundingMode) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return x
	case prec == 0:
		return unsignZero(mode.integer(x))
	}
	w := shiftFloat(x, prec)
	if math.IsInf(w, 0) {
		// x * 10^prec is beyond the float64 range, so it is an integer already.
		return x
	}
	return unsignZero(shiftFloat(mode.integer(w), -prec))
}

// shiftFloat returns x * 10^n, computed by changing the decimal exponent of
// the shortest representation of x rather than by multiplication.
func shiftFloat(x float64, n int) float64 {
	s, err := newSci(x)
	if err != nil {
		return x
	}
	return s.shift(n).float64()
}

// unsignZero replaces negative zero with positive zero.
func unsignZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}

// clampPrec limits the precision to the range from [MinPrec] to [MaxPrec].
func clampPrec(prec int) int {
	return min(max(prec, MinPrec), MaxPrec)
}
