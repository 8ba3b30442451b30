package decfloat

import (
	"fmt"
	"math"
)

// DefaultQuoPrec is the number of digits after the decimal point kept by [Quo].
const DefaultQuoPrec = 16

// Mul returns the product of a and b rounded to the sum of their scales,
// which is the largest number of digits after the decimal point that an
// exact product can have:
//
//	Mul(0.2, 0.2) = 0.04, while 0.2 * 0.2 = 0.04000000000000001
//
// If either operand is NaN or ±Inf, that operand is returned.
func Mul[A, B Parseable](a A, b B) float64 {
	return mul(Parse(a), Parse(b))
}

func mul(x, y float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return x
	case math.IsNaN(y) || math.IsInf(y, 0):
		return y
	}
	sx, _ := Scale(x)
	sy, _ := Scale(y)
	return roundFloat(x*y, clampPrec(sx+sy), ToNearest)
}

// Add returns the sum of a and b rounded to the greater of their scales:
//
//	Add(0.1, 0.2) = 0.3, while 0.1 + 0.2 = 0.30000000000000004
//
// If b is a percentage string, it is relative to a:
//
//	Add(10, "20%") = 12
//	Add("20%", 10) = 10.2
//
// NaN and ±Inf operands produce the IEEE 754 sum without rounding.
func Add[A, B Parseable](a A, b B) float64 {
	x, y := relativeOperands(a, b)
	return add(x, y)
}

func add(x, y float64) float64 {
	prec, ok := maxScale(x, y)
	if !ok {
		return x + y
	}
	return roundFloat(x+y, prec, ToNearest)
}

// Sub returns the difference of a and b rounded to the greater of their scales:
//
//	Sub(0.3, 0.2) = 0.1, while 0.3 - 0.2 = 0.09999999999999998
//
// If b is a percentage string, it is relative to a:
//
//	Sub(10, "20%") = 8
func Sub[A, B Parseable](a A, b B) float64 {
	x, y := relativeOperands(a, b)
	return add(x, -y)
}

// relativeOperands parses a and b.
// A percentage b is converted to the corresponding part of a.
func relativeOperands[A, B Parseable](a A, b B) (x, y float64) {
	return relativeTo(Parse(a), Parse(b), b)
}

// relativeTo returns x and y, where y is replaced by the corresponding part
// of x if its source value b is a percentage.
func relativeTo(x, y float64, b any) (float64, float64) {
	if isPercent(b) {
		y = mul(x, y)
	}
	return x, y
}

// Quo returns the quotient of a and b rounded to [DefaultQuoPrec] digits
// after the decimal point.
// See [QuoExact] for details.
func Quo[A, B Parseable](a A, b B) (float64, error) {
	return QuoExact(a, b, DefaultQuoPrec)
}

// QuoExact returns the quotient of a and b rounded to the specified number
// of digits after the decimal point.
// Unlike other operations, the precision is not derived from the scales of
// the operands, since a quotient can have an infinite decimal expansion:
//
//	QuoExact(10, 3, 4) = 3.3333
//	QuoExact(1000, 3, -1) = 330
//
// If either operand is NaN, the result is NaN.
// Division by ±Inf produces 0.
//
// QuoExact returns [ErrDivisionByZero] if b is 0.
// See [QuoIEEE] for the IEEE 754 behaviour.
//
// QuoExact panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func QuoExact[A, B Parseable](a A, b B, prec int) (float64, error) {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("QuoExact(%v, %v, %v) failed: %v", a, b, prec, errPrecisionRange))
	}
	x, y := Parse(a), Parse(b)
	f, err := quo(x, y, prec, true)
	if err != nil {
		return 0, fmt.Errorf("computing [%v / %v]: %w", x, y, err)
	}
	return f, nil
}

// QuoIEEE is like [QuoExact], but division by zero does not fail.
// Instead, it returns the IEEE 754 quotient, which is ±Inf or NaN:
//
//	QuoIEEE(1, 0, 0) = +Inf
//	QuoIEEE(-1, 0, 0) = -Inf
//	QuoIEEE(0, 0, 0) = NaN
//
// QuoIEEE panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func QuoIEEE[A, B Parseable](a A, b B, prec int) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("QuoIEEE(%v, %v, %v) failed: %v", a, b, prec, errPrecisionRange))
	}
	f, _ := quo(Parse(a), Parse(b), prec, false)
	return f
}

func quo(x, y float64, prec int, strict bool) (float64, error) {
	switch {
	case math.IsNaN(x):
		return x, nil
	case math.IsNaN(y):
		return y, nil
	case y == 0 && strict:
		return 0, ErrDivisionByZero
	case y == 0:
		return x / y, nil
	}
	return roundFloat(x/y, prec, ToNearest), nil
}

// Mod returns the modulus of a and b.
// Unlike [math.Mod] and the % operator, the result has the sign of the divisor:
//
//	Mod(-5, 3) = 1
//	Mod(5, -3) = -1
//	Mod(5.5, 2) = 1.5
//
// If either operand is NaN or ±Inf, or b is 0, the result is NaN.
func Mod[A, B Parseable](a A, b B) float64 {
	x, y := Parse(a), Parse(b)
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return math.NaN()
	case math.IsNaN(y) || math.IsInf(y, 0):
		return math.NaN()
	}
	return math.Mod(add(math.Mod(x, y), y), y)
}
