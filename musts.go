package decfloat

import "fmt"

// MustQuo is like [Quo] but panics if computing error.
// It simplifies initialization of constants derived from known-good operands.
func MustQuo[A, B Parseable](a A, b B) float64 {
	f, err := Quo(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", a, b, err))
	}
	return f
}

// MustQuoExact is like [QuoExact] but panics if computing error.
func MustQuoExact[A, B Parseable](a A, b B, prec int) float64 {
	f, err := QuoExact(a, b, prec)
	if err != nil {
		panic(fmt.Sprintf("MustQuoExact(%v, %v, %v) failed: %v", a, b, prec, err))
	}
	return f
}
