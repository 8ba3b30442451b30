package decfloat

import "errors"

var (
	errPrecisionRange      = errors.New("precision out of range")
	errRoundingMode        = errors.New("unknown rounding mode")
	errNonFinite           = errors.New("non-finite value")
	errCoefficientOverflow = errors.New("coefficient overflow")
	errInvalidNotation     = errors.New("invalid scientific notation")
)

// ArithmeticError is returned by operations that cannot produce a result
// for the given operands, for example, division by zero in strict mode.
// It is distinct from errors caused by invalid arguments, which are reported
// by panics.
type ArithmeticError struct {
	msg string
}

func (e *ArithmeticError) Error() string {
	return e.msg
}

// ErrDivisionByZero is returned by [Quo] and [QuoExact] when the divisor is 0.
// Use [errors.Is] to test for it or [errors.As] to test for any [ArithmeticError].
var ErrDivisionByZero error = &ArithmeticError{msg: "division by zero"}
