package decfloat

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// sci is a finite float64 in scientific notation.
// Its numerical value is:
//
//   - -coef * 10^exp, if neg is true;
//   - coef * 10^exp, if neg is false.
//
// The coefficient holds the digits of the shortest decimal string that
// parses back to the same float64, so it has at most 17 digits.
type sci struct {
	neg  bool
	coef fint
	exp  int
}

// newSci decomposes a finite x into decimal digits and exponent.
// It relies on the shortest representation produced by [strconv.FormatFloat]
// with the 'e' format and precision -1.
func newSci(x float64) (sci, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return sci{}, errNonFinite
	}
	var buf [32]byte
	return parseSci(strconv.AppendFloat(buf[:0], x, 'e', -1, 64))
}

// parseSci parses the output of the 'e' float format, for example:
//
//	-1.2345e+02
//	5e-324
//	0e+00
func parseSci(num []byte) (sci, error) {
	var (
		pos    int
		width  int
		neg    bool
		coef   fint
		frac   int
		hasdig bool
		eneg   bool
		exp    int
		hasexp bool
		ok     bool
	)

	width = len(num)

	// Sign
	if pos < width && num[pos] == '-' {
		neg = true
		pos++
	}

	// Integer
	for pos < width && num[pos] >= '0' && num[pos] <= '9' {
		hasdig = true
		coef, ok = coef.appendDigit(num[pos] - '0')
		if !ok {
			return sci{}, errCoefficientOverflow
		}
		pos++
	}

	// Fraction
	if pos < width && num[pos] == '.' {
		pos++
		for pos < width && num[pos] >= '0' && num[pos] <= '9' {
			hasdig = true
			coef, ok = coef.appendDigit(num[pos] - '0')
			if !ok {
				return sci{}, errCoefficientOverflow
			}
			frac++
			pos++
		}
	}

	// Exponential part
	if pos < width && num[pos] == 'e' {
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case num[pos] == '-':
			eneg = true
			pos++
		case num[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && num[pos] >= '0' && num[pos] <= '9' {
			exp = exp*10 + int(num[pos]-'0')
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return sci{}, fmt.Errorf("invalid character %q: %w", num[pos], errInvalidNotation)
	}
	if !hasdig {
		return sci{}, fmt.Errorf("no coefficient: %w", errInvalidNotation)
	}
	if !hasexp {
		return sci{}, fmt.Errorf("no exponent: %w", errInvalidNotation)
	}

	if eneg {
		exp = -exp
	}
	if coef == 0 {
		return sci{}, nil
	}
	return sci{neg: neg, coef: coef, exp: exp - frac}, nil
}

// scale returns the number of significant digits after the decimal point.
// A negative value is the number of trailing zeros of an integer.
func (s sci) scale() int {
	return -s.exp
}

// shift returns s * 10^n. Only the exponent changes.
func (s sci) shift(n int) sci {
	if s.coef != 0 {
		s.exp += n
	}
	return s
}

// float64 returns the float64 nearest to s.
// Values beyond the float64 range become ±Inf or 0.
func (s sci) float64() float64 {
	var buf [48]byte
	num := buf[:0]
	if s.neg {
		num = append(num, '-')
	}
	num = strconv.AppendUint(num, uint64(s.coef), 10)
	num = append(num, 'e')
	num = strconv.AppendInt(num, int64(s.exp), 10)
	f, err := strconv.ParseFloat(string(num), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("%q: %v", num, err)) // unexpected by design
	}
	return f
}
