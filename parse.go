package decfloat

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Parseable is the set of operand types accepted by the arithmetic functions.
//
//   - Integers are converted to the nearest float64.
//   - Floats are used as is, except float32 values, which are converted
//     through their shortest decimal representation, so float32(0.1)
//     becomes 0.1 rather than 0.10000000149011612.
//   - Big integers are converted to the nearest float64. A nil pointer is NaN.
//   - Strings are decimal numbers with an optional percent sign, see [Parse].
type Parseable interface {
	constraints.Integer | constraints.Float | ~string | *big.Int
}

// Parse converts a parseable value to float64.
// It never fails: values that cannot be converted produce NaN.
//
// A string is trimmed of surrounding white space and must be in one of the
// following formats:
//
//	1.234
//	-1234
//	+.5
//	1.83e5
//	0.22E-9
//	12.5%
//	-Infinity
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	infinity       ::= 'Inf' | 'Infinity'
//	numeric-string ::= [sign] (significand [exponent] | infinity) ['%']
//
// A trailing percent sign divides the number by 100.
// The result is rounded to the scale of the number as written, increased
// by 2 for percentages, so "13.359%" becomes 0.13359 without the
// representation error of 13.359 / 100.
// Infinity is matched case-insensitively.
func Parse[T Parseable](v T) float64 {
	return roundParsed(convert(v))
}

// roundParsed rounds a converted text value to the scale it was written with.
// Numbers are returned unchanged.
func roundParsed(n float64, pct, text bool) float64 {
	if !text {
		return n
	}
	prec, ok := Scale(n)
	if !ok {
		if pct {
			return n / 100
		}
		return n
	}
	if pct {
		prec += 2
		n /= 100
	}
	if prec < MinPrec || MaxPrec < prec {
		return n
	}
	return roundFloat(n, prec, ToNearest)
}

// ParseExact is similar to [Parse], but the result is rounded to the
// specified number of digits after the decimal point using the given mode.
// For strings, the rounding replaces the rounding of [Parse]:
//
//	ParseExact("13.359%", 4, ToNearest) = 0.1336
//	ParseExact("1.5%", 2, ToNegativeInf) = 0.01
//
// ParseExact panics if:
//   - the precision is less than [MinPrec] or greater than [MaxPrec];
//   - the mode is not one of the declared rounding modes.
func ParseExact[T Parseable](v T, prec int, mode RoundingMode) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("ParseExact(%v, %v, %v) failed: %v", v, prec, mode, errPrecisionRange))
	}
	if !mode.valid() {
		panic(fmt.Sprintf("ParseExact(%v, %v, %v) failed: %v", v, prec, mode, errRoundingMode))
	}
	n, pct, _ := convert(v)
	if pct {
		n /= 100
	}
	return roundFloat(n, prec, mode)
}

// ParseValue is like [Parse], but it accepts a value of any type.
// It is intended for operands of dynamic type, such as values decoded
// from JSON.
// Values of types whose underlying type is not a parseable type, including
// nil, booleans, slices, maps and structs, produce NaN.
// ParseValue does not panic.
func ParseValue(v any) float64 {
	switch v := v.(type) {
	case nil:
		return math.NaN()
	case *big.Int:
		return Parse(v)
	}
	n, pct, text, ok := convertKind(reflect.ValueOf(v))
	if !ok {
		return math.NaN()
	}
	return roundParsed(n, pct, text)
}

// convert returns the numeric value of v before any rounding.
// It reports whether v was a percentage and whether it is a string.
// For percentages, the value is not yet divided by 100.
func convert[T Parseable](v T) (n float64, pct, text bool) {
	if b, ok := any(v).(*big.Int); ok {
		if b == nil {
			return math.NaN(), false, false
		}
		n, _ = new(big.Float).SetInt(b).Float64()
		return n, false, false
	}
	n, pct, text, _ = convertKind(reflect.ValueOf(v))
	return n, pct, text
}

// convertKind is like convert, but it dispatches on the underlying kind of rv.
// It reports false for kinds outside of [Parseable].
func convertKind(rv reflect.Value) (n float64, pct, text, ok bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), false, false, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), false, false, true
	case reflect.Float32:
		return shortFloat32(float32(rv.Float())), false, false, true
	case reflect.Float64:
		return rv.Float(), false, false, true
	case reflect.String:
		n, pct = parseText(rv.String())
		return n, pct, true, true
	}
	return math.NaN(), false, false, false
}

// shortFloat32 converts f to the float64 with the same shortest decimal
// representation.
func shortFloat32(f float32) float64 {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return float64(f)
	}
	n, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'e', -1, 32), 64)
	if err != nil {
		return float64(f) // unexpected by design
	}
	return n
}

// isPercent reports whether v is a string with a trailing percent sign.
func isPercent(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return false
	}
	return strings.HasSuffix(strings.TrimSpace(rv.String()), "%")
}

// parseText converts a numeric string to float64.
// Unlike [strconv.ParseFloat], it rejects hexadecimal notation, underscores
// and NaN, and accepts a trailing percent sign.
func parseText(num string) (n float64, pct bool) {
	num = strings.TrimSpace(num)
	if strings.HasSuffix(num, "%") {
		pct = true
		num = strings.TrimSpace(num[:len(num)-1])
	}
	if !isNumeric(num) {
		return math.NaN(), pct
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n, pct
		}
		return math.NaN(), pct
	}
	return n, pct
}

// isNumeric reports whether num matches the numeric-string grammar of [Parse]
// without the percent sign.
func isNumeric(num string) bool {
	var (
		pos     int
		width   int
		hascoef bool
		hasesym bool
		hasexp  bool
	)

	width = len(num)

	// Sign
	if pos < width && (num[pos] == '-' || num[pos] == '+') {
		pos++
	}

	// Infinity
	if rest := num[pos:]; strings.EqualFold(rest, "inf") || strings.EqualFold(rest, "infinity") {
		return true
	}

	// Integer
	for pos < width && num[pos] >= '0' && num[pos] <= '9' {
		hascoef = true
		pos++
	}

	// Fraction
	if pos < width && num[pos] == '.' {
		pos++
		for pos < width && num[pos] >= '0' && num[pos] <= '9' {
			hascoef = true
			pos++
		}
	}

	// Exponential part
	if pos < width && (num[pos] == 'e' || num[pos] == 'E') {
		hasesym = true
		pos++
		if pos < width && (num[pos] == '-' || num[pos] == '+') {
			pos++
		}
		for pos < width && num[pos] >= '0' && num[pos] <= '9' {
			hasexp = true
			pos++
		}
	}

	return pos == width && hascoef && (!hasesym || hasexp)
}
