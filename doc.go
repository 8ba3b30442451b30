/*
Package decfloat implements decimal-safe arithmetic for float64 values.
It is designed for programs that keep decimal quantities, such as prices,
percentages and measurements, in binary floating-point numbers and expect
results to match what the same computation would produce on paper.

Binary floating-point numbers cannot represent most decimal fractions exactly.
As a result, native operations exhibit representation error:

	0.1 + 0.2 = 0.30000000000000004
	0.2 * 0.2 = 0.04000000000000001
	0.3 - 0.2 = 0.09999999999999998

The functions of this package cancel that error by rounding each result
to the number of decimal digits that the exact result can have.

# Scale

The scale of a number is the number of significant digits after the decimal
point in its shortest decimal representation, the one printed by
[strconv.FormatFloat] with precision -1.
For example, the scale of 12.345 is 3.
For integers with trailing zeros the scale is negative: the scale of 1200 is -2.
The scale of 0 is 0.
NaN and ±Inf have no scale.

The scale of a result is derived from the scales of the operands:

  - [Add], [Sub]: the greater of the scales.
  - [Mul]: the sum of the scales.
  - [Quo], [QuoExact], [QuoIEEE], [Avg], [AvgExact]: a precision given by
    the caller, since a quotient can have an infinite decimal expansion.

The derived scale is limited to the range from [MinPrec] to [MaxPrec].

# Rounding

Rounding never multiplies a value by a power of ten, because such
multiplication reintroduces representation error.
Instead, the decimal exponent in the shortest representation of the value
is shifted by the precision, so 1.005 with precision 2 becomes 1.005e2,
which parses to 100.5 exactly.
The shifted value is rounded to an integer and its exponent is shifted back.

The package provides the following rounding functions:

  - nearest value, ties towards positive infinity:
    [Round].
  - rounding towards negative infinity:
    [Floor].
  - rounding towards positive infinity:
    [Ceil].
  - any of the above, selected by a [RoundingMode]:
    [RoundMode].

A negative precision rounds to the left of the decimal point, so
Round(1250, -2) is 1300.
The result of rounding is never negative zero.

# Operands

The arithmetic functions are generic and accept operands of any [Parseable]
type: integers, floats, big integers and numeric strings.
Operands of dynamic type can be converted with [ParseValue] and
aggregated with [SumValues] and [AvgValues].
A string operand can end with a percent sign.
In [Add], [Sub] and [Sum] such an operand is relative to the preceding value,
so Add(10, "20%") is 12.
Elsewhere it is simply divided by 100.

# Special values

NaN and ±Inf are ordinary values that propagate through every function,
following IEEE 754.
A string that is not a number is converted to NaN.

# Errors

Only strict division returns an error.
[Quo] and [QuoExact] return [ErrDivisionByZero], an [ArithmeticError],
if the divisor is 0.
[QuoIEEE] returns ±Inf or NaN instead.

Invalid arguments are programming errors and cause a panic:

  - a precision less than [MinPrec] or greater than [MaxPrec];
  - an unknown [RoundingMode].

All functions are pure and safe for concurrent use.
*/
package decfloat
