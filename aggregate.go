package decfloat

import "fmt"

// Sum returns the sum of nums, adding them one by one with [Add]:
//
//	Sum(0.1, 0.2, 0.3) = 0.6, while 0.1 + 0.2 + 0.3 = 0.6000000000000001
//
// A percentage string is relative to the sum of the preceding values:
//
//	Sum("100", "10%", "10%") = 121
//
// Sum of no values is 0.
func Sum[T Parseable](nums ...T) float64 {
	var s float64
	for _, n := range nums {
		s = add(relativeOperands(s, n))
	}
	return s
}

// Avg returns the arithmetic mean of nums rounded to [DefaultQuoPrec] digits
// after the decimal point.
// See [AvgExact] for details.
func Avg[T Parseable](nums ...T) float64 {
	return AvgExact(DefaultQuoPrec, nums...)
}

// AvgExact returns the arithmetic mean of nums rounded to the specified
// number of digits after the decimal point:
//
//	AvgExact(2, 1, 2, 2) = 1.67
//
// The sum is computed by [Sum].
// Mean of no values is 0.
//
// AvgExact panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func AvgExact[T Parseable](prec int, nums ...T) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("AvgExact(%v, %v) failed: %v", prec, nums, errPrecisionRange))
	}
	if len(nums) == 0 {
		return 0
	}
	f, _ := quo(Sum(nums...), float64(len(nums)), prec, true)
	return f
}

// SumValues is like [Sum], but it accepts values of any type, such as
// elements of a decoded JSON array, which can mix numbers and percentage
// strings.
// Values are converted with [ParseValue].
//
//	SumValues(100, "10%", 5.5) = 115.5
func SumValues(nums ...any) float64 {
	var s float64
	for _, v := range nums {
		s = add(relativeTo(s, ParseValue(v), v))
	}
	return s
}

// AvgValues is like [Avg], but it accepts values of any type.
// See [SumValues] for details.
func AvgValues(nums ...any) float64 {
	return AvgValuesExact(DefaultQuoPrec, nums...)
}

// AvgValuesExact is like [AvgExact], but it accepts values of any type.
// See [SumValues] for details.
//
// AvgValuesExact panics if the precision is less than [MinPrec] or greater than [MaxPrec].
func AvgValuesExact(prec int, nums ...any) float64 {
	if prec < MinPrec || MaxPrec < prec {
		panic(fmt.Sprintf("AvgValuesExact(%v, %v) failed: %v", prec, nums, errPrecisionRange))
	}
	if len(nums) == 0 {
		return 0
	}
	f, _ := quo(SumValues(nums...), float64(len(nums)), prec, true)
	return f
}
