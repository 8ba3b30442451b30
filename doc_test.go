package decfloat_test

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/govalues/decfloat"
	"golang.org/x/exp/rand"
)

func evaluate(input string) (float64, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return 0, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return 0, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]float64, error) {
	stack := make([]float64, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []float64, token string) ([]float64, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result float64
	var err error
	switch token {
	case "+":
		result = decfloat.Add(left, right)
	case "-":
		result = decfloat.Sub(left, right)
	case "*":
		result = decfloat.Mul(left, right)
	case "/":
		result, err = decfloat.Quo(left, right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %s %v\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []float64, token string) ([]float64, error) {
	f := decfloat.Parse(token)
	if math.IsNaN(f) {
		return nil, fmt.Errorf("%q is not a number", token)
	}
	return append(stack, f), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in postfix (or reverse Polish) notation.
// The calculator can handle basic arithmetic operations such as addition,
// subtraction, multiplication, and division.
func Example_postfixCalculator() {
	f, err := evaluate("* 10 + 1.23 4.56")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	_, err = evaluate("/ 1 - 0.3 + 0.1 0.2")
	fmt.Println(err)
	// Output:
	// 57.9
	// processing tokens: processing token "/": evaluating "1 / 0": computing [1 / 0]: division by zero
}

// This example computes an invoice total, where the tax is given as a
// percentage of the subtotal.
func Example_invoice() {
	items := []string{"19.99", "5.01", "0.10"}
	subtotal := decfloat.Sum(items...)
	total := decfloat.Round(decfloat.Add(subtotal, "8.25%"), 2)
	fmt.Println(subtotal)
	fmt.Println(total)
	// Output:
	// 25.1
	// 27.17
}

func ExampleScale() {
	fmt.Println(decfloat.Scale(12.345))
	fmt.Println(decfloat.Scale(1000))
	fmt.Println(decfloat.Scale(math.Inf(1)))
	// Output:
	// 3 true
	// -3 true
	// 0 false
}

func ExampleUnit() {
	fmt.Println(decfloat.Unit(12.347))
	fmt.Println(decfloat.Unit(2000))
	fmt.Println(decfloat.Unit(0))
	// Output:
	// 0.001
	// 1000
	// 1
}

func ExampleRound() {
	x, y := 0.1, 0.2
	fmt.Println(x+y, decfloat.Round(x+y, 15))
	fmt.Println(decfloat.Round(1.005, 2))
	fmt.Println(decfloat.Round(1250, -2))
	fmt.Println(decfloat.Round(-1250, -2))
	// Output:
	// 0.30000000000000004 0.3
	// 1.01
	// 1300
	// -1200
}

func ExampleFloor() {
	fmt.Println(decfloat.Floor(12.45, 1))
	fmt.Println(decfloat.Floor(-0.45, 0))
	fmt.Println(decfloat.Floor(1250, -2))
	// Output:
	// 12.4
	// -1
	// 1200
}

func ExampleCeil() {
	fmt.Println(decfloat.Ceil(12.45, 1))
	fmt.Println(decfloat.Ceil(-0.45, 0))
	fmt.Println(decfloat.Ceil(1250, -2))
	// Output:
	// 12.5
	// 0
	// 1300
}

func ExampleRoundMode() {
	fmt.Println(decfloat.RoundMode(1.45, 1, decfloat.ToNearest))
	fmt.Println(decfloat.RoundMode(-1.45, 1, decfloat.ToNearest))
	fmt.Println(decfloat.RoundMode(1.45, 1, decfloat.ToNegativeInf))
	fmt.Println(decfloat.RoundMode(1.45, 1, decfloat.ToPositiveInf))
	// Output:
	// 1.5
	// -1.4
	// 1.4
	// 1.5
}

func ExampleRoundingMode_String() {
	fmt.Println(decfloat.ToNearest)
	fmt.Println(decfloat.ToPositiveInf)
	// Output:
	// ToNearest
	// ToPositiveInf
}

func ExampleParse() {
	fmt.Println(decfloat.Parse("12.5%"))
	fmt.Println(decfloat.Parse("  2  "))
	fmt.Println(decfloat.Parse("abc"))
	fmt.Println(decfloat.Parse(big.NewInt(256)))
	fmt.Println(decfloat.Parse(float32(0.1)))
	// Output:
	// 0.125
	// 2
	// NaN
	// 256
	// 0.1
}

func ExampleParseExact() {
	fmt.Println(decfloat.ParseExact("13.359%", 4, decfloat.ToNearest))
	fmt.Println(decfloat.ParseExact("3.45e2", -1, decfloat.ToNearest))
	fmt.Println(decfloat.ParseExact("1.5%", 2, decfloat.ToNegativeInf))
	// Output:
	// 0.1336
	// 350
	// 0.01
}

func ExampleParseValue() {
	var v map[string]any
	if err := json.Unmarshal([]byte(`{"price": "12.5%", "count": 4}`), &v); err != nil {
		panic(err)
	}
	fmt.Println(decfloat.ParseValue(v["price"]))
	fmt.Println(decfloat.ParseValue(v["count"]))
	fmt.Println(decfloat.ParseValue(v["missing"]))
	fmt.Println(decfloat.ParseValue(true))
	// Output:
	// 0.125
	// 4
	// NaN
	// NaN
}

func ExampleAdd() {
	x, y := 0.1, 0.2
	fmt.Println(x+y, decfloat.Add(x, y))
	fmt.Println(decfloat.Add(10, "20%"))
	fmt.Println(decfloat.Add("20%", 10))
	// Output:
	// 0.30000000000000004 0.3
	// 12
	// 10.2
}

func ExampleSub() {
	x, y := 0.3, 0.2
	fmt.Println(x-y, decfloat.Sub(x, y))
	fmt.Println(decfloat.Sub(10, "20%"))
	// Output:
	// 0.09999999999999998 0.1
	// 8
}

func ExampleMul() {
	x, y := 0.2, 0.2
	fmt.Println(x*y, decfloat.Mul(x, y))
	fmt.Println(decfloat.Mul(4, "44%"))
	// Output:
	// 0.04000000000000001 0.04
	// 1.76
}

func ExampleQuo() {
	fmt.Println(decfloat.Quo(1, 3))
	fmt.Println(decfloat.Quo("44%", "4%"))
	fmt.Println(decfloat.Quo(1, 0))
	// Output:
	// 0.3333333333333333 <nil>
	// 11 <nil>
	// 0 computing [1 / 0]: division by zero
}

func ExampleQuoExact() {
	fmt.Println(decfloat.QuoExact(10, 3, 4))
	fmt.Println(decfloat.QuoExact(1000, 3, -1))
	// Output:
	// 3.3333 <nil>
	// 330 <nil>
}

func ExampleQuoIEEE() {
	fmt.Println(decfloat.QuoIEEE(1, 0, 0))
	fmt.Println(decfloat.QuoIEEE(-1, 0, 0))
	fmt.Println(decfloat.QuoIEEE(0, 0, 0))
	fmt.Println(decfloat.QuoIEEE(2, 3, 2))
	// Output:
	// +Inf
	// -Inf
	// NaN
	// 0.67
}

func ExampleMustQuo() {
	fmt.Println(decfloat.MustQuo(1, 4))
	// Output:
	// 0.25
}

func ExampleMustQuoExact() {
	fmt.Println(decfloat.MustQuoExact(2, 3, 3))
	// Output:
	// 0.667
}

func ExampleMod() {
	fmt.Println(decfloat.Mod(-5, 3))
	fmt.Println(decfloat.Mod(5, -3))
	fmt.Println(decfloat.Mod(5.5, 2))
	// Output:
	// 1
	// -1
	// 1.5
}

func ExampleSum() {
	fmt.Println(decfloat.Sum(0.1, 0.2, 0.3))
	fmt.Println(decfloat.Sum("100", "10%", "10%"))
	// Output:
	// 0.6
	// 121
}

func ExampleSumValues() {
	var prices []any
	if err := json.Unmarshal([]byte(`[19.99, "5.01", 0.1, "8.25%"]`), &prices); err != nil {
		panic(err)
	}
	fmt.Println(decfloat.SumValues(prices...))
	fmt.Println(decfloat.AvgValues(100, "10%", 5.5))
	// Output:
	// 27.17075
	// 38.5
}

func ExampleAvg() {
	fmt.Println(decfloat.Avg(11, 13, -2, 0))
	fmt.Println(decfloat.Avg(1, 1, 2))
	// Output:
	// 5.5
	// 1.3333333333333333
}

func ExampleAvgExact() {
	fmt.Println(decfloat.AvgExact(2, 1, 2, 2))
	fmt.Println(decfloat.AvgExact(0, 1, 2, 2))
	// Output:
	// 1.67
	// 2
}

func ExampleApproxEqual() {
	x, y := 0.1, 0.2
	fmt.Println(decfloat.ApproxEqual(x+y, 0.3, 0))
	fmt.Println(decfloat.ApproxEqual(x+y, 0.3, 0.1))
	fmt.Println(decfloat.ApproxEqual(0.4, 0.3, 0.1))
	fmt.Println(decfloat.ApproxEqual(35.5, 35.55, 0))
	// Output:
	// false
	// true
	// true
	// false
}

func ExampleRoundEqual() {
	fmt.Println(decfloat.RoundEqual(1.234, 1.2341, 3))
	fmt.Println(decfloat.RoundEqual(1.234, 1.2341, 4))
	// Output:
	// true
	// false
}

func ExampleRandom() {
	x := decfloat.Random(1, 6, 0)
	fmt.Println(1 <= x && x <= 6, x == math.Trunc(x))
	// Output:
	// true true
}

func ExampleRandomFrom() {
	r := rand.New(rand.NewSource(2024))
	x := decfloat.RandomFrom(r, 0, 1, 2)
	fmt.Println(0 <= x && x <= 1, x == decfloat.Round(x, 2))
	// Output:
	// true true
}
