package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// plainNumberRegex matches a buffer holding a single decimal number.
// Examples: "50", "-3", "0.25", ".5", "7."
var plainNumberRegex = regexp.MustCompile(`^-?(?:\d+\.?\d*|\.\d+)$`)

// parseNumber parses a buffer that must hold a plain decimal number.
// Function text such as "sin(30" is rejected with ErrNotANumber.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !plainNumberRegex.MatchString(s) {
		return 0, &EvalError{Expr: s, Pos: -1, Err: ErrNotANumber}
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &EvalError{Expr: s, Pos: -1, Msg: err.Error(), Err: ErrNotANumber}
	}
	return val, nil
}

// formatNumber renders a result for display: the shortest decimal that
// round-trips, switching to exponent form for very large or very small
// magnitudes, and Infinity, -Infinity or NaN for non-finite values.
//
// Examples: 14 → "14", 0.1+0.2 → "0.30000000000000004", 1e21 → "1e+21",
// 1.5e-7 → "1.5e-7".
func formatNumber(val float64) string {
	switch {
	case math.IsNaN(val):
		return "NaN"
	case math.IsInf(val, 1):
		return "Infinity"
	case math.IsInf(val, -1):
		return "-Infinity"
	case val == 0:
		return "0"
	}

	abs := math.Abs(val)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(val, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		n, err := strconv.Atoi(exp)
		if err != nil {
			return s
		}
		return fmt.Sprintf("%se%+d", mant, n)
	}
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// formatPlain renders a value that replaces the input buffer. It never
// uses exponent form, since "e" in the buffer means Euler's number.
func formatPlain(val float64) string {
	if val == 0 {
		return "0"
	}
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// maxFactorial is the largest n whose factorial is finite in a float64.
const maxFactorial = 170

// factorial computes n! recursively; factorial(0) and factorial(1) are 1.
func factorial(n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(n) * factorial(n-1)
}
