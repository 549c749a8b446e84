package numeric

import "math"

// addOverflows reports whether a+b does not fit in an int64. Classic
// same-sign-operands/different-sign-result carry check.
func addOverflows(a, b int64) bool {
	c := a + b
	return ((a ^ c) & (b ^ c)) < 0
}

// subOverflows reports whether a-b does not fit in an int64.
func subOverflows(a, b int64) bool {
	c := a - b
	return ((a ^ b) & (a ^ c)) < 0
}

// mulOverflows reports whether a*b does not fit in an int64.
func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return true
	}
	c := a * b
	return c/b != a
}
