// Package numeric implements the promotion lattice, binary arithmetic,
// division, modulus/remainder, ordered comparison and variadic folding
// described in spec §4.1. The dispatch shape — classify the promoted
// output kind, then branch to a per-kind implementation — is modeled on
// ivy's binaryOp{whichType, fn [numType]binaryFn} tables
// (robpike.io/ivy's value package), adapted from a static array indexed
// by a type rank to explicit per-operation promotion functions, since the
// spec's promotion rules aren't a simple total order (big_int+float
// demotes to float even though big_int would otherwise outrank float).
package numeric

import "github.com/db47h/lispcore/value"

// arithKind resolves the output kind for +, -, *, mod and rem per spec
// §4.1 rules 1-4.
func arithKind(a, b value.Kind) value.Kind {
	hasDec := a == value.KindBigDecimal || b == value.KindBigDecimal
	hasFloat := a == value.KindFloat || b == value.KindFloat
	hasBig := a == value.KindBigInt || b == value.KindBigInt
	switch {
	case hasDec && hasFloat:
		return value.KindFloat
	case hasDec:
		return value.KindBigDecimal
	case hasBig && hasFloat:
		return value.KindFloat
	case hasBig:
		return value.KindBigInt
	case a == value.KindInt && b == value.KindInt:
		return value.KindInt
	default:
		return value.KindFloat
	}
}

// divKind resolves the output kind for / per spec §4.1's Division rules,
// which diverge from arithKind: big_decimal always converts to float
// (never promotes to big_decimal, to avoid non-terminating-decimal
// failures), and plain int/int division is float, not int.
func divKind(a, b value.Kind) value.Kind {
	hasDec := a == value.KindBigDecimal || b == value.KindBigDecimal
	hasFloat := a == value.KindFloat || b == value.KindFloat
	hasBig := a == value.KindBigInt || b == value.KindBigInt
	switch {
	case hasDec:
		return value.KindFloat
	case hasBig:
		if hasFloat {
			return value.KindFloat
		}
		return value.KindBigInt
	default:
		return value.KindFloat
	}
}

// compareKind resolves the output kind used to perform an ordered
// comparison per spec §4.1's Ordered comparison rules.
func compareKind(a, b value.Kind) value.Kind {
	hasDec := a == value.KindBigDecimal || b == value.KindBigDecimal
	hasFloat := a == value.KindFloat || b == value.KindFloat
	hasBig := a == value.KindBigInt || b == value.KindBigInt
	switch {
	case hasDec:
		return value.KindFloat
	case hasBig:
		if hasFloat {
			return value.KindFloat
		}
		return value.KindBigInt
	case a == value.KindInt && b == value.KindInt:
		return value.KindInt
	default:
		return value.KindFloat
	}
}
