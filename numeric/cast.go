package numeric

import (
	"math/big"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/value"
)

// ten is the shared constant used by pow10's Exp; it is never mutated.
var ten = big.NewInt(10)

// toFloat implements spec §4.1 rule 4's numeric-cast table: Int, Float,
// BigInt and BigDecimal all cast to float64; anything else is a
// type_error carrying the offending argument's index. The big_decimal
// path borrows a scratch power-of-ten from a and releases it before
// returning, since the float64 result never aliases it.
func toFloat(a alloc.Allocator, v value.Value, argIndex int) (float64, error) {
	switch n := v.(type) {
	case value.Int:
		return float64(n), nil
	case value.Float:
		return float64(n), nil
	case value.BigInt:
		f := new(big.Float).SetInt(n.Int())
		r, _ := f.Float64()
		return r, nil
	case value.BigDecimal:
		return bigDecimalToFloat(a, n), nil
	default:
		return 0, diag.WithArg(diag.TypeError, argIndex, "cannot cast %s to number", v.Kind())
	}
}

func bigDecimalToFloat(a alloc.Allocator, bd value.BigDecimal) float64 {
	f := new(big.Float).SetInt(bd.Unscaled())
	scale := bd.Scale()
	if scale == 0 {
		r, _ := f.Float64()
		return r
	}
	pow := pow10(a, absScale(scale))
	defer a.Release(pow)
	powF := new(big.Float).SetInt(pow)
	if scale > 0 {
		f.Quo(f, powF)
	} else {
		f.Mul(f, powF)
	}
	r, _ := f.Float64()
	return r
}

// asBigInt promotes v to a *big.Int for use as a read-only operand.
// owned reports whether the returned pointer was acquired from a and
// must be released by the caller once done reading it; it is false when
// v is already a BigInt, since the pointer then aliases that value's
// live storage and releasing it would corrupt the value.
func asBigInt(a alloc.Allocator, v value.Value, argIndex int) (*big.Int, bool, error) {
	switch n := v.(type) {
	case value.Int:
		z := a.BigInt()
		z.SetInt64(int64(n))
		return z, true, nil
	case value.BigInt:
		return n.Int(), false, nil
	default:
		return nil, false, diag.WithArg(diag.TypeError, argIndex, "cannot cast %s to big_int", v.Kind())
	}
}

// asBigDecimal promotes v to a BigDecimal for use as a read-only operand.
// owned reports whether Unscaled() was acquired from a (the Int case)
// and must be released once done reading it; false for BigInt/BigDecimal
// inputs, whose unscaled magnitude aliases existing live storage.
func asBigDecimal(a alloc.Allocator, v value.Value, argIndex int) (value.BigDecimal, bool, error) {
	switch n := v.(type) {
	case value.Int:
		z := a.BigInt()
		z.SetInt64(int64(n))
		return value.NewBigDecimal(z, 0), true, nil
	case value.BigInt:
		return value.NewBigDecimal(n.Int(), 0), false, nil
	case value.BigDecimal:
		return n, false, nil
	default:
		return value.BigDecimal{}, false, diag.WithArg(diag.TypeError, argIndex, "cannot cast %s to big_decimal", v.Kind())
	}
}

// pow10 returns a freshly allocated 10^n, acquired from a.
func pow10(a alloc.Allocator, n int32) *big.Int {
	exp := a.BigInt()
	exp.SetInt64(int64(n))
	defer a.Release(exp)
	z := a.BigInt()
	return z.Exp(ten, exp, nil)
}

func absScale(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}
