package numeric

import (
	"math/big"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/value"
)

type intBinOp func(a, b int64) (int64, bool)
type bigBinOp func(z, a, b *big.Int) *big.Int
type floatBinOp func(a, b float64) float64
type decBinOp func(a alloc.Allocator, au, bu *big.Int, as, bs int32) (*big.Int, int32)

// binaryArith is the shared cascade for +, -, * (spec §4.1 rules 1-4):
// resolve the output kind, then dispatch to the per-kind implementation
// supplied by the caller. Each of Add/Sub/Mul plugs in its own
// int/big/float/decimal op, the way ivy's binaryOp struct plugs a
// [numType]binaryFn array into one dispatch shape.
//
// Every *big.Int this function and its decimal/big-int helpers touch is
// acquired from al: operand conversions that only exist for the
// duration of the call (asBigInt/asBigDecimal's Int case, decAdd/decSub's
// losing rescale) are released via defer before returning; conversions
// that alias a Value's own live storage are left alone; the destination
// that becomes the result's magnitude is never released, since it
// escapes with the returned Value (spec §5 "Resource discipline").
func binaryArith(al alloc.Allocator, a, b value.Value, iop intBinOp, bop bigBinOp, fop floatBinOp, dop decBinOp) (value.Value, error) {
	switch arithKind(a.Kind(), b.Kind()) {
	case value.KindBigDecimal:
		ad, aOwned, err := asBigDecimal(al, a, 0)
		if err != nil {
			return nil, err
		}
		if aOwned {
			defer al.Release(ad.Unscaled())
		}
		bd, bOwned, err := asBigDecimal(al, b, 1)
		if err != nil {
			return nil, err
		}
		if bOwned {
			defer al.Release(bd.Unscaled())
		}
		u, s := dop(al, ad.Unscaled(), bd.Unscaled(), ad.Scale(), bd.Scale())
		return value.NewBigDecimal(u, s), nil
	case value.KindBigInt:
		ai, aOwned, err := asBigInt(al, a, 0)
		if err != nil {
			return nil, err
		}
		if aOwned {
			defer al.Release(ai)
		}
		bi, bOwned, err := asBigInt(al, b, 1)
		if err != nil {
			return nil, err
		}
		if bOwned {
			defer al.Release(bi)
		}
		return value.NewBigInt(bop(al.BigInt(), ai, bi)), nil
	case value.KindFloat:
		af, err := toFloat(al, a, 0)
		if err != nil {
			return nil, err
		}
		bf, err := toFloat(al, b, 1)
		if err != nil {
			return nil, err
		}
		return value.Float(fop(af, bf)), nil
	default: // value.KindInt
		ai, bi := int64(a.(value.Int)), int64(b.(value.Int))
		r, overflow := iop(ai, bi)
		if overflow {
			return value.Float(fop(float64(ai), float64(bi))), nil
		}
		return value.Int(r), nil
	}
}

// Add implements +. On integer overflow it demotes to float (spec §4.1
// rule 3 / §6 "Observable numeric semantics"); big_int results stay
// big_int even when they'd fit in an Int (sticky promotion).
func Add(al alloc.Allocator, a, b value.Value) (value.Value, error) {
	return binaryArith(al, a, b,
		func(x, y int64) (int64, bool) { return x + y, addOverflows(x, y) },
		(*big.Int).Add,
		func(x, y float64) float64 { return x + y },
		decAdd,
	)
}

// Sub implements -.
func Sub(al alloc.Allocator, a, b value.Value) (value.Value, error) {
	return binaryArith(al, a, b,
		func(x, y int64) (int64, bool) { return x - y, subOverflows(x, y) },
		(*big.Int).Sub,
		func(x, y float64) float64 { return x - y },
		decSub,
	)
}

// Mul implements *.
func Mul(al alloc.Allocator, a, b value.Value) (value.Value, error) {
	return binaryArith(al, a, b,
		func(x, y int64) (int64, bool) { return x * y, mulOverflows(x, y) },
		(*big.Int).Mul,
		func(x, y float64) float64 { return x * y },
		decMul,
	)
}
