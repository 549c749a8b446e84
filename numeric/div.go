package numeric

import (
	"math"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/value"
)

// Div implements / (spec §4.1's Division rules, which diverge from
// arithKind: big_decimal always converts to float, and plain int/int
// division is float too — Clojure's `/` yields ratios upstream, this
// runtime approximates with doubles).
func Div(al alloc.Allocator, a, b value.Value) (value.Value, error) {
	switch divKind(a.Kind(), b.Kind()) {
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
		if bi.Sign() == 0 {
			return nil, diag.DivideByZero()
		}
		return value.NewBigInt(al.BigInt().Quo(ai, bi)), nil
	default: // value.KindFloat
		af, err := toFloat(al, a, 0)
		if err != nil {
			return nil, err
		}
		bf, err := toFloat(al, b, 1)
		if err != nil {
			return nil, err
		}
		if bf == 0 && af != 0 && !math.IsNaN(af) {
			return nil, diag.DivideByZero()
		}
		// bf == 0 && af == 0 (or af NaN) falls through to af/bf, which is
		// NaN per IEEE-754 — NaN inputs/outputs propagate rather than erroring.
		return value.Float(af / bf), nil
	}
}

// Quot implements quot: truncating quotient, classified by arithKind like
// +/-/* rather than by divKind, so int/int stays int and big_int stays
// big_int (spec groups quot with mod/rem as "strictly binary"). A
// big_decimal operand is the exception: both sides are converted to
// float and the truncated float quotient is returned, never a
// big_decimal.
func Quot(al alloc.Allocator, a, b value.Value) (value.Value, error) {
	switch arithKind(a.Kind(), b.Kind()) {
	case value.KindBigDecimal:
		af, bf, err := decFloatPair(al, a, b)
		if err != nil {
			return nil, err
		}
		if bf == 0 {
			return nil, diag.DivideByZero()
		}
		return value.Float(math.Trunc(af / bf)), nil
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
		if bi.Sign() == 0 {
			return nil, diag.DivideByZero()
		}
		return value.NewBigInt(al.BigInt().Quo(ai, bi)), nil
	case value.KindFloat:
		af, err := toFloat(al, a, 0)
		if err != nil {
			return nil, err
		}
		bf, err := toFloat(al, b, 1)
		if err != nil {
			return nil, err
		}
		if bf == 0 {
			return nil, diag.DivideByZero()
		}
		return value.Float(math.Trunc(af / bf)), nil
	default: // value.KindInt
		ai, bi := int64(a.(value.Int)), int64(b.(value.Int))
		if bi == 0 {
			return nil, diag.DivideByZero()
		}
		return value.Int(ai / bi), nil
	}
}

func decFloatPair(al alloc.Allocator, a, b value.Value) (float64, float64, error) {
	af, err := toFloat(al, a, 0)
	if err != nil {
		return 0, 0, err
	}
	bf, err := toFloat(al, b, 1)
	if err != nil {
		return 0, 0, err
	}
	return af, bf, nil
}
