package numeric

import (
	"math"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/value"
)

// Mod implements mod: floor-mod (sign follows the divisor). Promotion
// matches +/-/* (spec §4.1) except for big_decimal: when either operand
// is a big_decimal, both are converted to float and the result is a
// float, not a big_decimal (the same holds for Rem).
func Mod(al alloc.Allocator, a, b value.Value) (value.Value, error) {
	return modRem(al, a, b, true)
}

// Rem implements rem: truncating-toward-zero remainder (sign follows the
// dividend, Go's native % semantics).
func Rem(al alloc.Allocator, a, b value.Value) (value.Value, error) {
	return modRem(al, a, b, false)
}

func modRem(al alloc.Allocator, a, b value.Value, floor bool) (value.Value, error) {
	switch arithKind(a.Kind(), b.Kind()) {
	case value.KindBigDecimal:
		// big_decimal mod/rem isn't spelled out by the spec; mirrored on
		// Division's big_decimal-always-float rule rather than inventing
		// exact decimal mod semantics.
		af, bf, err := decFloatPair(al, a, b)
		if err != nil {
			return nil, err
		}
		if bf == 0 {
			return nil, diag.DivideByZero()
		}
		return value.Float(floatModRem(af, bf, floor)), nil
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
		// q is pure scratch — only r escapes as the result's magnitude.
		q := al.BigInt()
		defer al.Release(q)
		r := al.BigInt()
		q.QuoRem(ai, bi, r)
		if floor && r.Sign() != 0 && (r.Sign() < 0) != (bi.Sign() < 0) {
			r.Add(r, bi)
		}
		return value.NewBigInt(r), nil
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
		return value.Float(floatModRem(af, bf, floor)), nil
	default: // value.KindInt
		ai, bi := int64(a.(value.Int)), int64(b.(value.Int))
		if bi == 0 {
			return nil, diag.DivideByZero()
		}
		r := ai % bi
		if floor && r != 0 && (r < 0) != (bi < 0) {
			r += bi
		}
		return value.Int(r), nil
	}
}

func floatModRem(a, b float64, floor bool) float64 {
	r := math.Mod(a, b)
	if floor && r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
