package numeric

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/value"
)

// rescale returns u × 10^(to-from) as a freshly allocated *big.Int
// acquired from a. Callers only ever pass to >= from (the caller always
// rescales up to max(scaleA, scaleB)), matching spec §4.1's scale-
// alignment algorithm, which never needs a division branch.
func rescale(a alloc.Allocator, u *big.Int, from, to int32) *big.Int {
	z := a.BigInt()
	if from == to {
		return z.Set(u)
	}
	pow := pow10(a, to-from)
	defer a.Release(pow)
	return z.Mul(u, pow)
}

// decAdd implements spec §4.1's big_decimal add: rescale both operands to
// max(scale), add the rescaled coefficients, keep max(scale). The
// rescaled a-side becomes the result's coefficient and escapes with it;
// the rescaled b-side is pure scratch, released once consumed.
func decAdd(a alloc.Allocator, au, bu *big.Int, as, bs int32) (*big.Int, int32) {
	smax := as
	if bs > smax {
		smax = bs
	}
	a2 := rescale(a, au, as, smax)
	b2 := rescale(a, bu, bs, smax)
	defer a.Release(b2)
	return a2.Add(a2, b2), smax
}

// decSub is decAdd's subtraction counterpart.
func decSub(a alloc.Allocator, au, bu *big.Int, as, bs int32) (*big.Int, int32) {
	smax := as
	if bs > smax {
		smax = bs
	}
	a2 := rescale(a, au, as, smax)
	b2 := rescale(a, bu, bs, smax)
	defer a.Release(b2)
	return a2.Sub(a2, b2), smax
}

// decMul implements spec §4.1's big_decimal multiply: multiply
// coefficients, sum scales, no renormalization (trailing zeros are kept).
func decMul(a alloc.Allocator, au, bu *big.Int, as, bs int32) (*big.Int, int32) {
	return a.BigInt().Mul(au, bu), as + bs
}

// ParseBigDecimal parses a decimal literal (e.g. "1.50", "-3.0e2") into a
// BigDecimal, delegating the parsing itself to apd so exponent-notation
// and edge cases (leading zeros, bare "+"/"-") match a production decimal
// parser rather than a hand-rolled one. The apd.Decimal's Coeff/Exponent
// pair is read back into our own (unscaled, scale) representation
// (scale = -exponent) immediately; no apd arithmetic participates beyond
// parsing. decAdd/decSub/decMul above rescale and combine coefficients
// directly on math/big rather than calling into apd.Context, because
// apd's Add/Sub/Mul always round to a fixed Context precision, and this
// runtime's big_decimal must preserve the exact scale-alignment result
// spec §4.1 describes (no rounding, no renormalization on multiply).
func ParseBigDecimal(s string) (value.BigDecimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return value.BigDecimal{}, err
	}
	coeff := d.Coeff.MathBigInt()
	if d.Negative {
		coeff = new(big.Int).Neg(coeff)
	}
	return value.NewBigDecimal(coeff, -d.Exponent), nil
}
