package value

import "math/big"

// Equal implements structural equality (spec §3's Value invariant). Within
// the "exact" numeric family (Int, BigInt, BigDecimal) it coerces to exact
// mathematical value; Float compares only against Float (double equality);
// a Float vs. an exact numeric tag is never equal (Clojure's `=`
// distinguishes 1 from 1.0).
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ak, bk := a.Kind(), b.Kind()
	if IsNumeric(ak) && IsNumeric(bk) {
		return numericEqual(a, b)
	}
	if ak != bk {
		return false
	}
	switch av := a.(type) {
	case nilVal:
		return true
	case Bool:
		return av == b.(Bool)
	case Str:
		return av == b.(Str)
	case Symbol:
		return av == b.(Symbol)
	case Keyword:
		return av == b.(Keyword)
	case List:
		return equalSeq(av.Items, b.(List).Items)
	case Vector:
		return equalSeq(av.Items, b.(Vector).Items)
	case Set:
		return equalSet(av.Items, b.(Set).Items)
	case Map:
		return equalMap(av, b.(Map))
	case Fn:
		return av.Name == b.(Fn).Name
	case *Var:
		return av == b.(*Var)
	default:
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalSet(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, av := range a {
		for j, bv := range b {
			if !used[j] && Equal(av, bv) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

func equalMap(a, b Map) bool {
	if len(a.Entries) != len(b.Entries) {
		return false
	}
	for _, e := range a.Entries {
		v, ok := b.Get(e.Key)
		if !ok || !Equal(v, e.Val) {
			return false
		}
	}
	return true
}

func numericEqual(a, b Value) bool {
	af, aIsFloat := a.(Float)
	bf, bIsFloat := b.(Float)
	switch {
	case aIsFloat && bIsFloat:
		return float64(af) == float64(bf)
	case aIsFloat || bIsFloat:
		return false
	default:
		return exactRat(a).Cmp(exactRat(b)) == 0
	}
}

// exactRat converts an exact numeric Value (Int, BigInt or BigDecimal) to
// a big.Rat for mathematical-value comparison across tags.
func exactRat(v Value) *big.Rat {
	switch n := v.(type) {
	case Int:
		return new(big.Rat).SetInt64(int64(n))
	case BigInt:
		return new(big.Rat).SetInt(n.v)
	case BigDecimal:
		r := new(big.Rat).SetInt(n.unscaled)
		if n.scale == 0 {
			return r
		}
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(absInt32(n.scale)), nil)
		if n.scale > 0 {
			return r.Quo(r, new(big.Rat).SetInt(pow))
		}
		return r.Mul(r, new(big.Rat).SetInt(pow))
	default:
		return new(big.Rat)
	}
}

func absInt32(n int32) int64 {
	if n < 0 {
		return int64(-n)
	}
	return int64(n)
}
