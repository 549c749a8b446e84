package numeric

import (
	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/value"
)

// Ordering is the result of a binary ordered comparison.
type Ordering int

const (
	Lt Ordering = -1
	Eq Ordering = 0
	Gt Ordering = 1
)

// Compare implements the binary ordered comparator spec §4.1 describes;
// the variadic <, >, <=, >= operators verify the chain pairwise on top of
// this (see fold.go).
//
// big_decimal comparisons convert both sides to float, which loses
// precision outside double's exact range — this is spec's own
// documented Open Question (§9), not fixed here.
func Compare(al alloc.Allocator, a, b value.Value) (Ordering, error) {
	switch compareKind(a.Kind(), b.Kind()) {
	case value.KindBigInt:
		ai, aOwned, err := asBigInt(al, a, 0)
		if err != nil {
			return 0, err
		}
		if aOwned {
			defer al.Release(ai)
		}
		bi, bOwned, err := asBigInt(al, b, 1)
		if err != nil {
			return 0, err
		}
		if bOwned {
			defer al.Release(bi)
		}
		return Ordering(ai.Cmp(bi)), nil
	case value.KindInt:
		ai, bi := int64(a.(value.Int)), int64(b.(value.Int))
		switch {
		case ai < bi:
			return Lt, nil
		case ai > bi:
			return Gt, nil
		default:
			return Eq, nil
		}
	default: // value.KindFloat
		af, err := toFloat(al, a, 0)
		if err != nil {
			return 0, err
		}
		bf, err := toFloat(al, b, 1)
		if err != nil {
			return 0, err
		}
		switch {
		case af < bf:
			return Lt, nil
		case af > bf:
			return Gt, nil
		case af == bf:
			return Eq, nil
		default:
			// NaN on either side: not specified by the spec, treated as
			// unordered-equal for a deterministic result.
			return Eq, nil
		}
	}
}
