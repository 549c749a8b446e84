// Variadic folding (spec §4.1 "Variadic folding", §5 "Ordering"): every
// n-ary operator reduces to a left-associative sequence of binary calls,
// short-circuiting on the first error (=, not=, <, >, <=, >=, additionally
// short-circuit on the first falsified relation).
package numeric

import (
	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/value"
)

// Sum implements + : 0 args -> 0, 1 arg -> that arg (no numeric check —
// spec §9 Open Question, resolved lax), >=2 -> left fold of Add.
func Sum(al alloc.Allocator, xs []value.Value) (value.Value, error) {
	switch len(xs) {
	case 0:
		return value.Int(0), nil
	case 1:
		return xs[0], nil
	default:
		return foldLeft(al, xs, Add)
	}
}

// Product implements * : 0 args -> 1, else left fold of Mul.
func Product(al alloc.Allocator, xs []value.Value) (value.Value, error) {
	if len(xs) == 0 {
		return value.Int(1), nil
	}
	return foldLeft(al, xs, Mul)
}

// Difference implements - : 0 args -> arity_error, 1 arg -> 0 - arg,
// >=2 -> left fold of Sub.
func Difference(al alloc.Allocator, xs []value.Value) (value.Value, error) {
	switch len(xs) {
	case 0:
		return nil, diag.Arity("-", 0)
	case 1:
		return Sub(al, value.Int(0), xs[0])
	default:
		return foldLeft(al, xs, Sub)
	}
}

// Quotient implements / : 0 args -> arity_error, 1 arg -> 1 / arg,
// >=2 -> left fold of Div.
func Quotient(al alloc.Allocator, xs []value.Value) (value.Value, error) {
	switch len(xs) {
	case 0:
		return nil, diag.Arity("/", 0)
	case 1:
		return Div(al, value.Int(1), xs[0])
	default:
		return foldLeft(al, xs, Div)
	}
}

func foldLeft(al alloc.Allocator, xs []value.Value, op func(alloc.Allocator, value.Value, value.Value) (value.Value, error)) (value.Value, error) {
	acc := xs[0]
	for _, x := range xs[1:] {
		v, err := op(al, acc, x)
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}

// EqualFold implements = : 1 arg -> true, >=2 -> pairwise structural
// equality across every adjacent pair, short-circuiting on the first
// unequal pair. No allocator is needed: value.Equal compares Values
// directly and never creates scratch big.Int magnitudes.
func EqualFold(xs []value.Value) (value.Value, error) {
	if len(xs) == 0 {
		return nil, diag.Arity("=", 0)
	}
	if len(xs) == 1 {
		return value.True, nil
	}
	for i := 0; i < len(xs)-1; i++ {
		if !value.Equal(xs[i], xs[i+1]) {
			return value.False, nil
		}
	}
	return value.True, nil
}

// NotEqualFold implements not= : 1 arg -> false, >=2 -> negation of
// EqualFold.
func NotEqualFold(xs []value.Value) (value.Value, error) {
	if len(xs) == 0 {
		return nil, diag.Arity("not=", 0)
	}
	if len(xs) == 1 {
		return value.False, nil
	}
	v, err := EqualFold(xs)
	if err != nil {
		return nil, err
	}
	return value.FromBool(!bool(v.(value.Bool))), nil
}

func chain(al alloc.Allocator, xs []value.Value, rel func(Ordering) bool, name string) (value.Value, error) {
	if len(xs) == 0 {
		return nil, diag.Arity(name, 0)
	}
	if len(xs) == 1 {
		return value.True, nil
	}
	for i := 0; i < len(xs)-1; i++ {
		o, err := Compare(al, xs[i], xs[i+1])
		if err != nil {
			return nil, err
		}
		if !rel(o) {
			return value.False, nil
		}
	}
	return value.True, nil
}

// Less implements < : 1 arg -> true, >=2 -> verify the monotone chain,
// short-circuiting on the first violation (spec §8 property 7).
func Less(al alloc.Allocator, xs []value.Value) (value.Value, error) {
	return chain(al, xs, func(o Ordering) bool { return o == Lt }, "<")
}

// Greater implements >.
func Greater(al alloc.Allocator, xs []value.Value) (value.Value, error) {
	return chain(al, xs, func(o Ordering) bool { return o == Gt }, ">")
}

// LessEqual implements <=.
func LessEqual(al alloc.Allocator, xs []value.Value) (value.Value, error) {
	return chain(al, xs, func(o Ordering) bool { return o != Gt }, "<=")
}

// GreaterEqual implements >=.
func GreaterEqual(al alloc.Allocator, xs []value.Value) (value.Value, error) {
	return chain(al, xs, func(o Ordering) bool { return o != Lt }, ">=")
}
