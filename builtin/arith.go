// Package builtin assembles the concrete builtin surface the evaluator
// registers: the numeric/comparison core (spec §4.1/§4.2) plus the
// peripheral leaf adapters spec §1 calls out as "thin leaf functions"
// (I/O, path, sequence, random, evaluator hooks).
package builtin

import (
	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/numeric"
	"github.com/db47h/lispcore/registry"
	"github.com/db47h/lispcore/value"
)

func arithBuiltins() []registry.Builtin {
	return []registry.Builtin{
		{
			Name: "+", Doc: "Returns the sum of nums. (+) returns 0.",
			Arglists: "([] [x] [x y] [x y & more])", Added: "1.0", Kind: registry.VMIntrinsic,
			Func: variadic(numeric.Sum),
		},
		{
			Name: "-", Doc: "Subtracts nums left to right. (- x) returns the negation of x.",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.VMIntrinsic,
			Func: variadic(numeric.Difference),
		},
		{
			Name: "*", Doc: "Returns the product of nums. (*) returns 1.",
			Arglists: "([] [x] [x y] [x y & more])", Added: "1.0", Kind: registry.VMIntrinsic,
			Func: variadic(numeric.Product),
		},
		{
			Name: "/", Doc: "Divides numerators by denominators left to right. (/ x) returns 1/x.",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.VMIntrinsic,
			Func: variadic(numeric.Quotient),
		},
		{
			Name: "=", Doc: "Equality. Structural; does not coerce across exact/float tags.",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.VMIntrinsic,
			Func: variadicPure(numeric.EqualFold),
		},
		{
			Name: "not=", Doc: "Same as (not (= obj1 obj2)).",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: variadicPure(numeric.NotEqualFold),
		},
		{
			Name: "<", Doc: "Returns true if nums are in monotonically increasing order.",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.VMIntrinsic,
			Func: variadic(numeric.Less),
		},
		{
			Name: ">", Doc: "Returns true if nums are in monotonically decreasing order.",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.VMIntrinsic,
			Func: variadic(numeric.Greater),
		},
		{
			Name: "<=", Doc: "Returns true if nums are in monotonically non-decreasing order.",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.VMIntrinsic,
			Func: variadic(numeric.LessEqual),
		},
		{
			Name: ">=", Doc: "Returns true if nums are in monotonically non-increasing order.",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.VMIntrinsic,
			Func: variadic(numeric.GreaterEqual),
		},
		{
			Name: "mod", Doc: "Floor modulus of num and div. Truncates toward negative infinity.",
			Arglists: "([num div])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: binary("mod", numeric.Mod),
		},
		{
			Name: "rem", Doc: "Remainder of num divided by div. Truncates toward zero.",
			Arglists: "([num div])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: binary("rem", numeric.Rem),
		},
		{
			Name: "quot", Doc: "Quotient of dividing num by div, truncated toward zero.",
			Arglists: "([num div])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: binary("quot", numeric.Quot),
		},
	}
}

// variadic adapts a numeric fold that needs scratch big.Int magnitudes
// (and so takes the allocator) to the registry.Func invocation contract.
func variadic(fold func(alloc.Allocator, []value.Value) (value.Value, error)) registry.Func {
	return func(a alloc.Allocator, args []value.Value) (value.Value, error) {
		return fold(a, args)
	}
}

// variadicPure adapts a numeric fold with no allocator need (=, not=,
// which only compare Values structurally) to the invocation contract.
func variadicPure(fold func([]value.Value) (value.Value, error)) registry.Func {
	return func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
		return fold(args)
	}
}

// binary adapts a strictly-binary numeric op (mod, rem, quot) to the
// invocation contract, enforcing the arity spec §4.1 demands.
func binary(name string, op func(alloc.Allocator, value.Value, value.Value) (value.Value, error)) registry.Func {
	return func(a alloc.Allocator, args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, diag.Arity(name, len(args))
		}
		return op(a, args[0], args[1])
	}
}
