package builtin

import (
	"math/big"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/numeric"
	"github.com/db47h/lispcore/registry"
	"github.com/db47h/lispcore/value"
)

func numberBuiltins() []registry.Builtin {
	return []registry.Builtin{
		{
			Name: "int", Doc: "Coerces num to a fixed-width integer, truncating toward zero.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryCast("int", toInt),
		},
		{
			Name: "double", Doc: "Coerces num to a double.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryCast("double", toDouble),
		},
		{
			Name: "bigint", Doc: "Coerces num to an arbitrary-precision integer.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryCast("bigint", toBigInt),
		},
		{
			Name: "bigdec", Doc: "Coerces num to an arbitrary-precision decimal.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryCast("bigdec", toBigDec),
		},
		{
			Name: "number?", Doc: "Returns true if x is one of the four numeric tags.",
			Arglists: "([x])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryPredicate("number?", func(v value.Value) bool { return value.IsNumeric(v.Kind()) }),
		},
		{
			Name: "integer?", Doc: "Returns true if x is an exact integer (integer or big_int).",
			Arglists: "([x])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryPredicate("integer?", func(v value.Value) bool {
				return v.Kind() == value.KindInt || v.Kind() == value.KindBigInt
			}),
		},
		{
			Name: "float?", Doc: "Returns true if x is a float.",
			Arglists: "([x])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryPredicate("float?", func(v value.Value) bool { return v.Kind() == value.KindFloat }),
		},
		{
			Name: "zero?", Doc: "Returns true if num is numerically zero.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: signPredicate("zero?", func(s int) bool { return s == 0 }),
		},
		{
			Name: "pos?", Doc: "Returns true if num is greater than zero.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: signPredicate("pos?", func(s int) bool { return s > 0 }),
		},
		{
			Name: "neg?", Doc: "Returns true if num is less than zero.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: signPredicate("neg?", func(s int) bool { return s < 0 }),
		},
		{
			Name: "even?", Doc: "Returns true if num is even. Throws a type_error on non-integers.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: parityPredicate("even?", func(r *big.Int) bool { return r.Bit(0) == 0 }),
		},
		{
			Name: "odd?", Doc: "Returns true if num is odd. Throws a type_error on non-integers.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: parityPredicate("odd?", func(r *big.Int) bool { return r.Bit(0) == 1 }),
		},
		{
			Name: "inc", Doc: "Returns num plus one.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryArith("inc", func(a alloc.Allocator, v value.Value) (value.Value, error) {
				return numeric.Add(a, v, value.Int(1))
			}),
		},
		{
			Name: "dec", Doc: "Returns num minus one.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryArith("dec", func(a alloc.Allocator, v value.Value) (value.Value, error) {
				return numeric.Sub(a, v, value.Int(1))
			}),
		},
		{
			Name: "min", Doc: "Returns the least of the nums.",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: minmax("min", func(o numeric.Ordering) bool { return o == numeric.Lt }),
		},
		{
			Name: "max", Doc: "Returns the greatest of the nums.",
			Arglists: "([x] [x y] [x y & more])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: minmax("max", func(o numeric.Ordering) bool { return o == numeric.Gt }),
		},
		{
			Name: "abs", Doc: "Returns the absolute value of num.",
			Arglists: "([num])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: unaryArith("abs", absValue),
		},
	}
}

func unaryCast(name string, cast func(value.Value) (value.Value, error)) registry.Func {
	return func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, diag.Arity(name, len(args))
		}
		return cast(args[0])
	}
}

// toInt and the other standalone casts below do one-shot conversions that
// never feed into a chained computation, so they allocate plain *big.Int
// scratch directly rather than through the allocator pool (unlike the
// numeric package's engine, whose binary ops and folds run per reduction
// step and are the actual target of spec §5's pooling requirement).
func toInt(v value.Value) (value.Value, error) {
	switch n := v.(type) {
	case value.Int:
		return n, nil
	case value.Float:
		return value.Int(int64(n)), nil
	case value.BigInt:
		return value.Int(n.Int().Int64()), nil
	case value.BigDecimal:
		scaled := scaleToInt(n)
		return value.Int(scaled.Int64()), nil
	default:
		return nil, diag.WithArg(diag.TypeError, 0, "cannot cast %s to int", v.Kind())
	}
}

func toDouble(v value.Value) (value.Value, error) {
	switch n := v.(type) {
	case value.Int:
		return value.Float(float64(n)), nil
	case value.Float:
		return n, nil
	case value.BigInt:
		f := new(big.Float).SetInt(n.Int())
		r, _ := f.Float64()
		return value.Float(r), nil
	case value.BigDecimal:
		return value.Float(bigDecimalToFloat(n)), nil
	default:
		return nil, diag.WithArg(diag.TypeError, 0, "cannot cast %s to double", v.Kind())
	}
}

func toBigInt(v value.Value) (value.Value, error) {
	switch n := v.(type) {
	case value.Int:
		return value.NewBigInt(big.NewInt(int64(n))), nil
	case value.BigInt:
		return n, nil
	case value.Float:
		bi, _ := big.NewFloat(float64(n)).Int(nil)
		return value.NewBigInt(bi), nil
	case value.BigDecimal:
		return value.NewBigInt(scaleToInt(n)), nil
	default:
		return nil, diag.WithArg(diag.TypeError, 0, "cannot cast %s to bigint", v.Kind())
	}
}

func toBigDec(v value.Value) (value.Value, error) {
	switch n := v.(type) {
	case value.Int:
		return value.NewBigDecimal(big.NewInt(int64(n)), 0), nil
	case value.BigInt:
		return value.NewBigDecimal(n.Int(), 0), nil
	case value.BigDecimal:
		return n, nil
	case value.Float:
		return numeric.ParseBigDecimal(n.String())
	default:
		return nil, diag.WithArg(diag.TypeError, 0, "cannot cast %s to bigdec", v.Kind())
	}
}

// scaleToInt truncates a BigDecimal toward zero: unscaled / 10^scale for
// scale > 0, unscaled * 10^-scale for scale <= 0.
func scaleToInt(bd value.BigDecimal) *big.Int {
	scale := bd.Scale()
	if scale <= 0 {
		if scale == 0 {
			return new(big.Int).Set(bd.Unscaled())
		}
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-scale)), nil)
		return new(big.Int).Mul(bd.Unscaled(), pow)
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	return new(big.Int).Quo(bd.Unscaled(), pow)
}

func bigDecimalToFloat(bd value.BigDecimal) float64 {
	f, _ := new(big.Float).SetString(bd.String())
	if f == nil {
		return 0
	}
	r, _ := f.Float64()
	return r
}

func unaryPredicate(name string, p func(value.Value) bool) registry.Func {
	return func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, diag.Arity(name, len(args))
		}
		return value.FromBool(p(args[0])), nil
	}
}

func signPredicate(name string, rel func(sign int) bool) registry.Func {
	return func(a alloc.Allocator, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, diag.Arity(name, len(args))
		}
		o, err := numeric.Compare(a, args[0], value.Int(0))
		if err != nil {
			return nil, err
		}
		return value.FromBool(rel(int(o))), nil
	}
}

func parityPredicate(name string, p func(*big.Int) bool) registry.Func {
	return func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, diag.Arity(name, len(args))
		}
		switch n := args[0].(type) {
		case value.Int:
			return value.FromBool(p(big.NewInt(int64(n)))), nil
		case value.BigInt:
			return value.FromBool(p(n.Int())), nil
		default:
			return nil, diag.WithArg(diag.TypeError, 0, "%s requires an integer, got %s", name, args[0].Kind())
		}
	}
}

func unaryArith(name string, op func(alloc.Allocator, value.Value) (value.Value, error)) registry.Func {
	return func(a alloc.Allocator, args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, diag.Arity(name, len(args))
		}
		return op(a, args[0])
	}
}

func absValue(a alloc.Allocator, v value.Value) (value.Value, error) {
	o, err := numeric.Compare(a, v, value.Int(0))
	if err != nil {
		return nil, err
	}
	if o != numeric.Lt {
		return v, nil
	}
	return numeric.Sub(a, value.Int(0), v)
}

func minmax(name string, keep func(numeric.Ordering) bool) registry.Func {
	return func(a alloc.Allocator, args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return nil, diag.Arity(name, 0)
		}
		best := args[0]
		for _, x := range args[1:] {
			o, err := numeric.Compare(a, x, best)
			if err != nil {
				return nil, err
			}
			if keep(o) {
				best = x
			}
		}
		return best, nil
	}
}
