package builtin

import (
	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/registry"
	"github.com/db47h/lispcore/value"
)

// seqBuiltins are thin sequence/collection leaf adapters operating over
// the collection shims in package value (List/Vector/Map/Set), never
// reimplementing persistent-collection semantics (out of scope).
func seqBuiltins() []registry.Builtin {
	return []registry.Builtin{
		{
			Name: "range", Doc: "Returns a vector of integers from 0 (or start) up to, not including, end.",
			Arglists: "([end] [start end])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: rangeFn,
		},
		{
			Name: "repeat", Doc: "Returns a vector of n copies of x.",
			Arglists: "([n x])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: repeatFn,
		},
		{
			Name: "empty?", Doc: "Returns true if the collection has no items.",
			Arglists: "([coll])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: emptyFn,
		},
		{
			Name: "keys", Doc: "Returns a vector of the map's keys.",
			Arglists: "([m])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: keysFn,
		},
		{
			Name: "vals", Doc: "Returns a vector of the map's values.",
			Arglists: "([m])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: valsFn,
		},
		{
			Name: "contains?", Doc: "Returns true if key/index is present in coll.",
			Arglists: "([coll key])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: containsFn,
		},
	}
}

func rangeFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	var start, end int64
	switch len(args) {
	case 1:
		n, ok := args[0].(value.Int)
		if !ok {
			return nil, diag.WithArg(diag.TypeError, 0, "range requires integer bounds, got %s", args[0].Kind())
		}
		end = int64(n)
	case 2:
		s, ok := args[0].(value.Int)
		if !ok {
			return nil, diag.WithArg(diag.TypeError, 0, "range requires integer bounds, got %s", args[0].Kind())
		}
		e, ok := args[1].(value.Int)
		if !ok {
			return nil, diag.WithArg(diag.TypeError, 1, "range requires integer bounds, got %s", args[1].Kind())
		}
		start, end = int64(s), int64(e)
	default:
		return nil, diag.Arity("range", len(args))
	}
	items := make([]value.Value, 0, maxInt64(end-start, 0))
	for i := start; i < end; i++ {
		items = append(items, value.Int(i))
	}
	return value.Vector{Items: items}, nil
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func repeatFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, diag.Arity("repeat", len(args))
	}
	n, ok := args[0].(value.Int)
	if !ok {
		return nil, diag.WithArg(diag.TypeError, 0, "repeat requires an integer count, got %s", args[0].Kind())
	}
	if n < 0 {
		return nil, diag.WithArg(diag.ValueError, 0, "repeat requires a non-negative count, got %d", int64(n))
	}
	items := make([]value.Value, 0, int64(n))
	for i := int64(0); i < int64(n); i++ {
		items = append(items, args[1])
	}
	return value.Vector{Items: items}, nil
}

func emptyFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, diag.Arity("empty?", len(args))
	}
	switch c := args[0].(type) {
	case value.List:
		return value.FromBool(len(c.Items) == 0), nil
	case value.Vector:
		return value.FromBool(len(c.Items) == 0), nil
	case value.Set:
		return value.FromBool(len(c.Items) == 0), nil
	case value.Map:
		return value.FromBool(len(c.Entries) == 0), nil
	case value.Str:
		return value.FromBool(len(c) == 0), nil
	default:
		return nil, diag.WithArg(diag.TypeError, 0, "empty? requires a collection, got %s", args[0].Kind())
	}
}

func keysFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, diag.Arity("keys", len(args))
	}
	m, ok := args[0].(value.Map)
	if !ok {
		return nil, diag.WithArg(diag.TypeError, 0, "keys requires a map, got %s", args[0].Kind())
	}
	out := make([]value.Value, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = e.Key
	}
	return value.Vector{Items: out}, nil
}

func valsFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, diag.Arity("vals", len(args))
	}
	m, ok := args[0].(value.Map)
	if !ok {
		return nil, diag.WithArg(diag.TypeError, 0, "vals requires a map, got %s", args[0].Kind())
	}
	out := make([]value.Value, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = e.Val
	}
	return value.Vector{Items: out}, nil
}

func containsFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, diag.Arity("contains?", len(args))
	}
	switch c := args[0].(type) {
	case value.Map:
		_, ok := c.Get(args[1])
		return value.FromBool(ok), nil
	case value.Set:
		for _, it := range c.Items {
			if value.Equal(it, args[1]) {
				return value.True, nil
			}
		}
		return value.False, nil
	case value.Vector:
		idx, ok := args[1].(value.Int)
		if !ok {
			return nil, diag.WithArg(diag.TypeError, 1, "contains? on a vector requires an integer index, got %s", args[1].Kind())
		}
		return value.FromBool(idx >= 0 && int64(idx) < int64(len(c.Items))), nil
	default:
		return nil, diag.WithArg(diag.TypeError, 0, "contains? requires a collection, got %s", args[0].Kind())
	}
}
