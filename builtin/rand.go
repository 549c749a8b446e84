package builtin

import (
	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/core"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/registry"
	"github.com/db47h/lispcore/value"
)

// randBuiltins close over e's PRNG (spec §5's documented process-wide
// randomness, scoped per Env here rather than a package global so two
// Envs never share a seed or interleave draws).
func randBuiltins(e *core.Env) []registry.Builtin {
	return []registry.Builtin{
		{
			Name: "rand", Doc: "Returns a random double between 0 (inclusive) and 1 (exclusive).",
			Arglists: "([])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
				if len(args) != 0 {
					return nil, diag.Arity("rand", len(args))
				}
				return value.Float(e.Rand().Float64()), nil
			},
		},
		{
			Name: "rand-int", Doc: "Returns a random integer in [0, n).",
			Arglists: "([n])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
				if len(args) != 1 {
					return nil, diag.Arity("rand-int", len(args))
				}
				n, ok := args[0].(value.Int)
				if !ok {
					return nil, diag.WithArg(diag.TypeError, 0, "rand-int requires an integer bound, got %s", args[0].Kind())
				}
				if n <= 0 {
					return nil, diag.WithArg(diag.ValueError, 0, "rand-int requires a positive bound, got %d", int64(n))
				}
				return value.Int(e.Rand().Int63n(int64(n))), nil
			},
		},
	}
}
