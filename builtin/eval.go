package builtin

import (
	"fmt"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/core"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/registry"
	"github.com/db47h/lispcore/value"
)

// evalBuiltins are hooks into the reader/evaluator/macro-expander, all out
// of scope for this module (spec §1) and injected by the host via
// core.WithEvaluator/WithReader/WithMacroExpander. Each builtin here fails
// with a clear internal_error rather than panicking if the host never
// wired the corresponding collaborator.
func evalBuiltins(e *core.Env) []registry.Builtin {
	return []registry.Builtin{
		{
			Name: "eval", Doc: "Evaluates form in the current environment.",
			Arglists: "([form])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
				if len(args) != 1 {
					return nil, diag.Arity("eval", len(args))
				}
				ev := e.Evaluator()
				if ev == nil {
					return nil, diag.New(diag.InternalError, "eval: no evaluator installed")
				}
				result, err := ev.Eval(args[0])
				if err != nil {
					return nil, err
				}
				return asValue("eval", result)
			},
		},
		{
			Name: "read-string", Doc: "Reads the first form from s.",
			Arglists: "([s])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
				if len(args) != 1 {
					return nil, diag.Arity("read-string", len(args))
				}
				s, ok := args[0].(value.Str)
				if !ok {
					return nil, diag.WithArg(diag.TypeError, 0, "read-string requires a string, got %s", args[0].Kind())
				}
				r := e.Reader()
				if r == nil {
					return nil, diag.New(diag.InternalError, "read-string: no reader installed")
				}
				result, err := r.ReadString(string(s))
				if err != nil {
					return nil, err
				}
				return asValue("read-string", result)
			},
		},
		{
			Name: "macroexpand", Doc: "Repeatedly expands form until it is no longer a macro call.",
			Arglists: "([form])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
				if len(args) != 1 {
					return nil, diag.Arity("macroexpand", len(args))
				}
				m := e.MacroExpander()
				if m == nil {
					return nil, diag.New(diag.InternalError, "macroexpand: no macro expander installed")
				}
				result, err := m.MacroExpand(args[0])
				if err != nil {
					return nil, err
				}
				return asValue("macroexpand", result)
			},
		},
		{
			Name: "doc", Doc: "Prints the registered documentation for the builtin named by sym.",
			Arglists: "([sym])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
				if len(args) != 1 {
					return nil, diag.Arity("doc", len(args))
				}
				name, err := symbolName(args[0])
				if err != nil {
					return nil, err
				}
				b, ok := e.Registry.Lookup(name)
				if !ok {
					fmt.Fprintf(e.Stdout(), "%s: not found\n", name)
					return value.Nil, nil
				}
				fmt.Fprintf(e.Stdout(), "-------------------------\n%s\n%s\n  %s\n", b.Name, b.Arglists, b.Doc)
				return value.Nil, nil
			},
		},
	}
}

func symbolName(v value.Value) (string, error) {
	switch n := v.(type) {
	case value.Symbol:
		return string(n), nil
	case value.Str:
		return string(n), nil
	default:
		return "", diag.WithArg(diag.TypeError, 0, "expected a symbol or string, got %s", v.Kind())
	}
}

func asValue(builtin string, v interface{}) (value.Value, error) {
	out, ok := v.(value.Value)
	if !ok {
		return nil, diag.New(diag.InternalError, "%s: host returned a non-Value result (%T)", builtin, v)
	}
	return out, nil
}
