package builtin

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/core"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/registry"
	"github.com/db47h/lispcore/value"
)

// ioBuiltins are the console/file leaf adapters (spec §1's "thin leaf
// functions"), grounded on the teacher's vm/io.go and vm/io_helpers.go,
// which route every byte the VM emits through a single writer the host
// supplies rather than touching os.Stdout directly. Each builtin here
// closes over e instead of reaching for a package-global stream, so each
// Env writes to its own configured writer (Envs left on the default
// os.Stdout still share it).
func ioBuiltins(e *core.Env) []registry.Builtin {
	return []registry.Builtin{
		{
			Name: "print", Doc: "Writes args to stdout, space-separated, without a trailing newline.",
			Arglists: "([& more])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: printFn(e, false, false),
		},
		{
			Name: "println", Doc: "Same as print, followed by a newline.",
			Arglists: "([& more])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: printFn(e, false, true),
		},
		{
			Name: "pr", Doc: "Writes args to stdout in a machine-readable form, space-separated.",
			Arglists: "([& more])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: printFn(e, true, false),
		},
		{
			Name: "prn", Doc: "Same as pr, followed by a newline.",
			Arglists: "([& more])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: printFn(e, true, true),
		},
		{
			Name: "read-line", Doc: "Reads a line of input from stdin, without the trailing newline.",
			Arglists: "([])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: readLineFn(e),
		},
		{
			Name: "slurp", Doc: "Reads the entire contents of the file at path as a string.",
			Arglists: "([path])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: slurpFn,
		},
		{
			Name: "spit", Doc: "Writes content to the file at path, overwriting it.",
			Arglists: "([path content])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: spitFn,
		},
	}
}

func printFn(e *core.Env, readable, newline bool) registry.Func {
	return func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
		w := e.Stdout()
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, formatArg(a, readable))
		}
		if newline {
			fmt.Fprint(w, "\n")
		}
		return value.Nil, nil
	}
}

func formatArg(v value.Value, readable bool) string {
	if s, ok := v.(value.Str); ok {
		if readable {
			return strconv.Quote(string(s))
		}
		return string(s)
	}
	return v.String()
}

func readLineFn(e *core.Env) registry.Func {
	return func(_ alloc.Allocator, args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, diag.Arity("read-line", len(args))
		}
		sc := bufio.NewScanner(e.Stdin())
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, diag.New(diag.IOError, "read-line: %v", err)
			}
			return value.Nil, nil
		}
		return value.Str(sc.Text()), nil
	}
}

func slurpFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, diag.Arity("slurp", len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return nil, diag.WithArg(diag.TypeError, 0, "slurp requires a string path, got %s", args[0].Kind())
	}
	b, err := os.ReadFile(string(path))
	if err != nil {
		return nil, diag.New(diag.IOError, "slurp: %v", err)
	}
	return value.Str(b), nil
}

func spitFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, diag.Arity("spit", len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return nil, diag.WithArg(diag.TypeError, 0, "spit requires a string path, got %s", args[0].Kind())
	}
	content, ok := args[1].(value.Str)
	if !ok {
		return nil, diag.WithArg(diag.TypeError, 1, "spit requires string content, got %s", args[1].Kind())
	}
	if err := os.WriteFile(string(path), []byte(content), 0o644); err != nil {
		return nil, diag.New(diag.IOError, "spit: %v", err)
	}
	return value.Nil, nil
}
