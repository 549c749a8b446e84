package builtin

import (
	"os"
	"path/filepath"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/registry"
	"github.com/db47h/lispcore/value"
)

// pathBuiltins are small filesystem-path leaf adapters, grounded on the
// teacher's cmd/retro/main.go image-path resolution (which joins a search
// directory and a filename before opening a file).
func pathBuiltins() []registry.Builtin {
	return []registry.Builtin{
		{
			Name: "path-join", Doc: "Joins path segments using the host's path separator.",
			Arglists: "([& segments])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: pathJoinFn,
		},
		{
			Name: "path-exists?", Doc: "Returns true if path refers to an existing filesystem entry.",
			Arglists: "([path])", Added: "1.0", Kind: registry.RuntimeFn,
			Func: pathExistsFn,
		},
	}
}

func pathJoinFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		s, ok := a.(value.Str)
		if !ok {
			return nil, diag.WithArg(diag.TypeError, i, "path-join requires string segments, got %s", a.Kind())
		}
		parts[i] = string(s)
	}
	return value.Str(filepath.Join(parts...)), nil
}

func pathExistsFn(_ alloc.Allocator, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, diag.Arity("path-exists?", len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return nil, diag.WithArg(diag.TypeError, 0, "path-exists? requires a string path, got %s", args[0].Kind())
	}
	_, err := os.Stat(string(path))
	return value.FromBool(err == nil), nil
}
