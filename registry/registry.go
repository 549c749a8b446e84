// Package registry implements the builtin descriptor table and invocation
// contract described in spec §4.2 and §6: an ordered, validated, immutable-
// after-construction table of Builtin descriptors that the evaluator looks
// operators up in. The build-once-validate-once shape is modeled on the
// teacher's vm/opcodes.go, which builds a name->index map in an init()
// over a fixed opcode table; here the table is assembled explicitly by a
// constructor instead of at import time, since the host evaluator (out of
// scope per spec §1) is the one composing the final builtin surface.
package registry

import (
	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/value"
	"github.com/pkg/errors"
)

// Kind marks whether a compiler may emit a direct opcode for a builtin
// (VMIntrinsic) or must always emit a call through Func (RuntimeFn). Func
// is populated either way, so the operator remains usable as a
// first-class value (spec §3 BuiltinDef, §4.2 "Intrinsic dispatch").
type Kind int

const (
	RuntimeFn Kind = iota
	VMIntrinsic
)

// Func is the invocation contract consumed by the evaluator (spec §6):
// read-only argument slice in, a fresh value or a diagnostic out. Inputs
// are never mutated, results are never retained references into the
// argument slice.
type Func func(a alloc.Allocator, args []value.Value) (value.Value, error)

// Builtin is one descriptor in the table (spec's BuiltinDef).
type Builtin struct {
	Name     string
	Doc      string
	Arglists string
	Added    string
	Func     Func
	Kind     Kind
}

// Registry is an ordered, name-indexed, immutable-after-New table of
// Builtins.
type Registry struct {
	order []string
	byN   map[string]*Builtin
}

// New validates and builds a Registry from defs. Registration invariants
// (spec §4.2): no duplicate names, every entry has Func, arithmetic and
// comparison entries have Doc/Arglists/Added populated. Returns an error
// instead of panicking so a host can report a broken builtin table
// cleanly rather than crash at import time.
func New(defs ...Builtin) (*Registry, error) {
	r := &Registry{byN: make(map[string]*Builtin, len(defs))}
	for i := range defs {
		d := defs[i]
		if err := validate(d); err != nil {
			return nil, errors.Wrapf(err, "registering builtin %q", d.Name)
		}
		if _, dup := r.byN[d.Name]; dup {
			return nil, errors.Errorf("registering builtin %q: duplicate name", d.Name)
		}
		r.byN[d.Name] = &d
		r.order = append(r.order, d.Name)
	}
	return r, nil
}

func validate(d Builtin) error {
	if d.Name == "" {
		return diag.New(diag.InternalError, "builtin has no name")
	}
	if d.Func == nil {
		return diag.New(diag.InternalError, "builtin %q has no Func", d.Name)
	}
	if isArithOrCompare(d.Name) {
		if d.Doc == "" || d.Arglists == "" || d.Added == "" {
			return diag.New(diag.InternalError, "builtin %q is missing required metadata", d.Name)
		}
	}
	return nil
}

func isArithOrCompare(name string) bool {
	switch name {
	case "+", "-", "*", "/", "mod", "rem", "quot", "=", "not=", "<", ">", "<=", ">=":
		return true
	default:
		return false
	}
}

// Lookup returns the descriptor registered under name, if any.
func (r *Registry) Lookup(name string) (*Builtin, bool) {
	b, ok := r.byN[name]
	return b, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered builtins.
func (r *Registry) Len() int { return len(r.order) }

// Invoke looks up name and calls its Func with args. This is the
// invocation contract an evaluator uses for a call site `(op a1 ... an)`
// once it has resolved op to a builtin name (spec §6).
func (r *Registry) Invoke(name string, a alloc.Allocator, args []value.Value) (value.Value, error) {
	b, ok := r.Lookup(name)
	if !ok {
		return nil, diag.New(diag.InternalError, "unresolved builtin %q", name)
	}
	return b.Func(a, args)
}
