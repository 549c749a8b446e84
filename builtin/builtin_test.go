package builtin_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/builtin"
	"github.com/db47h/lispcore/core"
	"github.com/db47h/lispcore/value"
)

func newEnv(t *testing.T, out *bytes.Buffer) *core.Env {
	t.Helper()
	e := core.New(nil, core.WithStdout(out))
	if _, err := builtin.Register(e); err != nil {
		t.Fatalf("builtin.Register: %v", err)
	}
	return e
}

func TestRegisterBuildsFullSurface(t *testing.T) {
	var out bytes.Buffer
	e := newEnv(t, &out)
	for _, name := range []string{"+", "-", "*", "/", "mod", "rem", "quot", "=", "not=",
		"<", ">", "<=", ">=", "int", "double", "bigint", "bigdec", "number?", "integer?",
		"float?", "zero?", "pos?", "neg?", "even?", "odd?", "inc", "dec", "min", "max", "abs",
		"print", "println", "pr", "prn", "read-line", "slurp", "spit", "path-join",
		"path-exists?", "range", "repeat", "empty?", "keys", "vals", "contains?",
		"rand", "rand-int", "eval", "read-string", "macroexpand", "doc"} {
		if _, ok := e.Registry.Lookup(name); !ok {
			t.Errorf("builtin %q not registered", name)
		}
	}
}

func TestArithInvoke(t *testing.T) {
	var out bytes.Buffer
	e := newEnv(t, &out)
	v, err := e.Registry.Invoke("+", alloc.Default, []value.Value{value.Int(1), value.Int(2), value.Int(3)})
	if err != nil {
		t.Fatalf("Invoke(+): %v", err)
	}
	if int64(v.(value.Int)) != 6 {
		t.Errorf("+ = %v, want 6", v)
	}
}

func TestPrintWritesToEnvStdout(t *testing.T) {
	var out bytes.Buffer
	e := newEnv(t, &out)
	_, err := e.Registry.Invoke("println", alloc.Default, []value.Value{value.Str("hello"), value.Int(42)})
	if err != nil {
		t.Fatalf("Invoke(println): %v", err)
	}
	if out.String() != "hello 42\n" {
		t.Errorf("println output = %q, want %q", out.String(), "hello 42\n")
	}
}

func TestMinMax(t *testing.T) {
	var out bytes.Buffer
	e := newEnv(t, &out)
	v, err := e.Registry.Invoke("min", alloc.Default, []value.Value{value.Int(3), value.Int(1), value.Int(2)})
	if err != nil {
		t.Fatalf("Invoke(min): %v", err)
	}
	if int64(v.(value.Int)) != 1 {
		t.Errorf("min = %v, want 1", v)
	}
	v, err = e.Registry.Invoke("max", alloc.Default, []value.Value{value.Int(3), value.Int(1), value.Int(2)})
	if err != nil {
		t.Fatalf("Invoke(max): %v", err)
	}
	if int64(v.(value.Int)) != 3 {
		t.Errorf("max = %v, want 3", v)
	}
}

func TestEvenOddRejectsNonInteger(t *testing.T) {
	var out bytes.Buffer
	e := newEnv(t, &out)
	if _, err := e.Registry.Invoke("even?", alloc.Default, []value.Value{value.Float(2.0)}); err == nil {
		t.Error("even? on a float should fail")
	}
}

func TestDocPrintsArglists(t *testing.T) {
	var out bytes.Buffer
	e := newEnv(t, &out)
	if _, err := e.Registry.Invoke("doc", alloc.Default, []value.Value{value.Symbol("+")}); err != nil {
		t.Fatalf("Invoke(doc): %v", err)
	}
	if !strings.Contains(out.String(), "+") {
		t.Errorf("doc output = %q, missing builtin name", out.String())
	}
	if !strings.Contains(out.String(), "([] [x] [x y] [x y & more])") {
		t.Errorf("doc output = %q, missing arglists", out.String())
	}
}

func TestRangeAndContains(t *testing.T) {
	var out bytes.Buffer
	e := newEnv(t, &out)
	v, err := e.Registry.Invoke("range", alloc.Default, []value.Value{value.Int(3)})
	if err != nil {
		t.Fatalf("Invoke(range): %v", err)
	}
	vec := v.(value.Vector)
	if len(vec.Items) != 3 {
		t.Fatalf("range(3) len = %d, want 3", len(vec.Items))
	}
	ok, err := e.Registry.Invoke("contains?", alloc.Default, []value.Value{vec, value.Int(2)})
	if err != nil {
		t.Fatalf("Invoke(contains?): %v", err)
	}
	if ok != value.True {
		t.Errorf("contains? on in-range index = %v, want true", ok)
	}
}
