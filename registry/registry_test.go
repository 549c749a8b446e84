package registry_test

import (
	"testing"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/registry"
	"github.com/db47h/lispcore/value"
)

func dummyFunc(a alloc.Allocator, args []value.Value) (value.Value, error) {
	return value.Int(int64(len(args))), nil
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := registry.New(
		registry.Builtin{Name: "foo", Func: dummyFunc},
		registry.Builtin{Name: "foo", Func: dummyFunc},
	)
	if err == nil {
		t.Fatal("want error for duplicate name, got nil")
	}
}

func TestNewRejectsNilFunc(t *testing.T) {
	_, err := registry.New(registry.Builtin{Name: "foo"})
	if err == nil {
		t.Fatal("want error for nil Func, got nil")
	}
}

func TestNewRejectsMissingMetadataForArith(t *testing.T) {
	_, err := registry.New(registry.Builtin{Name: "+", Func: dummyFunc})
	if err == nil {
		t.Fatal("want error for missing metadata on '+', got nil")
	}
}

func TestInvoke(t *testing.T) {
	r, err := registry.New(registry.Builtin{
		Name: "+", Func: dummyFunc,
		Doc: "adds", Arglists: "[a b]", Added: "1.0",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v, err := r.Invoke("+", alloc.Default, []value.Value{value.Int(1), value.Int(2)})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if int64(v.(value.Int)) != 2 {
		t.Errorf("Invoke result = %v, want 2", v)
	}
}

func TestInvokeUnknown(t *testing.T) {
	r, _ := registry.New()
	if _, err := r.Invoke("nope", alloc.Default, nil); err == nil {
		t.Fatal("want error for unknown builtin, got nil")
	}
}

func TestLookupAndNames(t *testing.T) {
	r, err := registry.New(
		registry.Builtin{Name: "a", Func: dummyFunc},
		registry.Builtin{Name: "b", Func: dummyFunc},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
	if names := r.Names(); names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %v, want [a b]", names)
	}
	if _, ok := r.Lookup("a"); !ok {
		t.Errorf("Lookup(a) not found")
	}
}
