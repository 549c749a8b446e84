package core_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/db47h/lispcore/core"
	"github.com/db47h/lispcore/diag"
	"github.com/db47h/lispcore/registry"
)

func TestNewDefaults(t *testing.T) {
	reg, err := registry.New()
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	e := core.New(reg)
	if e.Allocator() == nil {
		t.Error("Allocator() is nil")
	}
	if e.Rand() == nil {
		t.Error("Rand() is nil")
	}
	if e.Stdout() == nil || e.Stderr() == nil {
		t.Error("Stdout()/Stderr() is nil")
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	reg, _ := registry.New()
	var out bytes.Buffer
	e := core.New(reg, core.WithStdout(&out), core.WithRandSource(rand.NewSource(42)))
	e.Stdout().Write([]byte("hi"))
	if out.String() != "hi" {
		t.Errorf("WithStdout not wired: got %q", out.String())
	}
}

func TestLastDiagnostic(t *testing.T) {
	reg, _ := registry.New()
	e := core.New(reg)
	if e.LastDiagnostic() != nil {
		t.Error("LastDiagnostic() should start nil")
	}
	d := diag.DivideByZero()
	e.SetLastDiagnostic(d)
	if e.LastDiagnostic() != d {
		t.Error("LastDiagnostic() did not round-trip")
	}
}
