package diag_test

import (
	"testing"

	"github.com/db47h/lispcore/diag"
	"github.com/pkg/errors"
)

func TestDiagnosticError(t *testing.T) {
	d := diag.New(diag.ArithmeticError, "Divide by zero")
	if got, want := d.Error(), "arithmetic_error: Divide by zero"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDiagnosticWithArg(t *testing.T) {
	d := diag.WithArg(diag.TypeError, 1, "cannot cast to number")
	if got, want := d.Error(), "type_error: cannot cast to number (arg 1)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestOfUnwrapsWrap(t *testing.T) {
	d := diag.DivideByZero()
	wrapped := errors.Wrap(d, "/")
	if !diag.Of(wrapped, diag.ArithmeticError) {
		t.Errorf("Of(wrapped, ArithmeticError) = false, want true")
	}
	if diag.Of(wrapped, diag.TypeError) {
		t.Errorf("Of(wrapped, TypeError) = true, want false")
	}
}

func TestArity(t *testing.T) {
	d := diag.Arity("-", 0)
	if d.Kind != diag.ArityError {
		t.Errorf("Kind = %v, want ArityError", d.Kind)
	}
}
