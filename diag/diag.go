// Package diag implements the closed error-signalling convention that the
// numeric engine and builtin registry use to report failures: a fixed set
// of kinds, a formatted message, and an optional argument-index breadcrumb
// for the surrounding evaluator to attach source position to.
package diag

import "fmt"

// Kind is a closed set of diagnostic categories. No other values are valid.
type Kind int

const (
	// ArityError indicates a builtin was called with the wrong number of
	// arguments.
	ArityError Kind = iota
	// TypeError indicates a value could not be coerced to a number or to
	// an expected tag.
	TypeError
	// ArithmeticError indicates divide-by-zero and related failures.
	ArithmeticError
	// ValueError indicates an argument violates a domain constraint.
	ValueError
	// IOError is reserved for adjacent builtins; the numeric engine never
	// emits it.
	IOError
	// InternalError is reserved for adjacent builtins; the numeric engine
	// never emits it.
	InternalError
)

func (k Kind) String() string {
	switch k {
	case ArityError:
		return "arity_error"
	case TypeError:
		return "type_error"
	case ArithmeticError:
		return "arithmetic_error"
	case ValueError:
		return "value_error"
	case IOError:
		return "io_error"
	case InternalError:
		return "internal_error"
	default:
		return "unknown_error"
	}
}

// Diagnostic is the failure value every builtin returns instead of a host
// exception. It implements error so it composes with github.com/pkg/errors.
type Diagnostic struct {
	Kind    Kind
	Message string
	// ArgIndex is the zero-based index of the offending argument, when
	// known. Filled in by unary type-error sites so the surrounding
	// evaluator can attach "cannot cast arg N" source position.
	ArgIndex *int
}

func (d *Diagnostic) Error() string {
	if d.ArgIndex != nil {
		return fmt.Sprintf("%s: %s (arg %d)", d.Kind, d.Message, *d.ArgIndex)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// New builds a Diagnostic with no argument breadcrumb.
func New(kind Kind, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithArg builds a Diagnostic carrying an argument-index breadcrumb.
func WithArg(kind Kind, index int, format string, args ...interface{}) *Diagnostic {
	i := index
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), ArgIndex: &i}
}

// Arity is a convenience constructor for the common "wrong number of
// arguments" case.
func Arity(builtin string, got int) *Diagnostic {
	return New(ArityError, "wrong number of args (%d) passed to %s", got, builtin)
}

// DivideByZero is a convenience constructor for the common zero-divisor
// case shared by /, mod, rem and quot.
func DivideByZero() *Diagnostic {
	return New(ArithmeticError, "Divide by zero")
}

// Of reports whether err is a Diagnostic of the given kind, unwrapping
// through github.com/pkg/errors-style Cause chains.
func Of(err error, kind Kind) bool {
	d, ok := As(err)
	return ok && d.Kind == kind
}

// As extracts a *Diagnostic from err, following Cause() through as many
// levels as needed (errors.Wrap from github.com/pkg/errors satisfies the
// causer interface). Errors that only implement Unwrap() are not
// followed.
func As(err error) (*Diagnostic, bool) {
	for err != nil {
		if d, ok := err.(*Diagnostic); ok {
			return d, true
		}
		u, ok := err.(interface{ Cause() error })
		if !ok {
			return nil, false
		}
		err = u.Cause()
	}
	return nil, false
}
