// Package core is the evaluation context analogue of the teacher's
// vm.Instance: one owner struct holding everything a builtin invocation
// needs (the registry, the allocator, the PRNG, stdout/stderr, the
// ambient last-diagnostic slot), built via a functional-options
// constructor the same way vm.New takes ...vm.Option. Nothing here is a
// package global; spec §5 calls out rand/print-capture as the only
// process-wide state, and even those live on Env, not in vars, so two
// Envs never interfere with each other.
package core

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/registry"
)

// Evaluator is the minimal surface the `eval` builtin needs. The real
// analyzer/evaluator is out of scope (spec §1); this interface lets it be
// injected by whatever host wires this package up.
type Evaluator interface {
	Eval(form interface{}) (interface{}, error)
}

// Reader is the minimal surface the `read-string` builtin needs.
type Reader interface {
	ReadString(s string) (interface{}, error)
}

// MacroExpander is the minimal surface the `macroexpand` builtin needs.
type MacroExpander interface {
	MacroExpand(form interface{}) (interface{}, error)
}

// Env is the per-evaluator context threaded through every builtin call.
type Env struct {
	Registry *registry.Registry

	alloc  alloc.Allocator
	rand   *rand.Rand
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	eval   Evaluator
	reader Reader
	macro  MacroExpander

	lastDiagnostic error
}

// Option configures an Env at construction, mirroring vm.Option.
type Option func(*Env)

// WithAllocator overrides the default pooled allocator.
func WithAllocator(a alloc.Allocator) Option {
	return func(e *Env) { e.alloc = a }
}

// WithRandSource seeds the Env's PRNG deterministically (tests) instead
// of the default time-seeded one.
func WithRandSource(src rand.Source) Option {
	return func(e *Env) { e.rand = rand.New(src) }
}

// WithStdin overrides the reader `read-line` reads from.
func WithStdin(r io.Reader) Option {
	return func(e *Env) { e.stdin = r }
}

// WithStdout overrides the writer `print`/`println`/`pr`/`prn` write to.
func WithStdout(w io.Writer) Option {
	return func(e *Env) { e.stdout = w }
}

// WithStderr overrides the writer diagnostics are logged to.
func WithStderr(w io.Writer) Option {
	return func(e *Env) { e.stderr = w }
}

// WithEvaluator installs the host's evaluator for the `eval` builtin.
func WithEvaluator(ev Evaluator) Option {
	return func(e *Env) { e.eval = ev }
}

// WithReader installs the host's reader for the `read-string` builtin.
func WithReader(r Reader) Option {
	return func(e *Env) { e.reader = r }
}

// WithMacroExpander installs the host's macro expander for the
// `macroexpand` builtin.
func WithMacroExpander(m MacroExpander) Option {
	return func(e *Env) { e.macro = m }
}

// New builds an Env from reg and opts. Defaults: a pooled allocator, a
// non-deterministically-seeded PRNG, stdout/stderr as os.Stdout/os.Stderr.
func New(reg *registry.Registry, opts ...Option) *Env {
	e := &Env{
		Registry: reg,
		alloc:    alloc.NewPoolAllocator(),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Allocator returns the Env's allocator handle.
func (e *Env) Allocator() alloc.Allocator { return e.alloc }

// Rand returns the Env's PRNG. Not safe for concurrent use from multiple
// goroutines sharing one Env (spec §5's documented carve-out).
func (e *Env) Rand() *rand.Rand { return e.rand }

// Stdin returns the reader read-line reads from.
func (e *Env) Stdin() io.Reader { return e.stdin }

// Stdout returns the writer the print family writes to.
func (e *Env) Stdout() io.Writer { return e.stdout }

// Stderr returns the writer diagnostics are logged to.
func (e *Env) Stderr() io.Writer { return e.stderr }

// Evaluator returns the installed host evaluator, or nil if none was
// wired with WithEvaluator.
func (e *Env) Evaluator() Evaluator { return e.eval }

// Reader returns the installed host reader, or nil.
func (e *Env) Reader() Reader { return e.reader }

// MacroExpander returns the installed host macro expander, or nil.
func (e *Env) MacroExpander() MacroExpander { return e.macro }

// SetLastDiagnostic records err in the Env's ambient diagnostic slot
// (spec §4.3), so an upper layer can attach source position after
// the fact without threading a breadcrumb through every call frame.
func (e *Env) SetLastDiagnostic(err error) { e.lastDiagnostic = err }

// LastDiagnostic returns the most recently recorded diagnostic, if any.
func (e *Env) LastDiagnostic() error { return e.lastDiagnostic }
