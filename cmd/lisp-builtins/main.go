// Command lisp-builtins is a thin CLI harness over the registry package:
// given a builtin name and literal arguments on the command line, it
// invokes the builtin directly and prints the result. It exists the same
// way cmd/retro exists for the teacher's vm package: a minimal driver
// that exercises the core without requiring a full reader/evaluator,
// which are out of scope for this module.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/builtin"
	"github.com/db47h/lispcore/core"
	"github.com/db47h/lispcore/numeric"
	"github.com/db47h/lispcore/value"
	"github.com/pkg/errors"
)

var debug bool

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

// parseArg converts one command-line token into a value.Value literal.
// Suffix N forces an arbitrary-precision integer, M an arbitrary-precision
// decimal; a leading/trailing quote marks a string; true/false/nil are
// the obvious keywords; anything else falls back to int, then float,
// then a bare symbol.
func parseArg(tok string) (value.Value, error) {
	switch tok {
	case "nil":
		return value.Nil, nil
	case "true":
		return value.True, nil
	case "false":
		return value.False, nil
	}
	if strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) && len(tok) >= 2 {
		return value.Str(tok[1 : len(tok)-1]), nil
	}
	if strings.HasSuffix(tok, "N") {
		n, ok := new(big.Int).SetString(tok[:len(tok)-1], 10)
		if !ok {
			return nil, errors.Errorf("invalid big_int literal %q", tok)
		}
		return value.NewBigInt(n), nil
	}
	if strings.HasSuffix(tok, "M") {
		bd, err := numeric.ParseBigDecimal(tok[:len(tok)-1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid big_decimal literal %q", tok)
		}
		return bd, nil
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return value.Int(n), nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return value.Float(f), nil
	}
	return value.Symbol(tok), nil
}

func main() {
	flag.BoolVar(&debug, "debug", false, "print diagnostics with full cause chain")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: lisp-builtins [-debug] <builtin> [args...]")
		os.Exit(2)
	}

	e := core.New(nil)
	if _, err := builtin.Register(e); err != nil {
		atExit(errors.Wrap(err, "building registry"))
	}

	name := args[0]
	vals := make([]value.Value, 0, len(args)-1)
	for _, tok := range args[1:] {
		v, perr := parseArg(tok)
		if perr != nil {
			atExit(perr)
		}
		vals = append(vals, v)
	}

	result, err := e.Registry.Invoke(name, alloc.Default, vals)
	if err != nil {
		atExit(err)
	}
	fmt.Println(result.String())
}
