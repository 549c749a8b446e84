package builtin

import (
	"github.com/db47h/lispcore/core"
	"github.com/db47h/lispcore/registry"
)

// Register assembles the full builtin surface (numeric core plus
// peripheral leaf adapters) into a Registry bound to e, mirroring how the
// teacher's cmd/retro/main.go wires a vm.Instance up with its opcode
// table before running a program.
func Register(e *core.Env) (*registry.Registry, error) {
	var defs []registry.Builtin
	defs = append(defs, arithBuiltins()...)
	defs = append(defs, numberBuiltins()...)
	defs = append(defs, ioBuiltins(e)...)
	defs = append(defs, pathBuiltins()...)
	defs = append(defs, seqBuiltins()...)
	defs = append(defs, randBuiltins(e)...)
	defs = append(defs, evalBuiltins(e)...)
	reg, err := registry.New(defs...)
	if err != nil {
		return nil, err
	}
	e.Registry = reg
	return reg, nil
}
