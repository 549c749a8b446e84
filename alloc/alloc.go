// Package alloc implements the allocator handle consumed by every builtin's
// invocation contract (spec §6: `func(allocator, argument_slice) → value |
// failure`). Scratch big-number magnitudes created mid-computation are
// acquired from and released back to the allocator on every exit path,
// including error paths; result magnitudes escape via the returned value
// and outlive the call.
//
// This mirrors the teacher's discipline of keeping all mutable VM state on
// one caller-owned struct (vm.Instance) rather than in package globals:
// the allocator is always explicit, never ambient.
package alloc

import (
	"math/big"
	"sync"
)

// Allocator hands out and reclaims scratch *big.Int values used as
// intermediates during numeric computation. It does not own result
// values — those are returned to the caller and are never released here.
type Allocator interface {
	// BigInt returns a scratch *big.Int, value undefined (callers must
	// Set it before reading).
	BigInt() *big.Int
	// Release returns a scratch *big.Int obtained from BigInt. Callers
	// must not use x after calling Release.
	Release(x *big.Int)
}

// PoolAllocator is the default Allocator, backed by a sync.Pool so
// repeated numeric folds (e.g. `(+ a b c d ...)`) don't allocate a fresh
// big.Int for every intermediate.
type PoolAllocator struct {
	pool sync.Pool
}

// NewPoolAllocator returns a ready-to-use PoolAllocator.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{
		pool: sync.Pool{New: func() interface{} { return new(big.Int) }},
	}
}

func (p *PoolAllocator) BigInt() *big.Int {
	return p.pool.Get().(*big.Int)
}

func (p *PoolAllocator) Release(x *big.Int) {
	if x == nil {
		return
	}
	x.SetInt64(0)
	p.pool.Put(x)
}

// Default is a package-level PoolAllocator for callers that don't need
// per-Env isolation (e.g. tests). core.New does not use it: each Env gets
// its own fresh PoolAllocator unless one is supplied via core.WithAllocator.
var Default = NewPoolAllocator()
