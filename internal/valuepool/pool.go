// Package valuepool provides the three fixed-size slab pools the core
// draws its Value, Member, and ArrayElement nodes from, mirroring the
// process-wide, pool-backed node lifecycle of the teacher library's
// ast.Release*Node convention (see pkg/json/convert.go's ReleaseTree in
// the retrieved reference corpus): nodes are returned to a pool instead
// of being left for the garbage collector, so repeated parse/release
// cycles in a long-running host do not churn the allocator.
//
// Each pool is process-wide (a package-level sync.Pool), matching the
// specification's "the three slab pools are process-wide" resource
// model; sync.Pool's Get/Put are already safe for concurrent use, which
// satisfies "the host environment guarantees their safety under
// concurrent allocation" without any additional locking here.
package valuepool

import (
	"sync"

	"github.com/shapestone/kjson/internal/alloc"
)

// Pool is a slab pool for a fixed-size node type T. Size is the
// per-node byte cost debited against a caller-supplied budget; it need
// not be exact, only representative, since it exists purely for the
// per-parse memory accounting the specification requires.
type Pool[T any] struct {
	size int
	pool sync.Pool
}

// New creates a slab pool that constructs zero-valued *T nodes on miss.
func New[T any](size int) *Pool[T] {
	return &Pool[T]{
		size: size,
		pool: sync.Pool{New: func() any { return new(T) }},
	}
}

// Get returns a node from the pool, debiting size bytes from budget.
// If budget is non-nil and the debit would exceed its cap, Get returns
// nil, false without drawing a node from the pool.
func (p *Pool[T]) Get(budget *alloc.Budget) (*T, bool) {
	if !budget.Debit(p.size) {
		return nil, false
	}
	return p.pool.Get().(*T), true
}

// Put returns a node to the pool and credits size bytes back to budget.
// The caller must have already reset/cleared the node's fields; Put
// does not zero the node itself since the zero value is type-specific.
func (p *Pool[T]) Put(v *T, budget *alloc.Budget) {
	budget.Credit(p.size)
	p.pool.Put(v)
}
