package core

// Poolable is implemented by entities managed by a Pool. The pool owns the
// active flag; entities only expose it so that stale references can be
// detected (an entity released mid-tick reports inactive immediately).
type Poolable interface {
	SetPoolActive(active bool)
}

// Pool is a capped free-list container for transient entities (obstacles,
// coins, power-ups, particles). Entities are acquired from the free list and
// reinitialized in place, avoiding per-spawn allocation churn. Released
// entities return to the free list up to freeCap; beyond that they are simply
// dropped, which bounds memory regardless of release/acquire skew.
//
// Invariants: no entity is ever in the active and free lists at once, and the
// active count never exceeds maxActive. Callers that remove during iteration
// must walk the active list in reverse index order and use ReleaseAt.
type Pool[T Poolable] struct {
	construct func() T
	active    []T
	free      []T
	maxActive int
	freeCap   int
}

// NewPool creates a pool that holds at most maxActive simultaneously active
// entities and keeps at most freeCap released entities for reuse.
func NewPool[T Poolable](maxActive, freeCap int, construct func() T) *Pool[T] {
	return &Pool[T]{
		construct: construct,
		active:    make([]T, 0, maxActive),
		free:      make([]T, 0, freeCap),
		maxActive: maxActive,
		freeCap:   freeCap,
	}
}

// Acquire pops a free entity (or constructs one if the free list is empty),
// applies init to reinitialize its fields, marks it active, and appends it to
// the active list. Returns false without side effects if the pool is at its
// active cap; spawn attempts are silently dropped at saturation.
func (p *Pool[T]) Acquire(init func(T)) (T, bool) {
	var zero T
	if len(p.active) >= p.maxActive {
		return zero, false
	}

	var e T
	if n := len(p.free); n > 0 {
		e = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		e = p.construct()
	}

	if init != nil {
		init(e)
	}
	e.SetPoolActive(true)
	p.active = append(p.active, e)
	return e, true
}

// ReleaseAt removes the active entity at index i and returns it to the free
// list if there is room. Safe while iterating the active list in reverse
// index order.
func (p *Pool[T]) ReleaseAt(i int) {
	if i < 0 || i >= len(p.active) {
		return
	}
	e := p.active[i]
	e.SetPoolActive(false)
	p.active = append(p.active[:i], p.active[i+1:]...)
	if len(p.free) < p.freeCap {
		p.free = append(p.free, e)
	}
}

// Clear releases every active entity.
func (p *Pool[T]) Clear() {
	for i := len(p.active) - 1; i >= 0; i-- {
		p.ReleaseAt(i)
	}
}

// Active returns the active list. Callers must not reorder it; removal during
// iteration goes through ReleaseAt in reverse index order.
func (p *Pool[T]) Active() []T {
	return p.active
}

// Len returns the number of active entities.
func (p *Pool[T]) Len() int {
	return len(p.active)
}

// FreeLen returns the number of entities waiting on the free list.
func (p *Pool[T]) FreeLen() int {
	return len(p.free)
}

// Cap returns the maximum number of simultaneously active entities.
func (p *Pool[T]) Cap() int {
	return p.maxActive
}
