package rcarena

// Owned is the exclusive owner of a value living in an arena. Dropping
// it runs the value's cleanup (if one was registered) and then
// decrements the owning chunk's reference count (spec §3, §4.E).
//
// Go has no destructors, so callers must call Drop explicitly once the
// value is no longer needed — typically via `defer h.Drop()`.
type Owned[T any] struct {
	p       ptr[T]
	cleanup func(*T)
	state   *handleState
}

// handleState tracks whether a single handle value has already been
// dropped or converted, so reusing it a second time can be diagnosed
// instead of silently double-decrementing a refcount. Every conversion
// (IntoUniqueRef, IntoSharedRef, IntoOwned, Clone, ...) allocates its
// destination handle a fresh handleState rather than reusing the
// source's — sharing it would make the new handle look already-dropped
// the instant it's created, since consume just set the source's
// dropped flag. The reference itself transfers between handles simply
// by not calling addRef/removeRef during the conversion.
type handleState struct {
	dropped bool
}

// NewOwned wraps ptr, incrementing its chunk's reference count exactly
// once (spec §6).
func NewOwned[T any](p ptr[T]) Owned[T] {
	p.addRef()
	return Owned[T]{p: p, state: &handleState{}}
}

// NewOwnedWithCleanup is like NewOwned, but runs cleanup on the value
// immediately before the reference count is decremented on Drop — the
// Go stand-in for T's destructor (spec §4.E, §3 "Go realization
// notes").
func NewOwnedWithCleanup[T any](p ptr[T], cleanup func(*T)) Owned[T] {
	p.addRef()
	return Owned[T]{p: p, cleanup: cleanup, state: &handleState{}}
}

// Get returns a pointer to the owned value.
func (o Owned[T]) Get() *T { return o.p.deref() }

// Drop runs the registered cleanup (if any) on the value, then
// decrements the owning chunk's reference count, possibly reclaiming
// the chunk (spec §4.E drop contract). It aborts if called twice on
// handles sharing the same underlying reference.
func (o Owned[T]) Drop() {
	o.consume("Owned")
	if o.cleanup != nil {
		o.cleanup(o.p.deref())
	}
	o.p.removeRef()
}

// Leak converts the handle into a bare pointer valid for the life of
// the arena, skipping the drop decrement — the chunk can never return
// to its free list as long as anything could still observe this
// pointer (spec §4.E).
func (o Owned[T]) Leak() *T {
	o.consume("Owned")
	return o.p.deref()
}

// IntoUniqueRef converts this owning handle into a borrowing one,
// transferring the held reference without incrementing or decrementing
// the refcount (spec §4.E, §6).
func (o Owned[T]) IntoUniqueRef() UniqueRef[T] {
	o.consume("Owned")
	return UniqueRef[T]{p: o.p, state: &handleState{}}
}

// IntoSharedRef converts this owning handle into a shared, clonable
// one, transferring the held reference without incrementing or
// decrementing the refcount.
func (o Owned[T]) IntoSharedRef() SharedRef[T] {
	o.consume("Owned")
	return SharedRef[T]{p: o.p, state: &handleState{}}
}

func (o Owned[T]) consume(kind string) {
	if o.state == nil || o.state.dropped {
		fatal("rcarena: %s handle used after it was already dropped or converted", kind)
	}
	o.state.dropped = true
}

// UninitOwned is the exclusive owner of arena storage that has not yet
// been initialized with a value. The storage is not cleared: it is
// zero on a chunk's first use, but a reclaimed chunk still holds the
// bytes of earlier allocations. InitWith narrows it to an Owned[T]
// with no cleanup registered (spec §4.E "Uninit initialization").
type UninitOwned[T any] struct {
	p     ptr[T]
	state *handleState
}

// NewUninitOwned wraps ptr, incrementing its chunk's reference count
// exactly once.
func NewUninitOwned[T any](p ptr[T]) UninitOwned[T] {
	p.addRef()
	return UninitOwned[T]{p: p, state: &handleState{}}
}

// InitWith writes v into the uninitialized slot and narrows the handle
// to an Owned[T], transferring the held reference.
func (u UninitOwned[T]) InitWith(v T) Owned[T] {
	u.consume()
	*u.p.deref() = v
	return Owned[T]{p: u.p, state: &handleState{}}
}

// Drop decrements the chunk's reference count without running any
// cleanup — the slot was never initialized, so there is nothing to
// clean up.
func (u UninitOwned[T]) Drop() {
	u.consume()
	u.p.removeRef()
}

func (u UninitOwned[T]) consume() {
	if u.state == nil || u.state.dropped {
		fatal("rcarena: UninitOwned handle used after it was already dropped or initialized")
	}
	u.state.dropped = true
}
