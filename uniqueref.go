package rcarena

// UniqueRef is an exclusive borrow of a value living in an arena. Like
// Owned, it holds one reference on its chunk, but its Drop never runs
// the value's destructor — it only releases the reference (spec §3,
// §4.E).
type UniqueRef[T any] struct {
	p     ptr[T]
	state *handleState
}

// NewUniqueRef wraps ptr, incrementing its chunk's reference count
// exactly once (spec §6).
func NewUniqueRef[T any](p ptr[T]) UniqueRef[T] {
	p.addRef()
	return UniqueRef[T]{p: p, state: &handleState{}}
}

// Get returns a pointer to the referenced value.
func (r UniqueRef[T]) Get() *T { return r.p.deref() }

// Drop decrements the owning chunk's reference count, possibly
// reclaiming the chunk.
func (r UniqueRef[T]) Drop() {
	r.consume()
	r.p.removeRef()
}

// Leak converts the handle into a bare pointer valid for the life of
// the arena, skipping the drop decrement.
func (r UniqueRef[T]) Leak() *T {
	r.consume()
	return r.p.deref()
}

// IntoOwned converts this borrow into an owning handle with the given
// cleanup, transferring the held reference without changing the
// refcount. Use when a borrow turns out to need destructor semantics
// after all.
func (r UniqueRef[T]) IntoOwned(cleanup func(*T)) Owned[T] {
	r.consume()
	return Owned[T]{p: r.p, cleanup: cleanup, state: &handleState{}}
}

// IntoSharedRef converts this exclusive borrow into a shared, clonable
// one, transferring the held reference.
func (r UniqueRef[T]) IntoSharedRef() SharedRef[T] {
	r.consume()
	return SharedRef[T]{p: r.p, state: &handleState{}}
}

func (r UniqueRef[T]) consume() {
	if r.state == nil || r.state.dropped {
		fatal("rcarena: UniqueRef handle used after it was already dropped or converted")
	}
	r.state.dropped = true
}
