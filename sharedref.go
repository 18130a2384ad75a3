package rcarena

// SharedRef is a shared, clonable borrow of a value living in an
// arena. Each clone holds its own reference; Drop on any one of them
// only releases that instance's reference (spec §3, §4.E).
type SharedRef[T any] struct {
	p     ptr[T]
	state *handleState
}

// NewSharedRef wraps ptr, incrementing its chunk's reference count
// exactly once (spec §6).
func NewSharedRef[T any](p ptr[T]) SharedRef[T] {
	p.addRef()
	return SharedRef[T]{p: p, state: &handleState{}}
}

// Get returns a pointer to the referenced value.
func (r SharedRef[T]) Get() *T { return r.p.deref() }

// Clone increments the owning chunk's reference count and returns an
// independent SharedRef over the same value (spec §4.E "Clone").
func (r SharedRef[T]) Clone() SharedRef[T] {
	r.p.addRef()
	return SharedRef[T]{p: r.p, state: &handleState{}}
}

// Drop decrements the owning chunk's reference count, possibly
// reclaiming the chunk.
func (r SharedRef[T]) Drop() {
	r.consume()
	r.p.removeRef()
}

// Leak converts the handle into a bare pointer valid for the life of
// the arena, skipping the drop decrement.
func (r SharedRef[T]) Leak() *T {
	r.consume()
	return r.p.deref()
}

func (r SharedRef[T]) consume() {
	if r.state == nil || r.state.dropped {
		fatal("rcarena: SharedRef handle used after it was already dropped")
	}
	r.state.dropped = true
}
