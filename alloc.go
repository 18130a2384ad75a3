package rcarena

// Alloc allocates storage for a T in the arena, sets it to T's zero
// value, and returns an owning handle over it (spec §6
// "Owned<T>::new(ptr)"). A reclaimed chunk is reused without clearing
// its memory, so the slot is zeroed here explicitly; see AllocUninit
// for the two-phase form spec §4.E describes.
func Alloc[T any](a *Arena) Owned[T] {
	layout := layoutOf[T]()
	raw := a.allocate(layout)
	p := castPtr[T](raw)
	var zero T
	*p.deref() = zero
	return NewOwned(p)
}

// AllocWithCleanup is like Alloc, but cleanup runs on the value when
// the returned handle is dropped — the Go stand-in for a type with a
// non-trivial destructor (spec §4.E).
func AllocWithCleanup[T any](a *Arena, cleanup func(*T)) Owned[T] {
	layout := layoutOf[T]()
	raw := a.allocate(layout)
	p := castPtr[T](raw)
	var zero T
	*p.deref() = zero
	return NewOwnedWithCleanup(p, cleanup)
}

// AllocUninit allocates storage for a T without assigning a value to
// it, returning a handle that must be narrowed with InitWith before
// the value can be read (spec §4.E "Uninit initialization").
func AllocUninit[T any](a *Arena) UninitOwned[T] {
	layout := layoutOf[T]()
	raw := a.allocate(layout)
	return NewUninitOwned(castPtr[T](raw))
}
