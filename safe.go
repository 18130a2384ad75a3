package rcarena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// use. The core (and Arena itself) are single-threaded by contract
// (spec §5); SafeArena is the composition the caller reaches for when
// that contract doesn't fit, the same role the teacher's SafeArena
// played around its plain Arena.
//
// The teacher's Arena freed everything in bulk via Reset, so locking
// its methods covered its entire concurrency surface. This arena adds
// per-handle Drop (and SharedRef.Clone), which mutate the same chunk
// footer flags and free-list links that SafeAlloc's allocation path
// touches (ptr.removeRef, FreeList.Push/Pop) — calling a handle's own
// Drop/Clone directly races with concurrent SafeAlloc/SafeDrop calls
// on handles from the same SafeArena. Use the SafeDrop*/SafeClone*
// functions below instead of calling the handle methods directly
// whenever more than one goroutine shares a SafeArena.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena with the given options.
func NewSafeArena(opts ...Option) *SafeArena {
	return &SafeArena{a: NewArena(opts...)}
}

// ID returns the underlying arena's log-correlation identifier.
func (s *SafeArena) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ID()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// Drop thread-safely tears down every size class this arena
// provisioned.
func (s *SafeArena) Drop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Drop()
}

// SafeAlloc thread-safely allocates zeroed storage for a T.
func SafeAlloc[T any](s *SafeArena) Owned[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocWithCleanup thread-safely allocates storage for a T whose
// handle runs cleanup on Drop.
func SafeAllocWithCleanup[T any](s *SafeArena, cleanup func(*T)) Owned[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocWithCleanup(s.a, cleanup)
}

// SafeAllocUninit thread-safely allocates uninitialized storage for a
// T.
func SafeAllocUninit[T any](s *SafeArena) UninitOwned[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninit[T](s.a)
}

// SafeAllocSliceCopy thread-safely allocates a slice holding a copy of
// source.
func SafeAllocSliceCopy[T any](s *SafeArena, source []T) OwnedSlice[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceCopy(s.a, source)
}

// SafeDropOwned thread-safely drops an Owned[T] handle obtained from
// this SafeArena. Required instead of calling h.Drop() directly
// whenever the handle could be dropped concurrently with another
// goroutine's allocation or drop on the same SafeArena.
func SafeDropOwned[T any](s *SafeArena, h Owned[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.Drop()
}

// SafeDropUniqueRef thread-safely drops a UniqueRef[T] handle obtained
// from this SafeArena.
func SafeDropUniqueRef[T any](s *SafeArena, h UniqueRef[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.Drop()
}

// SafeDropSharedRef thread-safely drops a SharedRef[T] handle obtained
// from this SafeArena.
func SafeDropSharedRef[T any](s *SafeArena, h SharedRef[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.Drop()
}

// SafeCloneSharedRef thread-safely clones a SharedRef[T] handle
// obtained from this SafeArena. Clone increments the same chunk
// refcount SafeDropSharedRef decrements, so it needs the same lock.
func SafeCloneSharedRef[T any](s *SafeArena, h SharedRef[T]) SharedRef[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return h.Clone()
}

// SafeDropOwnedSlice thread-safely drops an OwnedSlice[T] handle
// obtained from this SafeArena.
func SafeDropOwnedSlice[T any](s *SafeArena, h OwnedSlice[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.Drop()
}

// SafeDropUninitOwned thread-safely drops an UninitOwned[T] handle
// obtained from this SafeArena without initializing it.
func SafeDropUninitOwned[T any](s *SafeArena, h UninitOwned[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.Drop()
}
