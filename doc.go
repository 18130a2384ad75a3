// Package rcarena implements a reference-counted, size-classed bump
// allocator arena.
//
// # Overview
//
// An arena allocates memory in large power-of-two chunks and then hands
// out portions of those chunks on demand, bumping a cursor downward from
// the top of the chunk toward its base. Unlike a plain bump arena, each
// allocation is wrapped in a typed handle ([Owned], [UniqueRef] or
// [SharedRef]) that holds a reference on its owning chunk; a chunk
// becomes reclaimable — its bump cursor resets to empty and, if it is
// no longer the chunk currently serving allocations, it returns to its
// size class's free list — the moment its last handle is dropped. This
// gives bump-speed allocation while still reclaiming memory in bursts,
// without waiting for the whole arena to die.
//
// # Basic usage
//
//	a := rcarena.NewArena()
//
//	h := rcarena.Alloc[int](a)
//	*h.Get() = 42
//	h.Drop()
//
// # Thread safety
//
// An [Arena] and the handles it produces are NOT safe for concurrent
// use. [SafeArena] guards the allocation path (SafeAlloc and friends)
// with a mutex, but a handle's own Drop/Clone methods are not
// guarded — they touch the same chunk footer flags and free-list
// links SafeAlloc does. Once a SafeArena is shared across goroutines,
// drop and clone its handles through SafeDropOwned, SafeDropUniqueRef,
// SafeDropSharedRef, SafeCloneSharedRef, SafeDropOwnedSlice, or
// SafeDropUninitOwned instead of calling the handle methods directly.
//
// # Size classes
//
// Chunk sizes are powers of two starting at [Config.MinBlockSize]
// (default 256 bytes) and doubling per class. A request of size s is
// routed to the smallest class whose chunk size is >= s (and >= the
// requested alignment); classes are created lazily as larger
// allocations are requested.
//
// # What this package does not do
//
// Multi-threaded access to a single [Arena], spanning one allocation
// across multiple chunks, in-place grow/shrink of an allocation,
// freeing an individual allocation independent of its chunk,
// defragmentation, and alignment requests larger than a chunk's size
// class are all out of scope; see SPEC_FULL.md and DESIGN.md in the
// module root for the full rationale.
package rcarena
