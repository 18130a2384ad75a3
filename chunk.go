package rcarena

import "unsafe"

var footerSize = alignUp(unsafe.Sizeof(chunkFooter{}), unsafe.Alignof(chunkFooter{}))

// ChunkHandle is a small, copyable handle to a chunk footer. It owns no
// memory by itself; it is a view onto a chunk owned by a ChunkList
// (spec §4.B).
type ChunkHandle struct {
	f *chunkFooter
}

// IsNil reports whether the handle refers to no chunk.
func (c ChunkHandle) IsNil() bool { return c.f == nil }

// Size returns the chunk's data region capacity.
func (c ChunkHandle) Size() uintptr { return c.f.size }

// Index returns the chunk's position in its chunk list's allocation
// order. Debug/ID only, per spec §3.
func (c ChunkHandle) Index() uintptr { return c.f.index }

// Refcount returns the number of live handles into this chunk.
func (c ChunkHandle) Refcount() uint64 { return c.f.refcount() }

// IsFree reports whether this chunk currently sits on its free list.
func (c ChunkHandle) IsFree() bool { return c.f.isFree() }

// IsCurrent reports whether this chunk is presently serving
// allocations for its chunk list.
func (c ChunkHandle) IsCurrent() bool { return c.f.isCurrent() }

// chunkAllocate provisions a fresh chunk: a single heap allocation
// holding `size` bytes of data, aligned to `size`, immediately followed
// by a chunkFooter (spec §4.A). Go's make does not let us request
// arbitrary power-of-two alignment directly, so the backing buffer is
// over-allocated by size bytes (at most size-1 of them are ever needed)
// and the data region is aligned by hand within it — the standard technique for aligned allocation on
// top of an allocator that only guarantees natural alignment.
func chunkAllocate(size, index uintptr, next *chunkFooter, fl *FreeList) ChunkHandle {
	if size == 0 || size&(size-1) != 0 {
		fatal("rcarena: chunk size %d is not a power of two", size)
	}

	footerOffset := alignUp(size, unsafe.Alignof(chunkFooter{}))
	compound := footerOffset + footerSize
	total := compound + size // slack to guarantee a size-aligned start exists
	if total < compound {
		fatal("rcarena: chunk layout for size %d overflows", size)
	}

	raw := make([]byte, total)
	base := uintptr(unsafe.Pointer(&raw[0]))
	start := alignUp(base, size)

	footerPtr := (*chunkFooter)(unsafe.Pointer(start + footerOffset))
	*footerPtr = chunkFooter{
		size:     size,
		index:    index,
		start:    unsafe.Pointer(start),
		bump:     unsafe.Pointer(start + size),
		next:     next,
		freeList: fl,
		raw:      raw,
	}

	return ChunkHandle{f: footerPtr}
}

// calcPointer implements the downward-bump arithmetic shared by CanFit
// and Alloc (spec §4.B): subtract size from the bump cursor, align the
// result down, and check it has not gone below the chunk's start.
func (c ChunkHandle) calcPointer(size, align uintptr) (unsafe.Pointer, bool) {
	cur := uintptr(c.f.bump)
	if cur < size {
		return nil, false
	}
	newPtr := cur - size
	newPtr &^= align - 1
	if newPtr < uintptr(c.f.start) {
		return nil, false
	}
	return unsafe.Pointer(newPtr), true
}

// CanFit reports whether layout can be satisfied by bumping further
// into this chunk without mutating the bump cursor.
func (c ChunkHandle) CanFit(layout Layout) bool {
	_, ok := c.calcPointer(layout.Size, layout.Align)
	return ok
}

// Alloc bumps the cursor and returns the address of a region of
// layout.Size bytes aligned to layout.Align. It aborts fatally if the
// layout does not fit — callers must pre-check with CanFit or route to
// a larger chunk list (spec §4.B).
func (c ChunkHandle) Alloc(layout Layout) unsafe.Pointer {
	p, ok := c.calcPointer(layout.Size, layout.Align)
	if !ok {
		fatal("rcarena: chunk %d/%d cannot fit layout{size=%d,align=%d}", c.f.size, c.f.index, layout.Size, layout.Align)
	}
	c.f.bump = p
	return p
}

// resetBump sets the bump cursor back to empty (start+size). Called
// when the last reference into the chunk disappears (spec §4.B).
func (c ChunkHandle) resetBump() {
	c.f.bump = unsafe.Pointer(uintptr(c.f.start) + c.f.size)
}

// Free pushes this chunk onto its owning free list, per the free
// list's push-precondition (spec invariant 7, §4.C).
func (c ChunkHandle) Free() error {
	return c.f.freeList.Push(c)
}

// dropChain walks the next-linked chain starting at this chunk,
// asserting every chunk has zero outstanding references, then severs
// the chain so nothing keeps the backing buffers reachable. Go has no
// explicit free(); once raw is cleared and the chain is unlinked, the
// garbage collector reclaims the memory like any other unreachable
// value (spec §4.B "drop_chain", §7: fatal on outstanding references
// at teardown).
func (c ChunkHandle) dropChain() {
	cur := c.f
	for cur != nil {
		if cur.refcount() != 0 {
			fatal("rcarena: chunk %d/%d still has %d references at teardown", cur.size, cur.index, cur.refcount())
		}
		next := cur.next
		cur.raw = nil
		cur.next = nil
		cur.nextFree = nil
		cur = next
	}
}
