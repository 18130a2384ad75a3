package rcarena

// ChunkList owns every chunk provisioned for one size class: a
// `next`-linked chain rooted at head (newest first, used only for bulk
// teardown), the chunk presently serving allocations (current), and a
// free list of reclaimed chunks available for reuse (spec §3, §4.D).
type ChunkList struct {
	size     uintptr
	len      int
	head     *chunkFooter
	current  *chunkFooter
	freeList *FreeList
}

// EmptyChunkList creates a chunk list with no chunks yet. size must be
// a power of two.
func EmptyChunkList(size uintptr) *ChunkList {
	if size == 0 || size&(size-1) != 0 {
		fatal("rcarena: chunk list size %d is not a power of two", size)
	}
	return &ChunkList{size: size, freeList: NewFreeList()}
}

// NewChunkList creates a chunk list and preallocates the default
// number of chunks (spec §6: INITIAL_CHUNKS_PER_CLASS, 4).
func NewChunkList(size uintptr) *ChunkList {
	return NewChunkListWithCapacity(size, InitialChunksPerClass)
}

// NewChunkListWithCapacity creates a chunk list and preallocates n
// chunks.
func NewChunkListWithCapacity(size uintptr, n int) *ChunkList {
	cl := EmptyChunkList(size)
	cl.Reserve(n)
	return cl
}

// Size returns the power-of-two chunk size for this class.
func (cl *ChunkList) Size() uintptr { return cl.size }

// Len returns the number of chunks ever allocated for this class —
// exactly the number of host allocations performed (spec property P4).
func (cl *ChunkList) Len() int { return cl.len }

// allocateChunk provisions one fresh chunk, links it at the head of
// the next-chain, and immediately pushes it onto the free list (spec
// §4.D "reserve"; see also spec §9's open question: a freshly
// allocated chunk passes transiently through FREE before a same-call
// pop, which is intentional and harmless).
func (cl *ChunkList) allocateChunk() ChunkHandle {
	index := uintptr(cl.len)
	ch := chunkAllocate(cl.size, index, cl.head, cl.freeList)

	cl.head = ch.f
	cl.len++

	if err := ch.Free(); err != nil {
		// A chunk fresh off chunkAllocate is never current, never
		// free, and has a zero refcount, so this can only happen if
		// chunkAllocate itself is broken.
		fatal("rcarena: failed to free newly allocated chunk %d/%d: %v", ch.Size(), ch.Index(), err)
	}

	return ch
}

// Reserve provisions n fresh chunks and pushes each onto the free list
// (spec §4.D).
func (cl *ChunkList) Reserve(n int) {
	for i := 0; i < n; i++ {
		cl.allocateChunk()
	}
}

// popOrAlloc pops a chunk from the free list, provisioning a new one
// first if the free list is empty (spec §4.D step 4).
func (cl *ChunkList) popOrAlloc() ChunkHandle {
	if _, ok := cl.freeList.Peek(); !ok {
		cl.allocateChunk()
	}
	ch, ok := cl.freeList.Pop()
	if !ok {
		fatal("rcarena: chunk list for size %d failed to provision a chunk", cl.size)
	}
	return ch
}

// getCurrent returns a chunk able to serve layout: the existing
// current chunk if it still fits, or a freshly acquired one otherwise
// (spec §4.D steps 1-4).
func (cl *ChunkList) getCurrent(layout Layout) ChunkHandle {
	if cl.current != nil {
		ch := ChunkHandle{f: cl.current}
		if ch.CanFit(layout) {
			return ch
		}
		// Displaced: no longer current, but its refcount may still be
		// nonzero, so it is NOT pushed onto the free list here — that
		// happens later, when its last handle drops (spec §4.D step 3).
		cl.current.toggleCurrent()
	}

	next := cl.popOrAlloc()
	next.f.toggleCurrent()
	cl.current = next.f
	return next
}

// Allocate is the chunk list's central operation: it selects (or
// provisions) a chunk able to hold layout and bumps an allocation out
// of it (spec §4.D). The caller (the Arena shell) guarantees
// layout.Size <= Size() and layout.Align <= Size(), so a freshly reset
// chunk always fits.
func (cl *ChunkList) Allocate(layout Layout) ptr[byte] {
	ch := cl.getCurrent(layout)
	addr := ch.Alloc(layout)
	return ptr[byte]{chunk: ch, addr: addr}
}

// Drop tears down every chunk this list ever allocated, asserting none
// still carry outstanding references (spec §4.B "drop_chain", §7).
func (cl *ChunkList) Drop() {
	if cl.head != nil {
		ChunkHandle{f: cl.head}.dropChain()
		cl.head = nil
	}
	cl.current = nil
	cl.freeList = nil
}
