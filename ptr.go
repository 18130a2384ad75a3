package rcarena

import "unsafe"

// ptr is the internal pointer type underlying every typed handle: a
// chunk plus a raw address within it (spec §3 "Ptr<T>"). It is not
// exported — callers only ever see it wrapped in Owned, UniqueRef or
// SharedRef.
type ptr[T any] struct {
	chunk ChunkHandle
	addr  unsafe.Pointer
}

func (p ptr[T]) deref() *T {
	return (*T)(p.addr)
}

func (p ptr[T]) addRef() uint64 {
	return p.chunk.f.addRef()
}

// removeRef decrements the chunk's refcount and, if this was the last
// reference, resets the bump cursor and — unless the chunk is still
// current — returns it to its free list (spec §4.E drop contract step
// 3, §9 "reference counts live in a flags word").
func (p ptr[T]) removeRef() uint64 {
	prev := p.chunk.f.removeRef()
	if prev == 1 {
		p.chunk.resetBump()
		if !p.chunk.f.isCurrent() {
			if err := p.chunk.Free(); err != nil {
				fatal("rcarena: failed to reclaim chunk %d/%d on last drop: %v", p.chunk.Size(), p.chunk.Index(), err)
			}
		}
	}
	return prev
}

// castPtr reinterprets a ptr[byte] (as returned by ChunkList.Allocate)
// as a ptr[T], without touching the refcount.
func castPtr[T any](p ptr[byte]) ptr[T] {
	return ptr[T]{chunk: p.chunk, addr: p.addr}
}
