package rcarena

// ClassMetrics is a snapshot of one size class's chunk accounting,
// adapted from the teacher's flat ArenaMetrics to be per-class (spec
// §2.J).
type ClassMetrics struct {
	ChunkSize      uintptr // power-of-two chunk size for this class
	NumChunks      int     // chunks ever allocated for this class (== len)
	NumChunksFree  int     // chunks currently on the free list
	NumChunksInUse int     // NumChunks - NumChunksFree
}

// ArenaMetrics is a snapshot of every size class an Arena has
// provisioned.
type ArenaMetrics struct {
	Classes []ClassMetrics
}

// metrics computes a snapshot for this chunk list by walking its free
// list; this is O(free chunks), same cost class as the teacher's
// Metrics() which sums over all chunks.
func (cl *ChunkList) metrics() ClassMetrics {
	free := 0
	for cur := cl.freeList.top; cur != nil; cur = cur.nextFree {
		free++
	}
	return ClassMetrics{
		ChunkSize:      cl.size,
		NumChunks:      cl.len,
		NumChunksFree:  free,
		NumChunksInUse: cl.len - free,
	}
}

// Metrics returns a snapshot of every size class this arena has
// provisioned, in class-index order.
func (a *Arena) Metrics() ArenaMetrics {
	classes := make([]ClassMetrics, len(a.classes))
	for i, cl := range a.classes {
		classes[i] = cl.metrics()
	}
	return ArenaMetrics{Classes: classes}
}
