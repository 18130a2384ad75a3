package rcarena

import (
	"math/bits"

	"github.com/google/uuid"
)

// Arena is the collaborator that spec §1/§4.F scope out of the core:
// a growable, ordered sequence of per-size-class ChunkLists, indexed
// by size class i where class i holds chunks of
// Config.MinBlockSize*2^i bytes. Allocate routes a request to the
// smallest class able to hold it, lazily growing the sequence as
// needed.
//
// Arena is NOT safe for concurrent use (spec §5); wrap one in
// SafeArena for mutex-guarded concurrent access.
type Arena struct {
	cfg     Config
	classes []*ChunkList
	id      string
	minBits int // bits.Len(MinBlockSize) - 1, i.e. log2(MinBlockSize)
}

// NewArena creates an Arena with the given options applied over the
// spec §6 defaults.
func NewArena(opts ...Option) *Arena {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.validate()

	id := cfg.ID
	if id == "" {
		id = uuid.New().String()
	}

	return &Arena{
		cfg:     cfg,
		id:      id,
		minBits: bits.Len(uint(cfg.MinBlockSize)) - 1,
	}
}

// ID returns the arena's log-correlation identifier.
func (a *Arena) ID() string { return a.id }

// classIndex computes i = max(0, ceil(log2(size)) - log2(MinBlockSize))
// (spec §4.F), after promoting size up to the requested alignment so
// that a class is never chosen whose chunks are smaller than the
// alignment it must satisfy (spec §9 open question: "do not silently
// misalign").
func (a *Arena) classIndex(layout Layout) int {
	effective := layout.Size
	if layout.Align > effective {
		effective = layout.Align
	}
	if effective <= a.cfg.MinBlockSize {
		return 0
	}

	ceilLog2 := bits.Len(uint(effective - 1))
	idx := ceilLog2 - a.minBits
	if idx < 0 {
		idx = 0
	}
	return idx
}

// classFor returns the ChunkList for size class idx, provisioning it
// (and every smaller class not yet created) on demand.
func (a *Arena) classFor(idx int) *ChunkList {
	for len(a.classes) <= idx {
		size := a.cfg.MinBlockSize << uint(len(a.classes))
		cl := NewChunkListWithCapacity(size, a.cfg.InitialChunksPerClass)
		if a.cfg.Logger != nil {
			a.cfg.Logger.Debug().
				Str("arena_id", a.id).
				Int("class_index", len(a.classes)).
				Uint("chunk_size", uint(size)).
				Msg("rcarena: provisioned size class")
		}
		a.classes = append(a.classes, cl)
	}
	return a.classes[idx]
}

// allocate is the arena-shell routing step: pick the chunk list whose
// class covers layout, then delegate (spec §4.F). If a logger is
// configured, a fatal abort surfacing as a panic from deeper in the
// core is logged at error level before it continues to propagate —
// the library itself never recovers from it (spec §7).
func (a *Arena) allocate(layout Layout) (p ptr[byte]) {
	if a.cfg.Logger != nil {
		logger := a.cfg.Logger
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("arena_id", a.id).
					Interface("panic", r).
					Msg("rcarena: fatal allocation failure")
				panic(r)
			}
		}()
	}

	cl := a.classFor(a.classIndex(layout))
	return cl.Allocate(layout)
}

// Drop tears down every size class this arena ever provisioned,
// aborting if any chunk still carries outstanding references (spec
// §7). Call once the arena and everything allocated from it are no
// longer needed.
func (a *Arena) Drop() {
	for _, cl := range a.classes {
		cl.Drop()
	}
	a.classes = nil
}
