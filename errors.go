package rcarena

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Recoverable errors returned by FreeList.Push / ChunkHandle.Free (spec
// §7). They are the only errors this package returns in normal flow —
// everything else is a fatal abort (fatal, below).
var (
	// ErrAlreadyFree is returned when pushing a chunk that is already
	// on a free list.
	ErrAlreadyFree = errors.New("rcarena: chunk is already on its free list")

	// ErrIsCurrent is returned when pushing the chunk currently
	// serving allocations for its chunk list.
	ErrIsCurrent = errors.New("rcarena: chunk is the current chunk of its list")
)

// HasReferencesError is returned when pushing a chunk that still has
// live handles referencing it.
type HasReferencesError struct {
	N uint64
}

func (e *HasReferencesError) Error() string {
	return fmt.Sprintf("rcarena: chunk has %d live references", e.N)
}

// Is allows errors.Is(err, &HasReferencesError{}) to match any
// HasReferencesError regardless of N.
func (e *HasReferencesError) Is(target error) bool {
	_, ok := target.(*HasReferencesError)
	return ok
}

// fatal aborts the program for conditions spec §7 classifies as
// undefined-behavior avoidance: refcount overflow/underflow, teardown
// with outstanding references, and layout-math failure. The core types
// never recover from these themselves (spec §7); only the Arena shell
// may observe the panic in flight, e.g. to log it, before it continues
// to propagate.
func fatal(format string, args ...any) {
	panic(pkgerrors.Errorf(format, args...))
}
