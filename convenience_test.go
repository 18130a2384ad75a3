package rcarena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocSliceCopyPreservesContents(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	source := []int{1, 2, 3, 4, 5}
	s := AllocSliceCopy(a, source)
	defer s.Drop()

	assert.Equal(t, source, s.Get())
}

func TestAllocSliceCopyIsIndependentOfSource(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	source := []int{1, 2, 3}
	s := AllocSliceCopy(a, source)
	defer s.Drop()

	source[0] = 99
	assert.Equal(t, 1, s.Get()[0], "the arena's copy must not alias the caller's backing array")
}

func TestAllocSliceFillWith(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	s := AllocSliceFillWith(a, 4, func(i int) int { return i * i })
	defer s.Drop()

	assert.Equal(t, []int{0, 1, 4, 9}, s.Get())
}

func TestAllocSliceFillDefaultIsZeroed(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	s := AllocSliceFillDefault[int](a, 3)
	defer s.Drop()

	assert.Equal(t, []int{0, 0, 0}, s.Get())
}

func TestAllocSliceZeroLengthIsInert(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	s := AllocSliceFillDefault[int](a, 0)
	assert.Nil(t, s.Get())
	assert.NotPanics(t, func() { s.Drop() })
}

func TestAllocStringRoundTrips(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	s := AllocString(a, "hello arena")
	defer s.Drop()

	assert.Equal(t, "hello arena", StringContents(s))
}

func TestOwnedSliceDoubleDropAborts(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	s := AllocSliceCopy(a, []byte("x"))
	s.Drop()
	assert.Panics(t, func() { s.Drop() })
}

func TestAllocSliceCopyReclaimsChunkOnDrop(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	s := AllocSliceCopy(a, []int{1, 2, 3})
	require.Len(t, a.classes, 1)
	s.Drop()

	m := a.Metrics()
	require.Len(t, m.Classes, 1)
	assert.Equal(t, 1, m.Classes[0].NumChunksInUse, "the reclaimed chunk is still current, so it stays off the free list")
}
