package rcarena

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeArenaBasicAllocation(t *testing.T) {
	s := NewSafeArena()
	defer s.Drop()

	o := SafeAlloc[int](s)
	*o.Get() = 11
	assert.Equal(t, 11, *o.Get())
	o.Drop()
}

func TestSafeArenaIDMatchesUnderlyingArena(t *testing.T) {
	s := NewSafeArena(WithID("safe-id"))
	defer s.Drop()
	assert.Equal(t, "safe-id", s.ID())
}

func TestSafeArenaConcurrentAllocations(t *testing.T) {
	s := NewSafeArena()

	const goroutines = 32
	var wg sync.WaitGroup
	results := make([]Owned[int], goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o := SafeAlloc[int](s)
			*o.Get() = i
			results[i] = o
		}(i)
	}
	wg.Wait()

	for i, o := range results {
		assert.Equal(t, i, *o.Get())
		o.Drop()
	}

	m := s.Metrics()
	require.NotEmpty(t, m.Classes)
	assert.Equal(t, 1, m.Classes[0].NumChunksInUse, "every handle was dropped, but the chunk that served them is still current and stays off the free list")

	s.Drop()
}

func TestSafeAllocSliceCopy(t *testing.T) {
	s := NewSafeArena()
	defer s.Drop()

	sl := SafeAllocSliceCopy(s, []int{1, 2, 3})
	defer sl.Drop()
	assert.Equal(t, []int{1, 2, 3}, sl.Get())
}

func TestSafeAllocUninit(t *testing.T) {
	s := NewSafeArena()
	defer s.Drop()

	u := SafeAllocUninit[int](s)
	o := u.InitWith(4)
	defer o.Drop()
	assert.Equal(t, 4, *o.Get())
}
