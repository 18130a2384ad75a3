package rcarena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnedGetAndDrop(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	o := Alloc[int](a)
	*o.Get() = 42
	assert.Equal(t, 42, *o.Get())
	o.Drop()
}

func TestOwnedDoubleDropAborts(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	o := Alloc[int](a)
	o.Drop()
	assert.Panics(t, func() { o.Drop() })
}

func TestOwnedWithCleanupRunsOnDrop(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	ran := false
	o := AllocWithCleanup[int](a, func(v *int) { ran = true })
	o.Drop()
	assert.True(t, ran)
}

func TestOwnedLeakSkipsCleanupAndConsumesHandle(t *testing.T) {
	// No a.Drop(): the leaked reference keeps its chunk's refcount above
	// zero for good, and Arena.Drop aborts on outstanding references.
	a := NewArena()

	ran := false
	o := AllocWithCleanup[int](a, func(v *int) { ran = true })
	p := o.Leak()
	assert.NotNil(t, p)
	assert.False(t, ran)
	assert.Panics(t, func() { o.Drop() })
}

func TestUninitOwnedInitWithTransfersReference(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	u := AllocUninit[int](a)
	o := u.InitWith(7)
	assert.Equal(t, 7, *o.Get())
	assert.Panics(t, func() { u.Drop() }, "uninit handle is consumed once narrowed")
	o.Drop()
}

func TestOwnedIntoUniqueRefTransfersReferenceWithoutIncrement(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	o := Alloc[int](a)
	*o.Get() = 5
	ref := o.IntoUniqueRef()
	assert.Equal(t, 5, *ref.Get())
	assert.Panics(t, func() { o.Drop() }, "consumed Owned handle must not be usable again")
	ref.Drop()
}

func TestOwnedIntoSharedRefAndClone(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	o := Alloc[int](a)
	*o.Get() = 9
	shared := o.IntoSharedRef()
	clone := shared.Clone()

	assert.Equal(t, 9, *shared.Get())
	assert.Equal(t, 9, *clone.Get())

	shared.Drop()
	clone.Drop()
}

func TestSharedRefDoubleDropAborts(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	o := Alloc[int](a)
	shared := o.IntoSharedRef()
	shared.Drop()
	assert.Panics(t, func() { shared.Drop() })
}

func TestUniqueRefIntoOwnedTransfersReference(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	o := Alloc[int](a)
	ref := o.IntoUniqueRef()
	ran := false
	back := ref.IntoOwned(func(v *int) { ran = true })
	assert.Panics(t, func() { ref.Drop() })
	back.Drop()
	assert.True(t, ran)
}

func TestUniqueRefIntoSharedRefTransfersReference(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	o := Alloc[int](a)
	ref := o.IntoUniqueRef()
	shared := ref.IntoSharedRef()
	assert.Panics(t, func() { ref.Drop() })
	shared.Drop()
}

func TestSharedRefCloneDropsIndependently(t *testing.T) {
	a := NewArena()
	defer a.Drop()

	o := Alloc[int](a)
	shared := o.IntoSharedRef()
	clone := shared.Clone()

	shared.Drop()
	assert.NotPanics(t, func() { clone.Drop() }, "sibling clone's drop must be independent")
}
