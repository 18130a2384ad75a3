package rcarena_test

import (
	"fmt"
	"testing"

	"github.com/arenalib/rcarena"
)

// BenchmarkSmallAllocations exercises allocate/drop cycles of objects
// that all fit in the smallest size class.
func BenchmarkSmallAllocations(b *testing.B) {
	sizes := []int{8, 16, 32, 64}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Arena_%dB", size), func(b *testing.B) {
			a := rcarena.NewArena()
			defer a.Drop()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				h := rcarena.AllocSliceFillDefault[byte](a, size)
				h.Drop()
			}
		})

		b.Run(fmt.Sprintf("Builtin_%dB", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = make([]byte, size)
			}
		})
	}
}

// BenchmarkMediumAllocations exercises allocations that fill a whole
// chunk of the first, second or third size class (256, 512 and 1024
// bytes).
func BenchmarkMediumAllocations(b *testing.B) {
	sizes := []int{256, 512, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Arena_%dB", size), func(b *testing.B) {
			a := rcarena.NewArena()
			defer a.Drop()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				h := rcarena.AllocSliceFillDefault[byte](a, size)
				h.Drop()
			}
		})

		b.Run(fmt.Sprintf("Builtin_%dB", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = make([]byte, size)
			}
		})
	}
}

// BenchmarkSharedRefCloning measures the cost of the refcount-sharing
// path relative to a fresh allocation.
func BenchmarkSharedRefCloning(b *testing.B) {
	a := rcarena.NewArena()
	defer a.Drop()

	o := rcarena.Alloc[int](a)
	shared := o.IntoSharedRef()
	defer shared.Drop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := shared.Clone()
		c.Drop()
	}
}

// BenchmarkOwnedConversionChain measures the cost of converting an
// Owned handle through UniqueRef into SharedRef.
func BenchmarkOwnedConversionChain(b *testing.B) {
	a := rcarena.NewArena()
	defer a.Drop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o := rcarena.Alloc[int](a)
		shared := o.IntoUniqueRef().IntoSharedRef()
		shared.Drop()
	}
}
