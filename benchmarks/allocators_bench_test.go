package benchmarks

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/region"
)

// Benchmarks comparing the three reclamation strategies on the allocation
// patterns they are built for.

func BenchmarkLinearRequestScoped(b *testing.B) {
	a := region.NewLinear(make([]byte, 1<<20))
	for _, allocs := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("allocs-%d", allocs), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < allocs; j++ {
					if _, err := a.Alloc(64); err != nil {
						b.Fatal(err)
					}
				}
				a.Reset()
			}
		})
	}
}

func BenchmarkStackNestedScopes(b *testing.B) {
	s := region.NewStack(make([]byte, 1<<20))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		outer, err := s.Alloc(256)
		if err != nil {
			b.Fatal(err)
		}
		inner, err := s.Alloc(64)
		if err != nil {
			b.Fatal(err)
		}
		s.Free(inner)
		s.Free(outer)
	}
}

func BenchmarkPoolFixedObjects(b *testing.B) {
	p := region.NewPool(make([]byte, 1<<20), 128, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := p.Alloc()
		if err != nil {
			b.Fatal(err)
		}
		p.Free(c)
	}
}

func BenchmarkPoolFreeAll(b *testing.B) {
	p := region.NewPool(make([]byte, 1<<20), 128, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.FreeAll()
	}
}

func BenchmarkTypedAllocation(b *testing.B) {
	type record struct {
		ID      uint64
		Flags   uint32
		Payload [48]byte
	}

	b.Run("region", func(b *testing.B) {
		a := region.NewLinear(make([]byte, 1<<20))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := region.New[record](a); err != nil {
				a.Reset()
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = new(record)
		}
	})
}
