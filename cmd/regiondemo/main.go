// Command regiondemo drives the three region allocators over small
// mmap-backed buffers and prints the resulting blocks, exercising exactly
// the public allocate/free/resize surface.
package main

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/pavanmanishd/region"
	"github.com/pavanmanishd/region/internal/mmbuf"
)

const backingSize = 4096

func addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func main() {
	backing, err := mmbuf.Alloc(backingSize)
	if err != nil {
		log.Fatalf("backing buffer: %v", err)
	}
	defer mmbuf.Free(backing)

	demoLinear(backing)
	demoStack(backing)
	demoPool(backing)
}

func demoLinear(backing []byte) {
	fmt.Println("== linear allocator ==")
	a := region.NewLinear(backing)

	b1, _ := a.Alloc(64)
	fmt.Printf("alloc 64      -> %#x\n", addr(b1))
	b2, _ := a.AllocAlign(100, 32)
	fmt.Printf("alloc 100/32  -> %#x\n", addr(b2))

	b2, _ = a.Resize(b2, 100, 200)
	fmt.Printf("grow to 200   -> %#x (in place)\n", addr(b2))
	b1, _ = a.Resize(b1, 64, 128)
	fmt.Printf("grow b1 to 128-> %#x (relocated)\n", addr(b1))

	a.Reset()
	fmt.Printf("after reset: %d of %d bytes in use\n\n", a.SizeInUse(), a.Capacity())
}

func demoStack(backing []byte) {
	fmt.Println("== stack allocator ==")
	s := region.NewStack(backing)

	b1, _ := s.Alloc(64)
	b2, _ := s.Alloc(64)
	fmt.Printf("alloc 64      -> %#x\n", addr(b1))
	fmt.Printf("alloc 64      -> %#x\n", addr(b2))

	s.Free(b2)
	b3, _ := s.Alloc(64)
	fmt.Printf("free+alloc    -> %#x (reuses the freed slot)\n", addr(b3))

	s.Free(b3)
	s.Free(b1)
	fmt.Printf("after frees: %d of %d bytes in use\n\n", s.SizeInUse(), s.Capacity())
}

func demoPool(backing []byte) {
	fmt.Println("== pool allocator ==")
	p := region.NewPool(backing, 256, 16)
	fmt.Printf("%d chunks of %d bytes\n", p.TotalChunks(), p.ChunkSize())

	c1, _ := p.Alloc()
	c2, _ := p.Alloc()
	c3, _ := p.Alloc()
	fmt.Printf("alloc         -> %#x %#x %#x\n", addr(c1), addr(c2), addr(c3))

	p.Free(c2)
	c4, _ := p.Alloc()
	fmt.Printf("free c2+alloc -> %#x (most recently freed first)\n", addr(c4))

	p.FreeAll()
	fmt.Printf("after FreeAll: %d free chunks\n", p.FreeChunks())
}
