// Package region implements manual memory-region allocators that carve
// fixed, caller-owned backing buffers into sub-allocations.
//
// # Overview
//
// Three allocators share one conceptual contract - bounded-buffer
// allocation with deterministic, low-overhead bookkeeping - and differ only
// in how memory is reclaimed:
//
//   - Linear: bump-pointer arena. Frees only as a whole (Reset); the most
//     recent allocation can additionally be resized in place.
//   - Stack: LIFO region. Individual frees are allowed, but only of the
//     most recently allocated live block; out-of-order frees are rejected.
//   - Pool: fixed-size chunks threaded through an intrusive free list.
//     Any chunk can be freed at any time; the most recently freed chunk is
//     handed out first.
//
// The caller supplies the storage (stack array, static buffer, heap block,
// or an off-heap mapping) and keeps owning it; no allocator ever grows or
// frees its backing buffer.
//
// # Basic Usage
//
//	backing := make([]byte, 1<<16)
//	a := region.NewLinear(backing)
//
//	buf, err := a.Alloc(1024)        // raw bytes, zeroed
//	p, err := region.New[MyStruct](a) // typed, aligned for MyStruct
//
//	a.Reset() // O(1) bulk reclaim for reuse
//
// # Failure Model
//
// Running out of capacity is the one recoverable failure: allocation
// returns (nil, ErrOutOfMemory) and the allocator is left unchanged.
// Everything else - a block from a foreign buffer, an out-of-order stack
// free, a non-power-of-two alignment, an impossible pool configuration -
// is caller misuse and panics with the corresponding exported error value.
//
// # Performance Characteristics
//
//   - Allocation and free: O(1)
//   - Linear Reset and stack FreeAll: O(1)
//   - Relocating resize: O(copied bytes)
//   - Pool FreeAll: O(number of chunks)
//
// # Important Notes
//
//   - Returned blocks alias the backing buffer and become invalid after the
//     corresponding Reset/FreeAll, and after any operation that orphans or
//     relocates them.
//   - Allocated memory is always zero-filled before it is returned.
//   - No allocator is goroutine-safe; concurrent access needs external
//     mutual exclusion.
//   - A pool double free is not detected and corrupts the free list.
//
// # Metrics
//
// Each allocator exposes a cheap statistics snapshot:
//
//	m := a.Metrics()
//	fmt.Printf("in use: %d of %d bytes\n", m.SizeInUse, m.Capacity)
package region
