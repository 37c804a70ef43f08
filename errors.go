package region

import "errors"

// Capacity exhaustion is the only recoverable failure: allocators return
// (nil, ErrOutOfMemory) and leave their state untouched. Everything else in
// this file signals caller misuse or invalid configuration and is raised via
// panic with the named value, so it cannot be silently ignored.
var (
	// ErrOutOfMemory indicates the remaining capacity of the backing buffer
	// cannot satisfy the requested size. Returned, never panicked.
	ErrOutOfMemory = errors.New("region: out of memory")

	// ErrOutOfBounds indicates a block passed to Free or Resize does not lie
	// within the allocator's backing buffer (for example, a block from a
	// different allocator). Panicked.
	ErrOutOfBounds = errors.New("region: block outside backing buffer")

	// ErrOrderViolation indicates a stack Free or in-place Resize of a block
	// that is not the most recently allocated live block. Panicked.
	ErrOrderViolation = errors.New("region: out of order stack free")

	// ErrBadAlignment indicates an alignment that is not a power of two.
	// Panicked.
	ErrBadAlignment = errors.New("region: alignment must be a power of two")

	// ErrChunkTooSmall indicates a pool chunk size too small to hold a
	// free-list link. Panicked from NewPool.
	ErrChunkTooSmall = errors.New("region: chunk size too small for free list link")

	// ErrBufferTooSmall indicates a backing buffer that cannot fit even one
	// aligned chunk. Panicked from NewPool.
	ErrBufferTooSmall = errors.New("region: backing buffer smaller than one chunk")
)
