package region

import (
	"encoding/binary"
	"math"
)

// poolLinkSize is the serialized size of a free-list link: the first eight
// bytes of every free chunk hold the little-endian offset of the next free
// chunk, or poolNoChunk when it is the last one.
const poolLinkSize = 8

// poolNoChunk is the end-of-list sentinel stored in a chunk's link word.
const poolNoChunk = math.MaxUint64

// Pool is a fixed-size chunk allocator over a fixed, caller-owned backing
// buffer. The buffer is pre-sliced into equal, aligned chunks; free chunks
// form an intrusive singly linked list threaded through their own first
// bytes. Alloc pops the head, Free pushes, so the most recently freed chunk
// is handed out first. Not goroutine-safe.
//
// Freeing the same chunk twice is not detected: the chunk ends up on the
// free list twice and later Allocs will hand it out twice. This is a
// documented limitation, not a supported failure mode.
type Pool struct {
	buf       []byte
	chunkSize int
	head      int // offset of the first free chunk, -1 when exhausted
	free      int // number of chunks currently on the free list
}

// NewPool creates a pool allocator over backing, carving it into chunks of
// chunkSize bytes aligned to chunkAlign. The buffer's start is aligned
// forward to chunkAlign (shrinking the usable length by the skipped
// prefix) and chunkSize is rounded up to a multiple of chunkAlign.
//
// Panics with ErrChunkTooSmall when the rounded chunk size cannot hold a
// free-list link, and with ErrBufferTooSmall when not even one chunk fits;
// both are configuration errors, not runtime conditions.
func NewPool(backing []byte, chunkSize, chunkAlign int) *Pool {
	if chunkAlign <= 0 || !IsPowerOfTwo(uintptr(chunkAlign)) {
		panic(ErrBadAlignment)
	}

	// Skip the unaligned prefix so every chunk starts chunkAlign-aligned.
	base := bufBase(backing)
	skip := int(AlignForward(base, uintptr(chunkAlign)) - base)
	if skip > len(backing) {
		skip = len(backing)
	}
	buf := backing[skip:]

	chunkSize = AlignForwardSize(chunkSize, chunkAlign)
	if chunkSize < poolLinkSize {
		panic(ErrChunkTooSmall)
	}
	if len(buf) < chunkSize {
		panic(ErrBufferTooSmall)
	}

	p := &Pool{buf: buf, chunkSize: chunkSize, head: -1}
	p.FreeAll()
	return p
}

// Alloc pops a chunk off the free list and returns it zeroed. Returns
// ErrOutOfMemory when every chunk is in use.
func (p *Pool) Alloc() ([]byte, error) {
	if p.head < 0 {
		return nil, ErrOutOfMemory
	}

	off := p.head
	next := binary.LittleEndian.Uint64(p.buf[off : off+poolLinkSize])
	if next == poolNoChunk {
		p.head = -1
	} else {
		p.head = int(next)
	}
	p.free--

	c := p.buf[off : off+p.chunkSize : off+p.chunkSize]
	clear(c)
	return c, nil
}

// Free pushes c back onto the free list. A nil c is a no-op; a block
// outside the backing buffer panics with ErrOutOfBounds. Double frees are
// not detected (see the Pool doc).
func (p *Pool) Free(c []byte) {
	if c == nil {
		return
	}
	off, ok := offsetIn(p.buf, c)
	if !ok {
		panic(ErrOutOfBounds)
	}

	next := uint64(poolNoChunk)
	if p.head >= 0 {
		next = uint64(p.head)
	}
	binary.LittleEndian.PutUint64(p.buf[off:off+poolLinkSize], next)
	p.head = off
	p.free++
}

// FreeAll rebuilds the free list over every whole chunk in the buffer,
// discarding all prior state. O(number of chunks) — the only non-constant
// operation in the package.
func (p *Pool) FreeAll() {
	p.head = -1
	p.free = 0
	count := len(p.buf) / p.chunkSize
	for i := 0; i < count; i++ {
		off := i * p.chunkSize

		next := uint64(poolNoChunk)
		if p.head >= 0 {
			next = uint64(p.head)
		}
		binary.LittleEndian.PutUint64(p.buf[off:off+poolLinkSize], next)
		p.head = off
		p.free++
	}
}

// ChunkSize returns the effective chunk size after alignment rounding.
func (p *Pool) ChunkSize() int {
	return p.chunkSize
}
