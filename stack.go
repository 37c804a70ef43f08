package region

import "encoding/binary"

// stackHeaderSize is the serialized size of the per-allocation header: two
// little-endian 64-bit words, prev_offset then padding. The header lives in
// the padding bytes immediately before each block's data.
const stackHeaderSize = 16

// maxStackAlign caps the alignment a stack allocation may request. The cap
// is inherited from the original single-byte-padding header layout and kept
// so both header variants stay interchangeable on disk-identical buffers.
const maxStackAlign = 128

// stackHeader records, for one live allocation, how many padding bytes
// precede its data and where the previous allocation's data starts. The
// headers form a backward chain from the top of the stack down to offset 0.
type stackHeader struct {
	prevOffset int
	padding    int
}

// Stack is a LIFO region allocator over a fixed, caller-owned backing
// buffer. Individual blocks may be freed, but only in the reverse order of
// allocation; FreeAll reclaims everything in O(1). Not goroutine-safe.
type Stack struct {
	buf        []byte
	prevOffset int // data start offset of the most recent allocation
	currOffset int // next free byte
}

// NewStack creates a stack allocator over backing. The buffer stays owned
// by the caller and must outlive the allocator.
func NewStack(backing []byte) *Stack {
	return &Stack{buf: backing}
}

// calcPaddingWithHeader computes the padding needed so that addr+padding is
// aligned to align and the header fits entirely inside the padding bytes.
// When the naive aligned padding cannot hold the header, whole multiples of
// align are added until it does.
func calcPaddingWithHeader(addr, align uintptr, headerSize int) int {
	if !IsPowerOfTwo(align) {
		panic(ErrBadAlignment)
	}

	padding := uintptr(0)
	if modulo := addr & (align - 1); modulo != 0 {
		padding = align - modulo
	}

	if padding < uintptr(headerSize) {
		needed := uintptr(headerSize) - padding
		if needed&(align-1) != 0 {
			padding += align * (1 + needed/align)
		} else {
			padding += align * (needed / align)
		}
	}
	return int(padding)
}

// Alloc allocates size bytes at DefaultAlignment.
func (s *Stack) Alloc(size int) ([]byte, error) {
	return s.AllocAlign(size, DefaultAlignment)
}

// AllocAlign allocates size bytes aligned to align (a power of two) and
// returns a zeroed view into the backing buffer. Alignments above 128 are
// clamped to 128. Returns ErrOutOfMemory, with no state change, when the
// padding plus size does not fit. Returns nil for size <= 0.
func (s *Stack) AllocAlign(size, align int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	if align <= 0 || !IsPowerOfTwo(uintptr(align)) {
		panic(ErrBadAlignment)
	}
	if align > maxStackAlign {
		align = maxStackAlign
	}

	curr := bufBase(s.buf) + uintptr(s.currOffset)
	padding := calcPaddingWithHeader(curr, uintptr(align), stackHeaderSize)
	if s.currOffset+padding+size > len(s.buf) {
		return nil, ErrOutOfMemory
	}

	dataOff := s.currOffset + padding
	s.writeHeader(dataOff, stackHeader{prevOffset: s.prevOffset, padding: padding})
	s.prevOffset = dataOff
	s.currOffset = dataOff + size

	p := s.buf[dataOff : dataOff+size : dataOff+size]
	clear(p)
	return p, nil
}

// Free releases p, which must be the most recently allocated live block.
//
// A nil p is a no-op. A block at or above the current top of the stack is
// treated as an already-freed block and ignored (permissive double free).
// Freeing a live block that is not the top panics with ErrOrderViolation,
// leaving the allocator untouched; a block outside the backing buffer
// panics with ErrOutOfBounds.
func (s *Stack) Free(p []byte) {
	if p == nil {
		return
	}
	off, ok := offsetIn(s.buf, p)
	if !ok {
		panic(ErrOutOfBounds)
	}
	if off >= s.currOffset {
		// Beyond the live region: already freed.
		return
	}
	if off != s.prevOffset {
		panic(ErrOrderViolation)
	}

	h := s.readHeader(off)
	s.currOffset = off - h.padding
	s.prevOffset = h.prevOffset
}

// FreeAll releases every allocation in O(1). Buffer contents are not
// cleared; every previously returned block becomes invalid.
func (s *Stack) FreeAll() {
	s.prevOffset = 0
	s.currOffset = 0
}

// Resize resizes p at DefaultAlignment.
func (s *Stack) Resize(p []byte, oldSize, newSize int) ([]byte, error) {
	return s.ResizeAlign(p, oldSize, newSize, DefaultAlignment)
}

// ResizeAlign changes the size of a previously allocated block.
//
// A nil p is plain allocation and newSize 0 frees p and returns nil. The
// top-of-stack block is resized in place (growth zero-filled, padding and
// header untouched). Any other live block is relocated onto the top with
// min(oldSize, newSize) bytes copied, orphaning the old block, consistent
// with the LIFO-only free discipline. A block at or above the current top
// is stale and yields nil. A block outside the backing buffer panics with
// ErrOutOfBounds.
func (s *Stack) ResizeAlign(p []byte, oldSize, newSize, align int) ([]byte, error) {
	if align <= 0 || !IsPowerOfTwo(uintptr(align)) {
		panic(ErrBadAlignment)
	}
	if p == nil {
		return s.AllocAlign(newSize, align)
	}
	if newSize == 0 {
		s.Free(p)
		return nil, nil
	}

	off, ok := offsetIn(s.buf, p)
	if !ok {
		panic(ErrOutOfBounds)
	}
	if off >= s.currOffset {
		// Stale block, same as a double free.
		return nil, nil
	}

	if off == s.prevOffset {
		// Top of stack: adjust in place. The padding in front of the data is
		// unchanged, so the header needs no rewrite.
		if oldSize == newSize {
			return p, nil
		}
		if off+newSize > len(s.buf) {
			return nil, ErrOutOfMemory
		}
		if newSize > oldSize {
			clear(s.buf[off+oldSize : off+newSize])
		}
		s.currOffset = off + newSize
		return s.buf[off : off+newSize : off+newSize], nil
	}

	if oldSize == newSize {
		return p, nil
	}
	np, err := s.AllocAlign(newSize, align)
	if err != nil {
		return nil, err
	}
	n := min(oldSize, newSize)
	copy(np[:n], s.buf[off:off+n])
	return np, nil
}

// writeHeader serializes h into the padding bytes directly before dataOff.
func (s *Stack) writeHeader(dataOff int, h stackHeader) {
	b := s.buf[dataOff-stackHeaderSize : dataOff]
	binary.LittleEndian.PutUint64(b[0:8], uint64(h.prevOffset))
	binary.LittleEndian.PutUint64(b[8:16], uint64(h.padding))
}

// readHeader deserializes the header stored directly before dataOff.
func (s *Stack) readHeader(dataOff int) stackHeader {
	b := s.buf[dataOff-stackHeaderSize : dataOff]
	return stackHeader{
		prevOffset: int(binary.LittleEndian.Uint64(b[0:8])),
		padding:    int(binary.LittleEndian.Uint64(b[8:16])),
	}
}
