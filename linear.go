package region

// Linear is a bump-pointer arena over a fixed, caller-owned backing buffer.
// Allocation advances an offset; individual blocks are never reclaimed.
// Reset reclaims the whole buffer in O(1). Not goroutine-safe.
type Linear struct {
	buf        []byte
	prevOffset int // start offset of the most recent allocation
	currOffset int // next free byte
}

// NewLinear creates a linear allocator over backing. The buffer stays owned
// by the caller and must outlive the allocator; it is never grown or freed.
func NewLinear(backing []byte) *Linear {
	return &Linear{buf: backing}
}

// Alloc allocates size bytes at DefaultAlignment.
func (a *Linear) Alloc(size int) ([]byte, error) {
	return a.AllocAlign(size, DefaultAlignment)
}

// AllocAlign allocates size bytes aligned to align (a power of two) and
// returns a zeroed view into the backing buffer. Returns ErrOutOfMemory,
// with no state change, when the remaining capacity is insufficient.
// Returns nil for size <= 0.
func (a *Linear) AllocAlign(size, align int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	if align <= 0 || !IsPowerOfTwo(uintptr(align)) {
		panic(ErrBadAlignment)
	}

	// Align the current address forward, then convert back to an offset.
	base := bufBase(a.buf)
	off := int(AlignForward(base+uintptr(a.currOffset), uintptr(align)) - base)
	if off+size > len(a.buf) {
		return nil, ErrOutOfMemory
	}

	a.prevOffset = off
	a.currOffset = off + size

	p := a.buf[off : off+size : off+size]
	clear(p)
	return p, nil
}

// Reset makes the whole buffer available again in O(1). Buffer contents are
// not cleared; every previously returned block becomes invalid.
func (a *Linear) Reset() {
	a.prevOffset = 0
	a.currOffset = 0
}

// Resize resizes old at DefaultAlignment.
func (a *Linear) Resize(old []byte, oldSize, newSize int) ([]byte, error) {
	return a.ResizeAlign(old, oldSize, newSize, DefaultAlignment)
}

// ResizeAlign changes the size of a previously allocated block.
//
// A nil old (or oldSize 0) is plain allocation. If old is the most recent
// allocation the resize happens in place and the same block is returned,
// with any growth zero-filled. Any other block is relocated: a fresh block
// is allocated, min(oldSize, newSize) bytes are copied, and the old block
// stays permanently orphaned — the linear allocator has no way to reclaim
// non-terminal allocations.
//
// Passing a block from outside the backing buffer panics with
// ErrOutOfBounds.
func (a *Linear) ResizeAlign(old []byte, oldSize, newSize, align int) ([]byte, error) {
	if align <= 0 || !IsPowerOfTwo(uintptr(align)) {
		panic(ErrBadAlignment)
	}
	if old == nil || oldSize == 0 {
		return a.AllocAlign(newSize, align)
	}

	off, ok := offsetIn(a.buf, old)
	if !ok {
		panic(ErrOutOfBounds)
	}

	if off == a.prevOffset {
		// Most recent allocation: adjust the bump pointer in place.
		if off+newSize > len(a.buf) {
			return nil, ErrOutOfMemory
		}
		if newSize > oldSize {
			clear(a.buf[off+oldSize : off+newSize])
		}
		a.currOffset = off + newSize
		return a.buf[off : off+newSize : off+newSize], nil
	}

	p, err := a.AllocAlign(newSize, align)
	if err != nil {
		return nil, err
	}
	n := min(oldSize, newSize)
	copy(p[:n], a.buf[off:off+n])
	return p, nil
}
