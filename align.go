package region

import "unsafe"

// DefaultAlignment is the alignment used by Alloc and Resize when no
// explicit alignment is given: two machine words, which is sufficient for
// every scalar type and matches what general-purpose allocators hand out.
const DefaultAlignment = 2 * int(unsafe.Sizeof(uintptr(0)))

// IsPowerOfTwo reports whether x is a power of two.
//
// Note that 0 passes this test. That is fine for this package: the check is
// only ever applied to nonzero alignments and nonzero addresses.
func IsPowerOfTwo(x uintptr) bool {
	return x&(x-1) == 0
}

// AlignForward returns the smallest address >= addr that is a multiple of
// align. align must be a power of two; anything else panics with
// ErrBadAlignment.
func AlignForward(addr, align uintptr) uintptr {
	if align == 0 || !IsPowerOfTwo(align) {
		panic(ErrBadAlignment)
	}
	// Fast modulo: align is a power of two.
	modulo := addr & (align - 1)
	if modulo != 0 {
		addr += align - modulo
	}
	return addr
}

// AlignForwardSize is AlignForward over byte counts instead of addresses,
// used for rounding sizes (e.g. pool chunk sizes) up to an alignment.
func AlignForwardSize(size, align int) int {
	if align <= 0 || !IsPowerOfTwo(uintptr(align)) {
		panic(ErrBadAlignment)
	}
	modulo := size & (align - 1)
	if modulo != 0 {
		size += align - modulo
	}
	return size
}
