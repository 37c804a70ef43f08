package region

import "unsafe"

// bufBase returns the address of the first byte of buf. The address is only
// used for alignment arithmetic and offset recovery while buf is kept alive
// by the owning allocator, so the uintptr round-trip is safe.
func bufBase(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}

// offsetIn recovers the byte offset of block p inside buf. ok is false when
// p does not point into buf.
func offsetIn(buf, p []byte) (int, bool) {
	base := bufBase(buf)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	if addr < base || addr >= base+uintptr(len(buf)) {
		return 0, false
	}
	return int(addr - base), true
}
