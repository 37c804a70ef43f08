//go:build unix

package mmbuf

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc returns a zeroed, page-aligned buffer of exactly size bytes backed
// by an anonymous private mapping.
func Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmbuf: invalid buffer size %d", size)
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmbuf: mmap %d bytes: %w", size, err)
	}
	return b, nil
}

// Free unmaps a buffer returned by Alloc. It must be passed the original
// slice. A nil or empty buffer is a no-op, and a double unmap is treated as
// a no-op for callers.
func Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	err := unix.Munmap(b)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}
