//go:build !unix

package mmbuf

import "fmt"

// Alloc returns a zeroed heap buffer of exactly size bytes. Without mmap
// support there is no page-alignment guarantee; region allocators align
// within the buffer themselves, so this only costs a few prefix bytes.
func Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmbuf: invalid buffer size %d", size)
	}
	return make([]byte, size), nil
}

// Free releases a buffer returned by Alloc. On the heap fallback the
// garbage collector does the work; Free only exists to keep call sites
// portable.
func Free(b []byte) error {
	return nil
}
