//go:build unix

package mmbuf

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sliceAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func TestAllocReturnsPageAlignedZeroedBuffer(t *testing.T) {
	const size = 12345 // deliberately not a page multiple

	b, err := Alloc(size)
	require.NoError(t, err)
	defer func() { require.NoError(t, Free(b)) }()

	require.Len(t, b, size)

	pageSize := uintptr(os.Getpagesize())
	addr := sliceAddr(b)
	assert.Zero(t, addr%pageSize, "mapping should start on a page boundary")

	for i := range b {
		if b[i] != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, b[i])
		}
	}

	// The mapping must be writable.
	b[0] = 0xAB
	b[size-1] = 0xCD
	assert.Equal(t, byte(0xAB), b[0])
	assert.Equal(t, byte(0xCD), b[size-1])
}

func TestAllocRejectsNonPositiveSizes(t *testing.T) {
	for _, size := range []int{0, -1} {
		b, err := Alloc(size)
		assert.Error(t, err, "size %d", size)
		assert.Nil(t, b)
	}
}

func TestFreeNilAndEmpty(t *testing.T) {
	assert.NoError(t, Free(nil))
	assert.NoError(t, Free([]byte{}))
}
