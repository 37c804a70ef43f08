package region

import "unsafe"

// Allocator is the byte-allocation surface shared by Linear and Stack. The
// typed helpers below work against it. Pool is not an Allocator: it hands
// out fixed-size chunks and takes no size argument.
type Allocator interface {
	AllocAlign(size, align int) ([]byte, error)
}

// New allocates a zeroed T inside a's backing buffer, aligned for T. The
// returned pointer is valid until the allocation is freed or the allocator
// is reset.
func New[T any](a Allocator) (*T, error) {
	var zero T
	b, err := a.AllocAlign(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// NewSlice allocates a zeroed slice of n elements of type T inside a's
// backing buffer, aligned for T. Returns nil for n <= 0.
func NewSlice[T any](a Allocator, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	b, err := a.AllocAlign(n*int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}
