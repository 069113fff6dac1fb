package alloc

import (
	"fmt"

	"modernc.org/memory"
)

// OffHeap keeps buffers outside the Go heap, in memory obtained through
// modernc.org/memory's mmap-backed allocator. Buffers are invisible to the
// garbage collector, so only pointer-free element types are accepted, and the
// strategy must be closed once every container using it has been released.
type OffHeap[T any] struct {
	Slots[T]
	mem memory.Allocator
}

// NewOffHeap returns an off-heap strategy, or ErrPointerElem when T can hold
// Go pointers.
func NewOffHeap[T any]() (*OffHeap[T], error) {
	if err := requirePointerFree[T](); err != nil {
		return nil, err
	}
	return &OffHeap[T]{}, nil
}

// Allocate returns n zeroed slots of off-heap memory.
func (o *OffHeap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if err := checkSlots[T](n); err != nil {
		return nil, err
	}
	size := elemSize[T]()
	if size == 0 {
		return make([]T, n), nil
	}
	b, err := o.mem.Calloc(n * size)
	if err != nil {
		return nil, fmt.Errorf("%w: calloc %d bytes: %w", ErrOutOfMemory, n*size, err)
	}
	return slotsOf[T](b, n), nil
}

// Deallocate frees buf. Freeing memory this strategy did not hand out is a
// programming error and panics.
func (o *OffHeap[T]) Deallocate(buf []T) {
	if cap(buf) == 0 || elemSize[T]() == 0 {
		return
	}
	if err := o.mem.Free(bytesOf(buf)); err != nil {
		panic(fmt.Sprintf("alloc: off-heap free: %v", err))
	}
}

// Close returns all memory held by the allocator to the operating system.
// Buffers still in use become invalid.
func (o *OffHeap[T]) Close() error {
	return o.mem.Close()
}
