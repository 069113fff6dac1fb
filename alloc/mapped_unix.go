//go:build linux || darwin || freebsd || netbsd || openbsd

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mapped gives every buffer its own anonymous private memory mapping.
// Deallocate unmaps it, so released storage goes straight back to the
// operating system. Only pointer-free element types are accepted.
type Mapped[T any] struct {
	Slots[T]
	mappedBytes int
}

// NewMapped returns a mapping-backed strategy, or ErrPointerElem when T can
// hold Go pointers.
func NewMapped[T any]() (*Mapped[T], error) {
	if err := requirePointerFree[T](); err != nil {
		return nil, err
	}
	return &Mapped[T]{}, nil
}

// Allocate maps n zeroed slots.
func (m *Mapped[T]) Allocate(n int) ([]T, error) {
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
	b, err := unix.Mmap(-1, 0, n*size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrOutOfMemory, n*size, err)
	}
	m.mappedBytes += len(b)
	return slotsOf[T](b, n), nil
}

// Deallocate unmaps buf. Unmapping memory this strategy did not map is a
// programming error and panics.
func (m *Mapped[T]) Deallocate(buf []T) {
	if cap(buf) == 0 || elemSize[T]() == 0 {
		return
	}
	b := bytesOf(buf)
	if err := unix.Munmap(b); err != nil {
		panic(fmt.Sprintf("alloc: munmap: %v", err))
	}
	m.mappedBytes -= len(b)
}

// MappedBytes returns the bytes currently mapped by this strategy.
func (m *Mapped[T]) MappedBytes() int {
	return m.mappedBytes
}
