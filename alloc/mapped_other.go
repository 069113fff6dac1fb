//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package alloc

// Mapped falls back to heap buffers on platforms without anonymous mmap
// support in golang.org/x/sys/unix. It keeps the pointer-free restriction so
// code behaves the same everywhere.
type Mapped[T any] struct {
	Heap[T]
	mappedBytes int
}

// NewMapped returns the fallback strategy, or ErrPointerElem when T can hold
// Go pointers.
func NewMapped[T any]() (*Mapped[T], error) {
	if err := requirePointerFree[T](); err != nil {
		return nil, err
	}
	return &Mapped[T]{}, nil
}

// Allocate returns n zeroed heap slots.
func (m *Mapped[T]) Allocate(n int) ([]T, error) {
	buf, err := m.Heap.Allocate(n)
	if err == nil {
		m.mappedBytes += len(buf) * elemSize[T]()
	}
	return buf, err
}

// Deallocate drops buf.
func (m *Mapped[T]) Deallocate(buf []T) {
	m.mappedBytes -= len(buf) * elemSize[T]()
}

// MappedBytes returns the bytes currently held by this strategy.
func (m *Mapped[T]) MappedBytes() int {
	return m.mappedBytes
}
