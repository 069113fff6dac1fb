package alloc

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrOutOfMemory indicates a request for raw storage could not be satisfied.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrPointerElem indicates an element type containing Go pointers was
	// given to a strategy whose memory the garbage collector does not scan.
	ErrPointerElem = errors.New("alloc: element type contains pointers")
)

// maxBufferBytes bounds a single buffer. Requests above it fail with
// ErrOutOfMemory instead of reaching the runtime allocator.
const maxBufferBytes uint64 = 1 << 40

// Strategy acquires and releases raw slot storage and moves elements through
// the live/raw lifecycle. A container calls into its Strategy for every
// memory event and never manages slots itself.
//
// Slots returned by Allocate are raw. Construct makes a raw slot live,
// Destroy makes a live slot raw, and Move relocates a live element into a raw
// slot, leaving the source raw. Only Allocate and Construct may fail.
type Strategy[T any] interface {
	// Allocate returns a buffer of exactly n raw slots (len n). It returns
	// nil, nil for n <= 0 and an error wrapping ErrOutOfMemory when the
	// storage cannot be provided.
	Allocate(n int) ([]T, error)

	// Deallocate releases a buffer previously returned by Allocate. Every
	// slot must be raw.
	Deallocate(buf []T)

	// Construct initializes the raw slot from v.
	Construct(slot *T, v T) error

	// Destroy tears down the live element in slot.
	Destroy(slot *T)

	// Move relocates the live element at src into the raw slot dst.
	Move(dst, src *T)
}

// Slots implements the element half of Strategy for plain Go values:
// construction is assignment and a raw slot holds the zero value, so nothing
// it used to reference stays reachable. Embed it in custom strategies.
type Slots[T any] struct{}

// Construct assigns v to slot.
func (Slots[T]) Construct(slot *T, v T) error {
	*slot = v
	return nil
}

// Destroy zeroes slot.
func (Slots[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// Move assigns *src to *dst and zeroes src.
func (Slots[T]) Move(dst, src *T) {
	var zero T
	*dst = *src
	*src = zero
}

// Heap is the default strategy: buffers come from the Go heap and are
// reclaimed by the garbage collector once released. It is stateless.
type Heap[T any] struct {
	Slots[T]
}

// Allocate returns n zeroed slots from the Go heap.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if err := checkSlots[T](n); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Deallocate drops the buffer; the garbage collector reclaims it.
func (Heap[T]) Deallocate([]T) {}

// elemSize returns the size of one T in bytes.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// checkSlots rejects buffers of n elements that exceed maxBufferBytes.
func checkSlots[T any](n int) error {
	size := uint64(elemSize[T]())
	if size != 0 && uint64(n) > maxBufferBytes/size {
		return fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, size)
	}
	return nil
}

// bytesOf views the full backing storage of buf as bytes.
func bytesOf[T any](buf []T) []byte {
	if cap(buf) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(buf))), cap(buf)*elemSize[T]())
}

// slotsOf views b as n elements of T. b must be suitably aligned.
func slotsOf[T any](b []byte, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}
