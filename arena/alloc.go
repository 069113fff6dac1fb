package arena

import "unsafe"

// Allocator is the byte-level surface shared by Arena and SafeArena.
type Allocator interface {
	Alloc(size, align int) ([]byte, error)
}

// Slice allocates n zeroed elements of T from a, aligned for T.
// Zeroing matters because arena bytes are recycled across Reset.
// Returns nil, nil if n <= 0.
func Slice[T any](a Allocator, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, n), nil
	}
	if n > maxInt/elemSize {
		return nil, ErrExhausted
	}
	b, err := a.Alloc(elemSize*n, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}
