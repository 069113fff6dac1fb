package alloc

import (
	"errors"
	"fmt"

	"github.com/pavanmanishd/vector/arena"
)

// Arena carves buffers out of an arena. Deallocate is a no-op: storage goes
// back to the arena only on its Reset or Release, which must not happen while
// a container still uses a buffer from it.
//
// Pass an *arena.SafeArena to share one arena between containers owned by
// different goroutines.
type Arena[T any] struct {
	Slots[T]
	src arena.Allocator
}

// NewArena returns an arena-backed strategy. Element types holding Go
// pointers are rejected with ErrPointerElem because arena bytes are not
// scanned by the garbage collector.
func NewArena[T any](src arena.Allocator) (*Arena[T], error) {
	if err := requirePointerFree[T](); err != nil {
		return nil, err
	}
	return &Arena[T]{src: src}, nil
}

// Allocate returns n zeroed slots from the arena. An exhausted arena budget
// is reported as ErrOutOfMemory.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	buf, err := arena.Slice[T](a.src, n)
	if err != nil {
		if errors.Is(err, arena.ErrExhausted) {
			return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		return nil, err
	}
	return buf, nil
}

// Deallocate does nothing; see Arena.
func (a *Arena[T]) Deallocate([]T) {}
