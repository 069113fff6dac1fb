package vector

import (
	"errors"
	"fmt"

	"github.com/pavanmanishd/vector/alloc"
)

var (
	// ErrOutOfRange indicates an index, count or cursor outside the valid
	// bounds of an insert, erase or fill.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates PopBack, Front or Back on a vector with no elements.
	ErrEmpty = errors.New("vector: empty container")

	// ErrElement indicates that constructing an element failed. The
	// underlying cause is wrapped alongside it.
	ErrElement = errors.New("vector: element construction failed")

	// ErrOutOfMemory indicates the strategy could not provide storage.
	ErrOutOfMemory = alloc.ErrOutOfMemory
)

func elementErr(err error) error {
	return fmt.Errorf("%w: %w", ErrElement, err)
}
