package alloc

import "fmt"

// Limited caps the number of slots its inner strategy may have outstanding.
// A request that would exceed the cap fails with ErrOutOfMemory before the
// inner strategy is asked, which makes allocation failure reproducible.
type Limited[T any] struct {
	Strategy[T]
	maxSlots int
	inUse    int
}

// NewLimited wraps inner with a budget of maxSlots outstanding slots.
func NewLimited[T any](inner Strategy[T], maxSlots int) *Limited[T] {
	return &Limited[T]{Strategy: inner, maxSlots: maxSlots}
}

// Allocate forwards to the inner strategy if n slots fit in the budget.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n > l.maxSlots-l.inUse {
		return nil, fmt.Errorf("%w: %d slots requested, %d of %d in use", ErrOutOfMemory, n, l.inUse, l.maxSlots)
	}
	buf, err := l.Strategy.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.inUse += len(buf)
	return buf, nil
}

// Deallocate credits buf back to the budget.
func (l *Limited[T]) Deallocate(buf []T) {
	l.inUse -= len(buf)
	l.Strategy.Deallocate(buf)
}

// InUse returns the slots currently outstanding.
func (l *Limited[T]) InUse() int {
	return l.inUse
}
