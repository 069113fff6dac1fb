package alloc

import (
	"math/bits"
	"sync"
)

// numClasses is the number of power-of-two size classes Pool recycles.
// Larger buffers bypass the pool.
const numClasses = 32

// Pool recycles buffers through sync.Pool, one pool per power-of-two size
// class. A released buffer can serve any later request in its class, which
// suits containers that are repeatedly built up and torn down.
type Pool[T any] struct {
	Slots[T]
	classes [numClasses]sync.Pool
}

// NewPool returns an empty buffer pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Allocate returns n raw slots. The buffer's capacity is rounded up to the
// size class; its length is exactly n.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if err := checkSlots[T](n); err != nil {
		return nil, err
	}
	k := classOf(n)
	if k >= numClasses {
		return make([]T, n), nil
	}
	if v := p.classes[k].Get(); v != nil {
		buf := *v.(*[]T)
		return buf[:n], nil
	}
	return make([]T, n, 1<<k), nil
}

// Deallocate zeroes buf and returns it to its size class.
func (p *Pool[T]) Deallocate(buf []T) {
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		return
	}
	k := classOf(c)
	if k >= numClasses {
		return
	}
	buf = buf[:c]
	clear(buf)
	p.classes[k].Put(&buf)
}

// classOf returns the smallest k with 1<<k >= n.
func classOf(n int) int {
	return bits.Len(uint(n - 1))
}
