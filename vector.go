package vector

import (
	"fmt"
	"iter"

	"github.com/pavanmanishd/vector/alloc"
)

const maxInt = int(^uint(0) >> 1)

// Vector is a contiguous, growable sequence of T whose storage is managed by
// an alloc.Strategy.
//
// Slots [0, Len()) of the buffer hold live elements; slots [Len(), Cap())
// are raw. Capacity only grows, and only through Reserve or an operation that
// needs room. The zero value is an empty vector using alloc.Heap.
//
// A Vector has a single owner and is not safe for concurrent use.
type Vector[T any] struct {
	buf   []T // len(buf) is the capacity; nil when capacity is 0
	size  int
	alloc alloc.Strategy[T]
	gen   uint64 // bumped whenever buf is replaced; stamps cursors
}

// Option configures a Vector.
type Option[T any] func(*Vector[T])

// WithStrategy sets the allocation strategy. A nil strategy is ignored.
func WithStrategy[T any](s alloc.Strategy[T]) Option[T] {
	return func(v *Vector[T]) {
		if s != nil {
			v.alloc = s
		}
	}
}

// New returns an empty vector with no storage.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// NewFilled returns a vector holding count copies of value. Its capacity is
// count when count < 4 and 2*count otherwise.
func NewFilled[T any](count int, value T, opts ...Option[T]) (*Vector[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}
	v := New(opts...)
	if count == 0 {
		return v, nil
	}
	capacity := count
	if count >= 4 {
		if count > maxInt/2 {
			return nil, fmt.Errorf("%w: fill of %d elements", ErrOutOfMemory, count)
		}
		capacity = count * 2
	}
	buf, err := v.strategy().Allocate(capacity)
	if err != nil {
		return nil, err
	}
	if err := v.constructAll(buf[:count], func(int) T { return value }); err != nil {
		v.alloc.Deallocate(buf)
		return nil, err
	}
	v.buf, v.size = buf, count
	return v, nil
}

// Clone returns an independent copy of v sharing v's strategy. The copy has
// the same capacity as v, even when v holds no elements; only a vector with
// no storage clones to one without storage. If any element fails to
// construct, nothing is allocated and the error is returned.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{alloc: v.strategy()}
	if len(v.buf) == 0 {
		return c, nil
	}
	buf, err := c.alloc.Allocate(len(v.buf))
	if err != nil {
		return nil, err
	}
	if err := c.constructAll(buf[:v.size], func(i int) T { return v.buf[i] }); err != nil {
		c.alloc.Deallocate(buf)
		return nil, err
	}
	c.buf, c.size = buf, v.size
	return c, nil
}

// Move transfers v's buffer, elements and strategy to a new vector in O(1).
// v is left empty with no storage and keeps its strategy.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{buf: v.buf, size: v.size, alloc: v.alloc}
	v.buf, v.size = nil, 0
	v.gen++
	return m
}

// AssignCopy replaces v's contents, capacity and strategy with a copy of
// other's. The copy is built before v is released, so on error v is
// unchanged.
func (v *Vector[T]) AssignCopy(other *Vector[T]) error {
	if v == other {
		return nil
	}
	c, err := other.Clone()
	if err != nil {
		return err
	}
	v.Release()
	v.buf, v.size, v.alloc = c.buf, c.size, c.alloc
	v.gen++
	return nil
}

// AssignMove releases v and takes over other's buffer, elements and strategy.
// other is left empty with no storage.
func (v *Vector[T]) AssignMove(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	v.buf, v.size, v.alloc = other.buf, other.size, other.strategy()
	other.buf, other.size = nil, 0
	v.gen++
	other.gen++
}

// Release destroys every element and returns the buffer to the strategy,
// leaving an empty vector with no storage. The vector stays usable.
func (v *Vector[T]) Release() {
	v.Clear()
	if v.buf != nil {
		v.alloc.Deallocate(v.buf)
		v.buf = nil
		v.gen++
	}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots backed by storage.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// IsEmpty reports whether Len() == 0.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Data returns the live elements. The slice aliases the buffer and is
// invalidated by any operation that reallocates or shifts elements.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// Strategy returns the allocation strategy.
func (v *Vector[T]) Strategy() alloc.Strategy[T] {
	return v.strategy()
}

// At returns element i. It panics if i is not in [0, Len()).
func (v *Vector[T]) At(i int) T {
	return v.buf[:v.size][i]
}

// Ref returns a pointer to element i, valid until the next reallocation or
// shift. It panics if i is not in [0, Len()).
func (v *Vector[T]) Ref(i int) *T {
	return &v.buf[:v.size][i]
}

// Set overwrites element i. It panics if i is not in [0, Len()).
func (v *Vector[T]) Set(i int, x T) {
	v.buf[:v.size][i] = x
}

// Front returns the first element, or ErrEmpty.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.buf[0], nil
}

// Back returns the last element, or ErrEmpty.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.buf[v.size-1], nil
}

// Reserve grows capacity to exactly n if n exceeds it; otherwise it does
// nothing. Live elements are moved into the new buffer before the old one is
// deallocated. If allocation fails v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	buf, err := v.strategy().Allocate(n)
	if err != nil {
		return err
	}
	s := v.alloc
	for i := 0; i < v.size; i++ {
		s.Move(&buf[i], &v.buf[i])
	}
	if v.buf != nil {
		s.Deallocate(v.buf)
	}
	v.buf = buf
	v.gen++
	return nil
}

// PushBack appends x, doubling capacity (starting at 1) when full.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.makeRoom(); err != nil {
		return err
	}
	if err := v.alloc.Construct(&v.buf[v.size], x); err != nil {
		return elementErr(err)
	}
	v.size++
	return nil
}

// EmplaceBack appends the element produced by newElem. If newElem fails
// nothing is allocated and v is unchanged.
func (v *Vector[T]) EmplaceBack(newElem func() (T, error)) error {
	x, err := newElem()
	if err != nil {
		return elementErr(err)
	}
	return v.PushBack(x)
}

// PopBack destroys the last element, or returns ErrEmpty.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return ErrEmpty
	}
	v.size--
	v.alloc.Destroy(&v.buf[v.size])
	return nil
}

// InsertAt inserts x before element i, shifting [i, Len()) up by one.
// i == Len() appends. On failure the elements are unchanged, although
// capacity may have grown.
func (v *Vector[T]) InsertAt(i int, x T) error {
	if i < 0 || i > v.size {
		return fmt.Errorf("%w: insert at %d, len %d", ErrOutOfRange, i, v.size)
	}
	if err := v.makeRoom(); err != nil {
		return err
	}
	s := v.alloc
	for j := v.size; j > i; j-- {
		s.Move(&v.buf[j], &v.buf[j-1])
	}
	if err := s.Construct(&v.buf[i], x); err != nil {
		v.closeGap(i, 1, v.size+1)
		return elementErr(err)
	}
	v.size++
	return nil
}

// EmplaceAt inserts the element produced by newElem before pos and returns a
// cursor to it. pos may be End(). The cursor is valid until the next
// reallocation or shift.
func (v *Vector[T]) EmplaceAt(pos Position[T], newElem func() (T, error)) (Cursor[T], error) {
	i, err := v.locate(pos, true)
	if err != nil {
		return Cursor[T]{}, err
	}
	x, err := newElem()
	if err != nil {
		return Cursor[T]{}, elementErr(err)
	}
	if err := v.InsertAt(i, x); err != nil {
		return Cursor[T]{}, err
	}
	return v.cursorAt(i), nil
}

// Erase destroys the element at pos and shifts the following elements down.
func (v *Vector[T]) Erase(pos Position[T]) error {
	i, err := v.locate(pos, false)
	if err != nil {
		return err
	}
	v.alloc.Destroy(&v.buf[i])
	v.closeGap(i, 1, v.size)
	v.size--
	return nil
}

// EraseRange destroys the elements in [first, last) and shifts the following
// elements down to close the gap.
func (v *Vector[T]) EraseRange(first, last Position[T]) error {
	lo, err := v.locate(first, true)
	if err != nil {
		return err
	}
	hi, err := v.locate(last, true)
	if err != nil {
		return err
	}
	if lo > hi {
		return fmt.Errorf("%w: erase range [%d, %d)", ErrOutOfRange, lo, hi)
	}
	n := hi - lo
	if n == 0 {
		return nil
	}
	for i := lo; i < hi; i++ {
		v.alloc.Destroy(&v.buf[i])
	}
	v.closeGap(lo, n, v.size)
	v.size -= n
	return nil
}

// AssignCount replaces the contents with count copies of x, growing to
// exactly count if capacity is short. If a construction fails the vector
// keeps the copies built so far.
func (v *Vector[T]) AssignCount(count int, x T) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}
	v.Clear()
	if err := v.Reserve(count); err != nil {
		return err
	}
	for v.size < count {
		if err := v.alloc.Construct(&v.buf[v.size], x); err != nil {
			return elementErr(err)
		}
		v.size++
	}
	return nil
}

// Clear destroys every element. Capacity and buffer are kept.
func (v *Vector[T]) Clear() {
	if v.size == 0 {
		return
	}
	for i := 0; i < v.size; i++ {
		v.alloc.Destroy(&v.buf[i])
	}
	v.size = 0
}

// Swap exchanges the buffers, lengths and strategies of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.gen++
	other.gen++
	v.size, other.size = other.size, v.size
	v.alloc, other.alloc = other.alloc, v.alloc
}

// All yields index/element pairs from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values yields elements from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// String formats the elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}

func (v *Vector[T]) strategy() alloc.Strategy[T] {
	if v.alloc == nil {
		v.alloc = alloc.Heap[T]{}
	}
	return v.alloc
}

// makeRoom doubles capacity (or sets it to 1) when the buffer is full.
func (v *Vector[T]) makeRoom() error {
	v.strategy()
	if v.size < len(v.buf) {
		return nil
	}
	c := len(v.buf)
	if c == 0 {
		return v.Reserve(1)
	}
	if c > maxInt/2 {
		return fmt.Errorf("%w: cannot double capacity %d", ErrOutOfMemory, c)
	}
	return v.Reserve(c * 2)
}

// closeGap moves the live elements in [at+n, end) down by n. Slots
// [at, at+n) must be raw.
func (v *Vector[T]) closeGap(at, n, end int) {
	for j := at + n; j < end; j++ {
		v.alloc.Move(&v.buf[j-n], &v.buf[j])
	}
}

// constructAll constructs dst[i] from value(i) for every i. On failure it
// destroys what it built, leaving dst raw.
func (v *Vector[T]) constructAll(dst []T, value func(i int) T) error {
	s := v.strategy()
	for i := range dst {
		if err := s.Construct(&dst[i], value(i)); err != nil {
			for j := i - 1; j >= 0; j-- {
				s.Destroy(&dst[j])
			}
			return elementErr(err)
		}
	}
	return nil
}
