package vector

import "fmt"

// Position is a location in a vector's buffer, accepted by EmplaceAt, Erase
// and EraseRange. Cursor and ConstCursor implement it.
type Position[T any] interface {
	Index() int
	origin() (*Vector[T], uint64)
}

// cursor is the representation shared by Cursor and ConstCursor: the buffer
// it was taken from, an index into it, and the vector and buffer generation
// that issued it.
type cursor[T any] struct {
	buf   []T
	pos   int
	owner *Vector[T]
	gen   uint64
}

// Index returns the element index the cursor refers to.
func (c cursor[T]) Index() int {
	return c.pos
}

func (c cursor[T]) origin() (*Vector[T], uint64) {
	return c.owner, c.gen
}

func (c cursor[T]) moved(n int) cursor[T] {
	c.pos += n
	return c
}

// Get returns the element under the cursor. It is unchecked beyond the
// buffer's bounds.
func (c cursor[T]) Get() T {
	return c.buf[c.pos]
}

// Sub returns the distance from o to c.
func (c cursor[T]) Sub(o Position[T]) int {
	return c.pos - o.Index()
}

// Equal reports whether c and o refer to the same slot of the same buffer.
func (c cursor[T]) Equal(o Position[T]) bool {
	owner, gen := o.origin()
	return c.owner == owner && c.gen == gen && c.pos == o.Index()
}

// Less reports whether c precedes o.
func (c cursor[T]) Less(o Position[T]) bool {
	return c.pos < o.Index()
}

// Cursor is a random-access position in a vector that can read and write
// elements. It is invalidated by any reallocation, and positions at or after
// an insert or erase are invalidated by the shift.
type Cursor[T any] struct {
	cursor[T]
}

// Set overwrites the element under the cursor.
func (c Cursor[T]) Set(x T) {
	c.buf[c.pos] = x
}

// Ptr returns a pointer to the element under the cursor.
func (c Cursor[T]) Ptr() *T {
	return &c.buf[c.pos]
}

func (c Cursor[T]) Next() Cursor[T] {
	return c.Advance(1)
}

func (c Cursor[T]) Prev() Cursor[T] {
	return c.Advance(-1)
}

func (c Cursor[T]) Advance(n int) Cursor[T] {
	return Cursor[T]{c.moved(n)}
}

func (c Cursor[T]) Const() ConstCursor[T] {
	return ConstCursor[T](c)
}

func (c Cursor[T]) String() string {
	return fmt.Sprintf("cursor(%d)", c.pos)
}

// ConstCursor is a read-only Cursor.
type ConstCursor[T any] struct {
	cursor[T]
}

func (c ConstCursor[T]) Next() ConstCursor[T] {
	return c.Advance(1)
}

func (c ConstCursor[T]) Prev() ConstCursor[T] {
	return c.Advance(-1)
}

func (c ConstCursor[T]) Advance(n int) ConstCursor[T] {
	return ConstCursor[T]{c.moved(n)}
}

// Begin returns a cursor to the first element.
func (v *Vector[T]) Begin() Cursor[T] {
	return v.cursorAt(0)
}

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] {
	return v.cursorAt(v.size)
}

func (v *Vector[T]) CBegin() ConstCursor[T] {
	return v.Begin().Const()
}

func (v *Vector[T]) CEnd() ConstCursor[T] {
	return v.End().Const()
}

func (v *Vector[T]) cursorAt(i int) Cursor[T] {
	return Cursor[T]{cursor[T]{buf: v.buf, pos: i, owner: v, gen: v.gen}}
}

// locate validates that p was issued by v for its current buffer and returns
// its index. allowEnd admits Len() as a position.
func (v *Vector[T]) locate(p Position[T], allowEnd bool) (int, error) {
	if p == nil {
		return 0, fmt.Errorf("%w: nil cursor", ErrOutOfRange)
	}
	owner, gen := p.origin()
	if owner != v {
		return 0, fmt.Errorf("%w: cursor does not refer to this vector", ErrOutOfRange)
	}
	if gen != v.gen {
		return 0, fmt.Errorf("%w: cursor predates a reallocation", ErrOutOfRange)
	}
	i, hi := p.Index(), v.size
	if !allowEnd {
		hi--
	}
	if i < 0 || i > hi {
		return 0, fmt.Errorf("%w: cursor at %d, len %d", ErrOutOfRange, i, v.size)
	}
	return i, nil
}
