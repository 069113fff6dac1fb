package vector

// ReverseCursor walks a vector from back to front. It wraps a base Cursor
// and refers to the element just before it, so RBegin wraps End and REnd
// wraps Begin.
type ReverseCursor[T any] struct {
	base Cursor[T]
}

// Reverse returns a reverse cursor referring to the element before c.
func Reverse[T any](c Cursor[T]) ReverseCursor[T] {
	return ReverseCursor[T]{base: c}
}

// Base returns the wrapped forward cursor.
func (r ReverseCursor[T]) Base() Cursor[T] {
	return r.base
}

// Index returns the index of the referenced element.
func (r ReverseCursor[T]) Index() int {
	return r.base.pos - 1
}

func (r ReverseCursor[T]) Get() T {
	return r.base.buf[r.base.pos-1]
}

func (r ReverseCursor[T]) Set(x T) {
	r.base.buf[r.base.pos-1] = x
}

func (r ReverseCursor[T]) Ptr() *T {
	return &r.base.buf[r.base.pos-1]
}

func (r ReverseCursor[T]) Next() ReverseCursor[T] {
	return r.Advance(1)
}

func (r ReverseCursor[T]) Prev() ReverseCursor[T] {
	return r.Advance(-1)
}

// Advance moves n elements toward the front.
func (r ReverseCursor[T]) Advance(n int) ReverseCursor[T] {
	return ReverseCursor[T]{base: r.base.Advance(-n)}
}

func (r ReverseCursor[T]) Equal(o ReverseCursor[T]) bool {
	return r.base.Equal(o.base)
}

// RBegin returns a reverse cursor to the last element.
func (v *Vector[T]) RBegin() ReverseCursor[T] {
	return Reverse(v.End())
}

// REnd returns a reverse cursor one before the first element.
func (v *Vector[T]) REnd() ReverseCursor[T] {
	return Reverse(v.Begin())
}
