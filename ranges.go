package vector

import (
	"fmt"
	"iter"
	"slices"
)

// Sized is a finite source of elements with a known length. Vector and
// Slice implement it.
type Sized[T any] interface {
	Len() int
	All() iter.Seq2[int, T]
}

// Slice adapts a Go slice to Sized.
type Slice[T any] []T

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) All() iter.Seq2[int, T] {
	return slices.All(s)
}

// AssignRange replaces the contents with the elements of src.
func (v *Vector[T]) AssignRange(src Sized[T]) error {
	if o, ok := src.(*Vector[T]); ok && o == v {
		return nil
	}
	v.Clear()
	return v.AppendRange(src)
}

// AppendRange appends the elements of src. When src does not fit, capacity
// is raised once to max(2*Cap(), src.Len()), or src.Len() when empty. If a
// construction fails the elements appended so far are kept.
func (v *Vector[T]) AppendRange(src Sized[T]) error {
	n := src.Len()
	if n <= 0 {
		return nil
	}
	if n > len(v.buf) {
		want := n
		if c := len(v.buf); c > 0 {
			if c > maxInt/2 {
				return fmt.Errorf("%w: cannot double capacity %d", ErrOutOfMemory, c)
			}
			want = max(2*c, n)
		}
		if err := v.Reserve(want); err != nil {
			return err
		}
	}
	var err error
	k := 0
	for _, x := range src.All() {
		if k == n {
			break
		}
		if err = v.PushBack(x); err != nil {
			break
		}
		k++
	}
	return err
}

// FromSlice returns a vector holding a copy of s.
func FromSlice[T any](s []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.AppendRange(Slice[T](s)); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// Collect returns a vector holding the values of seq.
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	for x := range seq {
		if err := v.PushBack(x); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}
