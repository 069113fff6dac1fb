package alloc

// CloneFunc produces an independent copy of v.
type CloneFunc[T any] func(v T) (T, error)

// Cloning makes Construct deep-copy its argument through a CloneFunc, giving
// element types that share state through pointers (maps, slices) real copy
// semantics. A clone error fails the Construct.
type Cloning[T any] struct {
	Strategy[T]
	clone CloneFunc[T]
}

// NewCloning wraps inner so every constructed element is clone(v).
func NewCloning[T any](inner Strategy[T], clone CloneFunc[T]) *Cloning[T] {
	return &Cloning[T]{Strategy: inner, clone: clone}
}

func (c *Cloning[T]) Construct(slot *T, v T) error {
	cp, err := c.clone(v)
	if err != nil {
		return err
	}
	return c.Strategy.Construct(slot, cp)
}
