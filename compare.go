package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold equal elements in the same order.
// Capacity is ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare orders a and b lexicographically, returning -1, 0 or +1. A proper
// prefix sorts first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a custom element comparison.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], cmp func(T, U) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmp)
}
