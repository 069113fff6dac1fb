// Package vector implements a generic, contiguous, growable array whose
// storage comes from a pluggable allocation strategy.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	for i := range 10 {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	fmt.Println(v.Len(), v.Cap()) // 10 16
//
// # Growth
//
// A full vector doubles its capacity, starting at 1. NewFilled sizes the
// buffer at count for fewer than four elements and 2*count otherwise.
// Appending a range raises capacity once to max(2*Cap(), n). Capacity never
// shrinks; Release returns the buffer.
//
// # Strategies
//
// Storage and element lifecycle go through an alloc.Strategy:
//
//	a, _ := alloc.NewArena[int64](arena.NewArena(64 * 1024))
//	v := vector.New(vector.WithStrategy[int64](a))
//
// Every Construct is paired with exactly one Destroy, and every Allocate
// with exactly one Deallocate, over the life of the vector.
//
// # Failure Behavior
//
// Reserve, PushBack, EmplaceBack, InsertAt, EmplaceAt, Clone and AssignCopy
// leave the elements unchanged when they fail. AssignCount, AssignRange and
// AppendRange keep the elements built before the failure. Errors wrap
// ErrOutOfMemory, ErrElement, ErrOutOfRange or ErrEmpty.
//
// # Cursors
//
// Cursor, ConstCursor and ReverseCursor are positions over the buffer. They
// are invalidated by reallocation, and insert or erase invalidates those at
// or after the affected position. A cursor records the vector and buffer
// generation it came from, so passing EmplaceAt, Erase or EraseRange a
// cursor from another vector or from before a reallocation, Release, Swap
// or Move returns ErrOutOfRange. A shift within the same buffer is not
// detected.
package vector
