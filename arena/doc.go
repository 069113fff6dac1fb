// Package arena implements a chunked bump allocator (memory arena) that hands
// out aligned byte regions.
//
// # Overview
//
// An arena reserves memory in large chunks and carves allocations out of them
// sequentially. Individual regions are never freed; the whole arena is
// recycled with Reset or dropped with Release. In this module it backs
// alloc.Arena, so that many vector buffers come from a few chunks and are all
// reclaimed at once.
//
// # Basic Usage
//
//	a := arena.NewArena(0, arena.WithMaxBytes(1<<20))
//	defer a.Release()
//
//	buf, err := a.Alloc(1024, 8)
//	ints, err := arena.Slice[int64](a, 100)
//
//	a.Reset() // every region handed out so far is now invalid
//
// # Byte Budget
//
// WithMaxBytes caps the total chunk memory. An allocation that cannot fit in
// the remaining budget returns ErrExhausted and leaves the arena unchanged,
// which lets callers observe allocation failure deterministically.
//
// # Thread Safety
//
// Arena is not safe for concurrent use. SafeArena wraps one with a mutex.
//
// # Important Notes
//
//   - Arena memory is not scanned by the garbage collector. Only store values
//     that contain no Go pointers.
//   - Regions are only valid until the next Reset or Release.
//   - Alloc after Release returns ErrReleased; Reset after Release panics.
package arena
