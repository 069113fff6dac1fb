// Package alloc provides the allocation strategies a vector uses for its
// backing storage.
//
// # Overview
//
// A Strategy acquires and releases raw slot buffers and drives each slot
// through its lifecycle:
//
//   - Allocate(n): n raw slots, or an error wrapping ErrOutOfMemory
//   - Construct(slot, v): raw -> live, may fail
//   - Move(dst, src): live src -> live dst, src becomes raw
//   - Destroy(slot): live -> raw
//   - Deallocate(buf): return a buffer whose slots are all raw
//
// # Implementations
//
// Heap: the default. Buffers come from the Go heap. Stateless.
//
// Arena: buffers carved from an arena.Arena or arena.SafeArena. Deallocate is
// a no-op; the arena reclaims everything on Reset.
//
// Pool: power-of-two size classes recycled through sync.Pool.
//
// OffHeap: buffers from modernc.org/memory, outside the Go heap.
//
// Mapped: one anonymous mmap per buffer via golang.org/x/sys/unix.
//
// Arena, OffHeap and Mapped hold memory the garbage collector does not scan,
// so their constructors reject element types that contain pointers with
// ErrPointerElem.
//
// # Decorators
//
// Decorators embed an inner Strategy and override part of it:
//
//	s := alloc.NewCounting[int64](alloc.NewLimited[int64](alloc.Heap[int64]{}, 1024))
//	v := vector.New(vector.WithStrategy[int64](s))
//	...
//	fmt.Println(s.Metrics().Live())
//
// The decorators are:
//
//   - Limited: fails allocations beyond a slot budget
//   - Counting: records allocation and lifecycle counts
//   - Cloning: deep-copies elements on Construct
//   - Logged: logs buffer traffic through log/slog
//
// # Thread Safety
//
// Strategies are owned by a single container, or by several containers on
// one goroutine. Pool and an Arena over arena.SafeArena may be shared across
// goroutines.
package alloc
