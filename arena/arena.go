package arena

import (
	"errors"
	"unsafe"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

var (
	// ErrReleased is returned when allocating from an arena after Release.
	ErrReleased = errors.New("arena: use after Release()")

	// ErrExhausted is returned when an allocation would push the arena past
	// the byte budget set with WithMaxBytes.
	ErrExhausted = errors.New("arena: byte budget exhausted")

	// ErrBadAlign is returned for an alignment that is not a power of two.
	ErrBadAlign = errors.New("arena: alignment must be a power of two")
)

// chunk is one contiguous backing region. offset is the first free byte.
type chunk struct {
	buf    []byte
	offset uintptr
}

// Arena is a chunked bump allocator. Not goroutine-safe; use SafeArena when
// several owners share one arena.
type Arena struct {
	chunks    []chunk
	current   int
	chunkSize int
	maxBytes  int
	allocs    int
}

// Option configures an Arena.
type Option func(*Arena)

// WithMaxBytes caps the total bytes of chunk memory the arena may hold.
// Zero or negative means unlimited.
func WithMaxBytes(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.maxBytes = n
		}
	}
}

// NewArena creates an Arena whose chunks are chunkSize bytes.
// If chunkSize <= 0, DefaultChunkSize is used. The first chunk is allocated
// eagerly unless it alone would exceed the byte budget.
func NewArena(chunkSize int, opts ...Option) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	first := chunkSize
	if a.maxBytes > 0 && first > a.maxBytes {
		first = a.maxBytes
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, first)})
	return a
}

// Alloc returns size bytes whose first byte is aligned to align.
// The bytes may hold data from before the last Reset; callers that need
// zeroed memory clear it themselves. Returns nil, nil if size <= 0.
func (a *Arena) Alloc(size, align int) ([]byte, error) {
	if a.chunks == nil {
		return nil, ErrReleased
	}
	if size <= 0 {
		return nil, nil
	}
	if align <= 0 {
		align = int(unsafe.Sizeof(uintptr(0)))
	}
	if align&(align-1) != 0 {
		return nil, ErrBadAlign
	}
	if size > maxInt-align {
		return nil, ErrExhausted
	}

	// Walk forward from the current chunk; chunks after it are either fresh
	// or were emptied by Reset.
	for i := a.current; i < len(a.chunks); i++ {
		if b, ok := a.chunks[i].take(size, align); ok {
			a.current = i
			a.allocs++
			return b, nil
		}
	}

	if err := a.grow(size + align - 1); err != nil {
		return nil, err
	}
	a.current = len(a.chunks) - 1
	b, _ := a.chunks[a.current].take(size, align)
	a.allocs++
	return b, nil
}

// EnsureCapacity makes sure a later allocation of n bytes fits without
// growing, adding a chunk now if it would not.
func (a *Arena) EnsureCapacity(n int) error {
	if a.chunks == nil {
		return ErrReleased
	}
	for i := a.current; i < len(a.chunks); i++ {
		c := &a.chunks[i]
		if alignUp(c.offset, ptrAlign)+uintptr(n) <= uintptr(len(c.buf)) {
			return nil
		}
	}
	return a.grow(n)
}

// Reset makes every chunk available again without freeing any of them.
// Slices handed out before Reset must not be used afterwards.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = 0
}

// Release drops all chunks and makes the arena unusable.
func (a *Arena) Release() {
	a.chunks = nil
	a.current = 0
}

// grow appends a chunk of at least need bytes. Under a byte budget the
// chunk shrinks to whatever room is left, and fails if need does not fit.
func (a *Arena) grow(need int) error {
	size := max(a.chunkSize, need)
	if a.maxBytes > 0 {
		room := a.maxBytes - a.Capacity()
		if need > room {
			return ErrExhausted
		}
		size = min(size, room)
	}
	if uint64(size) > maxChunkBytes {
		return ErrExhausted
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	return nil
}

func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic(ErrReleased.Error())
	}
}

// take carves size bytes at align out of the chunk, aligning on the real
// address so element types with stricter alignment than the slice base work.
func (c *chunk) take(size, align int) ([]byte, bool) {
	if len(c.buf) == 0 {
		return nil, false
	}
	base := uintptr(unsafe.Pointer(&c.buf[0]))
	off := alignUp(base+c.offset, uintptr(align)) - base
	end := off + uintptr(size)
	if end > uintptr(len(c.buf)) {
		return nil, false
	}
	c.offset = end
	return c.buf[off:end:end], true
}

const (
	ptrAlign = unsafe.Sizeof(uintptr(0))
	maxInt   = int(^uint(0) >> 1)

	// maxChunkBytes bounds a single chunk well below the runtime's own
	// allocation limit so oversized requests fail with ErrExhausted.
	maxChunkBytes uint64 = 1 << 40
)

// alignUp rounds off up to a multiple of align, which must be a power of two.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}
