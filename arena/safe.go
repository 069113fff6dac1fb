package arena

import "sync"

// SafeArena guards an Arena with a mutex so that several single-owner
// containers living on different goroutines can draw from one arena.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a mutex-guarded arena. Arguments are as for NewArena.
func NewSafeArena(chunkSize int, opts ...Option) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize, opts...)}
}

// Alloc is Arena.Alloc under the lock.
func (s *SafeArena) Alloc(size, align int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(size, align)
}

// EnsureCapacity is Arena.EnsureCapacity under the lock.
func (s *SafeArena) EnsureCapacity(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.EnsureCapacity(n)
}

// Reset is Arena.Reset under the lock.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release is Arena.Release under the lock.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// SizeInUse is Arena.SizeInUse under the lock.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Metrics is Arena.Metrics under the lock.
func (s *SafeArena) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
