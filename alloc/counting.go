package alloc

// Metrics counts the memory and lifecycle events seen by a Counting strategy.
type Metrics struct {
	Allocations    int // Successful Allocate calls
	Deallocations  int // Deallocate calls
	SlotsAllocated int // Slots handed out over the lifetime
	SlotsInUse     int // Slots in buffers not yet deallocated
	Constructs     int // Successful Construct calls
	Destroys       int // Destroy calls
	Moves          int // Move calls
	Failures       int // Failed Allocate or Construct calls
}

// Live returns the number of elements constructed and not yet destroyed.
func (m Metrics) Live() int {
	return m.Constructs - m.Destroys
}

// Counting records every call it forwards to its inner strategy. A container
// that pairs constructs with destroys correctly ends with Live() equal to its
// length, and with Live() == 0 and SlotsInUse == 0 after it is released.
type Counting[T any] struct {
	Strategy[T]
	m Metrics
}

// NewCounting wraps inner.
func NewCounting[T any](inner Strategy[T]) *Counting[T] {
	return &Counting[T]{Strategy: inner}
}

func (c *Counting[T]) Allocate(n int) ([]T, error) {
	buf, err := c.Strategy.Allocate(n)
	if err != nil {
		c.m.Failures++
		return nil, err
	}
	if buf != nil {
		c.m.Allocations++
		c.m.SlotsAllocated += len(buf)
		c.m.SlotsInUse += len(buf)
	}
	return buf, nil
}

func (c *Counting[T]) Deallocate(buf []T) {
	c.m.Deallocations++
	c.m.SlotsInUse -= len(buf)
	c.Strategy.Deallocate(buf)
}

func (c *Counting[T]) Construct(slot *T, v T) error {
	if err := c.Strategy.Construct(slot, v); err != nil {
		c.m.Failures++
		return err
	}
	c.m.Constructs++
	return nil
}

func (c *Counting[T]) Destroy(slot *T) {
	c.m.Destroys++
	c.Strategy.Destroy(slot)
}

func (c *Counting[T]) Move(dst, src *T) {
	c.m.Moves++
	c.Strategy.Move(dst, src)
}

// Metrics returns a snapshot of the counters.
func (c *Counting[T]) Metrics() Metrics {
	return c.m
}

// Reset zeroes the counters.
func (c *Counting[T]) Reset() {
	c.m = Metrics{}
}
