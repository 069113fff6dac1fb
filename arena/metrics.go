package arena

// SizeInUse returns the bytes handed out since the last Reset, including
// alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently held.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total bytes across all chunks.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns SizeInUse/Capacity, or 0 for an arena with no chunks.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// MaxBytes returns the byte budget, or 0 when unlimited.
func (a *Arena) MaxBytes() int {
	return a.maxBytes
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.chunkSize,
		MaxBytes:    a.maxBytes,
		Allocations: a.allocs,
		Utilization: a.Utilization(),
	}
}

// Metrics is a point-in-time view of an arena.
type Metrics struct {
	SizeInUse   int     // Bytes handed out since the last Reset
	Capacity    int     // Total chunk bytes
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	MaxBytes    int     // Byte budget, 0 if unlimited
	Allocations int     // Successful Alloc calls over the arena's lifetime
	Utilization float64 // SizeInUse / Capacity
}
