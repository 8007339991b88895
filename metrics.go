package dynarray

// VectorMetrics is a snapshot of a vector's occupancy.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Slots in the current buffer
	Utilization   float64 // Size / Capacity, 0 when Capacity is 0
	Reallocations int     // Buffers this vector has switched to
}

// Metrics returns a snapshot of the vector's occupancy.
func (v *Vector[T]) Metrics() VectorMetrics {
	m := VectorMetrics{
		Size:          v.size,
		Capacity:      len(v.buf),
		Reallocations: v.reallocs,
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.Size) / float64(m.Capacity)
	}
	return m
}

// SizeInUse returns the number of bytes handed out since the last Reset,
// including alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks the arena holds.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total size in bytes of all chunks.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns SizeInUse / Capacity, or 0 for an arena without chunks.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Limit:       a.limit,
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently handed out
	Capacity    int     // Total capacity in bytes
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Limit       int     // Byte cap, 0 for none
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Metrics returns a snapshot of the arena statistics under the lock.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
