package region

// SizeInUse returns the number of backing-buffer bytes currently consumed,
// including alignment padding.
func (a *Linear) SizeInUse() int {
	return a.currOffset
}

// Capacity returns the length of the backing buffer.
func (a *Linear) Capacity() int {
	return len(a.buf)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 for an empty backing buffer.
func (a *Linear) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.currOffset) / float64(len(a.buf))
}

// Metrics returns a snapshot of the allocator's statistics.
func (a *Linear) Metrics() RegionMetrics {
	return RegionMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Utilization: a.Utilization(),
	}
}

// SizeInUse returns the number of backing-buffer bytes currently consumed,
// including alignment padding and allocation headers.
func (s *Stack) SizeInUse() int {
	return s.currOffset
}

// Capacity returns the length of the backing buffer.
func (s *Stack) Capacity() int {
	return len(s.buf)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 for an empty backing buffer.
func (s *Stack) Utilization() float64 {
	if len(s.buf) == 0 {
		return 0
	}
	return float64(s.currOffset) / float64(len(s.buf))
}

// Metrics returns a snapshot of the allocator's statistics.
func (s *Stack) Metrics() RegionMetrics {
	return RegionMetrics{
		SizeInUse:   s.SizeInUse(),
		Capacity:    s.Capacity(),
		Utilization: s.Utilization(),
	}
}

// RegionMetrics contains statistical information about a linear or stack
// allocator.
type RegionMetrics struct {
	SizeInUse   int     // bytes currently consumed, padding included
	Capacity    int     // backing buffer length
	Utilization float64 // SizeInUse / Capacity (0.0-1.0)
}

// TotalChunks returns the number of whole chunks the buffer was carved into.
func (p *Pool) TotalChunks() int {
	return len(p.buf) / p.chunkSize
}

// FreeChunks returns the number of chunks currently on the free list. The
// count is as corruptible as the list itself: a double free inflates it.
func (p *Pool) FreeChunks() int {
	return p.free
}

// Metrics returns a snapshot of the pool's statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		ChunkSize:   p.chunkSize,
		TotalChunks: p.TotalChunks(),
		FreeChunks:  p.FreeChunks(),
	}
}

// PoolMetrics contains statistical information about a pool allocator.
type PoolMetrics struct {
	ChunkSize   int // effective chunk size after alignment rounding
	TotalChunks int // chunks the buffer holds
	FreeChunks  int // chunks currently free
}
