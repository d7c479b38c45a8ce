package arena

// Stats is a snapshot of an arena's bookkeeping.
type Stats struct {
	Allocs   int // allocations ever made
	Chunks   int // number of chunks
	Capacity int // slots reserved across all chunks
}

// Utilization returns the ratio of occupied slots to reserved slots (0.0 to 1.0).
func (s Stats) Utilization() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Allocs) / float64(s.Capacity)
}

// Stats returns a snapshot of the arena's bookkeeping.
func (a *Arena[T]) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Stats{
		Allocs:   a.allocs,
		Chunks:   len(a.chunks),
		Capacity: a.slots,
	}
}
