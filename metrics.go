package vector

import "unsafe"

// SizeInUse returns the number of elements currently handed out by the region.
func (r *Region[T]) SizeInUse() int {
	sum := 0
	for _, c := range r.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the region.
func (r *Region[T]) NumChunks() int {
	return len(r.chunks)
}

// Capacity returns the total number of elements across all chunks.
func (r *Region[T]) Capacity() int {
	sum := 0
	for _, c := range r.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of elements in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the region has no capacity.
func (r *Region[T]) Utilization() float64 {
	capacity := r.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(r.SizeInUse()) / float64(capacity)
}

// ChunkElems returns the default chunk length of this region.
func (r *Region[T]) ChunkElems() int {
	return r.chunkElems
}

// Metrics returns a snapshot of region statistics.
func (r *Region[T]) Metrics() RegionMetrics {
	var zero T
	return RegionMetrics{
		SizeInUse:   r.SizeInUse(),
		Capacity:    r.Capacity(),
		Bytes:       r.Capacity() * int(unsafe.Sizeof(zero)),
		NumChunks:   r.NumChunks(),
		ChunkElems:  r.ChunkElems(),
		Utilization: r.Utilization(),
	}
}

// RegionMetrics contains statistical information about a region.
type RegionMetrics struct {
	SizeInUse   int     // Elements currently handed out
	Capacity    int     // Total elements across chunks
	Bytes       int     // Capacity in bytes
	NumChunks   int     // Number of chunks
	ChunkElems  int     // Default chunk length
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// InUse returns the number of slots currently held by live handles.
func (p *Pool[T]) InUse() int {
	return p.inUse
}

// Slots returns the number of slots in the pool.
func (p *Pool[T]) Slots() int {
	return len(p.used)
}

// Width returns the number of elements in every slot.
func (p *Pool[T]) Width() int {
	return p.width
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool[T]) Metrics() PoolMetrics {
	m := PoolMetrics{
		Slots: p.Slots(),
		InUse: p.InUse(),
		Width: p.Width(),
	}
	if m.Slots > 0 {
		m.Utilization = float64(m.InUse) / float64(m.Slots)
	}
	return m
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	Slots       int     // Total slots
	InUse       int     // Slots held by live handles
	Width       int     // Elements per slot
	Utilization float64 // Ratio of slots in use (0.0-1.0)
}
