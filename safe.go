package vector

import (
	"sync"
)

// SafePool is a mutex-protected wrapper around Pool for callers that share a
// pool between goroutines. Handle methods consult the pool's bookkeeping, so
// element access on handles from a shared pool must run inside Do.
type SafePool[T any] struct {
	mu sync.Mutex
	p  *Pool[T]
}

// NewSafePool creates a thread-safe pool of slots slots, each width elements wide.
func NewSafePool[T any](slots, width int, opts ...PoolOption) (*SafePool[T], error) {
	p, err := NewPool[T](slots, width, opts...)
	if err != nil {
		return nil, err
	}
	return &SafePool[T]{p: p}, nil
}

// Create thread-safely claims a slot filled with init.
func (s *SafePool[T]) Create(init T) (*Static[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Create(init)
}

// Copy thread-safely claims a slot holding a copy of other.
func (s *SafePool[T]) Copy(other *Static[T]) (*Static[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Copy(other)
}

// Move thread-safely transfers other's slot to a new handle.
func (s *SafePool[T]) Move(other *Static[T]) (*Static[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Move(other)
}

// Destroy thread-safely releases h's slot.
func (s *SafePool[T]) Destroy(h *Static[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.Destroy()
}

// Do runs fn with the pool locked. Use it for any access to handles while
// other goroutines may create or destroy slots.
func (s *SafePool[T]) Do(fn func(p *Pool[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.p)
}

// InUse thread-safely returns the number of slots held by live handles.
func (s *SafePool[T]) InUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.InUse()
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafePool[T]) Metrics() PoolMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Metrics()
}
