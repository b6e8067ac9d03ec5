package vector

import (
	"iter"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Vector is a growable sequence backed by a contiguous buffer obtained from
// an Allocator. len(buf) is the capacity; the first n elements are live.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	buf     []T
	n       int
	epoch   uint64
	alloc   Allocator[T]
	cfg     Config
	logger  log.Logger
	metrics *Metrics
	dead    bool
}

// Option configures a Vector at construction.
type Option[T any] func(*Vector[T])

// WithAllocator makes the vector draw storage from a. The allocator is
// shared, not owned.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(v *Vector[T]) { v.alloc = a }
}

// WithConfig sets the growth configuration.
func WithConfig[T any](cfg Config) Option[T] {
	return func(v *Vector[T]) { v.cfg = cfg }
}

// WithLogger sets the logger used for growth events.
func WithLogger[T any](l log.Logger) Option[T] {
	return func(v *Vector[T]) { v.logger = l }
}

// WithMetrics records growth and shift activity in m.
func WithMetrics[T any](m *Metrics) Option[T] {
	return func(v *Vector[T]) { v.metrics = m }
}

// New creates a vector holding n copies of init.
func New[T any](n int, init T, opts ...Option[T]) (*Vector[T], error) {
	v := &Vector[T]{
		alloc:  HeapAllocator[T]{},
		cfg:    DefaultConfig(),
		logger: log.NewNopLogger(),
	}
	for _, o := range opts {
		o(v)
	}
	if v.alloc == nil {
		return nil, nullError("new", "allocator")
	}
	if v.logger == nil {
		v.logger = log.NewNopLogger()
	}
	if err := v.cfg.Validate(); err != nil {
		return nil, capacityFailed("new", errors.Wrap(err, "invalid config"))
	}
	if n < 0 {
		return nil, indexError("new", n, 0)
	}
	if n > 0 {
		if err := v.ensureCapacity("new", n); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			v.buf[i] = init
		}
		v.n = n
	}
	return v, nil
}

// Copy creates a vector with its own buffer holding other's elements. The
// copy shares other's allocator, configuration, logger and metrics.
func Copy[T any](other *Vector[T]) (*Vector[T], error) {
	if other == nil {
		return nil, nullError("copy", "source vector")
	}
	other.panicIfDestroyed()

	v := &Vector[T]{
		alloc:   other.alloc,
		cfg:     other.cfg,
		logger:  other.logger,
		metrics: other.metrics,
	}
	if err := v.ensureCapacity("copy", other.n); err != nil {
		return nil, err
	}
	v.n = copy(v.buf, other.buf[:other.n])
	return v, nil
}

// Move creates a vector that takes over other's buffer. other must not be
// used afterwards; any call on it panics.
func Move[T any](other *Vector[T]) (*Vector[T], error) {
	if other == nil {
		return nil, nullError("move", "source vector")
	}
	other.panicIfDestroyed()

	v := *other
	other.buf = nil
	other.n = 0
	other.dead = true
	return &v, nil
}

// Destroy releases the buffer to the allocator. Further calls on v panic,
// except Destroy itself, which is a no-op.
func (v *Vector[T]) Destroy() {
	if v == nil || v.dead {
		return
	}
	if v.buf != nil {
		v.alloc.Free(v.buf)
	}
	v.buf = nil
	v.n = 0
	v.dead = true
}

// DestroyFunc calls finalize on every live element in index order, then
// releases the buffer like Destroy.
func (v *Vector[T]) DestroyFunc(finalize func(*T)) {
	if v == nil || v.dead {
		return
	}
	if finalize != nil {
		for i := 0; i < v.n; i++ {
			finalize(&v.buf[i])
		}
	}
	v.Destroy()
}

func (v *Vector[T]) Len() int {
	v.panicIfDestroyed()
	return v.n
}

func (v *Vector[T]) Cap() int {
	v.panicIfDestroyed()
	return len(v.buf)
}

func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// At returns the element at i.
func (v *Vector[T]) At(i int) (T, error) {
	return v.span().at("at", i)
}

// AtIter returns the element it addresses.
func (v *Vector[T]) AtIter(it Iterator[T]) (T, error) {
	s := v.span()
	i, err := s.indexOf("at", it, false)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.elems[i], nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	return v.span().at("front", 0)
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	return v.span().at("back", v.n-1)
}

func (v *Vector[T]) Data() []T {
	return v.span().elems
}

// All iterates over the live elements with their indices.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return v.span().all()
}

func (v *Vector[T]) Begin() Iterator[T] {
	return v.span().iteratorAt(0)
}

// End returns the iterator one past the last element. It is accepted as a
// boundary by InsertIter, InsertRangeIter and ReverseIter only.
func (v *Vector[T]) End() Iterator[T] {
	return v.span().iteratorAt(v.n)
}

// IteratorAt returns the iterator for index i.
func (v *Vector[T]) IteratorAt(i int) (Iterator[T], error) {
	s := v.span()
	if err := checkIndex("iterator", i, v.n); err != nil {
		return Iterator[T]{}, err
	}
	return s.iteratorAt(i), nil
}

// IndexOf returns the index it addresses, or NotFound with an error when it
// is out of range or stale.
func (v *Vector[T]) IndexOf(it Iterator[T]) (int, error) {
	return v.span().indexOf("index", it, false)
}

// Allocator returns the allocator the vector draws storage from.
func (v *Vector[T]) Allocator() Allocator[T] {
	v.panicIfDestroyed()
	return v.alloc
}

// SetAllocator moves the live elements into storage from a and releases
// the old buffer to the previous allocator. Capacity is preserved.
func (v *Vector[T]) SetAllocator(a Allocator[T]) error {
	v.panicIfDestroyed()
	if a == nil {
		return nullError("set allocator", "allocator")
	}
	if v.buf == nil {
		v.alloc = a
		return nil
	}
	buf, err := a.Alloc(len(v.buf))
	if err != nil || len(buf) < len(v.buf) {
		if err == nil && buf != nil {
			a.Free(buf)
		}
		level.Warn(v.logger).Log("msg", "allocator switch failed", "from", v.alloc.Name(), "to", a.Name(), "capacity", len(v.buf), "err", err)
		return errors.Wrapf(ErrAllocation, "set allocator: %s could not supply %d elements", a.Name(), len(v.buf))
	}
	copy(buf, v.buf[:v.n])
	v.alloc.Free(v.buf)
	v.buf = buf
	v.alloc = a
	v.invalidate()
	return nil
}

func (v *Vector[T]) span() span[T] {
	v.panicIfDestroyed()
	return span[T]{elems: v.buf[:v.n], epoch: v.epoch}
}

// invalidate makes every outstanding iterator stale.
func (v *Vector[T]) invalidate() {
	v.epoch++
}

func (v *Vector[T]) panicIfDestroyed() {
	if v.dead {
		panic("vector: use after Destroy or Move")
	}
}
