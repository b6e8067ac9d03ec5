package vector

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/kamstrup/intmap"
	"github.com/pkg/errors"
)

// Pool hands out fixed-width slots of a single backing array. Every slot
// holds exactly Width elements for as long as a handle owns it.
//
// A Pool is not safe for concurrent use; wrap it in a SafePool when
// goroutines share it.
type Pool[T any] struct {
	data  []T
	used  []bool
	gens  *intmap.Map[int, uint32] // slot -> release count
	width int
	inUse int

	logger  log.Logger
	metrics *Metrics
}

// PoolOption configures a Pool at construction.
type PoolOption func(*poolOptions)

type poolOptions struct {
	logger  log.Logger
	metrics *Metrics
}

// WithPoolLogger sets the logger used for slot events.
func WithPoolLogger(l log.Logger) PoolOption {
	return func(o *poolOptions) { o.logger = l }
}

// WithPoolMetrics records slot usage in m.
func WithPoolMetrics(m *Metrics) PoolOption {
	return func(o *poolOptions) { o.metrics = m }
}

// NewPool allocates a pool of slots slots, each width elements wide.
func NewPool[T any](slots, width int, opts ...PoolOption) (*Pool[T], error) {
	cfg := PoolConfig{Slots: slots, Width: width}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newPool(make([]T, slots*width), width, opts), nil
}

// NewPoolFrom builds a pool over a caller-owned backing array. len(backing)
// must be a positive multiple of width; the pool never reallocates it.
func NewPoolFrom[T any](backing []T, width int, opts ...PoolOption) (*Pool[T], error) {
	if backing == nil {
		return nil, nullError("new pool", "backing array")
	}
	if width <= 0 || len(backing) < width || len(backing)%width != 0 {
		return nil, errors.Errorf("backing array of %d elements cannot be split into slots of width %d", len(backing), width)
	}
	return newPool(backing, width, opts), nil
}

func newPool[T any](backing []T, width int, opts []PoolOption) *Pool[T] {
	o := poolOptions{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNopLogger()
	}
	slots := len(backing) / width
	return &Pool[T]{
		data:    backing,
		used:    make([]bool, slots),
		gens:    intmap.New[int, uint32](slots),
		width:   width,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Create claims a free slot and fills it with init.
func (p *Pool[T]) Create(init T) (*Static[T], error) {
	slot, err := p.acquire("create")
	if err != nil {
		return nil, err
	}
	elems := p.slot(slot)
	for i := range elems {
		elems[i] = init
	}
	return p.handle(slot), nil
}

// Copy claims a distinct slot and copies other's contents into it. other
// may belong to another pool of the same width.
func (p *Pool[T]) Copy(other *Static[T]) (*Static[T], error) {
	if other == nil {
		return nil, nullError("copy", "source handle")
	}
	src := other.Data()
	if len(src) != p.width {
		return nil, capacityFailed("copy", errors.Errorf("source width %d does not match pool width %d", len(src), p.width))
	}
	slot, err := p.acquire("copy")
	if err != nil {
		return nil, err
	}
	copy(p.slot(slot), src)
	return p.handle(slot), nil
}

// Move transfers ownership of other's slot to a new handle. Slots cannot
// be relocated, so within one pool the returned handle addresses the same
// slot; other is invalidated and panics on further use. A handle from
// another pool of the same width is copied into a fresh slot here and its
// old slot released.
func (p *Pool[T]) Move(other *Static[T]) (*Static[T], error) {
	if other == nil {
		return nil, nullError("move", "source handle")
	}
	other.mustLive()
	if other.pool == p {
		moved := &Static[T]{pool: p, slot: other.slot, gen: other.gen}
		other.pool = nil
		return moved, nil
	}
	dst, err := p.Copy(other)
	if err != nil {
		return nil, err
	}
	other.Destroy()
	other.pool = nil
	return dst, nil
}

// acquire claims the first free slot.
func (p *Pool[T]) acquire(op string) (int, error) {
	for i, u := range p.used {
		if u {
			continue
		}
		p.used[i] = true
		p.inUse++
		p.metrics.slotAcquired()
		level.Debug(p.logger).Log("msg", "pool slot acquired", "op", op, "slot", i, "in_use", p.inUse)
		return i, nil
	}
	p.metrics.exhausted()
	level.Warn(p.logger).Log("msg", "pool exhausted", "op", op, "slots", len(p.used))
	return NotFound, errors.Wrapf(ErrPoolExhausted, "%s: all %d slots in use", op, len(p.used))
}

// release marks slot free and retires every handle issued for it. The
// slot's contents are left as they are.
func (p *Pool[T]) release(slot int) {
	p.used[slot] = false
	p.inUse--
	p.gens.Put(slot, p.generation(slot)+1)
	p.metrics.slotReleased()
	level.Debug(p.logger).Log("msg", "pool slot released", "slot", slot, "in_use", p.inUse)
}

func (p *Pool[T]) generation(slot int) uint32 {
	g, _ := p.gens.Get(slot)
	return g
}

func (p *Pool[T]) handle(slot int) *Static[T] {
	return &Static[T]{pool: p, slot: slot, gen: p.generation(slot)}
}

func (p *Pool[T]) slot(i int) []T {
	lo, hi := i*p.width, (i+1)*p.width
	return p.data[lo:hi:hi]
}
