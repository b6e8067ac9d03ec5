package vector

// DefaultChunkElems is the default chunk length, in elements, of a Region.
const DefaultChunkElems = 1 << 12

// chunk is one contiguous block of a Region.
type chunk[T any] struct {
	buf    []T
	offset int // elements handed out from buf
}

// Region is a chunked bump allocator for elements of type T. Chunks are
// typed so that values holding pointers stay visible to the garbage
// collector. Not goroutine-safe.
type Region[T any] struct {
	chunks     []chunk[T]
	chunkElems int
	cur        int // index of the chunk being bumped
}

// NewRegion creates a Region whose chunks hold chunkElems elements.
// If chunkElems <= 0, DefaultChunkElems is used.
func NewRegion[T any](chunkElems int) *Region[T] {
	if chunkElems <= 0 {
		chunkElems = DefaultChunkElems
	}
	r := &Region[T]{chunkElems: chunkElems}
	r.chunks = append(r.chunks, chunk[T]{buf: make([]T, chunkElems)})
	return r
}

// Alloc hands out n elements from the current chunk, moving to another
// chunk when the current one cannot fit them. Returns nil if n <= 0.
// The span may hold values from before a Reset; use AllocZeroed for a
// cleared span.
func (r *Region[T]) Alloc(n int) []T {
	if n <= 0 {
		return nil
	}
	r.panicIfReleased()

	c := &r.chunks[r.cur]
	if c.offset+n > len(c.buf) {
		r.grow(n)
		c = &r.chunks[r.cur]
	}
	start := c.offset
	c.offset += n
	return c.buf[start:c.offset:c.offset]
}

// AllocZeroed is Alloc with the returned span cleared.
func (r *Region[T]) AllocZeroed(n int) []T {
	s := r.Alloc(n)
	clear(s)
	return s
}

// Extend grows s, which must be the most recent allocation of the current
// chunk, to n elements in place. It reports false when s is not the tail of
// the current chunk or the chunk lacks room; s is unchanged in that case.
func (r *Region[T]) Extend(s []T, n int) ([]T, bool) {
	r.panicIfReleased()
	start, ok := r.tailStart(s)
	c := &r.chunks[r.cur]
	if !ok || start+n > len(c.buf) {
		return s, false
	}
	c.offset = start + n
	return c.buf[start:c.offset:c.offset], true
}

// Free returns s to the region if it is the most recent allocation of the
// current chunk. Any other span is reclaimed only by Reset or Release.
func (r *Region[T]) Free(s []T) {
	if r.chunks == nil {
		return
	}
	if start, ok := r.tailStart(s); ok {
		r.chunks[r.cur].offset = start
	}
}

// tailStart reports where s begins in the current chunk when s ends exactly
// at the chunk's bump offset.
func (r *Region[T]) tailStart(s []T) (int, bool) {
	c := &r.chunks[r.cur]
	if len(s) == 0 || c.offset < len(s) {
		return 0, false
	}
	start := c.offset - len(s)
	if &c.buf[start] != &s[0] {
		return 0, false
	}
	return start, true
}

// Reset rewinds every chunk but keeps them for reuse.
func (r *Region[T]) Reset() {
	r.panicIfReleased()
	for i := range r.chunks {
		r.chunks[i].offset = 0
	}
	r.cur = 0
}

// Release drops all chunks and makes the region unusable.
// Any subsequent allocation panics.
func (r *Region[T]) Release() {
	r.chunks = nil
	r.cur = 0
}

// grow moves to the next rewound chunk that fits min elements, or appends a
// new chunk of at least min elements.
func (r *Region[T]) grow(min int) {
	for i := r.cur + 1; i < len(r.chunks); i++ {
		if r.chunks[i].offset == 0 && len(r.chunks[i].buf) >= min {
			r.cur = i
			return
		}
	}
	size := r.chunkElems
	if min > size {
		size = min
	}
	r.chunks = append(r.chunks, chunk[T]{buf: make([]T, size)})
	r.cur = len(r.chunks) - 1
}

func (r *Region[T]) panicIfReleased() {
	if r.chunks == nil {
		panic("vector: region use after Release()")
	}
}
