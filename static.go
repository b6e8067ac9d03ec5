package vector

import (
	"iter"

	"github.com/pkg/errors"
)

// Static is a handle to one slot of a Pool. Its length is always the pool's
// slot width; there is no way to grow or shrink it.
//
// Handles are invalidated by Destroy and by Pool.Move. Using an invalidated
// handle panics, except for Destroy, which is a no-op.
type Static[T any] struct {
	pool *Pool[T]
	slot int
	gen  uint32
}

// Handle returns the slot index the handle addresses.
func (s *Static[T]) Handle() int {
	s.mustLive()
	return s.slot
}

// Destroy releases the slot back to the pool. It never finalizes or zeroes
// the slot's elements.
func (s *Static[T]) Destroy() {
	if !s.live() {
		return
	}
	s.pool.release(s.slot)
}

func (s *Static[T]) Len() int {
	s.mustLive()
	return s.pool.width
}

func (s *Static[T]) Cap() int {
	return s.Len()
}

func (s *Static[T]) Empty() bool {
	return s.Len() == 0
}

func (s *Static[T]) At(i int) (T, error) {
	return s.span().at("at", i)
}

func (s *Static[T]) AtIter(it Iterator[T]) (T, error) {
	sp := s.span()
	i, err := sp.indexOf("at", it, false)
	if err != nil {
		var zero T
		return zero, err
	}
	return sp.elems[i], nil
}

func (s *Static[T]) Front() (T, error) {
	return s.span().at("front", 0)
}

func (s *Static[T]) Back() (T, error) {
	sp := s.span()
	return sp.at("back", len(sp.elems)-1)
}

func (s *Static[T]) Data() []T {
	return s.span().elems
}

func (s *Static[T]) All() iter.Seq2[int, T] {
	return s.span().all()
}

func (s *Static[T]) Begin() Iterator[T] {
	return s.span().iteratorAt(0)
}

func (s *Static[T]) End() Iterator[T] {
	sp := s.span()
	return sp.iteratorAt(len(sp.elems))
}

func (s *Static[T]) IteratorAt(i int) (Iterator[T], error) {
	sp := s.span()
	if err := checkIndex("iterator", i, len(sp.elems)); err != nil {
		return Iterator[T]{}, err
	}
	return sp.iteratorAt(i), nil
}

func (s *Static[T]) IndexOf(it Iterator[T]) (int, error) {
	return s.span().indexOf("index", it, false)
}

func (s *Static[T]) Set(i int, v T) error {
	return s.span().set("set", i, v)
}

func (s *Static[T]) SetIter(it Iterator[T], v T) error {
	sp := s.span()
	i, err := sp.indexOf("set", it, false)
	if err != nil {
		return err
	}
	return sp.set("set", i, v)
}

// EmplaceRange overwrites [i, i+r.Len()) with r's elements.
func (s *Static[T]) EmplaceRange(i int, r Sequence[T]) error {
	sp := s.span()
	src, err := rangeData("emplace range", r)
	if err != nil {
		return err
	}
	return sp.emplaceRange("emplace range", i, src)
}

// Fill writes v to every element of the slot.
func (s *Static[T]) Fill(v T) {
	elems := s.span().elems
	for i := range elems {
		elems[i] = v
	}
}

// Assign writes v to positions [0, count). A count beyond the slot width
// cannot be satisfied and fails with ErrCapacity.
func (s *Static[T]) Assign(count int, v T) error {
	elems := s.span().elems
	if count < 0 {
		return indexError("assign", count, len(elems))
	}
	if count > len(elems) {
		return capacityFailed("assign", errors.Errorf("count %d exceeds slot width %d", count, len(elems)))
	}
	for i := 0; i < count; i++ {
		elems[i] = v
	}
	return nil
}

// AssignRange writes r's elements to positions [0, r.Len()).
func (s *Static[T]) AssignRange(r Sequence[T]) error {
	elems := s.span().elems
	src, err := rangeData("assign range", r)
	if err != nil {
		return err
	}
	if len(src) > len(elems) {
		return capacityFailed("assign range", errors.Errorf("range of %d elements exceeds slot width %d", len(src), len(elems)))
	}
	copy(elems, src)
	return nil
}

func (s *Static[T]) Reverse(begin, end int) error {
	return s.span().reverse("reverse", begin, end)
}

func (s *Static[T]) ReverseIter(begin, end Iterator[T]) error {
	sp := s.span()
	b, err := sp.indexOf("reverse", begin, true)
	if err != nil {
		return err
	}
	e, err := sp.indexOf("reverse", end, true)
	if err != nil {
		return err
	}
	return sp.reverse("reverse", b, e)
}

func (s *Static[T]) Swap(i, j int) error {
	return s.span().swap("swap", i, j)
}

func (s *Static[T]) SwapIter(a, b Iterator[T]) error {
	sp := s.span()
	i, err := sp.indexOf("swap", a, false)
	if err != nil {
		return err
	}
	j, err := sp.indexOf("swap", b, false)
	if err != nil {
		return err
	}
	return sp.swap("swap", i, j)
}

func (s *Static[T]) span() span[T] {
	s.mustLive()
	return span[T]{elems: s.pool.slot(s.slot), epoch: uint64(s.gen)}
}

func (s *Static[T]) live() bool {
	return s != nil && s.pool != nil && s.pool.used[s.slot] && s.pool.generation(s.slot) == s.gen
}

func (s *Static[T]) mustLive() {
	if !s.live() {
		panic("vector: use of released pool slot")
	}
}
