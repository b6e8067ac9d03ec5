package vector

import "unsafe"

// Iterator addresses one position of a sequence. It records the address of
// the buffer it was taken from and the owner's epoch, so an iterator that
// outlived a relocation, a shift or a slot release is detected instead of
// silently reading the wrong element.
//
// Iterators are values; Next and Prev return new iterators.
type Iterator[T any] struct {
	base  unsafe.Pointer
	off   int
	epoch uint64
}

// Offset returns the position the iterator was created for, without checking
// that it is still valid.
func (it Iterator[T]) Offset() int { return it.off }

// Next returns the iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] {
	it.off++
	return it
}

// Prev returns the iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] {
	it.off--
	return it
}

// span is the addressing state every backend exposes to the shared
// algorithms: the live elements and the epoch iterators must match.
type span[T any] struct {
	elems []T
	epoch uint64
}

func (s span[T]) base() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s.elems))
}

func (s span[T]) iteratorAt(off int) Iterator[T] {
	return Iterator[T]{base: s.base(), off: off, epoch: s.epoch}
}

// indexOf converts it to an index in [0, len) or, with allowEnd, [0, len].
func (s span[T]) indexOf(op string, it Iterator[T], allowEnd bool) (int, error) {
	n := len(s.elems)
	if it.base != s.base() || it.epoch != s.epoch {
		return NotFound, indexError(op+": stale iterator", it.off, n)
	}
	if it.off < 0 || it.off > n || (it.off == n && !allowEnd) {
		return NotFound, indexError(op, it.off, n)
	}
	return it.off, nil
}

func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return indexError(op, i, n)
	}
	return nil
}
