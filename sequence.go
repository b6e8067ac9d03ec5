package vector

import (
	"iter"
	"slices"
)

// Sequence is the operation set shared by the heap-backed Vector and the
// pool-backed Static. Both report failures through the errors in this
// package and leave their contents untouched when they do.
type Sequence[T any] interface {
	// Len returns the number of elements. For Static it is the slot width.
	Len() int
	// Cap returns the number of elements storage is reserved for.
	Cap() int
	Empty() bool

	At(i int) (T, error)
	AtIter(it Iterator[T]) (T, error)
	Front() (T, error)
	Back() (T, error)
	// Data returns the live elements. The slice aliases the sequence's
	// storage and is invalidated by the same operations as iterators.
	Data() []T
	All() iter.Seq2[int, T]

	Begin() Iterator[T]
	End() Iterator[T]
	IteratorAt(i int) (Iterator[T], error)
	IndexOf(it Iterator[T]) (int, error)

	Set(i int, v T) error
	SetIter(it Iterator[T], v T) error
	EmplaceRange(i int, r Sequence[T]) error
	Assign(count int, v T) error
	AssignRange(r Sequence[T]) error
	Reverse(begin, end int) error
	ReverseIter(begin, end Iterator[T]) error
	Swap(i, j int) error
	SwapIter(a, b Iterator[T]) error
}

var (
	_ Sequence[int] = (*Vector[int])(nil)
	_ Sequence[int] = (*Static[int])(nil)
)

func (s span[T]) at(op string, i int) (T, error) {
	if err := checkIndex(op, i, len(s.elems)); err != nil {
		var zero T
		return zero, err
	}
	return s.elems[i], nil
}

func (s span[T]) set(op string, i int, v T) error {
	if err := checkIndex(op, i, len(s.elems)); err != nil {
		return err
	}
	s.elems[i] = v
	return nil
}

// emplaceRange overwrites [i, i+len(src)) with src.
func (s span[T]) emplaceRange(op string, i int, src []T) error {
	if len(src) == 0 {
		return nil
	}
	if err := checkIndex(op, i, len(s.elems)); err != nil {
		return err
	}
	if end := i + len(src); end > len(s.elems) {
		return indexError(op, end-1, len(s.elems))
	}
	copy(s.elems[i:], src)
	return nil
}

// reverse reverses the half-open range [begin, end).
func (s span[T]) reverse(op string, begin, end int) error {
	n := len(s.elems)
	if begin < 0 || begin > n {
		return indexError(op, begin, n)
	}
	if end < 0 || end > n {
		return indexError(op, end, n)
	}
	for i, j := begin, end-1; i < j; i, j = i+1, j-1 {
		s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
	}
	return nil
}

func (s span[T]) swap(op string, i, j int) error {
	n := len(s.elems)
	if err := checkIndex(op, i, n); err != nil {
		return err
	}
	if err := checkIndex(op, j, n); err != nil {
		return err
	}
	if i != j {
		s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
	}
	return nil
}

func (s span[T]) all() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// rangeData returns the elements of r, or a NullInput error when r is nil.
func rangeData[T any](op string, r Sequence[T]) ([]T, error) {
	if isNil(r) {
		return nil, nullError(op, "range")
	}
	return r.Data(), nil
}

func isNil[T any](r Sequence[T]) bool {
	switch s := r.(type) {
	case nil:
		return true
	case *Vector[T]:
		return s == nil
	case *Static[T]:
		return s == nil
	}
	return false
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b Sequence[T]) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) == isNil(b)
	}
	return slices.Equal(a.Data(), b.Data())
}
