package vector

import (
	"slices"
)

// PushBack appends x.
func (v *Vector[T]) PushBack(x T) error {
	v.panicIfDestroyed()
	if err := v.ensureCapacity("push back", v.n+1); err != nil {
		return err
	}
	v.buf[v.n] = x
	v.n++
	v.invalidate()
	return nil
}

// PopBack drops the last element. It does nothing on an empty vector and
// leaves the vacated slot's contents as they were.
func (v *Vector[T]) PopBack() {
	v.panicIfDestroyed()
	if v.n > 0 {
		v.n--
	}
}

// Insert places x before index before, shifting later elements right.
// before may equal Len, which appends.
func (v *Vector[T]) Insert(before int, x T) error {
	v.panicIfDestroyed()
	if before < 0 || before > v.n {
		return indexError("insert", before, v.n)
	}
	if before == v.n {
		return v.PushBack(x)
	}
	if err := v.ensureCapacity("insert", v.n+1); err != nil {
		return err
	}
	moved := copy(v.buf[before+1:v.n+1], v.buf[before:v.n])
	v.buf[before] = x
	v.n++
	v.invalidate()
	v.metrics.moved(moved)
	return nil
}

// InsertIter is Insert addressed by iterator; End appends.
func (v *Vector[T]) InsertIter(before Iterator[T], x T) error {
	i, err := v.span().indexOf("insert", before, true)
	if err != nil {
		return err
	}
	return v.Insert(i, x)
}

// InsertRange places r's elements, in order, before index before.
// An empty range is a no-op. r may be v itself.
func (v *Vector[T]) InsertRange(before int, r Sequence[T]) error {
	v.panicIfDestroyed()
	src, err := rangeData("insert range", r)
	if err != nil {
		return err
	}
	if len(src) == 0 {
		return nil
	}
	if before < 0 || before > v.n {
		return indexError("insert range", before, v.n)
	}
	if self, ok := r.(*Vector[T]); ok && self == v {
		src = slices.Clone(src)
	}
	if err := v.ensureCapacity("insert range", v.n+len(src)); err != nil {
		return err
	}
	if before < v.n {
		moved := copy(v.buf[before+len(src):], v.buf[before:v.n])
		v.metrics.moved(moved)
	}
	copy(v.buf[before:], src)
	v.n += len(src)
	v.invalidate()
	return nil
}

// InsertRangeIter is InsertRange addressed by iterator; End appends.
func (v *Vector[T]) InsertRangeIter(before Iterator[T], r Sequence[T]) error {
	i, err := v.span().indexOf("insert range", before, true)
	if err != nil {
		return err
	}
	return v.InsertRange(i, r)
}

// AppendRange appends r's elements in order.
func (v *Vector[T]) AppendRange(r Sequence[T]) error {
	v.panicIfDestroyed()
	return v.InsertRange(v.n, r)
}

// Erase removes the element at i, shifting later elements left.
func (v *Vector[T]) Erase(i int) error {
	v.panicIfDestroyed()
	if err := checkIndex("erase", i, v.n); err != nil {
		return err
	}
	if i == v.n-1 {
		v.PopBack()
		v.invalidate()
		return nil
	}
	moved := copy(v.buf[i:v.n-1], v.buf[i+1:v.n])
	v.n--
	v.invalidate()
	v.metrics.moved(moved)
	return nil
}

// EraseIter is Erase addressed by iterator.
func (v *Vector[T]) EraseIter(it Iterator[T]) error {
	i, err := v.span().indexOf("erase", it, false)
	if err != nil {
		return err
	}
	return v.Erase(i)
}

// Assign writes x to positions [0, count), growing capacity as needed.
// It is a raw fill: Len is not changed, so only the written positions below
// Len are observable afterwards.
func (v *Vector[T]) Assign(count int, x T) error {
	v.panicIfDestroyed()
	if count < 0 {
		return indexError("assign", count, v.n)
	}
	if err := v.ensureCapacity("assign", count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		v.buf[i] = x
	}
	v.invalidate()
	return nil
}

// AssignRange writes r's elements to positions [0, r.Len()). Like Assign it
// does not change Len.
func (v *Vector[T]) AssignRange(r Sequence[T]) error {
	v.panicIfDestroyed()
	src, err := rangeData("assign range", r)
	if err != nil {
		return err
	}
	if err := v.ensureCapacity("assign range", len(src)); err != nil {
		return err
	}
	copy(v.buf, src)
	v.invalidate()
	return nil
}

// Resize sets the length to n, filling new positions with the zero value.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith sets the length to n, filling new positions with fill.
// Shrinking only lowers the length; capacity never decreases.
func (v *Vector[T]) ResizeWith(n int, fill T) error {
	v.panicIfDestroyed()
	if n < 0 {
		return indexError("resize", n, v.n)
	}
	if err := v.ensureCapacity("resize", n); err != nil {
		return err
	}
	for i := v.n; i < n; i++ {
		v.buf[i] = fill
	}
	v.n = n
	v.invalidate()
	return nil
}

// Reserve guarantees capacity for at least n elements.
func (v *Vector[T]) Reserve(n int) error {
	v.panicIfDestroyed()
	if n < 0 {
		return indexError("reserve", n, v.n)
	}
	return v.ensureCapacity("reserve", n)
}

// Clear drops every element and keeps the buffer.
func (v *Vector[T]) Clear() {
	v.panicIfDestroyed()
	v.n = 0
	v.invalidate()
}

// Set overwrites the element at i.
func (v *Vector[T]) Set(i int, x T) error {
	return v.span().set("set", i, x)
}

// SetIter overwrites the element it addresses.
func (v *Vector[T]) SetIter(it Iterator[T], x T) error {
	s := v.span()
	i, err := s.indexOf("set", it, false)
	if err != nil {
		return err
	}
	return s.set("set", i, x)
}

// EmplaceRange overwrites [i, i+r.Len()) with r's elements. The whole
// target range must lie within the current length.
func (v *Vector[T]) EmplaceRange(i int, r Sequence[T]) error {
	s := v.span()
	src, err := rangeData("emplace range", r)
	if err != nil {
		return err
	}
	return s.emplaceRange("emplace range", i, src)
}

// Reverse reverses the half-open range [begin, end).
func (v *Vector[T]) Reverse(begin, end int) error {
	return v.span().reverse("reverse", begin, end)
}

// ReverseIter reverses [begin, end) addressed by iterators; end may be End.
func (v *Vector[T]) ReverseIter(begin, end Iterator[T]) error {
	s := v.span()
	b, err := s.indexOf("reverse", begin, true)
	if err != nil {
		return err
	}
	e, err := s.indexOf("reverse", end, true)
	if err != nil {
		return err
	}
	return s.reverse("reverse", b, e)
}

// Swap exchanges the elements at i and j.
func (v *Vector[T]) Swap(i, j int) error {
	return v.span().swap("swap", i, j)
}

// SwapIter exchanges the elements a and b address.
func (v *Vector[T]) SwapIter(a, b Iterator[T]) error {
	s := v.span()
	i, err := s.indexOf("swap", a, false)
	if err != nil {
		return err
	}
	j, err := s.indexOf("swap", b, false)
	if err != nil {
		return err
	}
	return s.swap("swap", i, j)
}
