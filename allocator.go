package vector

import (
	"fmt"

	"github.com/pkg/errors"
)

// Allocator supplies element storage to heap-backed vectors. It is shared by
// reference: vectors hold it, copies inherit it, and none of them own it.
//
// A failing Realloc must leave buf valid; the vector keeps using it.
type Allocator[T any] interface {
	// Name identifies the allocator in logs and errors.
	Name() string
	// Alloc returns a span of n elements with unspecified contents.
	Alloc(n int) ([]T, error)
	// AllocZeroed returns a span of n zero-valued elements.
	AllocZeroed(n int) ([]T, error)
	// Realloc returns a span of n elements whose prefix holds buf's contents.
	// buf may be nil.
	Realloc(buf []T, n int) ([]T, error)
	// Free releases a span obtained from this allocator.
	Free(buf []T)
}

// HeapAllocator allocates from the Go heap. Free is a no-op; the garbage
// collector reclaims released spans.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Name() string { return "heap" }

func (HeapAllocator[T]) Alloc(n int) ([]T, error) {
	return make([]T, n), nil
}

func (h HeapAllocator[T]) AllocZeroed(n int) ([]T, error) {
	return h.Alloc(n)
}

func (HeapAllocator[T]) Realloc(buf []T, n int) ([]T, error) {
	out := make([]T, n)
	copy(out, buf)
	return out, nil
}

func (HeapAllocator[T]) Free([]T) {}

// RegionAllocator carves vector storage out of a Region. Growing the most
// recent allocation extends it in place when the chunk has room.
type RegionAllocator[T any] struct {
	region *Region[T]
}

// NewRegionAllocator returns an allocator backed by r.
func NewRegionAllocator[T any](r *Region[T]) *RegionAllocator[T] {
	return &RegionAllocator[T]{region: r}
}

func (a *RegionAllocator[T]) Name() string { return "region" }

func (a *RegionAllocator[T]) Alloc(n int) ([]T, error) {
	if a.region.chunks == nil {
		return nil, errors.New("region released")
	}
	return a.region.Alloc(n), nil
}

func (a *RegionAllocator[T]) AllocZeroed(n int) ([]T, error) {
	if a.region.chunks == nil {
		return nil, errors.New("region released")
	}
	return a.region.AllocZeroed(n), nil
}

func (a *RegionAllocator[T]) Realloc(buf []T, n int) ([]T, error) {
	if a.region.chunks == nil {
		return nil, errors.New("region released")
	}
	if out, ok := a.region.Extend(buf, n); ok {
		return out, nil
	}
	out := a.region.Alloc(n)
	copy(out, buf)
	return out, nil
}

func (a *RegionAllocator[T]) Free(buf []T) {
	a.region.Free(buf)
}

// LimitAllocator caps the number of elements live at once across every span
// it hands out from the wrapped allocator.
type LimitAllocator[T any] struct {
	inner Allocator[T]
	limit int
	used  int
}

// NewLimitAllocator wraps inner with a budget of limit elements.
func NewLimitAllocator[T any](inner Allocator[T], limit int) *LimitAllocator[T] {
	return &LimitAllocator[T]{inner: inner, limit: limit}
}

func (a *LimitAllocator[T]) Name() string {
	return fmt.Sprintf("limit(%s)", a.inner.Name())
}

// Used returns the number of elements currently charged against the budget.
func (a *LimitAllocator[T]) Used() int { return a.used }

func (a *LimitAllocator[T]) charge(n int) error {
	if a.used+n > a.limit {
		return errors.Errorf("budget exceeded: %d in use, %d requested, limit %d", a.used, n, a.limit)
	}
	return nil
}

func (a *LimitAllocator[T]) Alloc(n int) ([]T, error) {
	if err := a.charge(n); err != nil {
		return nil, err
	}
	out, err := a.inner.Alloc(n)
	if err != nil {
		return nil, err
	}
	a.used += len(out)
	return out, nil
}

func (a *LimitAllocator[T]) AllocZeroed(n int) ([]T, error) {
	if err := a.charge(n); err != nil {
		return nil, err
	}
	out, err := a.inner.AllocZeroed(n)
	if err != nil {
		return nil, err
	}
	a.used += len(out)
	return out, nil
}

func (a *LimitAllocator[T]) Realloc(buf []T, n int) ([]T, error) {
	if err := a.charge(n - len(buf)); err != nil {
		return nil, err
	}
	out, err := a.inner.Realloc(buf, n)
	if err != nil {
		return nil, err
	}
	a.used += len(out) - len(buf)
	return out, nil
}

func (a *LimitAllocator[T]) Free(buf []T) {
	a.used -= len(buf)
	a.inner.Free(buf)
}
