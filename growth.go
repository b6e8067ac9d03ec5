package vector

import (
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// nextCapacity plans the capacity needed to hold required elements, starting
// from cur. The result is a member of the sequence initial·gᵏ unless the next
// step would pass the max capacity, in which case the max capacity itself is
// returned. Callers reject required above the max before planning.
func (cfg *Config) nextCapacity(cur, required int) int {
	c := cur
	if c <= 0 {
		c = cfg.initialCapacity()
	}
	limit := cfg.maxCapacity()
	for c < required {
		var next int
		if cfg.LowMemory {
			next = c + c/2
		} else {
			next = c * 2
		}
		if next <= c || next > limit {
			return max(required, limit)
		}
		c = next
	}
	return c
}

// GrowthPlan returns the capacities an empty vector passes through when it
// is filled one element at a time up to required elements. It fails with
// ErrCapacity when required exceeds the max capacity, as the vector would.
func (cfg *Config) GrowthPlan(required int) ([]int, error) {
	if limit := cfg.maxCapacity(); required > limit {
		return nil, capacityFailed("plan", errors.Errorf("required %d exceeds max capacity %d", required, limit))
	}
	var plan []int
	for c := 0; c < required; {
		c = cfg.nextCapacity(c, c+1)
		plan = append(plan, c)
	}
	return plan, nil
}

// ensureCapacity guarantees room for required elements. On failure the
// vector is left exactly as it was.
func (v *Vector[T]) ensureCapacity(op string, required int) error {
	if required <= len(v.buf) {
		return nil
	}
	if required > v.cfg.maxCapacity() {
		v.metrics.growthFailed()
		return capacityFailed(op, errors.Wrapf(ErrAllocation, "required %d exceeds max capacity %d", required, v.cfg.maxCapacity()))
	}

	old := len(v.buf)
	newCap := v.cfg.nextCapacity(old, required)
	buf, err := v.alloc.Realloc(v.buf, newCap)
	if err != nil || len(buf) < newCap {
		if err == nil && !sameBuffer(buf, v.buf) {
			v.alloc.Free(buf)
		}
		v.metrics.growthFailed()
		level.Warn(v.logger).Log("msg", "vector reallocation failed", "op", op, "allocator", v.alloc.Name(), "capacity", old, "requested", newCap, "err", err)
		if err == nil {
			return capacityFailed(op, errors.Wrapf(ErrAllocation, "allocator %s returned %d elements, want %d", v.alloc.Name(), len(buf), newCap))
		}
		return capacityFailed(op, errors.Wrapf(ErrAllocation, "allocator %s: %v", v.alloc.Name(), err))
	}

	v.buf = buf
	v.invalidate()
	v.metrics.grew()
	level.Debug(v.logger).Log("msg", "vector grew", "op", op, "allocator", v.alloc.Name(), "from", old, "to", newCap)
	return nil
}

// sameBuffer reports whether a and b start at the same element.
func sameBuffer[T any](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
