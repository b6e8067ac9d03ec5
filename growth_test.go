package vector

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCapacity(t *testing.T) {
	def := DefaultConfig()
	low := DefaultConfig()
	low.LowMemory = true
	low.InitialCapacity = 0
	capped := DefaultConfig()
	capped.MaxCapacity = 100

	tests := []struct {
		name          string
		cfg           Config
		cur, required int
		want          int
	}{
		{"empty to one", def, 0, 1, 8},
		{"fits already", def, 16, 10, 16},
		{"fifty from eight", def, 8, 50, 64},
		{"exact power", def, 8, 64, 64},
		{"low memory first", low, 0, 1, 4},
		{"low memory steps", low, 4, 10, 13},
		{"clamped to max", capped, 64, 80, 100},
		{"exactly max", capped, 64, 100, 100},
		{"last step clamps to max", def, math.MaxInt32/2 + 1, math.MaxInt32/2 + 5, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.nextCapacity(tt.cur, tt.required))
		})
	}
}

func TestEnsureCapacityFromEight(t *testing.T) {
	v := newInts(t, 1)
	require.Equal(t, 8, v.Cap())
	require.NoError(t, v.ensureCapacity("test", 50))
	assert.Equal(t, 64, v.Cap())
	assert.Equal(t, []int{1}, v.Data())
}

func TestGrowthPlan(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		required int
		want     []int
	}{
		{"default", DefaultConfig(), 50, []int{8, 16, 32, 64}},
		{"nothing required", DefaultConfig(), 0, nil},
		{"low memory", Config{LowMemory: true}, 10, []int{4, 6, 9, 13}},
		{"stops at max", Config{MaxCapacity: 100}, 100, []int{8, 16, 32, 64, 100}},
		{"below max", Config{MaxCapacity: 100}, 70, []int{8, 16, 32, 64, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := tt.cfg.GrowthPlan(tt.required)
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan)
		})
	}

	t.Run("beyond max", func(t *testing.T) {
		cfg := Config{MaxCapacity: 16}
		plan, err := cfg.GrowthPlan(40)
		assert.ErrorIs(t, err, ErrCapacity)
		assert.Nil(t, plan)

		v, err := New(0, 0, WithConfig[int](cfg))
		require.NoError(t, err)
		assert.ErrorIs(t, v.Reserve(40), ErrCapacity, "plan and vector agree")
	})
}

func TestGrowthUpToMaxCapacity(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := NewMetrics(reg)
	cfg := DefaultConfig()
	cfg.MaxCapacity = 100

	v, err := New(0, 0, WithConfig[int](cfg), WithMetrics[int](m))
	require.NoError(t, err)

	var caps []int
	for i := 0; i < 100; i++ {
		require.NoError(t, v.PushBack(i))
		if len(caps) == 0 || caps[len(caps)-1] != v.Cap() {
			caps = append(caps, v.Cap())
		}
	}
	assert.Equal(t, []int{8, 16, 32, 64, 100}, caps)
	assert.Equal(t, 5.0, testutil.ToFloat64(m.reallocations))

	err = v.PushBack(100)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 100, v.Len())
	assert.Equal(t, 5.0, testutil.ToFloat64(m.reallocations))
}

// shortAllocator hands out one element less than asked for, drawing from a
// budgeted allocator so leaked spans stay visible.
type shortAllocator struct {
	*LimitAllocator[int]
}

func (a shortAllocator) Alloc(n int) ([]int, error) {
	return a.LimitAllocator.Alloc(n - 1)
}

func (a shortAllocator) Realloc(buf []int, n int) ([]int, error) {
	out, err := a.LimitAllocator.Alloc(n - 1)
	if err != nil {
		return nil, err
	}
	copy(out, buf)
	return out, nil
}

func TestShortBufferIsReleased(t *testing.T) {
	lim := NewLimitAllocator[int](HeapAllocator[int]{}, 100)
	short := shortAllocator{lim}

	v, err := New(0, 0, WithAllocator[int](short))
	require.NoError(t, err)
	err = v.PushBack(1)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, 0, lim.Used(), "short buffer returned to the allocator")

	w := newInts(t, 1, 2, 3)
	assert.ErrorIs(t, w.SetAllocator(short), ErrAllocation)
	assert.Equal(t, 0, lim.Used(), "short buffer returned to the allocator")
	assert.Equal(t, []int{1, 2, 3}, w.Data())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"zero value", Config{}, false},
		{"negative initial", Config{InitialCapacity: -1}, true},
		{"negative max", Config{MaxCapacity: -1}, true},
		{"initial above max", Config{InitialCapacity: 32, MaxCapacity: 16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := New(0, 0, WithConfig[int](Config{InitialCapacity: -1}))
	assert.ErrorIs(t, err, ErrCapacity)
}
