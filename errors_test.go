package vector

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want Code
	}{
		{nil, Success},
		{indexError("at", 3, 2), IndexOutOfRange},
		{nullError("copy", "source"), NullInput},
		{errors.Wrap(ErrAllocation, "heap"), AllocationFailure},
		{capacityFailed("reserve", errors.Wrap(ErrAllocation, "heap")), CapacityOperationFailed},
		{errors.Wrap(ErrPoolExhausted, "create"), PoolExhausted},
		{fmt.Errorf("outer: %w", indexError("swap", 1, 0)), IndexOutOfRange},
		{errors.New("unrelated"), AllocationFailure},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeOf(tt.err), "%v", tt.err)
	}
}

func TestCapacityErrorMatchesCause(t *testing.T) {
	err := capacityFailed("push back", errors.Wrap(ErrAllocation, "allocator heap"))
	assert.ErrorIs(t, err, ErrCapacity)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.NotErrorIs(t, err, ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "push back")
	assert.Contains(t, err.Error(), "allocation failed")
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "pool exhausted", PoolExhausted.String())
	assert.Equal(t, "unknown", Code(99).String())
}
