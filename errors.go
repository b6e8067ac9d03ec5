package vector

import (
	"github.com/pkg/errors"
)

// NotFound is the sentinel index returned by lookups that match nothing and
// by index-returning operations that fail.
const NotFound = -1

// Code classifies the outcome of a fallible operation.
type Code uint8

const (
	Success Code = iota
	AllocationFailure
	IndexOutOfRange
	NullInput
	CapacityOperationFailed
	PoolExhausted
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case AllocationFailure:
		return "allocation failure"
	case IndexOutOfRange:
		return "index out of range"
	case NullInput:
		return "null input"
	case CapacityOperationFailed:
		return "capacity operation failed"
	case PoolExhausted:
		return "pool exhausted"
	default:
		return "unknown"
	}
}

// Sentinel errors. Operations wrap them with context; test with errors.Is.
var (
	ErrAllocation      = errors.New("allocation failed")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNullInput       = errors.New("null input")
	ErrCapacity        = errors.New("capacity operation failed")
	ErrPoolExhausted   = errors.New("pool exhausted")
)

// CodeOf maps an error returned by this package to its Code.
// A nil error maps to Success. Every error the package returns wraps one of
// the sentinels; anything else is treated as an allocator failure.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrCapacity):
		return CapacityOperationFailed
	case errors.Is(err, ErrPoolExhausted):
		return PoolExhausted
	case errors.Is(err, ErrAllocation):
		return AllocationFailure
	case errors.Is(err, ErrNullInput):
		return NullInput
	case errors.Is(err, ErrIndexOutOfRange):
		return IndexOutOfRange
	default:
		return AllocationFailure
	}
}

// capacityError reports a failed capacity guarantee. It matches ErrCapacity
// and unwraps to the allocator failure that caused it.
type capacityError struct {
	op    string
	cause error
}

func (e *capacityError) Error() string {
	return e.op + ": " + ErrCapacity.Error() + ": " + e.cause.Error()
}

func (e *capacityError) Is(target error) bool { return target == ErrCapacity }

func (e *capacityError) Unwrap() error { return e.cause }

func capacityFailed(op string, cause error) error {
	return &capacityError{op: op, cause: cause}
}

func indexError(op string, index, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s: index %d, length %d", op, index, length)
}

func nullError(op, what string) error {
	return errors.Wrapf(ErrNullInput, "%s: %s is nil", op, what)
}
