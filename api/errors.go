// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error kinds for hioload-ds containers.
//
// Capacity and bounds violations are caller programming errors: container
// methods abort by panicking with an error wrapping one of these sentinels,
// and Try* variants return the same error. Use errors.Is on a recovered value
// to identify the kind.

package api

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Fatal error kinds raised by container operations.
var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrOutOfBounds      = errors.New("index out of bounds")
)

// Memory-discipline violations. These indicate a broken invariant in the
// caller or in the library and are never expected in correct programs.
var (
	ErrCapacityOverflow       = errors.New("capacity overflow")
	ErrDoubleFree             = errors.New("double free")
	ErrUseAfterFree           = errors.New("use after free")
	ErrConcurrentModification = errors.New("container modified during iteration")
	ErrNotSupported           = errors.New("operation not supported")
)

// CapacityExceeded builds the error raised by a push on a full container.
func CapacityExceeded(container string, capacity int) error {
	return errors.Wrapf(ErrCapacityExceeded, "%s is full (capacity %d)",
		redact.SafeString(container), redact.Safe(capacity))
}

// OutOfBounds builds the error raised by an invalid index.
func OutOfBounds(op string, index, length int) error {
	return errors.Wrapf(ErrOutOfBounds, "%s: index %d, len %d",
		redact.SafeString(op), redact.Safe(index), redact.Safe(length))
}

// Recovered converts a value obtained from recover() back into an error.
// It returns nil for a nil value and wraps non-error values.
func Recovered(r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return err
	}
	return errors.AssertionFailedf("panic: %v", r)
}
