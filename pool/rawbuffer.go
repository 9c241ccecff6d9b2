// File: pool/rawbuffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RawBuffer is the single allocation primitive of the library: a fixed
// number of typed slots with no notion of which slots hold live values.
// Owners track initialization themselves and must destroy every live value
// before calling Deallocate.

package pool

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/internal/logger"
)

// noCopy is flagged by go vet's copylocks check when copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawBuffer owns capacity slots of T. Only the owner may deallocate it;
// iterators borrow a Shadow instead.
type RawBuffer[T any] struct {
	_ noCopy

	base     unsafe.Pointer
	capacity int
	bytes    int
	elemSize uintptr

	heap    []T    // keeps heap-backed slots reachable
	region  []byte // mapping for backend-backed slots
	backend Backend
	tracker *Tracker
	freed   bool
}

// Allocate reserves exactly capacity slots of T. A zero capacity yields a
// sentinel with no allocation and no deallocation obligation. It panics with
// api.ErrCapacityOverflow if capacity*sizeof(T) cannot be represented.
func Allocate[T any](capacity int, opts ...AllocOption) *RawBuffer[T] {
	size := byteSize[T](capacity)
	cfg := newAllocConfig(opts)
	b := &RawBuffer[T]{elemSize: elemSize[T](), tracker: cfg.tracker}
	if capacity == 0 {
		return b
	}
	b.capacity = capacity
	b.bytes = size

	if cfg.backend != nil && size > 0 {
		if !pointerFree[T]() {
			logger.L().Debug("element type holds pointers, using heap",
				zap.String("backend", cfg.backend.Name()))
		} else if region, err := cfg.backend.Map(size); err != nil {
			logger.L().Warn("raw mapping failed, falling back to heap",
				zap.String("backend", cfg.backend.Name()), zap.Int("bytes", size), zap.Error(err))
		} else {
			b.region = region
			b.backend = cfg.backend
			b.base = unsafe.Pointer(unsafe.SliceData(region))
			b.tracker.recordAlloc(cfg.backend.Name(), size)
			logger.L().Debug("raw buffer mapped",
				zap.Int("capacity", capacity), zap.Int("bytes", size))
			return b
		}
	}

	b.heap = make([]T, capacity)
	b.base = unsafe.Pointer(unsafe.SliceData(b.heap))
	b.tracker.recordAlloc(HeapBackendName, size)
	logger.L().Debug("raw buffer allocated",
		zap.Int("capacity", capacity), zap.Int("bytes", size))
	return b
}

// Cap returns the number of slots.
func (b *RawBuffer[T]) Cap() int {
	return b.capacity
}

// Allocated reports whether the buffer holds a real allocation.
func (b *RawBuffer[T]) Allocated() bool {
	return b.capacity > 0
}

// Backend names the backend serving the slots.
func (b *RawBuffer[T]) Backend() string {
	if b.backend != nil {
		return b.backend.Name()
	}
	return HeapBackendName
}

// Slot returns the address of slot i. There is no bounds check: the caller
// guarantees i < Cap() and the read/write ordering of the slot.
func (b *RawBuffer[T]) Slot(i int) *T {
	return (*T)(unsafe.Add(b.base, uintptr(i)*b.elemSize))
}

// Span returns slots [from, to) as a slice without bounds checks.
func (b *RawBuffer[T]) Span(from, to int) []T {
	if to <= from {
		return nil
	}
	return unsafe.Slice(b.Slot(from), to-from)
}

// Shadow returns a borrow-only alias of the slots.
func (b *RawBuffer[T]) Shadow() Shadow[T] {
	return Shadow[T]{base: b.base, capacity: b.capacity, elemSize: b.elemSize}
}

// Deallocate releases the slots. It must be called once per real
// allocation, after every live value has been destroyed or moved out.
// Deallocating a zero-capacity sentinel is a no-op; a second Deallocate of a
// real allocation panics with api.ErrDoubleFree.
func (b *RawBuffer[T]) Deallocate() {
	if b.freed {
		panic(errors.Wrapf(api.ErrDoubleFree, "raw buffer of %d bytes", redact.Safe(b.bytes)))
	}
	if b.capacity == 0 {
		return
	}
	if b.backend != nil {
		if err := b.backend.Unmap(b.region); err != nil {
			logger.L().Error("raw unmap failed",
				zap.String("backend", b.backend.Name()), zap.Error(err))
		}
	}
	b.tracker.recordFree(b.bytes)
	logger.L().Debug("raw buffer released",
		zap.String("backend", b.Backend()), zap.Int("bytes", b.bytes))

	b.freed = true
	b.base = nil
	b.capacity = 0
	b.heap = nil
	b.region = nil
}

// Shadow aliases a RawBuffer for read and in-place write access during
// iteration. It never owns the memory and cannot release it.
type Shadow[T any] struct {
	base     unsafe.Pointer
	capacity int
	elemSize uintptr
}

// Cap returns the number of slots.
func (s Shadow[T]) Cap() int {
	return s.capacity
}

// Slot returns the address of slot i without a bounds check.
func (s Shadow[T]) Slot(i int) *T {
	return (*T)(unsafe.Add(s.base, uintptr(i)*s.elemSize))
}

// Span returns slots [from, to) without bounds checks.
func (s Shadow[T]) Span(from, to int) []T {
	if to <= from {
		return nil
	}
	return unsafe.Slice(s.Slot(from), to-from)
}
