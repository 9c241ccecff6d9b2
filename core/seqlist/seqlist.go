// File: core/seqlist/seqlist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package seqlist implements a fixed-capacity array list over a single
// pool.RawBuffer. Slots [0, Len) hold live values, [Len, Cap) are
// uninitialized. The list never grows: pushing into a full list aborts.
package seqlist

import (
	"iter"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/internal/guard"
	"github.com/momentics/hioload-ds/pool"
)

const kind = "sequence list"

// List is a bounded array list. It is not safe for concurrent use.
type List[T any] struct {
	raw     *pool.RawBuffer[T]
	len     int
	version guard.Version
}

var _ api.Container = (*List[any])(nil)

// New allocates a list holding at most capacity elements.
func New[T any](capacity int, opts ...pool.AllocOption) *List[T] {
	return &List[T]{raw: pool.Allocate[T](capacity, opts...)}
}

// FromSeq builds a list from seq. It aborts if seq yields more than capacity values.
func FromSeq[T any](capacity int, seq iter.Seq[T], opts ...pool.AllocOption) *List[T] {
	l := New[T](capacity, opts...)
	for v := range seq {
		l.Push(v)
	}
	return l
}

func (l *List[T]) Len() int      { return l.len }
func (l *List[T]) Cap() int      { return l.raw.Cap() }
func (l *List[T]) IsEmpty() bool { return l.len == 0 }
func (l *List[T]) IsFull() bool  { return l.len == l.raw.Cap() }

// Push appends elem. It panics with api.ErrCapacityExceeded when full.
func (l *List[T]) Push(elem T) {
	if err := l.TryPush(elem); err != nil {
		panic(err)
	}
}

// TryPush appends elem or reports api.ErrCapacityExceeded.
func (l *List[T]) TryPush(elem T) error {
	if l.IsFull() {
		return api.CapacityExceeded(kind, l.raw.Cap())
	}
	*l.raw.Slot(l.len) = elem
	l.len++
	l.version.Bump()
	return nil
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	l.len--
	l.version.Bump()
	return pool.Take(l.raw.Slot(l.len)), true
}

// Last returns a copy of the last element.
func (l *List[T]) Last() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return *l.raw.Slot(l.len - 1), true
}

// Insert places elem at index, shifting [index, Len) one slot right.
// Valid indices are [0, Len]. It panics with api.ErrOutOfBounds or
// api.ErrCapacityExceeded.
func (l *List[T]) Insert(index int, elem T) {
	if err := l.TryInsert(index, elem); err != nil {
		panic(err)
	}
}

// TryInsert is Insert reporting the failure instead of panicking.
func (l *List[T]) TryInsert(index int, elem T) error {
	if index < 0 || index > l.len {
		return api.OutOfBounds("insert", index, l.len)
	}
	if l.IsFull() {
		return api.CapacityExceeded(kind, l.raw.Cap())
	}
	span := l.raw.Span(0, l.len+1)
	copy(span[index+1:], span[index:l.len])
	span[index] = elem
	l.len++
	l.version.Bump()
	return nil
}

// Remove takes out the element at index, shifting the suffix left.
// Valid indices are [0, Len).
func (l *List[T]) Remove(index int) T {
	if index < 0 || index >= l.len {
		panic(api.OutOfBounds("remove", index, l.len))
	}
	span := l.raw.Span(0, l.len)
	elem := pool.Take(&span[index])
	copy(span[index:], span[index+1:])
	// the old last slot is now a stale duplicate
	var zero T
	span[l.len-1] = zero
	l.len--
	l.version.Bump()
	return elem
}

// Clear destroys every element. Capacity is unchanged.
func (l *List[T]) Clear() {
	n := l.len
	l.len = 0
	l.version.Bump()
	pool.DropInPlace(l.raw.Span(0, n))
}

// Close destroys every element and releases the buffer. The list is left
// empty with zero capacity.
func (l *List[T]) Close() {
	l.Clear()
	l.raw.Deallocate()
	l.raw = pool.Allocate[T](0)
}

// At returns a copy of the element at index.
func (l *List[T]) At(index int) T {
	return *l.Ptr(index)
}

// Ptr returns the address of the element at index. The pointer is valid
// until the next structural mutation.
func (l *List[T]) Ptr(index int) *T {
	if index < 0 || index >= l.len {
		panic(api.OutOfBounds("index", index, l.len))
	}
	return l.raw.Slot(index)
}

// Set replaces the element at index, destroying the previous value.
func (l *List[T]) Set(index int, elem T) {
	p := l.Ptr(index)
	pool.Drop(p)
	*p = elem
	l.version.Bump()
}

// Slice returns the initialized prefix as a slice sharing the list's
// memory. It is valid until the next structural mutation.
func (l *List[T]) Slice() []T {
	return l.raw.Span(0, l.len)
}
