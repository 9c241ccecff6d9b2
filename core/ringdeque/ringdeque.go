// File: core/ringdeque/ringdeque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ringdeque implements a fixed-capacity circular double-ended queue
// over a single pool.RawBuffer.
package ringdeque

import (
	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/internal/guard"
	"github.com/momentics/hioload-ds/pool"
)

const kind = "ring deque"

// Deque is a bounded ring buffer. The live window is the len slots starting
// at head, modulo capacity; tail is the next write position at the back.
// It is not safe for concurrent use.
type Deque[T any] struct {
	raw     *pool.RawBuffer[T]
	head    int
	tail    int
	len     int
	version guard.Version
}

// Ensure compile-time interface compliance.
var (
	_ api.Deque[any] = (*Deque[any])(nil)
	_ api.Ring[any]  = (*Deque[any])(nil)
)

// New allocates a deque holding at most capacity elements. A zero capacity
// deque rejects every push and is always empty.
func New[T any](capacity int, opts ...pool.AllocOption) *Deque[T] {
	return &Deque[T]{raw: pool.Allocate[T](capacity, opts...)}
}

func (d *Deque[T]) Len() int      { return d.len }
func (d *Deque[T]) Cap() int      { return d.raw.Cap() }
func (d *Deque[T]) IsEmpty() bool { return d.len == 0 }
func (d *Deque[T]) IsFull() bool  { return d.len == d.raw.Cap() }

// prev and next step an index around the ring. Only called with cap > 0.
func (d *Deque[T]) prev(i int) int { return (i + d.raw.Cap() - 1) % d.raw.Cap() }
func (d *Deque[T]) next(i int) int { return (i + 1) % d.raw.Cap() }

// PushBack appends elem. It panics with api.ErrCapacityExceeded when full.
func (d *Deque[T]) PushBack(elem T) {
	if err := d.TryPushBack(elem); err != nil {
		panic(err)
	}
}

// TryPushBack is PushBack reporting a full deque instead of panicking.
func (d *Deque[T]) TryPushBack(elem T) error {
	if d.IsFull() {
		return api.CapacityExceeded(kind, d.raw.Cap())
	}
	*d.raw.Slot(d.tail) = elem
	d.tail = d.next(d.tail)
	d.len++
	d.version.Bump()
	return nil
}

// PushFront prepends elem. It panics with api.ErrCapacityExceeded when full.
func (d *Deque[T]) PushFront(elem T) {
	if err := d.TryPushFront(elem); err != nil {
		panic(err)
	}
}

// TryPushFront is PushFront reporting a full deque instead of panicking.
func (d *Deque[T]) TryPushFront(elem T) error {
	if d.IsFull() {
		return api.CapacityExceeded(kind, d.raw.Cap())
	}
	d.head = d.prev(d.head)
	*d.raw.Slot(d.head) = elem
	d.len++
	d.version.Bump()
	return nil
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.len == 0 {
		var zero T
		return zero, false
	}
	elem := pool.Take(d.raw.Slot(d.head))
	d.head = d.next(d.head)
	d.len--
	d.version.Bump()
	return elem, true
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.len == 0 {
		var zero T
		return zero, false
	}
	d.tail = d.prev(d.tail)
	d.len--
	d.version.Bump()
	return pool.Take(d.raw.Slot(d.tail)), true
}

// Front returns a copy of the front element.
func (d *Deque[T]) Front() (T, bool) {
	if d.len == 0 {
		var zero T
		return zero, false
	}
	return *d.raw.Slot(d.head), true
}

// Back returns a copy of the back element.
func (d *Deque[T]) Back() (T, bool) {
	if d.len == 0 {
		var zero T
		return zero, false
	}
	return *d.raw.Slot(d.prev(d.tail)), true
}

// At returns the element at logical position index, counted from the front.
func (d *Deque[T]) At(index int) T {
	if index < 0 || index >= d.len {
		panic(api.OutOfBounds("index", index, d.len))
	}
	return *d.raw.Slot((d.head + index) % d.raw.Cap())
}

// Clear destroys exactly the live window. When the window wraps past the
// end of the buffer it is destroyed as two spans: [head, cap) and [0, tail).
func (d *Deque[T]) Clear() {
	if d.len == 0 {
		return
	}
	head, n := d.head, d.len
	d.head, d.tail, d.len = 0, 0, 0
	d.version.Bump()

	if end := head + n; end <= d.raw.Cap() {
		pool.DropInPlace(d.raw.Span(head, end))
		return
	}
	pool.DropInPlace(d.raw.Span(head, d.raw.Cap()))
	pool.DropInPlace(d.raw.Span(0, head+n-d.raw.Cap()))
}

// Close destroys the live window and releases the buffer. The deque is
// left empty with zero capacity.
func (d *Deque[T]) Close() {
	d.Clear()
	d.raw.Deallocate()
	d.raw = pool.Allocate[T](0)
}

// Enqueue implements api.Ring: a PushBack that reports a full deque.
func (d *Deque[T]) Enqueue(elem T) bool {
	return d.TryPushBack(elem) == nil
}

// Dequeue implements api.Ring.
func (d *Deque[T]) Dequeue() (T, bool) {
	return d.PopFront()
}
