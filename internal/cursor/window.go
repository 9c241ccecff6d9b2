// File: internal/cursor/window.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package cursor implements the borrow cursor shared by the array-backed
// containers. A Window walks a circular run of initialized slots through a
// pool.Shadow, keeping its own head/tail/len so iteration never touches the
// container's counters.
package cursor

import (
	"iter"

	"github.com/momentics/hioload-ds/internal/guard"
	"github.com/momentics/hioload-ds/pool"
)

// Window is a double-ended cursor over length slots starting at head,
// wrapping modulo the buffer capacity.
type Window[T any] struct {
	buf   pool.Shadow[T]
	head  int // next slot yielded from the front
	tail  int // one past the next slot yielded from the back
	len   int
	stamp guard.Stamp
}

// NewWindow opens a cursor over buf. A contiguous prefix is the special
// case head == 0.
func NewWindow[T any](buf pool.Shadow[T], head, length int, stamp guard.Stamp) Window[T] {
	tail := head + length
	if c := buf.Cap(); c > 0 {
		tail %= c
	}
	return Window[T]{buf: buf, head: head, tail: tail, len: length, stamp: stamp}
}

// Len returns the number of slots not yet yielded.
func (w *Window[T]) Len() int {
	return w.len
}

// NextFront yields the front slot.
func (w *Window[T]) NextFront() (*T, bool) {
	w.stamp.Check()
	if w.len == 0 {
		return nil, false
	}
	p := w.buf.Slot(w.head)
	w.head = (w.head + 1) % w.buf.Cap()
	w.len--
	return p, true
}

// NextBack yields the back slot.
func (w *Window[T]) NextBack() (*T, bool) {
	w.stamp.Check()
	if w.len == 0 {
		return nil, false
	}
	c := w.buf.Cap()
	w.tail = (w.tail + c - 1) % c
	w.len--
	return w.buf.Slot(w.tail), true
}

func (w *Window[T]) step(backward bool) (*T, bool) {
	if backward {
		return w.NextBack()
	}
	return w.NextFront()
}

// Values returns a restartable sequence of element copies. open is called
// once per range loop so every loop sees the container as it is then.
func Values[T any](open func() Window[T], backward bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		w := open()
		for {
			p, ok := w.step(backward)
			if !ok || !yield(*p) {
				return
			}
		}
	}
}

// Pointers is Values yielding slot addresses for in-place writes.
func Pointers[T any](open func() Window[T], backward bool) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		w := open()
		for {
			p, ok := w.step(backward)
			if !ok || !yield(p) {
				return
			}
		}
	}
}
