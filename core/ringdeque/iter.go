// File: core/ringdeque/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringdeque

import (
	"iter"

	"github.com/momentics/hioload-ds/internal/cursor"
	"github.com/momentics/hioload-ds/pool"
)

func (d *Deque[T]) window() cursor.Window[T] {
	return cursor.NewWindow(d.raw.Shadow(), d.head, d.len, d.version.Stamp())
}

// All yields the window front to back.
func (d *Deque[T]) All() iter.Seq[T] { return cursor.Values(d.window, false) }

// Backward yields the window back to front.
func (d *Deque[T]) Backward() iter.Seq[T] { return cursor.Values(d.window, true) }

// AllMut yields element addresses front to back.
func (d *Deque[T]) AllMut() iter.Seq[*T] { return cursor.Pointers(d.window, false) }

// BackwardMut yields element addresses back to front.
func (d *Deque[T]) BackwardMut() iter.Seq[*T] { return cursor.Pointers(d.window, true) }

// Iter opens an independent read-only cursor over the window.
func (d *Deque[T]) Iter() *Iter[T] { return &Iter[T]{w: d.window()} }

// IterMut opens an independent cursor yielding element addresses.
func (d *Deque[T]) IterMut() *IterMut[T] { return &IterMut[T]{w: d.window()} }

// Iter is a double-ended read-only cursor. It keeps its own head, tail and
// length and panics with api.ErrConcurrentModification once the deque has
// been structurally modified.
type Iter[T any] struct {
	w cursor.Window[T]
}

func (it *Iter[T]) Len() int { return it.w.Len() }

func (it *Iter[T]) Next() (T, bool) {
	p, ok := it.w.NextFront()
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

func (it *Iter[T]) NextBack() (T, bool) {
	p, ok := it.w.NextBack()
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// IterMut is a double-ended cursor over element addresses.
type IterMut[T any] struct {
	w cursor.Window[T]
}

func (it *IterMut[T]) Len() int             { return it.w.Len() }
func (it *IterMut[T]) Next() (*T, bool)     { return it.w.NextFront() }
func (it *IterMut[T]) NextBack() (*T, bool) { return it.w.NextBack() }

// IntoIter consumes the deque: the returned iterator owns the buffer and
// the deque is left empty with zero capacity.
func (d *Deque[T]) IntoIter() *IntoIter[T] {
	owned := &Deque[T]{raw: d.raw, head: d.head, tail: d.tail, len: d.len}
	d.raw = pool.Allocate[T](0)
	d.head, d.tail, d.len = 0, 0, 0
	d.version.Bump()
	return &IntoIter[T]{d: owned}
}

// IntoIter pops owned values from either end. Close destroys whatever is
// left and releases the buffer.
type IntoIter[T any] struct {
	d *Deque[T]
}

func (it *IntoIter[T]) Len() int            { return it.d.Len() }
func (it *IntoIter[T]) Next() (T, bool)     { return it.d.PopFront() }
func (it *IntoIter[T]) NextBack() (T, bool) { return it.d.PopBack() }

// Close is idempotent.
func (it *IntoIter[T]) Close() { it.d.Close() }

// All drains front to back and closes the iterator when the loop ends.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
