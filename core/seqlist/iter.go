// File: core/seqlist/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package seqlist

import (
	"iter"

	"github.com/momentics/hioload-ds/internal/cursor"
	"github.com/momentics/hioload-ds/pool"
)

func (l *List[T]) window() cursor.Window[T] {
	return cursor.NewWindow(l.raw.Shadow(), 0, l.len, l.version.Stamp())
}

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] { return cursor.Values(l.window, false) }

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] { return cursor.Values(l.window, true) }

// AllMut yields element addresses front to back for in-place updates.
func (l *List[T]) AllMut() iter.Seq[*T] { return cursor.Pointers(l.window, false) }

// BackwardMut yields element addresses back to front.
func (l *List[T]) BackwardMut() iter.Seq[*T] { return cursor.Pointers(l.window, true) }

// Iter opens a read-only cursor. Any structural mutation of the list makes
// the next cursor step panic with api.ErrConcurrentModification.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{w: l.window()}
}

// IterMut opens a cursor yielding element addresses.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{w: l.window()}
}

// Iter is a double-ended read-only cursor.
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

// IntoIter consumes the list. The list is left empty with zero capacity and
// the returned iterator takes over its buffer: Close destroys the values not
// yet yielded and deallocates.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{raw: l.raw, tail: l.len}
	l.raw = pool.Allocate[T](0)
	l.len = 0
	l.version.Bump()
	return it
}

// IntoIter yields owned values from either end.
type IntoIter[T any] struct {
	raw  *pool.RawBuffer[T]
	head int // next front slot
	tail int // one past the next back slot
}

func (it *IntoIter[T]) Len() int { return it.tail - it.head }

func (it *IntoIter[T]) Next() (T, bool) {
	if it.head == it.tail {
		var zero T
		return zero, false
	}
	v := pool.Take(it.raw.Slot(it.head))
	it.head++
	return v, true
}

func (it *IntoIter[T]) NextBack() (T, bool) {
	if it.head == it.tail {
		var zero T
		return zero, false
	}
	it.tail--
	return pool.Take(it.raw.Slot(it.tail)), true
}

// Close destroys the remaining values and releases the buffer. It is safe
// to call more than once.
func (it *IntoIter[T]) Close() {
	if it.raw == nil {
		return
	}
	pool.DropInPlace(it.raw.Span(it.head, it.tail))
	it.raw.Deallocate()
	it.raw = nil
	it.head, it.tail = 0, 0
}

// All drains the iterator front to back and closes it when the loop ends,
// including on break.
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
