// File: core/linkedlist/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package linkedlist

import (
	"iter"

	"github.com/momentics/hioload-ds/internal/guard"
)

// ring is a double-ended cursor over the node ring with its own copy of
// the ends and remaining length.
type ring[T any] struct {
	l     *List[T]
	head  int
	tail  int
	len   int
	stamp guard.Stamp
}

func (l *List[T]) ring() ring[T] {
	r := ring[T]{l: l, head: l.head, tail: none, len: l.len, stamp: l.version.Stamp()}
	if l.len > 0 {
		r.tail = l.node(l.head).prev
	}
	return r
}

func (r *ring[T]) nextFront() (*T, bool) {
	r.stamp.Check()
	if r.len == 0 {
		return nil, false
	}
	n := r.l.node(r.head)
	r.head = n.next
	r.len--
	return &n.elem, true
}

func (r *ring[T]) nextBack() (*T, bool) {
	r.stamp.Check()
	if r.len == 0 {
		return nil, false
	}
	n := r.l.node(r.tail)
	r.tail = n.prev
	r.len--
	return &n.elem, true
}

func (r *ring[T]) step(backward bool) (*T, bool) {
	if backward {
		return r.nextBack()
	}
	return r.nextFront()
}

func (l *List[T]) values(backward bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		r := l.ring()
		for {
			p, ok := r.step(backward)
			if !ok || !yield(*p) {
				return
			}
		}
	}
}

func (l *List[T]) pointers(backward bool) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		r := l.ring()
		for {
			p, ok := r.step(backward)
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// All yields the elements from the anchor forward.
func (l *List[T]) All() iter.Seq[T] { return l.values(false) }

// Backward yields the elements from the back to the anchor.
func (l *List[T]) Backward() iter.Seq[T] { return l.values(true) }

// AllMut yields element addresses from the anchor forward.
func (l *List[T]) AllMut() iter.Seq[*T] { return l.pointers(false) }

// BackwardMut yields element addresses from the back.
func (l *List[T]) BackwardMut() iter.Seq[*T] { return l.pointers(true) }

// Iter opens a read-only cursor. Any structural mutation through the list
// makes the next step panic with api.ErrConcurrentModification.
func (l *List[T]) Iter() *Iter[T] { return &Iter[T]{r: l.ring()} }

// IterMut opens a cursor yielding element addresses.
func (l *List[T]) IterMut() *IterMut[T] { return &IterMut[T]{r: l.ring()} }

// Iter is a double-ended read-only cursor.
type Iter[T any] struct {
	r ring[T]
}

func (it *Iter[T]) Len() int { return it.r.len }

func (it *Iter[T]) Next() (T, bool) {
	p, ok := it.r.nextFront()
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

func (it *Iter[T]) NextBack() (T, bool) {
	p, ok := it.r.nextBack()
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// IterMut is a double-ended cursor over element addresses.
type IterMut[T any] struct {
	r ring[T]
}

func (it *IterMut[T]) Len() int             { return it.r.len }
func (it *IterMut[T]) Next() (*T, bool)     { return it.r.nextFront() }
func (it *IterMut[T]) NextBack() (*T, bool) { return it.r.nextBack() }

// IntoIter consumes the list. The returned iterator owns every node; the
// list is left empty with a fresh arena.
func (l *List[T]) IntoIter() *IntoIter[T] {
	owned := &List[T]{cfg: l.cfg, arena: l.arena, head: l.head, len: l.len}
	fresh := newWithConfig[T](l.cfg)
	l.arena, l.head, l.len = fresh.arena, none, 0
	l.version.Bump()
	return &IntoIter[T]{l: owned}
}

// IntoIter pops owned values from either end. Close destroys the rest and
// releases the arena.
type IntoIter[T any] struct {
	l *List[T]
}

func (it *IntoIter[T]) Len() int            { return it.l.Len() }
func (it *IntoIter[T]) Next() (T, bool)     { return it.l.PopFront() }
func (it *IntoIter[T]) NextBack() (T, bool) { return it.l.PopBack() }

// Close is idempotent.
func (it *IntoIter[T]) Close() { it.l.Close() }

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
