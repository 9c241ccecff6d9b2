// File: facade/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package facade exposes FIFO and LIFO views over the core containers.
// Both types only delegate; all invariants belong to the wrapped container.
package facade

import (
	"iter"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/core/linkedlist"
)

// Queue is a FIFO over a linked list: enqueue at the back, dequeue at the front.
type Queue[T any] struct {
	list *linkedlist.List[T]
}

var _ api.Queue[any] = (*Queue[any])(nil)

// NewQueue returns an empty unbounded queue.
func NewQueue[T any](opts ...linkedlist.Option) *Queue[T] {
	return &Queue[T]{list: linkedlist.New[T](opts...)}
}

func (q *Queue[T]) Enqueue(elem T)       { q.list.PushBack(elem) }
func (q *Queue[T]) Dequeue() (T, bool)   { return q.list.PopFront() }
func (q *Queue[T]) Front() (T, bool)     { return q.list.Front() }
func (q *Queue[T]) Len() int             { return q.list.Len() }
func (q *Queue[T]) IsEmpty() bool        { return q.list.IsEmpty() }
func (q *Queue[T]) Clear()               { q.list.Clear() }
func (q *Queue[T]) Close()               { q.list.Close() }
func (q *Queue[T]) All() iter.Seq[T]     { return q.list.All() }
func (q *Queue[T]) AllMut() iter.Seq[*T] { return q.list.AllMut() }

// IntoLinkedList returns the underlying list; the queue must not be used afterwards.
func (q *Queue[T]) IntoLinkedList() *linkedlist.List[T] {
	l := q.list
	q.list = nil
	return l
}
