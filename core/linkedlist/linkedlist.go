// File: core/linkedlist/linkedlist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package linkedlist implements an unbounded circular doubly linked list.
// Nodes live in a pool.Arena and link to each other by slot index, so the
// ring has no pointer cycles and a freed node can never be reached through
// a stale address: the arena rejects access to freed slots.
package linkedlist

import (
	"iter"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/internal/guard"
	"github.com/momentics/hioload-ds/pool"
)

const none = -1

type node[T any] struct {
	elem T
	prev int
	next int
}

// List is a circular doubly linked list. head is the anchor (logical
// front); the node before it is the back. Following next len times from
// head returns to head. It is not safe for concurrent use.
type List[T any] struct {
	cfg     config
	arena   *pool.Arena[node[T]]
	head    int
	len     int
	version guard.Version
}

var _ api.Deque[any] = (*List[any])(nil)

type config struct {
	chunkSize int
	alloc     []pool.AllocOption
}

// Option configures a List.
type Option func(*config)

// WithChunkSize sets how many nodes each arena chunk holds.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithAllocOptions forwards options to every arena chunk allocation.
func WithAllocOptions(opts ...pool.AllocOption) Option {
	return func(c *config) {
		c.alloc = append(c.alloc, opts...)
	}
}

// New returns an empty list. Node memory is reserved on first insertion.
func New[T any](opts ...Option) *List[T] {
	cfg := config{chunkSize: pool.DefaultChunkSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newWithConfig[T](cfg)
}

func newWithConfig[T any](cfg config) *List[T] {
	return &List[T]{
		cfg:   cfg,
		arena: pool.NewArena[node[T]](cfg.chunkSize, cfg.alloc...),
		head:  none,
	}
}

// FromSeq builds a list by appending every value of seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *List[T] {
	l := New[T](opts...)
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) Len() int      { return l.len }
func (l *List[T]) IsEmpty() bool { return l.len == 0 }

func (l *List[T]) node(i int) *node[T] { return l.arena.At(i) }

// init makes elem the only node. Requires len == 0.
func (l *List[T]) init(elem T) {
	i := l.arena.Alloc()
	n := l.node(i)
	n.elem, n.prev, n.next = elem, i, i
	l.head = i
	l.len = 1
}

// deinit removes the only node. Requires len == 1.
func (l *List[T]) deinit() T {
	i := l.head
	l.head = none
	l.len = 0
	return l.consume(i)
}

// link allocates a node for elem between prev and next.
func (l *List[T]) link(elem T, prev, next int) int {
	i := l.arena.Alloc()
	n := l.node(i)
	n.elem, n.prev, n.next = elem, prev, next
	l.node(prev).next = i
	l.node(next).prev = i
	return i
}

// unlink joins the neighbours of node i. The node itself is left intact.
func (l *List[T]) unlink(i int) {
	n := l.node(i)
	l.node(n.prev).next = n.next
	l.node(n.next).prev = n.prev
}

// consume moves the element out of node i and frees the node.
func (l *List[T]) consume(i int) T {
	elem := pool.Take(&l.node(i).elem)
	l.arena.Free(i)
	return elem
}

// PushBack appends elem as the new last node; the anchor is unchanged.
func (l *List[T]) PushBack(elem T) {
	if l.len == 0 {
		l.init(elem)
	} else {
		l.link(elem, l.node(l.head).prev, l.head)
		l.len++
	}
	l.version.Bump()
}

// PushFront appends elem and moves the anchor back onto it.
func (l *List[T]) PushFront(elem T) {
	l.PushBack(elem)
	l.head = l.node(l.head).prev
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, bool) {
	switch l.len {
	case 0:
		var zero T
		return zero, false
	case 1:
		l.version.Bump()
		return l.deinit(), true
	}
	tail := l.node(l.head).prev
	l.unlink(tail)
	l.len--
	l.version.Bump()
	return l.consume(tail), true
}

// PopFront removes and returns the anchor element; its successor becomes
// the anchor.
func (l *List[T]) PopFront() (T, bool) {
	switch l.len {
	case 0:
		var zero T
		return zero, false
	case 1:
		l.version.Bump()
		return l.deinit(), true
	}
	front := l.head
	l.head = l.node(front).next
	l.unlink(front)
	l.len--
	l.version.Bump()
	return l.consume(front), true
}

// Front returns a copy of the anchor element.
func (l *List[T]) Front() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.node(l.head).elem, true
}

// Back returns a copy of the last element.
func (l *List[T]) Back() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.node(l.node(l.head).prev).elem, true
}

// Clear walks the ring exactly len times from the anchor, destroying each
// element and freeing its node. The successor index is read before a node
// is freed.
func (l *List[T]) Clear() {
	i, n := l.head, l.len
	l.head = none
	l.len = 0
	l.version.Bump()
	for k := 0; k < n; k++ {
		nd := l.node(i)
		next := nd.next
		pool.Drop(&nd.elem)
		l.arena.Free(i)
		i = next
	}
}

// Close destroys every element and releases the node arena.
func (l *List[T]) Close() {
	l.Clear()
	l.arena.Release()
}
