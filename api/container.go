// File: api/container.go
// Author: momentics <momentics@gmail.com>
//
// Container contracts implemented by core/seqlist, core/ringdeque,
// core/linkedlist and the facade types.

package api

import "iter"

// Dropper is implemented by element types that hold resources of their own.
// A container calls Drop exactly once for every element it destroys; values
// moved out through Pop, Remove or an owning iterator are never dropped by
// the container.
type Dropper interface {
	Drop()
}

// Container is the common surface of every collection.
type Container interface {
	Len() int
	IsEmpty() bool
	// Clear destroys all live elements and keeps the backing memory.
	Clear()
	// Close destroys all live elements and releases the backing memory.
	// The container is empty with zero capacity afterwards.
	Close()
}

// Deque is a double-ended sequence.
type Deque[T any] interface {
	Container
	PushBack(elem T)
	PushFront(elem T)
	PopBack() (T, bool)
	PopFront() (T, bool)
	Front() (T, bool)
	Back() (T, bool)
	All() iter.Seq[T]
	Backward() iter.Seq[T]
}

// Queue is a FIFO view.
type Queue[T any] interface {
	Container
	Enqueue(elem T)
	Dequeue() (T, bool)
	Front() (T, bool)
}

// Stack is a LIFO view.
type Stack[T any] interface {
	Container
	Push(elem T)
	Pop() (T, bool)
	Top() (T, bool)
}
