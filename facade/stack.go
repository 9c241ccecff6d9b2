// File: facade/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"iter"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/core/seqlist"
	"github.com/momentics/hioload-ds/pool"
)

// Stack is a LIFO over the tail of a sequence list. It is bounded by the
// capacity given to NewStack; pushing onto a full stack aborts.
type Stack[T any] struct {
	list *seqlist.List[T]
}

var _ api.Stack[any] = (*Stack[any])(nil)

// NewStack returns an empty stack holding at most capacity elements.
func NewStack[T any](capacity int, opts ...pool.AllocOption) *Stack[T] {
	return &Stack[T]{list: seqlist.New[T](capacity, opts...)}
}

func (s *Stack[T]) Push(elem T)          { s.list.Push(elem) }
func (s *Stack[T]) TryPush(elem T) error { return s.list.TryPush(elem) }
func (s *Stack[T]) Pop() (T, bool)       { return s.list.Pop() }
func (s *Stack[T]) Top() (T, bool)       { return s.list.Last() }
func (s *Stack[T]) Len() int             { return s.list.Len() }
func (s *Stack[T]) Cap() int             { return s.list.Cap() }
func (s *Stack[T]) IsEmpty() bool        { return s.list.IsEmpty() }
func (s *Stack[T]) Clear()               { s.list.Clear() }
func (s *Stack[T]) Close()               { s.list.Close() }

// All yields from the bottom of the stack to the top.
func (s *Stack[T]) All() iter.Seq[T] { return s.list.All() }

// AllMut yields element addresses from the bottom to the top.
func (s *Stack[T]) AllMut() iter.Seq[*T] { return s.list.AllMut() }

// IntoSequenceList returns the underlying list; the stack must not be used afterwards.
func (s *Stack[T]) IntoSequenceList() *seqlist.List[T] {
	l := s.list
	s.list = nil
	return l
}
