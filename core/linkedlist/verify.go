// File: core/linkedlist/verify.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package linkedlist

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Verify checks the ring invariants: len forward steps and len backward
// steps from the anchor both return to it, prev/next agree at every node,
// and the arena holds exactly len live nodes.
func (l *List[T]) Verify() error {
	if l.len == 0 {
		if l.head != none {
			return errors.AssertionFailedf("empty list has anchor %d", redact.Safe(l.head))
		}
		if live := l.arena.Live(); live != 0 {
			return errors.AssertionFailedf("empty list owns %d nodes", redact.Safe(live))
		}
		return nil
	}
	i := l.head
	for k := 0; k < l.len; k++ {
		n := l.node(i)
		if l.node(n.next).prev != i {
			return errors.AssertionFailedf("node %d: next.prev mismatch", redact.Safe(i))
		}
		i = n.next
	}
	if i != l.head {
		return errors.AssertionFailedf("forward walk of %d ended at %d, anchor %d",
			redact.Safe(l.len), redact.Safe(i), redact.Safe(l.head))
	}
	for k := 0; k < l.len; k++ {
		i = l.node(i).prev
	}
	if i != l.head {
		return errors.AssertionFailedf("backward walk of %d ended at %d, anchor %d",
			redact.Safe(l.len), redact.Safe(i), redact.Safe(l.head))
	}
	if live := l.arena.Live(); live != l.len {
		return errors.AssertionFailedf("len %d but %d live nodes", redact.Safe(l.len), redact.Safe(live))
	}
	return nil
}
