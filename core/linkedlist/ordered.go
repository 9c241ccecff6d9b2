// File: core/linkedlist/ordered.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package linkedlist

import "golang.org/x/exp/constraints"

// InsertSortedFunc inserts elem into a list kept sorted by earlier
// InsertSortedFunc calls. It scans forward from the anchor for the first
// element strictly greater than elem and links the new node just before
// it, so equal elements keep insertion order. When elem is smaller than the
// anchor it becomes the new anchor; when nothing is greater it is appended.
// Mixing PushBack/PushFront with sorted insertion voids the ordering.
func (l *List[T]) InsertSortedFunc(elem T, cmp func(a, b T) int) {
	defer l.version.Bump()
	if l.len == 0 {
		l.init(elem)
		return
	}
	at, k := l.head, 0
	for ; k < l.len; k++ {
		if cmp(l.node(at).elem, elem) > 0 {
			break
		}
		at = l.node(at).next
	}
	i := l.link(elem, l.node(at).prev, at)
	l.len++
	if k == 0 {
		l.head = i
	}
}

// OrderedInsert is InsertSortedFunc using the natural order of T.
func OrderedInsert[T constraints.Ordered](l *List[T], elem T) {
	l.InsertSortedFunc(elem, func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
}
