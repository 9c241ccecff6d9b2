// File: cmd/dsctl/scenario.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/momentics/hioload-ds/core/linkedlist"
	"github.com/momentics/hioload-ds/core/ringdeque"
	"github.com/momentics/hioload-ds/core/seqlist"
	"github.com/momentics/hioload-ds/pool"
)

type scenarioFunc func(w io.Writer, opts ...pool.AllocOption)

var scenarios = map[string]scenarioFunc{
	"a": scenarioRingDeque,
	"b": scenarioSeqList,
	"c": scenarioLinkedList,
}

func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [a|b|c]",
		Short: "Replay reference scenarios",
		Long: `Replays the reference scenarios step by step:

  a  ring deque of capacity 3
  b  sequence list insert and remove
  c  linked list pushes and pops at both ends

With no argument every scenario runs in order.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"a", "b", "c"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"a", "b", "c"}
			if len(args) == 1 {
				names = []string{strings.ToLower(args[0])}
			}
			return runScenarios(cmd.OutOrStdout(), names)
		},
	}
}

func runScenarios(w io.Writer, names []string) error {
	for _, name := range names {
		fn, ok := scenarios[name]
		if !ok {
			return errors.Newf("unknown scenario %q", name)
		}
		tr := pool.NewTracker()
		fmt.Fprintf(w, "scenario %s\n", name)
		fn(w, pool.WithTracker(tr))
		if st := tr.Stats(); st.Leaked() {
			return errors.AssertionFailedf("scenario %s leaked %d allocations", name, st.InUse)
		}
	}
	return nil
}

func show[T any](seq iter.Seq[T]) string {
	return fmt.Sprint(slices.Collect(seq))
}

func scenarioRingDeque(w io.Writer, opts ...pool.AllocOption) {
	d := ringdeque.New[int](3, opts...)
	defer d.Close()

	d.PushBack(1)
	v, _ := d.PopFront()
	fmt.Fprintf(w, "  push_back(1) pop_front() -> %d\n", v)
	d.PushBack(2)
	v, _ = d.PopFront()
	fmt.Fprintf(w, "  push_back(2) pop_front() -> %d\n", v)
	d.PushBack(3)
	d.Clear()
	fmt.Fprintf(w, "  push_back(3) clear() len=%d\n", d.Len())
	d.PushFront(4)
	d.PushFront(5)
	fmt.Fprintf(w, "  push_front(4) push_front(5) forward=%s\n", show(d.All()))
}

func scenarioSeqList(w io.Writer, opts ...pool.AllocOption) {
	l := seqlist.New[int](4, opts...)
	defer l.Close()

	l.Push(1)
	l.Push(2)
	l.Insert(1, 3)
	fmt.Fprintf(w, "  push(1) push(2) insert(1, 3) -> %s\n", show(l.All()))
	v := l.Remove(1)
	fmt.Fprintf(w, "  remove(1) -> %d %s\n", v, show(l.All()))
	v, _ = l.Pop()
	fmt.Fprintf(w, "  pop() -> %d %s\n", v, show(l.All()))
}

func scenarioLinkedList(w io.Writer, opts ...pool.AllocOption) {
	l := linkedlist.New[int](linkedlist.WithAllocOptions(opts...))
	defer l.Close()

	l.PushBack(2)
	l.PushFront(1)
	fmt.Fprintf(w, "  push_back(2) push_front(1) forward=%s\n", show(l.All()))
	v, _ := l.PopFront()
	fmt.Fprintf(w, "  pop_front() -> %d\n", v)
	v, _ = l.PopBack()
	fmt.Fprintf(w, "  pop_back() -> %d empty=%t\n", v, l.IsEmpty())
}
