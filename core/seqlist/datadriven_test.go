package seqlist_test

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/core/seqlist"
	"github.com/momentics/hioload-ds/pool"
)

// TestDataDriven runs the scripts under testdata. Commands:
//
//	new cap=<n>
//	push <v>...
//	pop
//	insert idx=<i> val=<v>
//	remove idx=<i>
//	clear
//	print
//
// Every command prints its result followed by the list contents.
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var l *seqlist.List[int]
		tr := pool.NewTracker()
		defer func() {
			if l != nil {
				l.Close()
			}
		}()

		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) (out string) {
			defer func() {
				if err := api.Recovered(recover()); err != nil {
					out = fmt.Sprintf("error: %v\n%s", err, render(l))
				}
			}()
			switch d.Cmd {
			case "new":
				var capacity int
				d.ScanArgs(t, "cap", &capacity)
				if l != nil {
					l.Close()
				}
				l = seqlist.New[int](capacity, pool.WithTracker(tr))
				return render(l)
			case "push":
				for _, arg := range d.CmdArgs {
					l.Push(atoi(t, arg.Key))
				}
				return render(l)
			case "pop":
				v, ok := l.Pop()
				if !ok {
					return "empty\n" + render(l)
				}
				return fmt.Sprintf("%d\n%s", v, render(l))
			case "insert":
				var idx, val int
				d.ScanArgs(t, "idx", &idx)
				d.ScanArgs(t, "val", &val)
				l.Insert(idx, val)
				return render(l)
			case "remove":
				var idx int
				d.ScanArgs(t, "idx", &idx)
				v := l.Remove(idx)
				return fmt.Sprintf("%d\n%s", v, render(l))
			case "clear":
				l.Clear()
				return render(l)
			case "print":
				return render(l)
			case "stats":
				st := tr.Stats()
				return fmt.Sprintf("in-use=%d bytes=%d", st.InUse, st.BytesInUse)
			case "close":
				l.Close()
				return render(l)
			default:
				t.Fatalf("unknown command %q", d.Cmd)
				return ""
			}
		})
	})
}

func render(l *seqlist.List[int]) string {
	if l == nil {
		return "<nil>"
	}
	parts := make([]string, 0, l.Len())
	for _, v := range slices.Collect(l.All()) {
		parts = append(parts, strconv.Itoa(v))
	}
	return fmt.Sprintf("[%s] len=%d cap=%d", strings.Join(parts, " "), l.Len(), l.Cap())
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	v, err := strconv.Atoi(s)
	if err != nil {
		t.Fatalf("bad integer %q", s)
	}
	return v
}
