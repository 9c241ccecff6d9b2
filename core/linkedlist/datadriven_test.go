package linkedlist_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/momentics/hioload-ds/core/linkedlist"
	"github.com/momentics/hioload-ds/pool"
)

// TestDataDriven runs the scripts under testdata. Commands:
//
//	new [chunk=<n>]
//	push-back <v>... | push-front <v>... | ordered-insert <v>...
//	pop-front | pop-back | clear | print | close | stats
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var l *linkedlist.List[int]
		tr := pool.NewTracker()
		defer func() {
			if l != nil {
				l.Close()
			}
		}()

		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "new":
				chunk := 0
				if d.HasArg("chunk") {
					d.ScanArgs(t, "chunk", &chunk)
				}
				if l != nil {
					l.Close()
				}
				l = linkedlist.New[int](linkedlist.WithChunkSize(chunk),
					linkedlist.WithAllocOptions(pool.WithTracker(tr)))
				return render(t, l)
			case "push-back", "push-front", "ordered-insert":
				for _, arg := range d.CmdArgs {
					v, err := strconv.Atoi(arg.Key)
					if err != nil {
						t.Fatalf("bad integer %q", arg.Key)
					}
					switch d.Cmd {
					case "push-back":
						l.PushBack(v)
					case "push-front":
						l.PushFront(v)
					default:
						linkedlist.OrderedInsert(l, v)
					}
				}
				return render(t, l)
			case "pop-front", "pop-back":
				var v int
				var ok bool
				if d.Cmd == "pop-front" {
					v, ok = l.PopFront()
				} else {
					v, ok = l.PopBack()
				}
				if !ok {
					return "empty\n" + render(t, l)
				}
				return fmt.Sprintf("%d\n%s", v, render(t, l))
			case "clear":
				l.Clear()
				return render(t, l)
			case "close":
				l.Close()
				return render(t, l)
			case "print":
				return render(t, l)
			case "stats":
				st := tr.Stats()
				return fmt.Sprintf("in-use=%d", st.InUse)
			default:
				t.Fatalf("unknown command %q", d.Cmd)
				return ""
			}
		})
	})
}

func render(t *testing.T, l *linkedlist.List[int]) string {
	if err := l.Verify(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
	join := func(vals func(func(int) bool)) string {
		var parts []string
		for v := range vals {
			parts = append(parts, strconv.Itoa(v))
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprintf("fwd=[%s] bwd=[%s] len=%d", join(l.All()), join(l.Backward()), l.Len())
}
