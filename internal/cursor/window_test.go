package cursor

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/internal/guard"
	"github.com/momentics/hioload-ds/pool"
)

func fill(t *testing.T, vals ...int) *pool.RawBuffer[int] {
	t.Helper()
	b := pool.Allocate[int](len(vals), pool.WithTracker(pool.NewTracker()))
	for i, v := range vals {
		*b.Slot(i) = v
	}
	t.Cleanup(b.Deallocate)
	return b
}

func TestWindowWrapsBothDirections(t *testing.T) {
	b := fill(t, 10, 11, 12, 13, 14)
	var v guard.Version
	open := func() Window[int] { return NewWindow(b.Shadow(), 3, 4, v.Stamp()) }

	require.Equal(t, []int{13, 14, 10, 11}, slices.Collect(Values(open, false)))
	require.Equal(t, []int{11, 10, 14, 13}, slices.Collect(Values(open, true)))
}

func TestWindowMixedEnds(t *testing.T) {
	b := fill(t, 1, 2, 3)
	w := NewWindow(b.Shadow(), 0, 3, guard.Stamp{})
	p, ok := w.NextBack()
	require.True(t, ok)
	require.Equal(t, 3, *p)
	p, _ = w.NextFront()
	require.Equal(t, 1, *p)
	p, _ = w.NextFront()
	require.Equal(t, 2, *p)
	require.Equal(t, 0, w.Len())
	_, ok = w.NextBack()
	require.False(t, ok)
}

func TestPointersWriteThrough(t *testing.T) {
	b := fill(t, 1, 2, 3)
	open := func() Window[int] { return NewWindow(b.Shadow(), 0, 3, guard.Stamp{}) }
	for p := range Pointers(open, false) {
		*p *= 10
	}
	require.Equal(t, []int{10, 20, 30}, b.Span(0, 3))
}

func TestWindowFailsFastOnMutation(t *testing.T) {
	b := fill(t, 1, 2, 3)
	var v guard.Version
	w := NewWindow(b.Shadow(), 0, 3, v.Stamp())
	_, ok := w.NextFront()
	require.True(t, ok)
	v.Bump()
	defer func() {
		require.True(t, errors.Is(api.Recovered(recover()), api.ErrConcurrentModification))
	}()
	w.NextFront()
}

func TestEmptyZeroCapacityWindow(t *testing.T) {
	b := pool.Allocate[int](0)
	w := NewWindow(b.Shadow(), 0, 0, guard.Stamp{})
	_, ok := w.NextFront()
	require.False(t, ok)
	_, ok = w.NextBack()
	require.False(t, ok)
}
