package ringdeque_test

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/eapache/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/core/ringdeque"
	"github.com/momentics/hioload-ds/fake"
	"github.com/momentics/hioload-ds/pool"
)

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		err := api.Recovered(recover())
		require.Error(t, err, "expected panic")
		require.True(t, errors.Is(err, target), "got %v", err)
	}()
	fn()
}

func TestScenarioA(t *testing.T) {
	d := ringdeque.New[int](3, pool.WithTracker(pool.NewTracker()))
	defer d.Close()

	d.PushBack(1)
	v, _ := d.PopFront()
	require.Equal(t, 1, v)
	d.PushBack(2)
	v, _ = d.PopFront()
	require.Equal(t, 2, v)
	d.PushBack(3)
	d.Clear()
	d.PushFront(4)
	d.PushFront(5)
	require.Equal(t, []int{5, 4}, slices.Collect(d.All()))
	require.Equal(t, []int{4, 5}, slices.Collect(d.Backward()))
}

func TestCapacity(t *testing.T) {
	const c = 4
	d := ringdeque.New[int](c)
	defer d.Close()
	for i := 0; i < c; i++ {
		d.PushBack(i)
	}
	require.True(t, d.IsFull())
	requirePanicsWith(t, api.ErrCapacityExceeded, func() { d.PushBack(9) })
	requirePanicsWith(t, api.ErrCapacityExceeded, func() { d.PushFront(9) })
	require.False(t, d.Enqueue(9))

	v, ok := d.PopFront()
	require.True(t, ok)
	require.Equal(t, 0, v)
	require.NoError(t, d.TryPushBack(4))
	require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(d.All()))
}

func TestZeroCapacity(t *testing.T) {
	d := ringdeque.New[int](0)
	require.ErrorIs(t, d.TryPushBack(1), api.ErrCapacityExceeded)
	require.ErrorIs(t, d.TryPushFront(1), api.ErrCapacityExceeded)
	_, ok := d.PopFront()
	require.False(t, ok)
	_, ok = d.PopBack()
	require.False(t, ok)
	_, ok = d.Front()
	require.False(t, ok)
	require.Empty(t, slices.Collect(d.All()))
	d.Clear()
	d.Close()
}

func TestFIFOAgainstReference(t *testing.T) {
	d := ringdeque.New[int](5)
	defer d.Close()
	ref := queue.New()

	pushed, popped := 0, 0
	for step := 0; step < 200; step++ {
		if step%3 != 2 && !d.IsFull() {
			d.PushBack(step)
			ref.Add(step)
			pushed++
			continue
		}
		v, ok := d.PopFront()
		if ref.Length() == 0 {
			require.False(t, ok)
			continue
		}
		require.True(t, ok)
		require.Equal(t, ref.Remove().(int), v)
		popped++
		require.Equal(t, pushed-popped, d.Len())
	}
}

func TestLIFOFrontBack(t *testing.T) {
	d := ringdeque.New[int](4)
	defer d.Close()
	for i := 1; i <= 4; i++ {
		d.PushFront(i)
	}
	for want := 1; want <= 4; want++ {
		v, ok := d.PopBack()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok := d.PopBack()
	require.False(t, ok)
}

func TestWraparound(t *testing.T) {
	const c = 3
	tr := pool.NewTracker()
	led := fake.NewLedger()
	d := ringdeque.New[fake.Item](c, pool.WithTracker(tr))

	d.PushBack(led.Item(-1))
	for i := 0; i < 2*c; i++ {
		d.PushBack(led.Item(i))
		v, ok := d.PopFront()
		require.True(t, ok)
		require.Equal(t, i-1, v.ID)
	}
	front, _ := d.Front()
	back, _ := d.Back()
	require.Equal(t, 2*c-1, front.ID)
	require.Equal(t, 2*c-1, back.ID)

	// make the window wrap, then clear across the seam
	d.PushBack(led.Item(100))
	d.PushFront(led.Item(99))
	require.Equal(t, []int{99, 2*c - 1, 100}, fake.IDs(slices.Collect(d.All())))
	d.Clear()
	require.Equal(t, 3, led.Total())
	require.Empty(t, led.Repeated())

	d.PushBack(led.Item(200))
	d.Close()
	require.Equal(t, 4, led.Total())
	require.Empty(t, led.Repeated())
	require.False(t, tr.Stats().Leaked())
}

func TestAt(t *testing.T) {
	d := ringdeque.New[string](3)
	defer d.Close()
	d.PushBack("b")
	d.PushFront("a")
	d.PushBack("c")
	assert.Equal(t, "a", d.At(0))
	assert.Equal(t, "c", d.At(2))
	requirePanicsWith(t, api.ErrOutOfBounds, func() { d.At(3) })
}

func TestCursorIndependentOfDeque(t *testing.T) {
	d := ringdeque.New[int](4)
	defer d.Close()
	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)

	a, b := d.Iter(), d.Iter()
	v, _ := a.Next()
	require.Equal(t, 1, v)
	v, _ = b.NextBack()
	require.Equal(t, 3, v)
	require.Equal(t, 2, a.Len())
	require.Equal(t, 3, d.Len())

	m := d.IterMut()
	p, _ := m.NextBack()
	*p = 30
	for p := range d.AllMut() {
		*p *= 2
	}
	require.Equal(t, []int{60, 4, 2}, slices.Collect(d.Backward()))

	d.PopFront()
	requirePanicsWith(t, api.ErrConcurrentModification, func() { a.Next() })
}

func TestIntoIterDropsRemainder(t *testing.T) {
	tr := pool.NewTracker()
	led := fake.NewLedger()
	d := ringdeque.New[fake.Item](4, pool.WithTracker(tr))
	d.PushBack(led.Item(2))
	d.PushBack(led.Item(3))
	d.PushFront(led.Item(1))
	d.PushBack(led.Item(4))

	it := d.IntoIter()
	require.Equal(t, 0, d.Cap())
	v, _ := it.NextBack()
	require.Equal(t, 4, v.ID)
	for v := range it.All() {
		if v.ID == 1 {
			break
		}
	}
	require.Equal(t, 2, led.Total())
	require.Equal(t, 1, led.Drops(2))
	require.Equal(t, 1, led.Drops(3))
	it.Close()
	require.Empty(t, led.Repeated())
	require.False(t, tr.Stats().Leaked())
}

func TestWraparoundOnMappedBackend(t *testing.T) {
	const c = 8
	tr := pool.NewTracker()
	d := ringdeque.New[int64](c, pool.WithTracker(tr), pool.WithBackend(pool.Mmap()))
	if name := pool.Mmap().Name(); name != "none" {
		require.Equal(t, int64(1), tr.Stats().BackendStats[name])
	}

	ref := queue.New()
	next := int64(0)
	for cycle := 0; cycle < 2*c; cycle++ {
		for d.Len() < c {
			require.True(t, d.Enqueue(next))
			ref.Add(next)
			next++
		}
		require.False(t, d.Enqueue(next))
		for i := 0; i < c/2+cycle%3; i++ {
			v, ok := d.Dequeue()
			require.True(t, ok)
			require.Equal(t, ref.Remove().(int64), v)
		}
	}
	require.Equal(t, ref.Length(), d.Len())

	d.Close()
	d.Close()
	st := tr.Stats()
	require.False(t, st.Leaked())
	require.Equal(t, int64(1), st.TotalFree)
}
