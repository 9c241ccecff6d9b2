package facade_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/facade"
	"github.com/momentics/hioload-ds/fake"
	"github.com/momentics/hioload-ds/pool"
)

func TestQueueFIFO(t *testing.T) {
	q := facade.NewQueue[int]()
	defer q.Close()
	for i := 0; i < 10; i++ {
		q.Enqueue(i)
	}
	front, _ := q.Front()
	require.Equal(t, 0, front)
	for i := 0; i < 4; i++ {
		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.Equal(t, 6, q.Len())
	require.Equal(t, []int{4, 5, 6, 7, 8, 9}, slices.Collect(q.All()))
}

func TestStackLIFO(t *testing.T) {
	s := facade.NewStack[int](3)
	defer s.Close()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.ErrorIs(t, s.TryPush(4), api.ErrCapacityExceeded)
	top, _ := s.Top()
	require.Equal(t, 3, top)
	for want := 3; want >= 1; want-- {
		v, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok := s.Pop()
	require.False(t, ok)
	require.True(t, s.IsEmpty())
}

func TestFacadesReleaseEverything(t *testing.T) {
	tr := pool.NewTracker()
	led := fake.NewLedger()

	s := facade.NewStack[fake.Item](4, pool.WithTracker(tr))
	s.Push(led.Item(1))
	s.Push(led.Item(2))
	for p := range s.AllMut() {
		p.ID += 10
	}
	l := s.IntoSequenceList()
	require.Equal(t, []int{11, 12}, fake.IDs(l.Slice()))
	l.Close()

	q := facade.NewQueue[fake.Item]()
	q.Enqueue(led.Item(3))
	q.Enqueue(led.Item(4))
	q.Clear()
	q.Enqueue(led.Item(5))
	q.Close()

	require.Equal(t, 5, led.Total())
	require.Empty(t, led.Repeated())
	require.False(t, tr.Stats().Leaked())
}
