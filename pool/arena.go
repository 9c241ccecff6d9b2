// File: pool/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Arena hands out fixed-size slots addressed by integer index. Slots live in
// chunks obtained from Allocate and never move, so an index stays valid until
// it is freed. Freed indices are recycled in FIFO order.

package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/internal/logger"
)

// DefaultChunkSize is the number of slots per arena chunk.
const DefaultChunkSize = 64

type arenaSlot[N any] struct {
	val  N
	live bool
}

// Arena is an unbounded slot allocator. It is not safe for concurrent use.
type Arena[N any] struct {
	chunkSize int
	chunks    []*RawBuffer[arenaSlot[N]]
	free      *queue.Queue // recycled indices
	next      int          // first index never handed out
	live      int
	opts      []AllocOption
}

// NewArena creates an empty arena. No memory is reserved until the first Alloc.
func NewArena[N any](chunkSize int, opts ...AllocOption) *Arena[N] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena[N]{
		chunkSize: chunkSize,
		free:      queue.New(),
		opts:      opts,
	}
}

// Alloc reserves a slot and returns its index. The slot holds the zero N.
func (a *Arena[N]) Alloc() int {
	var idx int
	if a.free.Length() > 0 {
		idx = a.free.Remove().(int)
	} else {
		if a.next == len(a.chunks)*a.chunkSize {
			a.chunks = append(a.chunks, Allocate[arenaSlot[N]](a.chunkSize, a.opts...))
		}
		idx = a.next
		a.next++
	}
	a.slot(idx).live = true
	a.live++
	return idx
}

// At returns the value stored in slot i. It panics with api.ErrUseAfterFree
// if the slot is not allocated.
func (a *Arena[N]) At(i int) *N {
	s := a.slot(i)
	if !s.live {
		panic(errors.Wrapf(api.ErrUseAfterFree, "arena slot %d", redact.Safe(i)))
	}
	return &s.val
}

// Free zeroes slot i and makes it available again. The caller must already
// have destroyed or moved out the value. Freeing a free slot panics with
// api.ErrDoubleFree.
func (a *Arena[N]) Free(i int) {
	s := a.slot(i)
	if !s.live {
		panic(errors.Wrapf(api.ErrDoubleFree, "arena slot %d", redact.Safe(i)))
	}
	var zero N
	s.val = zero
	s.live = false
	a.live--
	a.free.Add(i)
}

// Live returns the number of allocated slots.
func (a *Arena[N]) Live() int {
	return a.live
}

// Cap returns the number of slots currently reserved.
func (a *Arena[N]) Cap() int {
	return len(a.chunks) * a.chunkSize
}

// Release deallocates every chunk. Slots still live at this point are
// discarded without being destroyed, which is reported as a leak.
func (a *Arena[N]) Release() {
	if a.live != 0 {
		logger.L().Warn("arena released with live slots", zap.Int("live", a.live))
	}
	for _, c := range a.chunks {
		c.Deallocate()
	}
	a.chunks = nil
	a.free = queue.New()
	a.next = 0
	a.live = 0
}

func (a *Arena[N]) slot(i int) *arenaSlot[N] {
	if i < 0 || i >= a.next {
		panic(api.OutOfBounds("arena slot", i, a.next))
	}
	return a.chunks[i/a.chunkSize].Slot(i % a.chunkSize)
}
