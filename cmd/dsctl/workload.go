// File: cmd/dsctl/workload.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Randomized push/pop workload over any configured container.

package main

import (
	"context"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/control"
	"github.com/momentics/hioload-ds/core/linkedlist"
	"github.com/momentics/hioload-ds/core/ringdeque"
	"github.com/momentics/hioload-ds/core/seqlist"
	"github.com/momentics/hioload-ds/facade"
	"github.com/momentics/hioload-ds/internal/logger"
	"github.com/momentics/hioload-ds/pool"
)

// cancelCheckEvery is how many operations run between context checks.
const cancelCheckEvery = 1024

// target adapts a container to push/pop. push reports false when a
// bounded container is full.
type target interface {
	api.Container
	push(v int64) bool
	pop() (int64, bool)
}

type listTarget struct{ *seqlist.List[int64] }

func (t listTarget) push(v int64) bool  { return t.TryPush(v) == nil }
func (t listTarget) pop() (int64, bool) { return t.Pop() }

type ringTarget struct{ *ringdeque.Deque[int64] }

func (t ringTarget) push(v int64) bool  { return t.Enqueue(v) }
func (t ringTarget) pop() (int64, bool) { return t.Dequeue() }

type linkedTarget struct{ *linkedlist.List[int64] }

func (t linkedTarget) push(v int64) bool {
	t.PushBack(v)
	return true
}
func (t linkedTarget) pop() (int64, bool) { return t.PopFront() }

type queueTarget struct{ api.Queue[int64] }

func (t queueTarget) push(v int64) bool {
	t.Enqueue(v)
	return true
}
func (t queueTarget) pop() (int64, bool) { return t.Dequeue() }

type stackTarget struct{ *facade.Stack[int64] }

func (t stackTarget) push(v int64) bool  { return t.TryPush(v) == nil }
func (t stackTarget) pop() (int64, bool) { return t.Pop() }

func allocOptions(cfg *control.Config, tr *pool.Tracker) []pool.AllocOption {
	opts := []pool.AllocOption{pool.WithTracker(tr)}
	if cfg.Backend == control.BackendMmap {
		opts = append(opts, pool.WithBackend(pool.Mmap()))
	}
	return opts
}

func newTarget(cfg *control.Config, opts []pool.AllocOption) (target, func() int, error) {
	switch cfg.Container {
	case control.KindSeqList:
		l := seqlist.New[int64](cfg.Capacity, opts...)
		return listTarget{l}, l.Cap, nil
	case control.KindRingDeque:
		d := ringdeque.New[int64](cfg.Capacity, opts...)
		return ringTarget{d}, d.Cap, nil
	case control.KindLinkedList:
		l := linkedlist.New[int64](linkedlist.WithChunkSize(cfg.ChunkSize), linkedlist.WithAllocOptions(opts...))
		return linkedTarget{l}, nil, nil
	case control.KindQueue:
		q := facade.NewQueue[int64](linkedlist.WithChunkSize(cfg.ChunkSize), linkedlist.WithAllocOptions(opts...))
		return queueTarget{q}, nil, nil
	case control.KindStack:
		s := facade.NewStack[int64](cfg.Capacity, opts...)
		return stackTarget{s}, s.Cap, nil
	}
	return nil, nil, errors.Newf("unknown container %q", cfg.Container)
}

// runWorkload performs cfg.Ops operations, closes the container and records
// counters and allocation stats into mr. Probes registered on dp stay valid
// only while the workload runs.
func runWorkload(
	ctx context.Context, cfg *control.Config, mr *control.MetricsRegistry, dp *control.DebugProbes,
) (api.AllocStats, error) {
	if err := cfg.Validate(); err != nil {
		return api.AllocStats{}, err
	}
	tr := pool.NewTracker()
	t, capFn, err := newTarget(cfg, allocOptions(cfg, tr))
	if err != nil {
		return api.AllocStats{}, err
	}
	defer t.Close()

	dp.RegisterProbe("container.len", func() any { return t.Len() })
	if capFn != nil {
		dp.RegisterProbe("container.cap", func() any { return capFn() })
	}

	log := logger.L().With(zap.String("container", cfg.Container), zap.String("backend", cfg.Backend))
	log.Info("workload start", zap.Int("ops", cfg.Ops), zap.Int64("seed", cfg.Seed))

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15))
	var pushed, rejected, popped, empty, sum int64
	for i := 0; i < cfg.Ops; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				log.Warn("workload interrupted", zap.Int("done", i))
				return api.AllocStats{}, errors.Wrap(err, "workload interrupted")
			}
		}
		if rng.Float64() < cfg.PushRatio {
			if t.push(int64(i)) {
				pushed++
			} else {
				rejected++
			}
			continue
		}
		if v, ok := t.pop(); ok {
			popped++
			sum += v
		} else {
			empty++
		}
	}

	mr.Set("ops.push", pushed)
	mr.Set("ops.push_rejected", rejected)
	mr.Set("ops.pop", popped)
	mr.Set("ops.pop_empty", empty)
	mr.Set("ops.pop_sum", sum)
	mr.Set("container.final_len", int64(t.Len()))
	for _, p := range dp.DumpState() {
		log.Debug("probe", zap.String("name", p.Name), zap.Any("value", p.Value))
	}

	t.Close()
	st := tr.Stats()
	mr.RecordAlloc("alloc", st)
	if st.Leaked() {
		log.Error("allocations outstanding after close", zap.Int64("in_use", st.InUse))
		return st, errors.AssertionFailedf("%d allocations outstanding after close", st.InUse)
	}
	log.Info("workload done", zap.Int64("pushed", pushed), zap.Int64("popped", popped))
	return st, nil
}
