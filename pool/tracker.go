// File: pool/tracker.go
// Package pool implements typed raw allocation with accounting.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-ds/api"
)

// Tracker counts real allocations and releases. Containers are single
// goroutine, but one Tracker is usually shared by many of them, so counters
// are atomic.
type Tracker struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
	backends   atomic.Pointer[backendMap]
}

// backendMap: allocation counters by backend name.
type backendMap struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newBackendMap() *backendMap { return &backendMap{counts: make(map[string]int64)} }
func (m *backendMap) record(name string) {
	m.mu.Lock()
	m.counts[name]++
	m.mu.Unlock()
}
func (m *backendMap) Get() map[string]int64 {
	m.mu.Lock()
	out := make(map[string]int64, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	m.mu.Unlock()
	return out
}

var (
	defaultOnce    sync.Once
	defaultTracker *Tracker
)

// DefaultTracker returns the process-wide tracker used when an allocation
// does not name one.
func DefaultTracker() *Tracker {
	defaultOnce.Do(func() {
		defaultTracker = NewTracker()
	})
	return defaultTracker
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.backends.Store(newBackendMap())
	return t
}

func (t *Tracker) recordAlloc(backend string, bytes int) {
	t.totalAlloc.Add(1)
	t.bytesInUse.Add(int64(bytes))
	t.backends.Load().record(backend)
}

func (t *Tracker) recordFree(bytes int) {
	t.totalFree.Add(1)
	t.bytesInUse.Add(-int64(bytes))
}

// Stats returns a snapshot of the counters.
func (t *Tracker) Stats() api.AllocStats {
	totalAlloc := t.totalAlloc.Load()
	totalFree := t.totalFree.Load()
	return api.AllocStats{
		TotalAlloc:   totalAlloc,
		TotalFree:    totalFree,
		InUse:        totalAlloc - totalFree,
		BytesInUse:   t.bytesInUse.Load(),
		BackendStats: t.backends.Load().Get(),
	}
}
