// File: control/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counters collected during a workload run, including allocation stats.

package control

import (
	"sort"
	"sync"
	"time"

	"github.com/momentics/hioload-ds/api"
)

// MetricsRegistry holds named counters.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]int64
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]int64),
	}
}

// Set sets or replaces a counter.
func (mr *MetricsRegistry) Set(key string, value int64) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Add increments a counter by delta.
func (mr *MetricsRegistry) Add(key string, delta int64) {
	mr.mu.Lock()
	mr.metrics[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// RecordAlloc copies allocation stats under prefix.
func (mr *MetricsRegistry) RecordAlloc(prefix string, st api.AllocStats) {
	mr.Set(prefix+".total_alloc", st.TotalAlloc)
	mr.Set(prefix+".total_free", st.TotalFree)
	mr.Set(prefix+".in_use", st.InUse)
	mr.Set(prefix+".bytes_in_use", st.BytesInUse)
	for backend, n := range st.BackendStats {
		mr.Set(prefix+".backend."+backend, n)
	}
}

// Get returns a counter and whether it exists.
func (mr *MetricsRegistry) Get(key string) (int64, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	v, ok := mr.metrics[key]
	return v, ok
}

// Keys returns counter names in sorted order.
func (mr *MetricsRegistry) Keys() []string {
	mr.mu.RLock()
	keys := make([]string, 0, len(mr.metrics))
	for k := range mr.metrics {
		keys = append(keys, k)
	}
	mr.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// GetSnapshot returns a copy of all counters.
func (mr *MetricsRegistry) GetSnapshot() map[string]int64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]int64, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last write.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
