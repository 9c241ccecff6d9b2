// File: control/debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Named probes reporting live container state for diagnostics.

package control

import (
	"sort"
	"sync"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// ProbeValue is one probe result.
type ProbeValue struct {
	Name  string
	Value any
}

// DumpState evaluates every probe, ordered by name.
func (dp *DebugProbes) DumpState() []ProbeValue {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make([]ProbeValue, 0, len(dp.probes))
	for k, fn := range dp.probes {
		out = append(out, ProbeValue{Name: k, Value: fn()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
