// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Allocation accounting shared by the raw buffer and node arena.

package api

// AllocStats aggregates allocation/release counters for raw buffers.
type AllocStats struct {
	TotalAlloc   int64            // real allocations performed
	TotalFree    int64            // real allocations released
	InUse        int64            // TotalAlloc - TotalFree
	BytesInUse   int64            // bytes held by live allocations
	BackendStats map[string]int64 // allocations per backend name
}

// Leaked reports whether any allocation is still outstanding.
func (s AllocStats) Leaked() bool {
	return s.InUse != 0 || s.BytesInUse != 0
}
