// File: pool/backend.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw memory backends. The Go heap is always available; platform files
// provide an anonymous mapping backend returned by Mmap.

package pool

// HeapBackendName names allocations served by the Go heap.
const HeapBackendName = "heap"

// Backend maps and unmaps untyped memory regions outside the Go heap.
// Regions must be page aligned and zero filled.
type Backend interface {
	Name() string
	Map(size int) ([]byte, error)
	Unmap(region []byte) error
}

// Mmap returns the platform mapping backend. On platforms without one,
// Map always fails and allocations fall back to the heap.
func Mmap() Backend {
	return platformBackend{}
}

// AllocOption configures a single allocation.
type AllocOption func(*allocConfig)

type allocConfig struct {
	tracker *Tracker
	backend Backend
}

func newAllocConfig(opts []AllocOption) allocConfig {
	cfg := allocConfig{tracker: DefaultTracker()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithTracker records the allocation in t instead of the default tracker.
func WithTracker(t *Tracker) AllocOption {
	return func(c *allocConfig) {
		if t != nil {
			c.tracker = t
		}
	}
}

// WithBackend serves pointer-free element types from b. A nil b selects the heap.
func WithBackend(b Backend) AllocOption {
	return func(c *allocConfig) {
		c.backend = b
	}
}
