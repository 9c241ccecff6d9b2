// File: api/ring.go
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO ring contract shared by fixed-capacity containers.

package api

// Ring is a bounded FIFO ring contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the ring capacity.
	Cap() int
}
