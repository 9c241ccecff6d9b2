// File: pool/drop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slot-level value lifecycle helpers.

package pool

import "github.com/momentics/hioload-ds/api"

// Drop destroys the value in *p: Drop is called when *T implements
// api.Dropper, then the slot is zeroed.
func Drop[T any](p *T) {
	if d, ok := any(p).(api.Dropper); ok {
		d.Drop()
	}
	var zero T
	*p = zero
}

// DropInPlace destroys every value of span in order.
func DropInPlace[T any](span []T) {
	for i := range span {
		Drop(&span[i])
	}
}

// Take moves the value out of *p and leaves the slot uninitialized.
func Take[T any](p *T) T {
	v := *p
	var zero T
	*p = zero
	return v
}
