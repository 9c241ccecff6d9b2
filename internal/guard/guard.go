// File: internal/guard/guard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package guard implements the fail-fast borrow check used by container
// cursors. A container bumps its Version on every structural mutation; a
// cursor takes a Stamp when created and checks it on every step.
package guard

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"

	"github.com/momentics/hioload-ds/api"
)

// Version counts structural mutations of one container.
type Version struct {
	n uint64
}

// Bump records a structural mutation.
func (v *Version) Bump() {
	v.n++
}

// Stamp captures the current version.
func (v *Version) Stamp() Stamp {
	return Stamp{v: v, n: v.n}
}

// Stamp is a snapshot of a Version taken by a cursor.
type Stamp struct {
	v *Version
	n uint64
}

// Valid reports whether the container is unchanged since the snapshot.
func (s Stamp) Valid() bool {
	return s.v == nil || s.v.n == s.n
}

// Check panics with api.ErrConcurrentModification if the container changed.
func (s Stamp) Check() {
	if !s.Valid() {
		panic(errors.Wrapf(api.ErrConcurrentModification,
			"cursor stamp %d, container version %d", redact.Safe(s.n), redact.Safe(s.v.n)))
	}
}
