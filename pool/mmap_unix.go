// File: pool/mmap_unix.go
//go:build unix

// Package pool: anonymous private mappings on unix platforms.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "golang.org/x/sys/unix"

type platformBackend struct{}

func (platformBackend) Name() string { return "mmap" }

// Map reserves size bytes of zeroed, page aligned memory.
func (platformBackend) Map(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Unmap returns the region to the OS.
func (platformBackend) Unmap(region []byte) error {
	return unix.Munmap(region)
}
