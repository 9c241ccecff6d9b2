// File: pool/mmap_windows.go
//go:build windows

// Package pool: VirtualAlloc-backed regions on Windows.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

type platformBackend struct{}

func (platformBackend) Name() string { return "virtualalloc" }

func (platformBackend) Map(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func (platformBackend) Unmap(region []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(region))), 0, windows.MEM_RELEASE)
}
