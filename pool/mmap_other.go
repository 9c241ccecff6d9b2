// File: pool/mmap_other.go
//go:build !unix && !windows

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/hioload-ds/api"

type platformBackend struct{}

func (platformBackend) Name() string { return "none" }

func (platformBackend) Map(int) ([]byte, error) { return nil, api.ErrNotSupported }

func (platformBackend) Unmap([]byte) error { return api.ErrNotSupported }
