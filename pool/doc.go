// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory layer for hioload-ds.
// RawBuffer is the one allocation primitive every container is built on;
// Arena subdivides RawBuffer chunks into index-addressed slots for linked
// nodes; Tracker counts allocations so tests can prove nothing leaks.
// Pointer-free element types can be served by an anonymous mapping backend
// (see mmap_unix.go, mmap_windows.go); everything else lives on the Go heap.
package pool
