// File: control/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package control carries run configuration, metrics and debug probes for
// the dsctl workload driver. The container packages take no configuration
// beyond constructor options; this package only serves binaries.
package control
