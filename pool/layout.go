// File: pool/layout.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Size and pointer-layout checks for typed raw allocations.

package pool

import (
	"math"
	"math/bits"
	"reflect"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"

	"github.com/momentics/hioload-ds/api"
)

// elemSize returns sizeof(T).
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// byteSize returns capacity*sizeof(T), panicking with api.ErrCapacityOverflow
// when the product is negative or does not fit in an int.
func byteSize[T any](capacity int) int {
	if capacity < 0 {
		panic(errors.Wrapf(api.ErrCapacityOverflow, "negative capacity %d", redact.Safe(capacity)))
	}
	hi, lo := bits.Mul64(uint64(capacity), uint64(elemSize[T]()))
	if hi != 0 || lo > math.MaxInt {
		panic(errors.Wrapf(api.ErrCapacityOverflow, "capacity %d x %d bytes",
			redact.Safe(capacity), redact.Safe(elemSize[T]())))
	}
	return int(lo)
}

// pointerFree reports whether values of T contain no Go pointers, which is
// the condition for placing them in memory the garbage collector does not scan.
func pointerFree[T any]() bool {
	return !hasPointers(reflect.TypeFor[T]())
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
