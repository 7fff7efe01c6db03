package autowrap

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/autowrap/go-autowrap/syncutil"
)

// =============================================================================
// Atomic cell constructors
// =============================================================================

// Each integer constructor accepts any integer type and stores v
// converted to the target width and signedness, following Go's integer
// conversion rules (truncation toward the low bits, sign or zero
// extension). All operations on the returned cells are sequentially
// consistent; Go's memory model offers no weaker orderings.

// Int8 wraps v in an atomic 8-bit signed cell.
func Int8[T constraints.Integer](v T) *syncutil.Int8 {
	return syncutil.NewInt8(int8(v))
}

// Int16 wraps v in an atomic 16-bit signed cell.
func Int16[T constraints.Integer](v T) *syncutil.Int16 {
	return syncutil.NewInt16(int16(v))
}

// Int32 wraps v in an atomic 32-bit signed cell.
func Int32[T constraints.Integer](v T) *atomic.Int32 {
	n := new(atomic.Int32)
	n.Store(int32(v))
	return n
}

// Int64 wraps v in an atomic 64-bit signed cell.
func Int64[T constraints.Integer](v T) *atomic.Int64 {
	n := new(atomic.Int64)
	n.Store(int64(v))
	return n
}

// Uint8 wraps v in an atomic 8-bit unsigned cell.
func Uint8[T constraints.Integer](v T) *syncutil.Uint8 {
	return syncutil.NewUint8(uint8(v))
}

// Uint16 wraps v in an atomic 16-bit unsigned cell.
func Uint16[T constraints.Integer](v T) *syncutil.Uint16 {
	return syncutil.NewUint16(uint16(v))
}

// Uint32 wraps v in an atomic 32-bit unsigned cell.
func Uint32[T constraints.Integer](v T) *atomic.Uint32 {
	n := new(atomic.Uint32)
	n.Store(uint32(v))
	return n
}

// Uint64 wraps v in an atomic 64-bit unsigned cell.
func Uint64[T constraints.Integer](v T) *atomic.Uint64 {
	n := new(atomic.Uint64)
	n.Store(uint64(v))
	return n
}

// Uintptr wraps v in an atomic word-sized unsigned cell.
func Uintptr[T constraints.Integer](v T) *atomic.Uintptr {
	n := new(atomic.Uintptr)
	n.Store(uintptr(v))
	return n
}

// Bool wraps v in an atomic boolean cell.
func Bool(v bool) *atomic.Bool {
	b := new(atomic.Bool)
	b.Store(v)
	return b
}

// Pointer wraps v in an atomic pointer cell pointing at a fresh copy
// of v.
func Pointer[T any](v T) *atomic.Pointer[T] {
	p := new(atomic.Pointer[T])
	p.Store(&v)
	return p
}
