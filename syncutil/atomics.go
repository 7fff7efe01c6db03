package syncutil

import "sync/atomic"

// =============================================================================
// Atomic integer cells
// =============================================================================

// The 32-bit and wider cells are the standard library's typed atomics.
// Only the sub-word widths below are implemented here, since the runtime
// offers no 8- or 16-bit atomic operations.
type (
	// Int32 is an atomic int32 cell.
	Int32 = atomic.Int32
	// Int64 is an atomic int64 cell.
	Int64 = atomic.Int64
	// Uint32 is an atomic uint32 cell.
	Uint32 = atomic.Uint32
	// Uint64 is an atomic uint64 cell.
	Uint64 = atomic.Uint64
	// Uintptr is an atomic uintptr cell.
	Uintptr = atomic.Uintptr
	// Bool is an atomic boolean cell.
	Bool = atomic.Bool
)

// noCopy triggers the go vet copylocks check when a cell is copied
// after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Sub-word cells store the value sign- or zero-extended inside an
// atomic 32-bit word. The stored word is kept in that canonical form by
// every operation, so CompareAndSwap can compare extended operands
// directly: Add recomputes the narrow result and swaps the canonical
// encoding back in rather than letting carries accumulate in the high
// bits.

// Int8 is an atomic int8 cell.
type Int8 struct {
	_ noCopy
	v atomic.Int32
}

// NewInt8 creates an Int8 holding v.
func NewInt8(v int8) *Int8 {
	i := new(Int8)
	i.v.Store(int32(v))
	return i
}

// Load atomically loads and returns the value.
func (i *Int8) Load() int8 { return int8(i.v.Load()) }

// Store atomically stores v.
func (i *Int8) Store(v int8) { i.v.Store(int32(v)) }

// Swap atomically stores v and returns the previous value.
func (i *Int8) Swap(v int8) int8 { return int8(i.v.Swap(int32(v))) }

// Add atomically adds delta and returns the new value, wrapping on
// overflow as int8 arithmetic does.
func (i *Int8) Add(delta int8) int8 {
	for {
		old := i.v.Load()
		next := int8(old) + delta
		if i.v.CompareAndSwap(old, int32(next)) {
			return next
		}
	}
}

// CompareAndSwap executes the compare-and-swap operation for the value.
func (i *Int8) CompareAndSwap(old, new int8) bool {
	return i.v.CompareAndSwap(int32(old), int32(new))
}

// Uint8 is an atomic uint8 cell.
type Uint8 struct {
	_ noCopy
	v atomic.Uint32
}

// NewUint8 creates a Uint8 holding v.
func NewUint8(v uint8) *Uint8 {
	u := new(Uint8)
	u.v.Store(uint32(v))
	return u
}

// Load atomically loads and returns the value.
func (u *Uint8) Load() uint8 { return uint8(u.v.Load()) }

// Store atomically stores v.
func (u *Uint8) Store(v uint8) { u.v.Store(uint32(v)) }

// Swap atomically stores v and returns the previous value.
func (u *Uint8) Swap(v uint8) uint8 { return uint8(u.v.Swap(uint32(v))) }

// Add atomically adds delta and returns the new value, wrapping on
// overflow as uint8 arithmetic does.
func (u *Uint8) Add(delta uint8) uint8 {
	for {
		old := u.v.Load()
		next := uint8(old) + delta
		if u.v.CompareAndSwap(old, uint32(next)) {
			return next
		}
	}
}

// CompareAndSwap executes the compare-and-swap operation for the value.
func (u *Uint8) CompareAndSwap(old, new uint8) bool {
	return u.v.CompareAndSwap(uint32(old), uint32(new))
}

// Int16 is an atomic int16 cell.
type Int16 struct {
	_ noCopy
	v atomic.Int32
}

// NewInt16 creates an Int16 holding v.
func NewInt16(v int16) *Int16 {
	i := new(Int16)
	i.v.Store(int32(v))
	return i
}

// Load atomically loads and returns the value.
func (i *Int16) Load() int16 { return int16(i.v.Load()) }

// Store atomically stores v.
func (i *Int16) Store(v int16) { i.v.Store(int32(v)) }

// Swap atomically stores v and returns the previous value.
func (i *Int16) Swap(v int16) int16 { return int16(i.v.Swap(int32(v))) }

// Add atomically adds delta and returns the new value, wrapping on
// overflow as int16 arithmetic does.
func (i *Int16) Add(delta int16) int16 {
	for {
		old := i.v.Load()
		next := int16(old) + delta
		if i.v.CompareAndSwap(old, int32(next)) {
			return next
		}
	}
}

// CompareAndSwap executes the compare-and-swap operation for the value.
func (i *Int16) CompareAndSwap(old, new int16) bool {
	return i.v.CompareAndSwap(int32(old), int32(new))
}

// Uint16 is an atomic uint16 cell.
type Uint16 struct {
	_ noCopy
	v atomic.Uint32
}

// NewUint16 creates a Uint16 holding v.
func NewUint16(v uint16) *Uint16 {
	u := new(Uint16)
	u.v.Store(uint32(v))
	return u
}

// Load atomically loads and returns the value.
func (u *Uint16) Load() uint16 { return uint16(u.v.Load()) }

// Store atomically stores v.
func (u *Uint16) Store(v uint16) { u.v.Store(uint32(v)) }

// Swap atomically stores v and returns the previous value.
func (u *Uint16) Swap(v uint16) uint16 { return uint16(u.v.Swap(uint32(v))) }

// Add atomically adds delta and returns the new value, wrapping on
// overflow as uint16 arithmetic does.
func (u *Uint16) Add(delta uint16) uint16 {
	for {
		old := u.v.Load()
		next := uint16(old) + delta
		if u.v.CompareAndSwap(old, uint32(next)) {
			return next
		}
	}
}

// CompareAndSwap executes the compare-and-swap operation for the value.
func (u *Uint16) CompareAndSwap(old, new uint16) bool {
	return u.v.CompareAndSwap(uint32(old), uint32(new))
}
