package autowrap

import (
	"github.com/autowrap/go-autowrap/core"
	"github.com/autowrap/go-autowrap/syncutil"
)

// =============================================================================
// Container constructors
// =============================================================================

// Cell wraps v in a single-owner mutable cell. Get and Set never fail
// and are never checked; the cell belongs to exactly one goroutine.
func Cell[T any](v T) *core.Cell[T] {
	return core.NewCell(v)
}

// Checked wraps v in a cell that arbitrates access at run time: any
// number of shared borrows, or one exclusive borrow, never both.
func Checked[T any](v T) *core.CheckedCell[T] {
	return core.NewCheckedCell(v)
}

// Rc wraps v in a reference-counted handle for use on one goroutine.
// Clone adds an owner; releasing the last owner drops the value.
func Rc[T any](v T) *core.Rc[T] {
	return core.NewRc(v)
}

// RcCell wraps v in a reference-counted handle over a run-time-checked
// cell: shared ownership plus checked interior mutation, on one
// goroutine.
func RcCell[T any](v T) *core.SharedCell[T] {
	return core.NewSharedCell(v)
}

// Arc wraps v in an atomically reference-counted handle that may be
// cloned and released from any goroutine.
func Arc[T any](v T) *syncutil.Arc[T] {
	return syncutil.NewArc(v)
}

// Locked wraps v in a mutex-guarded handle. Reads and writes share one
// exclusive lock; a holder panic inside the closure accessors poisons
// the lock.
func Locked[T any](v T) *syncutil.Locked[T] {
	return syncutil.NewLocked(v)
}

// RWLocked wraps v in a handle guarded by a reader/writer lock:
// concurrent readers, exclusive writers, writer-panic poisoning.
func RWLocked[T any](v T) *syncutil.RWLocked[T] {
	return syncutil.NewRWLocked(v)
}

// Once wraps v in a single-assignment cell that is already set, as if
// constructed empty and immediately assigned. Further Set calls fail
// with ErrAlreadySet.
func Once[T any](v T) *core.OnceCell[T] {
	return core.NewPopulatedOnceCell(v)
}
