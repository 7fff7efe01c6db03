package autowrap

import (
	"github.com/autowrap/go-autowrap/core"
	"github.com/autowrap/go-autowrap/syncutil"
)

// Re-export guard types and sentinel errors from the implementation
// packages. This allows users to import only the autowrap package for
// most use cases.

// Ref is a live shared borrow of a checked cell.
type Ref[T any] = core.Ref[T]

// RefMut is the live exclusive borrow of a checked cell.
type RefMut[T any] = core.RefMut[T]

// Guard is exclusive access to a mutex-guarded value.
type Guard[T any] = syncutil.Guard[T]

// RGuard is shared read access to an rwlock-guarded value.
type RGuard[T any] = syncutil.RGuard[T]

// WGuard is exclusive write access to an rwlock-guarded value.
type WGuard[T any] = syncutil.WGuard[T]

// Sentinel errors surfaced by the wrapped containers.
var (
	// ErrBorrowed reports an exclusive borrow attempted over live
	// shared borrows.
	ErrBorrowed = core.ErrBorrowed

	// ErrMutBorrowed reports a borrow attempted over a live exclusive
	// borrow.
	ErrMutBorrowed = core.ErrMutBorrowed

	// ErrAlreadySet reports a second assignment to a single-assignment
	// cell.
	ErrAlreadySet = core.ErrAlreadySet

	// ErrPoisoned reports acquisition of a lock whose holder panicked.
	ErrPoisoned = syncutil.ErrPoisoned
)
