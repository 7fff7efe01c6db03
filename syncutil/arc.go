package syncutil

import "sync/atomic"

// =============================================================================
// Arc: atomically reference-counted handle
// =============================================================================

// arcInner is the shared allocation behind every clone of an Arc.
type arcInner[T any] struct {
	value    T
	strong   atomic.Int64
	finalize func(T)
}

// Arc is the thread-safe counterpart of core.Rc: a reference-counted
// handle whose count is maintained atomically, so handles may be cloned
// and released from any goroutine. Concurrent releases are linearizable
// with respect to the count, and the finalizer runs exactly once, on
// whichever release drops the count to zero.
type Arc[T any] struct {
	inner    *arcInner[T]
	released atomic.Bool
}

// NewArc creates the first handle to v with a count of one.
func NewArc[T any](v T) *Arc[T] {
	inner := &arcInner[T]{value: v}
	inner.strong.Store(1)
	return &Arc[T]{inner: inner}
}

// Clone creates a new handle to the same value and increments the count.
func (a *Arc[T]) Clone() *Arc[T] {
	if a.released.Load() {
		panic("syncutil: Clone on released Arc")
	}
	a.inner.strong.Add(1)
	return &Arc[T]{inner: a.inner}
}

// Get returns a copy of the shared value.
func (a *Arc[T]) Get() T {
	if a.released.Load() {
		panic("syncutil: Get on released Arc")
	}
	return a.inner.value
}

// StrongCount returns the number of live handles at the moment of the
// call. Under concurrent clones and releases the count is a snapshot.
func (a *Arc[T]) StrongCount() int64 {
	if a.released.Load() {
		panic("syncutil: StrongCount on released Arc")
	}
	return a.inner.strong.Load()
}

// SetFinalizer registers fn to run when the last handle is released. It
// must be called before the Arc is shared with other goroutines; the
// field is not synchronized against concurrent Release.
func (a *Arc[T]) SetFinalizer(fn func(T)) {
	if a.released.Load() {
		panic("syncutil: SetFinalizer on released Arc")
	}
	a.inner.finalize = fn
}

// Release drops this handle. It returns true when this release was the
// last one and the value was dropped, after running the finalizer.
// Releasing the same handle twice is a caller bug and panics.
func (a *Arc[T]) Release() bool {
	if !a.released.CompareAndSwap(false, true) {
		panic("syncutil: Arc released twice")
	}
	if a.inner.strong.Add(-1) > 0 {
		return false
	}
	if a.inner.finalize != nil {
		a.inner.finalize(a.inner.value)
	}
	return true
}
