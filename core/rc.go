package core

// =============================================================================
// Rc: reference-counted handle (single goroutine)
// =============================================================================

// rcInner is the shared allocation behind every clone of an Rc.
type rcInner[T any] struct {
	value    T
	strong   int64
	finalize func(T)
}

// Rc is a reference-counted handle to a shared value. Clone creates a
// new handle and increments the count; Release decrements it, and the
// handle that drops the count to zero runs the finalizer (if any) and
// reports true.
//
// Go's garbage collector reclaims the memory either way; Rc exists for
// callers that need an observable owner count and a deterministic
// last-release hook. The count is a plain integer, so all handles must
// stay on one goroutine. syncutil.Arc is the thread-safe counterpart.
type Rc[T any] struct {
	inner    *rcInner[T]
	released bool
}

// NewRc creates the first handle to v with a count of one.
func NewRc[T any](v T) *Rc[T] {
	return &Rc[T]{inner: &rcInner[T]{value: v, strong: 1}}
}

// Clone creates a new handle to the same value and increments the count.
func (r *Rc[T]) Clone() *Rc[T] {
	if r.released {
		panic("core: Clone on released Rc")
	}
	r.inner.strong++
	return &Rc[T]{inner: r.inner}
}

// Get returns a copy of the shared value.
func (r *Rc[T]) Get() T {
	if r.released {
		panic("core: Get on released Rc")
	}
	return r.inner.value
}

// StrongCount returns the number of live handles.
func (r *Rc[T]) StrongCount() int64 {
	if r.released {
		panic("core: StrongCount on released Rc")
	}
	return r.inner.strong
}

// SetFinalizer registers fn to run when the last handle is released.
// It applies to every handle of the value, not just the receiver.
func (r *Rc[T]) SetFinalizer(fn func(T)) {
	if r.released {
		panic("core: SetFinalizer on released Rc")
	}
	r.inner.finalize = fn
}

// Release drops this handle. It returns true when this release was the
// last one and the value was dropped, after running the finalizer.
// Releasing the same handle twice is a caller bug and panics.
func (r *Rc[T]) Release() bool {
	if r.released {
		panic("core: Rc released twice")
	}
	r.released = true
	r.inner.strong--
	if r.inner.strong > 0 {
		return false
	}
	if r.inner.finalize != nil {
		r.inner.finalize(r.inner.value)
	}
	return true
}
