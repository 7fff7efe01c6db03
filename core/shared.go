package core

// =============================================================================
// SharedCell: Rc over a CheckedCell
// =============================================================================

// SharedCell combines shared ownership with run-time borrow checking:
// every clone owns the same CheckedCell, so any owner can read or mutate
// the value under the usual shared/exclusive arbitration.
//
// Like its parts, a SharedCell is confined to one goroutine.
type SharedCell[T any] struct {
	rc *Rc[*CheckedCell[T]]
}

// NewSharedCell creates the first handle to a borrow-checked v.
func NewSharedCell[T any](v T) *SharedCell[T] {
	return &SharedCell[T]{rc: NewRc(NewCheckedCell(v))}
}

// Clone creates a new handle to the same cell and increments the count.
func (s *SharedCell[T]) Clone() *SharedCell[T] {
	return &SharedCell[T]{rc: s.rc.Clone()}
}

// StrongCount returns the number of live handles.
func (s *SharedCell[T]) StrongCount() int64 {
	return s.rc.StrongCount()
}

// SetFinalizer registers fn to run on the contained value when the last
// handle is released.
func (s *SharedCell[T]) SetFinalizer(fn func(T)) {
	s.rc.SetFinalizer(func(c *CheckedCell[T]) {
		fn(c.value)
	})
}

// Release drops this handle, reporting true on the last release.
func (s *SharedCell[T]) Release() bool {
	return s.rc.Release()
}

// Borrow acquires a shared borrow of the cell.
func (s *SharedCell[T]) Borrow() (*Ref[T], error) {
	return s.rc.Get().Borrow()
}

// BorrowMut acquires the exclusive borrow of the cell.
func (s *SharedCell[T]) BorrowMut() (*RefMut[T], error) {
	return s.rc.Get().BorrowMut()
}

// With runs fn with shared access to the value.
func (s *SharedCell[T]) With(fn func(T)) error {
	return s.rc.Get().With(fn)
}

// WithMut runs fn with exclusive access to the value.
func (s *SharedCell[T]) WithMut(fn func(*T)) error {
	return s.rc.Get().WithMut(fn)
}
