package core

import "errors"

// =============================================================================
// CheckedCell: run-time borrow-checked cell
// =============================================================================

var (
	// ErrBorrowed is returned when an exclusive borrow is requested while
	// shared borrows are live.
	ErrBorrowed = errors.New("core: value is borrowed")

	// ErrMutBorrowed is returned when any borrow is requested while an
	// exclusive borrow is live.
	ErrMutBorrowed = errors.New("core: value is mutably borrowed")
)

// CheckedCell is a mutable container whose access rules are enforced at
// run time instead of by ownership: any number of shared (read) borrows
// may be live at once, or exactly one exclusive (write) borrow, never
// both. Violations are reported as errors from Borrow/BorrowMut rather
// than going undetected.
//
// CheckedCell arbitrates overlapping access within one goroutine; it is
// not safe for concurrent use. For cross-goroutine sharing use the
// syncutil package.
type CheckedCell[T any] struct {
	value   T
	readers int
	writing bool
}

// NewCheckedCell creates a CheckedCell holding v with no live borrows.
func NewCheckedCell[T any](v T) *CheckedCell[T] {
	return &CheckedCell[T]{value: v}
}

// Borrow acquires a shared borrow. It fails with ErrMutBorrowed if an
// exclusive borrow is live. The returned Ref must be released exactly
// once.
func (c *CheckedCell[T]) Borrow() (*Ref[T], error) {
	if c.writing {
		return nil, ErrMutBorrowed
	}
	c.readers++
	return &Ref[T]{cell: c}, nil
}

// BorrowMut acquires the exclusive borrow. It fails with ErrBorrowed if
// shared borrows are live, or ErrMutBorrowed if another exclusive borrow
// is live. The returned RefMut must be released exactly once.
func (c *CheckedCell[T]) BorrowMut() (*RefMut[T], error) {
	if c.writing {
		return nil, ErrMutBorrowed
	}
	if c.readers > 0 {
		return nil, ErrBorrowed
	}
	c.writing = true
	return &RefMut[T]{cell: c}, nil
}

// With runs fn with shared access to the value, holding a shared borrow
// for the duration of the call.
func (c *CheckedCell[T]) With(fn func(T)) error {
	ref, err := c.Borrow()
	if err != nil {
		return err
	}
	defer ref.Release()
	fn(c.value)
	return nil
}

// WithMut runs fn with exclusive access to the value, holding the
// exclusive borrow for the duration of the call.
func (c *CheckedCell[T]) WithMut(fn func(*T)) error {
	ref, err := c.BorrowMut()
	if err != nil {
		return err
	}
	defer ref.Release()
	fn(&c.value)
	return nil
}

// =============================================================================
// Borrow guards
// =============================================================================

// Ref is a live shared borrow of a CheckedCell.
type Ref[T any] struct {
	cell     *CheckedCell[T]
	released bool
}

// Get returns a copy of the borrowed value.
func (r *Ref[T]) Get() T {
	if r.released {
		panic("core: use of released borrow")
	}
	return r.cell.value
}

// Release ends the borrow. Releasing twice is a caller bug and panics.
func (r *Ref[T]) Release() {
	if r.released {
		panic("core: borrow released twice")
	}
	r.released = true
	r.cell.readers--
}

// RefMut is the live exclusive borrow of a CheckedCell.
type RefMut[T any] struct {
	cell     *CheckedCell[T]
	released bool
}

// Get returns a copy of the borrowed value.
func (r *RefMut[T]) Get() T {
	if r.released {
		panic("core: use of released borrow")
	}
	return r.cell.value
}

// Set replaces the borrowed value with v.
func (r *RefMut[T]) Set(v T) {
	if r.released {
		panic("core: use of released borrow")
	}
	r.cell.value = v
}

// Release ends the borrow. Releasing twice is a caller bug and panics.
func (r *RefMut[T]) Release() {
	if r.released {
		panic("core: borrow released twice")
	}
	r.released = true
	r.cell.writing = false
}
