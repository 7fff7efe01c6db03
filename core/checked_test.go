package core

import (
	"errors"
	"testing"
)

// =============================================================================
// CheckedCell Tests
// =============================================================================

// TestCheckedCell_SingleBorrow tests a lone shared borrow
// Given: a CheckedCell holding 5
// When: a shared borrow reads the value and releases
// Then: the read returns 5 and a later exclusive borrow succeeds
func TestCheckedCell_SingleBorrow(t *testing.T) {
	// Arrange
	c := NewCheckedCell(5)

	// Act
	ref, err := c.Borrow()
	if err != nil {
		t.Fatalf("Borrow() failed: %v", err)
	}
	got := ref.Get()
	ref.Release()

	// Assert
	if got != 5 {
		t.Errorf("ref.Get() = %d, want 5", got)
	}

	mut, err := c.BorrowMut()
	if err != nil {
		t.Fatalf("BorrowMut() after release failed: %v", err)
	}
	mut.Release()
}

// TestCheckedCell_WriteThenRead tests mutation through the exclusive borrow
// Given: a CheckedCell holding 5
// When: an exclusive borrow sets the value to 8 and releases
// Then: a shared borrow reads 8
func TestCheckedCell_WriteThenRead(t *testing.T) {
	// Arrange
	c := NewCheckedCell(5)

	// Act
	mut, err := c.BorrowMut()
	if err != nil {
		t.Fatalf("BorrowMut() failed: %v", err)
	}
	mut.Set(8)
	mut.Release()

	// Assert
	ref, err := c.Borrow()
	if err != nil {
		t.Fatalf("Borrow() failed: %v", err)
	}
	defer ref.Release()
	if got := ref.Get(); got != 8 {
		t.Errorf("ref.Get() = %d, want 8", got)
	}
}

// TestCheckedCell_SharedBorrowsCoexist tests concurrent shared borrows
// Given: a CheckedCell with two live shared borrows
// When: an exclusive borrow is requested
// Then: both reads succeed and the exclusive borrow fails with ErrBorrowed
func TestCheckedCell_SharedBorrowsCoexist(t *testing.T) {
	// Arrange
	c := NewCheckedCell("hello")

	r1, err := c.Borrow()
	if err != nil {
		t.Fatalf("first Borrow() failed: %v", err)
	}
	r2, err := c.Borrow()
	if err != nil {
		t.Fatalf("second Borrow() failed: %v", err)
	}

	// Act
	_, err = c.BorrowMut()

	// Assert
	if !errors.Is(err, ErrBorrowed) {
		t.Errorf("BorrowMut() error = %v, want ErrBorrowed", err)
	}
	if r1.Get() != "hello" || r2.Get() != "hello" {
		t.Error("shared borrows did not read the stored value")
	}

	r1.Release()
	r2.Release()
}

// TestCheckedCell_ExclusiveBlocksAll tests the exclusive borrow excluding others
// Given: a CheckedCell with a live exclusive borrow
// When: shared and exclusive borrows are requested
// Then: both fail with ErrMutBorrowed until the borrow is released
func TestCheckedCell_ExclusiveBlocksAll(t *testing.T) {
	// Arrange
	c := NewCheckedCell(1)

	mut, err := c.BorrowMut()
	if err != nil {
		t.Fatalf("BorrowMut() failed: %v", err)
	}

	// Act & Assert
	if _, err := c.Borrow(); !errors.Is(err, ErrMutBorrowed) {
		t.Errorf("Borrow() error = %v, want ErrMutBorrowed", err)
	}
	if _, err := c.BorrowMut(); !errors.Is(err, ErrMutBorrowed) {
		t.Errorf("BorrowMut() error = %v, want ErrMutBorrowed", err)
	}

	mut.Release()

	if _, err := c.Borrow(); err != nil {
		t.Errorf("Borrow() after release failed: %v", err)
	}
}

// TestCheckedCell_ClosureForms tests With and WithMut
// Given: a CheckedCell holding 10
// When: WithMut doubles the value and With reads it
// Then: the read observes 20
func TestCheckedCell_ClosureForms(t *testing.T) {
	// Arrange
	c := NewCheckedCell(10)

	// Act
	if err := c.WithMut(func(v *int) { *v *= 2 }); err != nil {
		t.Fatalf("WithMut() failed: %v", err)
	}

	var got int
	if err := c.With(func(v int) { got = v }); err != nil {
		t.Fatalf("With() failed: %v", err)
	}

	// Assert
	if got != 20 {
		t.Errorf("With() observed %d, want 20", got)
	}
}

// TestCheckedCell_ReentrantWithMut tests overlap detection in closures
// Given: a CheckedCell
// When: WithMut is called from inside WithMut
// Then: the inner call fails with ErrMutBorrowed
func TestCheckedCell_ReentrantWithMut(t *testing.T) {
	// Arrange
	c := NewCheckedCell(0)

	// Act
	var inner error
	err := c.WithMut(func(v *int) {
		inner = c.WithMut(func(v *int) { *v = 1 })
	})

	// Assert
	if err != nil {
		t.Fatalf("outer WithMut() failed: %v", err)
	}
	if !errors.Is(inner, ErrMutBorrowed) {
		t.Errorf("inner WithMut() error = %v, want ErrMutBorrowed", inner)
	}
}

// TestCheckedCell_DoubleReleasePanics tests release misuse
// Given: a released shared borrow
// When: Release is called again
// Then: the call panics
func TestCheckedCell_DoubleReleasePanics(t *testing.T) {
	// Arrange
	c := NewCheckedCell(0)
	ref, err := c.Borrow()
	if err != nil {
		t.Fatalf("Borrow() failed: %v", err)
	}
	ref.Release()

	// Act & Assert
	defer func() {
		if recover() == nil {
			t.Error("second Release() did not panic")
		}
	}()
	ref.Release()
}
