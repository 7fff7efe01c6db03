package core

import "testing"

// =============================================================================
// Rc Tests
// =============================================================================

// TestRc_GetAndCount tests initial state
// Given: a fresh Rc holding 42
// When: the value and count are read
// Then: Get returns 42 and StrongCount is 1
func TestRc_GetAndCount(t *testing.T) {
	// Arrange
	rc := NewRc(42)

	// Assert
	if got := rc.Get(); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
	if got := rc.StrongCount(); got != 1 {
		t.Errorf("StrongCount() = %d, want 1", got)
	}
}

// TestRc_CloneIncrementsCount tests cloning
// Given: an Rc with one handle
// When: Clone is called
// Then: both handles see a count of 2 and the same value
func TestRc_CloneIncrementsCount(t *testing.T) {
	// Arrange
	rc := NewRc("shared")

	// Act
	clone := rc.Clone()

	// Assert
	if got := rc.StrongCount(); got != 2 {
		t.Errorf("rc.StrongCount() = %d, want 2", got)
	}
	if got := clone.StrongCount(); got != 2 {
		t.Errorf("clone.StrongCount() = %d, want 2", got)
	}
	if clone.Get() != "shared" {
		t.Errorf("clone.Get() = %q, want %q", clone.Get(), "shared")
	}
}

// TestRc_FinalizerRunsOnce tests drop semantics
// Given: an Rc with two handles and a drop-counting finalizer
// When: both handles are released
// Then: only the last release reports the drop and the finalizer ran once
func TestRc_FinalizerRunsOnce(t *testing.T) {
	// Arrange
	drops := 0
	rc := NewRc(7)
	rc.SetFinalizer(func(v int) {
		if v != 7 {
			t.Errorf("finalizer value = %d, want 7", v)
		}
		drops++
	})
	clone := rc.Clone()

	// Act
	first := clone.Release()
	second := rc.Release()

	// Assert
	if first {
		t.Error("first Release() = true, want false")
	}
	if !second {
		t.Error("last Release() = false, want true")
	}
	if drops != 1 {
		t.Errorf("finalizer ran %d times, want 1", drops)
	}
}

// TestRc_UseAfterReleasePanics tests handle misuse
// Given: a released Rc handle
// When: Get is called on it
// Then: the call panics
func TestRc_UseAfterReleasePanics(t *testing.T) {
	// Arrange
	rc := NewRc(1)
	rc.Release()

	// Act & Assert
	defer func() {
		if recover() == nil {
			t.Error("Get() on released handle did not panic")
		}
	}()
	rc.Get()
}

// TestRc_DoubleReleasePanics tests release misuse
// Given: a released Rc handle
// When: Release is called again
// Then: the call panics
func TestRc_DoubleReleasePanics(t *testing.T) {
	// Arrange
	rc := NewRc(1)
	rc.Release()

	// Act & Assert
	defer func() {
		if recover() == nil {
			t.Error("second Release() did not panic")
		}
	}()
	rc.Release()
}
