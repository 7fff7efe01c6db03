package core

// =============================================================================
// Cell: single-owner mutable cell
// =============================================================================

// Cell is a mutable container for a single value of type T.
//
// Unlike CheckedCell, access is never arbitrated: Get and Set always
// succeed. The trade-off is that a Cell must be owned by exactly one
// goroutine; it carries no synchronization of any kind.
//
// Go assignment copies the value, so Get hands back a copy. If T contains
// pointers, slices, or maps, the copies still share the pointed-to data.
type Cell[T any] struct {
	value T
}

// NewCell creates a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns a copy of the contained value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the contained value with v.
func (c *Cell[T]) Set(v T) {
	c.value = v
}

// Replace stores v and returns the value that was previously contained.
func (c *Cell[T]) Replace(v T) T {
	old := c.value
	c.value = v
	return old
}

// Update applies fn to the contained value, stores the result, and
// returns it.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.value = fn(c.value)
	return c.value
}

// Swap exchanges the contents of c and other.
func (c *Cell[T]) Swap(other *Cell[T]) {
	c.value, other.value = other.value, c.value
}
