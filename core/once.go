package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// =============================================================================
// OnceCell: single-assignment cell
// =============================================================================

// ErrAlreadySet is returned by OnceCell.Set when the cell holds a value.
var ErrAlreadySet = errors.New("core: cell is already set")

// OnceCell is a cell that can be assigned at most once and read freely
// afterwards. Unlike the other core containers it is safe for concurrent
// use: reads take a lock-free fast path once the cell is set, and
// competing writers are serialized so exactly one wins.
type OnceCell[T any] struct {
	mu    sync.Mutex
	done  atomic.Bool
	value T
}

// NewOnceCell creates an empty OnceCell.
func NewOnceCell[T any]() *OnceCell[T] {
	return &OnceCell[T]{}
}

// NewPopulatedOnceCell creates an OnceCell already holding v, as if it
// had been constructed empty and immediately set.
func NewPopulatedOnceCell[T any](v T) *OnceCell[T] {
	c := &OnceCell[T]{value: v}
	c.done.Store(true)
	return c
}

// Set assigns v to the cell. It fails with ErrAlreadySet if the cell
// holds a value, including one stored by NewPopulatedOnceCell.
func (c *OnceCell[T]) Set(v T) error {
	if c.done.Load() {
		return ErrAlreadySet
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done.Load() {
		return ErrAlreadySet
	}
	c.value = v
	c.done.Store(true)
	return nil
}

// Get returns the contained value and true, or the zero value and false
// if the cell is empty.
func (c *OnceCell[T]) Get() (T, bool) {
	if !c.done.Load() {
		var zero T
		return zero, false
	}
	return c.value, true
}

// MustGet returns the contained value, panicking if the cell is empty.
func (c *OnceCell[T]) MustGet() T {
	v, ok := c.Get()
	if !ok {
		panic("core: MustGet on empty OnceCell")
	}
	return v
}

// IsSet reports whether the cell holds a value.
func (c *OnceCell[T]) IsSet() bool {
	return c.done.Load()
}
