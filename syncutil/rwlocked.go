package syncutil

import (
	"sync"
	"sync/atomic"
)

// =============================================================================
// RWLocked: read-write-lock-guarded shared mutable handle
// =============================================================================

// RWLocked pairs a value with a reader/writer lock: any number of
// readers hold the lock together, while a writer is exclusive. A writer
// waiting on the lock blocks new readers, so writers cannot starve.
//
// Poisoning follows Locked, with one refinement: only a panic inside a
// Write closure poisons the lock. A reader cannot leave the value
// half-updated, so a panic inside Read propagates without poisoning.
type RWLocked[T any] struct {
	mu       sync.RWMutex
	poisoned atomic.Bool
	value    T
}

// NewRWLocked creates an RWLocked holding v.
func NewRWLocked[T any](v T) *RWLocked[T] {
	return &RWLocked[T]{value: v}
}

// RLock acquires the lock for reading, blocking while a writer holds
// it. It fails with ErrPoisoned on a poisoned lock.
func (l *RWLocked[T]) RLock() (*RGuard[T], error) {
	l.mu.RLock()
	if l.poisoned.Load() {
		l.mu.RUnlock()
		return nil, ErrPoisoned
	}
	return &RGuard[T]{lock: l}, nil
}

// Lock acquires the lock for writing, blocking until all readers and
// writers release it. It fails with ErrPoisoned on a poisoned lock.
func (l *RWLocked[T]) Lock() (*WGuard[T], error) {
	l.mu.Lock()
	if l.poisoned.Load() {
		l.mu.Unlock()
		return nil, ErrPoisoned
	}
	return &WGuard[T]{lock: l}, nil
}

// Read acquires the lock for reading and runs fn with the value.
func (l *RWLocked[T]) Read(fn func(T)) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.poisoned.Load() {
		return ErrPoisoned
	}
	fn(l.value)
	return nil
}

// Write acquires the lock for writing and runs fn with exclusive access
// to the value. If fn panics, the lock is poisoned and the panic
// propagates.
func (l *RWLocked[T]) Write(fn func(*T)) error {
	l.mu.Lock()
	if l.poisoned.Load() {
		l.mu.Unlock()
		return ErrPoisoned
	}
	completed := false
	defer func() {
		if !completed {
			l.poisoned.Store(true)
		}
		l.mu.Unlock()
	}()
	fn(&l.value)
	completed = true
	return nil
}

// Get acquires the lock for reading and returns a copy of the value.
func (l *RWLocked[T]) Get() (T, error) {
	var v T
	err := l.Read(func(cur T) {
		v = cur
	})
	return v, err
}

// Set acquires the lock for writing and replaces the value with v.
func (l *RWLocked[T]) Set(v T) error {
	return l.Write(func(p *T) {
		*p = v
	})
}

// Poisoned reports whether a previous writer panicked under the lock.
func (l *RWLocked[T]) Poisoned() bool {
	return l.poisoned.Load()
}

// RGuard is shared read access to the value of an RWLocked, held until
// Unlock.
type RGuard[T any] struct {
	lock     *RWLocked[T]
	released bool
}

// Get returns a copy of the guarded value.
func (g *RGuard[T]) Get() T {
	if g.released {
		panic("syncutil: use of released guard")
	}
	return g.lock.value
}

// Unlock releases the read lock. Unlocking twice is a caller bug and
// panics.
func (g *RGuard[T]) Unlock() {
	if g.released {
		panic("syncutil: guard unlocked twice")
	}
	g.released = true
	g.lock.mu.RUnlock()
}

// WGuard is exclusive write access to the value of an RWLocked, held
// until Unlock.
type WGuard[T any] struct {
	lock     *RWLocked[T]
	released bool
}

// Get returns a copy of the guarded value.
func (g *WGuard[T]) Get() T {
	if g.released {
		panic("syncutil: use of released guard")
	}
	return g.lock.value
}

// Set replaces the guarded value with v.
func (g *WGuard[T]) Set(v T) {
	if g.released {
		panic("syncutil: use of released guard")
	}
	g.lock.value = v
}

// Unlock releases the write lock. Unlocking twice is a caller bug and
// panics.
func (g *WGuard[T]) Unlock() {
	if g.released {
		panic("syncutil: guard unlocked twice")
	}
	g.released = true
	g.lock.mu.Unlock()
}
