package syncutil

import (
	"errors"
	"sync"
	"sync/atomic"
)

// =============================================================================
// Locked: mutex-guarded shared mutable handle
// =============================================================================

// ErrPoisoned is returned when acquiring a lock whose previous holder
// panicked while it held the lock. The guarded value may have been left
// half-updated; the error makes that observable instead of silent.
var ErrPoisoned = errors.New("syncutil: lock is poisoned")

// Locked pairs a value with a mutex so that any number of goroutines can
// share and mutate it. Reads and writes both take the same exclusive
// lock; acquisition blocks until the lock is free.
//
// A Locked is shared by copying the pointer. To add an observable owner
// count, wrap it in an Arc.
//
// Poisoning: when a closure passed to With panics, the lock is marked
// poisoned before the panic propagates, and every later acquisition
// fails with ErrPoisoned. Panics between a guard-style Lock and Unlock
// cannot be observed here and do not poison; callers needing poison
// tracking should prefer the closure forms.
type Locked[T any] struct {
	mu       sync.Mutex
	poisoned atomic.Bool
	value    T
}

// NewLocked creates a Locked holding v.
func NewLocked[T any](v T) *Locked[T] {
	return &Locked[T]{value: v}
}

// Lock acquires the lock, blocking until it is free, and returns a
// guard for the value. It fails with ErrPoisoned on a poisoned lock.
func (l *Locked[T]) Lock() (*Guard[T], error) {
	l.mu.Lock()
	if l.poisoned.Load() {
		l.mu.Unlock()
		return nil, ErrPoisoned
	}
	return &Guard[T]{lock: l}, nil
}

// TryLock attempts to acquire the lock without blocking. The second
// return reports whether the lock was acquired; a free but poisoned
// lock reports true with ErrPoisoned.
func (l *Locked[T]) TryLock() (*Guard[T], bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}
	if l.poisoned.Load() {
		l.mu.Unlock()
		return nil, true, ErrPoisoned
	}
	return &Guard[T]{lock: l}, true, nil
}

// With acquires the lock and runs fn with exclusive access to the
// value. If fn panics, the lock is poisoned and the panic propagates.
func (l *Locked[T]) With(fn func(*T)) error {
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

// Get acquires the lock and returns a copy of the value.
func (l *Locked[T]) Get() (T, error) {
	var v T
	err := l.With(func(p *T) {
		v = *p
	})
	return v, err
}

// Set acquires the lock and replaces the value with v.
func (l *Locked[T]) Set(v T) error {
	return l.With(func(p *T) {
		*p = v
	})
}

// Poisoned reports whether a previous holder panicked under the lock.
func (l *Locked[T]) Poisoned() bool {
	return l.poisoned.Load()
}

// Guard is exclusive access to the value of a Locked, held until Unlock.
type Guard[T any] struct {
	lock     *Locked[T]
	released bool
}

// Get returns a copy of the guarded value.
func (g *Guard[T]) Get() T {
	if g.released {
		panic("syncutil: use of released guard")
	}
	return g.lock.value
}

// Set replaces the guarded value with v.
func (g *Guard[T]) Set(v T) {
	if g.released {
		panic("syncutil: use of released guard")
	}
	g.lock.value = v
}

// Unlock releases the lock. Unlocking twice is a caller bug and panics.
func (g *Guard[T]) Unlock() {
	if g.released {
		panic("syncutil: guard unlocked twice")
	}
	g.released = true
	g.lock.mu.Unlock()
}
