// Package autowrap provides one-call constructors that wrap a plain
// value into the ownership and concurrency container it will live in.
//
// Every constructor is a single construction step: it takes the value,
// builds the target container around it, and returns the container.
// Nothing is scheduled, retried, or shared between calls, and no state
// exists outside the returned value.
//
// # Quick Start
//
// Wrap a value in the container you need:
//
//	counter := autowrap.Locked(0)       // mutex-guarded shared int
//	config := autowrap.RWLocked(cfg)    // rwlock-guarded shared struct
//	flag := autowrap.Bool(true)         // atomic bool
//	answer := autowrap.Once(42)         // single-assignment cell, pre-set
//
// Mutate under the lock with the closure forms:
//
//	counter.With(func(n *int) { *n++ })
//
// # Key Concepts
//
// Single-owner containers: Cell is an unchecked mutable cell, and
// Checked is a cell that arbitrates shared reads against exclusive
// writes at run time. Both belong to exactly one goroutine.
//
// Shared-ownership handles: Rc counts owners on one goroutine, Arc
// counts them atomically across goroutines. Either runs an optional
// finalizer exactly once when the last owner releases. RcCell composes
// Rc with Checked for shared ownership plus checked mutation.
//
// Lock-guarded handles: Locked guards a value with a mutex, RWLocked
// with a reader/writer lock. A holder that panics inside the closure
// accessors poisons the lock; later acquisitions fail with ErrPoisoned.
//
// Atomic cells: Int8 through Uint64, Uintptr, Bool, and Pointer wrap a
// value in an atomic cell. The integer constructors accept any integer
// type and convert with Go's usual truncation and extension rules, so
// an int can seed a Uint16 directly.
//
// # Thread Safety
//
// Cell, Checked, Rc, and RcCell are single-goroutine containers; the
// package adds no hidden synchronization to them. Everything
// constructed by Arc, Locked, RWLocked, Once, and the atomic
// constructors is safe for concurrent use.
//
// # Packages
//
// Implementation types live in core (single-owner and single-goroutine
// shared containers) and syncutil (thread-safe containers). Importing
// only what you use keeps the rest out of the binary; most callers need
// just this package.
//
// # Example
//
//	import (
//		"fmt"
//		"sync"
//
//		autowrap "github.com/autowrap/go-autowrap"
//	)
//
//	func main() {
//		total := autowrap.Locked(0)
//
//		var wg sync.WaitGroup
//		for i := 0; i < 4; i++ {
//			wg.Add(1)
//			go func() {
//				defer wg.Done()
//				total.With(func(n *int) { *n += 10 })
//			}()
//		}
//		wg.Wait()
//
//		n, _ := total.Get()
//		fmt.Println(n) // 40
//	}
package autowrap
