// Package syncutil provides the thread-safe counterparts of the core
// containers: an atomically counted shared handle (Arc), mutex- and
// rwlock-guarded shared mutable handles with poison tracking (Locked,
// RWLocked), and atomic integer cells for every width from 8 bits to
// the platform word.
//
// All types in this package are safe for concurrent use. Atomic
// operations follow Go's memory model: there is a single, sequentially
// consistent ordering; no relaxed or acquire/release variants exist.
package syncutil
