// Package linkptr implements a non-atomic shared-ownership pointer.
//
// Handles sharing one resource are threaded into an intrusive circular
// doubly-linked list; a handle's in-place Link is the only bookkeeping
// state, so sharing allocates nothing beyond the handles themselves and
// keeps no reference counter. The resource is released exactly when the
// last handle referencing it is reset or redirected.
//
// Handles are NOT safe for concurrent use. Every operation that can touch
// a shared circle (Clone, Convert, Assign, Reset, Swap, Release) is a plain
// pointer write with no atomics and no locks. Callers sharing a resource
// across goroutines must serialize every such operation with their own
// external lock; unsynchronized concurrent mutation of two handles in the
// same circle is a data race.
//
// The ordering operators compare raw object addresses. The relative order
// is only meaningful within one run of one process; it must not be
// persisted or relied upon across runs.
package linkptr

// Disposer is implemented by resource types that need an explicit release
// step when their last owning handle lets go. Offheap-backed objects free
// their slot here; plain heap objects may omit it and fall to the garbage
// collector once unreferenced.
type Disposer interface {
	Dispose()
}
