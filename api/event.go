// File: api/event.go
//
// Shared contract for autoreset event implementations.

package api

import "time"

// Event is a binary synchronization primitive shared between threads.
//
// A signalled event wakes exactly one waiter and atomically returns to the
// unsignalled state. Signalling an event that is already signalled with no
// waiter is a no-op: pending wakes never accumulate. All implementations are
// safe for concurrent use from any number of goroutines without external
// locking; the single logical bit lives in kernel state, not user memory.
type Event interface {
	// Signal sets the event. Exactly one blocked waiter is released, if any;
	// otherwise the event stays signalled until the next consuming wait.
	// Never blocks.
	Signal()

	// Wait blocks until the event is signalled, consumes the signal and
	// returns. Returns immediately if the event is already signalled.
	Wait()

	// TryWait consumes a pending signal without blocking. Reports whether a
	// signal was consumed.
	TryWait() bool

	// TryWaitFor blocks up to timeout for a signal. Reports whether a signal
	// was consumed within the window. A zero timeout behaves as TryWait; a
	// timeout beyond the platform's representable maximum is clamped, never
	// rejected.
	TryWaitFor(timeout time.Duration) bool

	// Close releases the underlying kernel resource(s). The event and any
	// readiness handle obtained from it must not be used afterwards.
	Close() error
}
