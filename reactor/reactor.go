// File: reactor/reactor.go
//
// Platform-neutral readiness multiplexer for autoreset event handles.
//
// An EventReactor lets a single consumer observe the readiness handles of
// many events through one kernel wait, without touching the events' own wait
// API. It holds the handles by reference only: registering a handle does not
// transfer ownership, and a handle must be unregistered before its event is
// closed.

package reactor

import "time"

// EventReactor multiplexes readiness across registered handles.
type EventReactor interface {
	// Register adds an FD (unix) or HANDLE (windows) to the watch set.
	// userData is returned verbatim with every readiness report.
	Register(handle uintptr, userData uintptr) error

	// Unregister removes a handle from the watch set. Must be called before
	// the owning event is closed.
	Unregister(handle uintptr) error

	// Wait blocks until registered handles report readiness or the timeout
	// elapses, filling events and returning the number written. A negative
	// timeout blocks indefinitely; n == 0 with a nil error means the window
	// elapsed.
	//
	// On windows the native wait consumes an auto-reset event's signal; on
	// the kqueue platforms the pipe handle stays readable until drained.
	// See the event package for the per-platform readiness semantics.
	Wait(events []Event, timeout time.Duration) (n int, err error)

	// Close releases the reactor's kernel object, if any. Registered handles
	// remain owned by their events and stay open.
	Close() error
}

// Event reports one ready handle.
type Event struct {
	Handle   uintptr // descriptor or native handle that is ready
	UserData uintptr // value supplied at registration
}
