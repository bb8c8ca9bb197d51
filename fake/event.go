// File: fake/event.go
//
// In-memory autoreset event for consumer tests. No kernel resources and no
// readiness handle; a 1-buffered channel carries the single pending wake, so
// signals collapse exactly like the real backends.

package fake

import (
	"time"

	"github.com/timblechmann/nova-autoreset-event/api"
)

// Event is a channel-backed api.Event implementation.
type Event struct {
	ch chan struct{}
}

var _ api.Event = (*Event)(nil)

// New creates a fake event in the unsignalled state.
func New() *Event {
	return &Event{ch: make(chan struct{}, 1)}
}

// Signal sets the event; at most one wake is ever pending.
func (e *Event) Signal() {
	select {
	case e.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until the event is signalled and consumes the signal.
func (e *Event) Wait() {
	<-e.ch
}

// TryWait consumes a pending signal without blocking.
func (e *Event) TryWait() bool {
	select {
	case <-e.ch:
		return true
	default:
		return false
	}
}

// TryWaitFor blocks up to timeout for a signal.
func (e *Event) TryWaitFor(timeout time.Duration) bool {
	if timeout <= 0 {
		return e.TryWait()
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-e.ch:
		return true
	case <-timer.C:
		return false
	}
}

// Close is a no-op; the fake holds no kernel resources.
func (e *Event) Close() error {
	return nil
}
