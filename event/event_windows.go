//go:build windows
// +build windows

// File: event/event_windows.go
//
// Windows backend over a native auto-reset event object. The kernel primitive
// already provides the exact contract: SetEvent releases one waiter and a
// successful wait resets the object, so no auxiliary bookkeeping is needed.

package event

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"

	"github.com/timblechmann/nova-autoreset-event/api"
)

// Event is an autoreset event backed by a Win32 event object.
type Event struct {
	handle windows.Handle
}

// New creates an autoreset event in the unsignalled state.
func New() (*Event, error) {
	h, err := windows.CreateEvent(nil, 0 /* auto reset */, 0 /* unsignalled */, nil)
	if err != nil {
		return nil, api.NewOSError("CreateEvent", err)
	}
	return &Event{handle: h}, nil
}

// Signal sets the event object. One blocked waiter is released, if any;
// otherwise the event stays signalled until the next consuming wait.
func (e *Event) Signal() {
	if err := windows.SetEvent(e.handle); err != nil {
		panic(fmt.Sprintf("SetEvent failed: %v", err))
	}
}

// Wait blocks until the event is signalled, consumes the signal and returns.
func (e *Event) Wait() {
	e.waitMillis(windows.INFINITE)
}

// TryWait consumes a pending signal without blocking.
func (e *Event) TryWait() bool {
	return e.waitMillis(0)
}

// TryWaitFor blocks up to timeout for a signal. Timeouts beyond the
// representable maximum clamp just below INFINITE so a bounded call stays
// bounded.
func (e *Event) TryWaitFor(timeout time.Duration) bool {
	ms := timeout.Milliseconds()
	switch {
	case ms < 0:
		ms = 0
	case ms >= int64(windows.INFINITE):
		ms = int64(windows.INFINITE) - 1
	}
	return e.waitMillis(uint32(ms))
}

func (e *Event) waitMillis(ms uint32) bool {
	s, err := windows.WaitForSingleObject(e.handle, ms)
	switch s {
	case windows.WAIT_OBJECT_0:
		return true
	case uint32(windows.WAIT_TIMEOUT):
		return false
	default:
		panic(fmt.Sprintf("WaitForSingleObject failed: %v", err))
	}
}

// Handle returns the native event handle for use with the Win32 wait APIs.
// The handle is borrowed: it is owned by the Event and stays valid until
// Close. A successful external wait on the handle consumes the signal, per
// auto-reset object semantics.
func (e *Event) Handle() windows.Handle {
	return e.handle
}

// Close releases the event object. The Event and its handle must not be used
// afterwards.
func (e *Event) Close() error {
	return windows.CloseHandle(e.handle)
}
