//go:build linux
// +build linux

// File: event/event_linux.go
//
// Linux eventfd(2) backend. The kernel maintains a 64-bit counter: signal
// increments it by one, a consuming wait reads the full counter and thereby
// resets it to zero, so any number of unconsumed signals collapse into a
// single pending wake.

package event

import (
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/timblechmann/nova-autoreset-event/api"
	"github.com/timblechmann/nova-autoreset-event/internal/poll"
)

const sizeofCounter = 8

// Event is an autoreset event backed by an eventfd descriptor.
type Event struct {
	fd int
}

// New creates an autoreset event in the unsignalled state.
func New() (*Event, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, api.NewOSError("eventfd", err)
	}
	return &Event{fd: fd}, nil
}

// Signal increments the eventfd counter. One blocked waiter is released, if
// any; otherwise the event stays signalled until the next consuming wait.
func (e *Event) Signal() {
	var buf [sizeofCounter]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	for {
		n, err := unix.Write(e.fd, buf[:])
		switch err {
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			// Counter saturated. The event cannot be more signalled.
			return
		case nil:
			if n != sizeofCounter {
				panic(fmt.Sprintf("short write to eventfd: %d bytes", n))
			}
			return
		default:
			panic(fmt.Sprintf("write to eventfd failed: %v", err))
		}
	}
}

// Wait blocks until the event is signalled, consumes the signal and returns.
func (e *Event) Wait() {
	for !e.consume() {
		poll.WaitReadable(e.fd, poll.Infinite)
	}
}

// TryWait consumes a pending signal without blocking.
func (e *Event) TryWait() bool {
	return e.TryWaitFor(0)
}

// TryWaitFor blocks up to timeout for a signal. A readable descriptor whose
// counter was drained by a concurrent waiter between poll and read counts as
// not signalled; losing that race is expected under contention.
func (e *Event) TryWaitFor(timeout time.Duration) bool {
	if timeout < 0 {
		timeout = 0
	}
	if !poll.WaitReadable(e.fd, timeout) {
		return false
	}
	return e.consume()
}

// consume performs the draining read, resetting the counter to zero. Reports
// false if the counter was already zero.
func (e *Event) consume() bool {
	var buf [sizeofCounter]byte
	for {
		n, err := unix.Read(e.fd, buf[:])
		switch err {
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			return false
		case nil:
			if n != sizeofCounter {
				panic(fmt.Sprintf("short read from eventfd: %d bytes", n))
			}
			return true
		default:
			panic(fmt.Sprintf("read from eventfd failed: %v", err))
		}
	}
}

// Fd returns the eventfd descriptor for readiness polling. The descriptor is
// borrowed: it is owned by the Event, stays valid until Close and reports
// readable exactly while the event is signalled.
func (e *Event) Fd() int {
	return e.fd
}

// Close releases the eventfd. The Event and its descriptor must not be used
// afterwards.
func (e *Event) Close() error {
	return unix.Close(e.fd)
}
