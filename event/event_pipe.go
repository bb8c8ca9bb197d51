//go:build unix && !linux && !darwin && !freebsd && !dragonfly
// +build unix,!linux,!darwin,!freebsd,!dragonfly

// File: event/event_pipe.go
//
// Self-pipe backend for unix platforms without eventfd or EVFILT_USER
// (netbsd, openbsd, solaris/illumos, aix). Signal writes one byte to the
// pipe; a consuming wait drains every byte currently buffered, so signals
// that pile up while nobody waits still collapse into a single wake.

package event

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/timblechmann/nova-autoreset-event/api"
	"github.com/timblechmann/nova-autoreset-event/internal/poll"
)

// Event is an autoreset event backed by a nonblocking pipe.
type Event struct {
	fds [2]int // fds[0] read end, fds[1] write end
}

// New creates an autoreset event in the unsignalled state.
func New() (*Event, error) {
	e := &Event{}
	if err := unix.Pipe(e.fds[:]); err != nil {
		return nil, api.NewOSError("pipe", err)
	}
	for _, fd := range e.fds {
		unix.CloseOnExec(fd)
		if err := unix.SetNonblock(fd, true); err != nil {
			e.Close()
			return nil, api.NewOSError("fcntl", err)
		}
	}
	return e, nil
}

// Signal writes one byte to the pipe. One blocked waiter is released, if
// any; otherwise the event stays signalled until the next consuming wait.
func (e *Event) Signal() {
	buf := [1]byte{0}
	for {
		_, err := unix.Write(e.fds[1], buf[:])
		switch err {
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			// Pipe full of unconsumed signal bytes; already signalled.
			return
		case nil:
			return
		default:
			panic(fmt.Sprintf("write to event pipe failed: %v", err))
		}
	}
}

// Wait blocks until the event is signalled, consumes the signal and returns.
func (e *Event) Wait() {
	for !e.consume() {
		poll.WaitReadable(e.fds[0], poll.Infinite)
	}
}

// TryWait consumes a pending signal without blocking.
func (e *Event) TryWait() bool {
	return e.TryWaitFor(0)
}

// TryWaitFor blocks up to timeout for a signal. A readable pipe emptied by a
// concurrent waiter between poll and read counts as not signalled; losing
// that race is expected under contention.
func (e *Event) TryWaitFor(timeout time.Duration) bool {
	if timeout < 0 {
		timeout = 0
	}
	if !poll.WaitReadable(e.fds[0], timeout) {
		return false
	}
	return e.consume()
}

// consume drains the pipe, collapsing any queued signal bytes into a single
// consumed wake. Reports false if the pipe was empty.
func (e *Event) consume() bool {
	var buf [64]byte
	consumed := false
	for {
		n, err := unix.Read(e.fds[0], buf[:])
		switch {
		case err == unix.EINTR:
			continue
		case err == unix.EAGAIN:
			return consumed
		case err != nil:
			panic(fmt.Sprintf("read from event pipe failed: %v", err))
		case n == 0:
			return consumed
		case n < len(buf):
			return true
		default:
			consumed = true
			// Full buffer; more bytes may be queued.
		}
	}
}

// Fd returns the pipe read end for readiness polling. The descriptor is
// borrowed: it is owned by the Event, stays valid until Close and reports
// readable exactly while the event is signalled.
func (e *Event) Fd() int {
	return e.fds[0]
}

// Close releases both pipe ends. The Event and its descriptor must not be
// used afterwards.
func (e *Event) Close() error {
	err := unix.Close(e.fds[0])
	if cerr := unix.Close(e.fds[1]); err == nil {
		err = cerr
	}
	return err
}
