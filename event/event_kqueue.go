//go:build darwin || freebsd || dragonfly
// +build darwin freebsd dragonfly

// File: event/event_kqueue.go
//
// kqueue backend for platforms with EVFILT_USER. Two kernel objects carry the
// event: an auto-clearing user event on a private kqueue (consumed by the
// wait calls) and a pipe whose read end is exposed for external polling.
// Signal touches both, in that order: trigger the user event, then write one
// byte to the pipe so pollers of the exposed descriptor see readiness.
//
// Wait consumes only the kqueue side. The pipe byte is deliberately left
// unread, so the exposed descriptor may still report readable after the
// logical signal has been consumed; external pollers reusing the descriptor
// as a readiness signal must drain the pipe themselves.

package event

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/timblechmann/nova-autoreset-event/api"
)

// userIdent identifies the single EVFILT_USER registration on the kqueue.
const userIdent = 1

// Event is an autoreset event backed by a kqueue user event and a pipe.
type Event struct {
	kq  int
	fds [2]int // pipe; fds[0] is the exposed read end
}

// New creates an autoreset event in the unsignalled state.
func New() (*Event, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, api.NewOSError("kqueue", err)
	}
	e := &Event{kq: kq}
	if err := unix.Pipe(e.fds[:]); err != nil {
		unix.Close(kq)
		return nil, api.NewOSError("pipe", err)
	}
	for _, fd := range e.fds {
		unix.CloseOnExec(fd)
		if err := unix.SetNonblock(fd, true); err != nil {
			e.closeAll()
			return nil, api.NewOSError("fcntl", err)
		}
	}
	reg := unix.Kevent_t{
		Ident:  userIdent,
		Filter: unix.EVFILT_USER,
		Flags:  unix.EV_ADD | unix.EV_CLEAR,
	}
	if _, err := unix.Kevent(e.kq, []unix.Kevent_t{reg}, nil, nil); err != nil {
		e.closeAll()
		return nil, api.NewOSError("kevent", err)
	}
	return e, nil
}

// Signal triggers the user event and writes one byte to the pipe. One blocked
// waiter is released, if any; otherwise the event stays signalled until the
// next consuming wait.
func (e *Event) Signal() {
	trig := unix.Kevent_t{
		Ident:  userIdent,
		Filter: unix.EVFILT_USER,
		Fflags: unix.NOTE_FFNOP | unix.NOTE_TRIGGER,
	}
	for {
		_, err := unix.Kevent(e.kq, []unix.Kevent_t{trig}, nil, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			panic(fmt.Sprintf("kevent trigger failed: %v", err))
		}
		break
	}

	// Pipe side, for external pollers of Fd.
	buf := [1]byte{0}
	for {
		_, err := unix.Write(e.fds[1], buf[:])
		switch err {
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			// Pipe full of unconsumed signal bytes; readiness is already
			// pending on the exposed descriptor.
			return
		case nil:
			return
		default:
			panic(fmt.Sprintf("write to signal pipe failed: %v", err))
		}
	}
}

// Wait blocks until the event is signalled, consumes the signal and returns.
// Only the kqueue side is consumed; see the package note on the pipe.
func (e *Event) Wait() {
	var out [1]unix.Kevent_t
	for {
		n, err := unix.Kevent(e.kq, nil, out[:], nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			panic(fmt.Sprintf("kevent wait failed: %v", err))
		}
		if n > 0 {
			return
		}
	}
}

// TryWait consumes a pending signal without blocking.
func (e *Event) TryWait() bool {
	return e.TryWaitFor(0)
}

// TryWaitFor blocks up to timeout for a signal. Interrupted waits restart
// with the time remaining to the original deadline.
func (e *Event) TryWaitFor(timeout time.Duration) bool {
	if timeout < 0 {
		timeout = 0
	}
	deadline := time.Now().Add(timeout)
	var out [1]unix.Kevent_t
	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		ts := unix.NsecToTimespec(remaining.Nanoseconds())
		n, err := unix.Kevent(e.kq, nil, out[:], &ts)
		if err == unix.EINTR {
			if !time.Now().Before(deadline) {
				return false
			}
			continue
		}
		if err != nil {
			panic(fmt.Sprintf("kevent wait failed: %v", err))
		}
		return n > 0
	}
}

// Fd returns the pipe read end for readiness polling. The descriptor is
// borrowed and stays valid until Close. Wait does not drain the pipe, so the
// descriptor may report readable after the signal has been consumed; pollers
// must drain it themselves before reusing it as a readiness signal.
func (e *Event) Fd() int {
	return e.fds[0]
}

// Close deregisters the user event and releases the kqueue and the pipe. The
// deregistration happens first so the kernel cannot deliver a notification
// for an object being torn down.
func (e *Event) Close() error {
	del := unix.Kevent_t{
		Ident:  userIdent,
		Filter: unix.EVFILT_USER,
		Flags:  unix.EV_DELETE,
	}
	_, err := unix.Kevent(e.kq, []unix.Kevent_t{del}, nil, nil)
	if cerr := e.closeAll(); err == nil {
		err = cerr
	}
	return err
}

func (e *Event) closeAll() error {
	err := unix.Close(e.kq)
	for _, fd := range e.fds {
		if fd != 0 {
			if cerr := unix.Close(fd); err == nil {
				err = cerr
			}
		}
	}
	return err
}
