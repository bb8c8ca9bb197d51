//go:build unix && !linux && !darwin && !freebsd && !dragonfly
// +build unix,!linux,!darwin,!freebsd,!dragonfly

// File: reactor/reactor_poll.go
//
// poll(2) reactor for the self-pipe platforms. No persistent kernel object:
// the watch set lives in user space and each Wait issues one poll call over
// the registered descriptors.

package reactor

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/timblechmann/nova-autoreset-event/internal/poll"
)

type pollReactor struct {
	mu    sync.Mutex
	fds   []unix.PollFd
	udata map[int]uintptr // fd -> user data
}

// NewReactor constructs the poll-based reactor.
func NewReactor() (EventReactor, error) {
	return &pollReactor{udata: make(map[int]uintptr)}, nil
}

func (r *pollReactor) Register(handle uintptr, userData uintptr) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pfd := range r.fds {
		if pfd.Fd == int32(handle) {
			return fmt.Errorf("reactor: handle %d already registered", handle)
		}
	}
	r.fds = append(r.fds, unix.PollFd{Fd: int32(handle), Events: unix.POLLIN})
	r.udata[int(handle)] = userData
	return nil
}

func (r *pollReactor) Unregister(handle uintptr) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, pfd := range r.fds {
		if pfd.Fd == int32(handle) {
			r.fds = append(r.fds[:i], r.fds[i+1:]...)
			delete(r.udata, int(handle))
			return nil
		}
	}
	return fmt.Errorf("reactor: handle %d not registered", handle)
}

func (r *pollReactor) Wait(events []Event, timeout time.Duration) (int, error) {
	if len(events) == 0 {
		return 0, fmt.Errorf("reactor: empty event buffer")
	}
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		r.mu.Lock()
		pfds := make([]unix.PollFd, len(r.fds))
		copy(pfds, r.fds)
		r.mu.Unlock()

		remaining := poll.Infinite
		if timeout >= 0 {
			remaining = time.Until(deadline)
			if remaining < 0 {
				remaining = 0
			}
		}
		n, err := unix.Poll(pfds, poll.Millis(remaining))
		if err == unix.EINTR {
			if timeout >= 0 && !time.Now().Before(deadline) {
				return 0, nil
			}
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("poll: %w", err)
		}
		if n == 0 {
			return 0, nil
		}
		r.mu.Lock()
		written := 0
		for _, pfd := range pfds {
			if written == len(events) {
				break
			}
			if pfd.Revents&unix.POLLIN != 0 {
				fd := int(pfd.Fd)
				events[written] = Event{Handle: uintptr(fd), UserData: r.udata[fd]}
				written++
			}
		}
		r.mu.Unlock()
		return written, nil
	}
}

func (r *pollReactor) Close() error {
	return nil
}
