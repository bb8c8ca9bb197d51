//go:build linux
// +build linux

// File: reactor/reactor_linux.go
//
// Linux epoll(7) reactor. Level-triggered EPOLLIN, matching the event
// backends: an eventfd or pipe descriptor stays readable until drained, so
// readiness is re-reported until the signal is consumed.

package reactor

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/timblechmann/nova-autoreset-event/internal/poll"
)

type linuxReactor struct {
	epfd  int
	mu    sync.Mutex
	udata map[int]uintptr // fd -> user data
}

// NewReactor constructs the epoll-based reactor for Linux.
func NewReactor() (EventReactor, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("epoll create: %w", err)
	}
	return &linuxReactor{epfd: epfd, udata: make(map[int]uintptr)}, nil
}

func (r *linuxReactor) Register(handle uintptr, userData uintptr) error {
	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(handle)}
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_ADD, int(handle), &ev); err != nil {
		return fmt.Errorf("epoll ctl add: %w", err)
	}
	r.mu.Lock()
	r.udata[int(handle)] = userData
	r.mu.Unlock()
	return nil
}

func (r *linuxReactor) Unregister(handle uintptr) error {
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_DEL, int(handle), nil); err != nil {
		return fmt.Errorf("epoll ctl del: %w", err)
	}
	r.mu.Lock()
	delete(r.udata, int(handle))
	r.mu.Unlock()
	return nil
}

func (r *linuxReactor) Wait(events []Event, timeout time.Duration) (int, error) {
	if len(events) == 0 {
		return 0, fmt.Errorf("reactor: empty event buffer")
	}
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	raw := make([]unix.EpollEvent, len(events))
	for {
		remaining := poll.Infinite
		if timeout >= 0 {
			remaining = time.Until(deadline)
			if remaining < 0 {
				remaining = 0
			}
		}
		n, err := unix.EpollWait(r.epfd, raw, poll.Millis(remaining))
		if err == unix.EINTR {
			if timeout >= 0 && !time.Now().Before(deadline) {
				return 0, nil
			}
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("epoll wait: %w", err)
		}
		r.mu.Lock()
		for i := 0; i < n; i++ {
			fd := int(raw[i].Fd)
			events[i] = Event{Handle: uintptr(fd), UserData: r.udata[fd]}
		}
		r.mu.Unlock()
		return n, nil
	}
}

func (r *linuxReactor) Close() error {
	return unix.Close(r.epfd)
}
