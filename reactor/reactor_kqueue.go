//go:build darwin || freebsd || dragonfly
// +build darwin freebsd dragonfly

// File: reactor/reactor_kqueue.go
//
// kqueue reactor for the EVFILT_USER platforms. Watches the pipe read ends
// exposed by the event backend with level-triggered EVFILT_READ.

package reactor

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

type kqueueReactor struct {
	kq    int
	mu    sync.Mutex
	udata map[int]uintptr // fd -> user data
}

// NewReactor constructs the kqueue-based reactor.
func NewReactor() (EventReactor, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, fmt.Errorf("kqueue: %w", err)
	}
	return &kqueueReactor{kq: kq, udata: make(map[int]uintptr)}, nil
}

func (r *kqueueReactor) Register(handle uintptr, userData uintptr) error {
	add := unix.Kevent_t{
		Ident:  uint64(handle),
		Filter: unix.EVFILT_READ,
		Flags:  unix.EV_ADD | unix.EV_ENABLE,
	}
	if _, err := unix.Kevent(r.kq, []unix.Kevent_t{add}, nil, nil); err != nil {
		return fmt.Errorf("kevent add: %w", err)
	}
	r.mu.Lock()
	r.udata[int(handle)] = userData
	r.mu.Unlock()
	return nil
}

func (r *kqueueReactor) Unregister(handle uintptr) error {
	del := unix.Kevent_t{
		Ident:  uint64(handle),
		Filter: unix.EVFILT_READ,
		Flags:  unix.EV_DELETE,
	}
	if _, err := unix.Kevent(r.kq, []unix.Kevent_t{del}, nil, nil); err != nil {
		return fmt.Errorf("kevent delete: %w", err)
	}
	r.mu.Lock()
	delete(r.udata, int(handle))
	r.mu.Unlock()
	return nil
}

func (r *kqueueReactor) Wait(events []Event, timeout time.Duration) (int, error) {
	if len(events) == 0 {
		return 0, fmt.Errorf("reactor: empty event buffer")
	}
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	raw := make([]unix.Kevent_t, len(events))
	for {
		var ts *unix.Timespec
		if timeout >= 0 {
			remaining := time.Until(deadline)
			if remaining < 0 {
				remaining = 0
			}
			t := unix.NsecToTimespec(remaining.Nanoseconds())
			ts = &t
		}
		n, err := unix.Kevent(r.kq, nil, raw, ts)
		if err == unix.EINTR {
			if timeout >= 0 && !time.Now().Before(deadline) {
				return 0, nil
			}
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("kevent wait: %w", err)
		}
		r.mu.Lock()
		for i := 0; i < n; i++ {
			fd := int(raw[i].Ident)
			events[i] = Event{Handle: uintptr(fd), UserData: r.udata[fd]}
		}
		r.mu.Unlock()
		return n, nil
	}
}

func (r *kqueueReactor) Close() error {
	return unix.Close(r.kq)
}
