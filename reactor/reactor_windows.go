//go:build windows
// +build windows

// File: reactor/reactor_windows.go
//
// Windows reactor over WaitForMultipleObjects. Event objects cannot be
// polled for readiness without waiting on them, and a successful wait on an
// auto-reset event consumes its signal; readiness reported here therefore
// already carries the signal, and a subsequent TryWait on the event returns
// false. The watch set is capped at MAXIMUM_WAIT_OBJECTS.

package reactor

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sys/windows"

	"github.com/timblechmann/nova-autoreset-event/api"
)

// maxWaitObjects mirrors MAXIMUM_WAIT_OBJECTS, the WaitForMultipleObjects
// hard limit.
const maxWaitObjects = 64

type windowsReactor struct {
	mu      sync.Mutex
	handles []windows.Handle
	udata   map[windows.Handle]uintptr
}

// NewReactor constructs the WaitForMultipleObjects-based reactor.
func NewReactor() (EventReactor, error) {
	return &windowsReactor{udata: make(map[windows.Handle]uintptr)}, nil
}

func (r *windowsReactor) Register(handle uintptr, userData uintptr) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.handles) >= maxWaitObjects {
		return fmt.Errorf("reactor: %w: %d handles", api.ErrResourceExhausted, len(r.handles))
	}
	h := windows.Handle(handle)
	if _, ok := r.udata[h]; ok {
		return fmt.Errorf("reactor: handle %#x already registered", handle)
	}
	r.handles = append(r.handles, h)
	r.udata[h] = userData
	return nil
}

func (r *windowsReactor) Unregister(handle uintptr) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := windows.Handle(handle)
	for i, cur := range r.handles {
		if cur == h {
			r.handles = append(r.handles[:i], r.handles[i+1:]...)
			delete(r.udata, h)
			return nil
		}
	}
	return fmt.Errorf("reactor: handle %#x not registered", handle)
}

func (r *windowsReactor) Wait(events []Event, timeout time.Duration) (int, error) {
	if len(events) == 0 {
		return 0, fmt.Errorf("reactor: empty event buffer")
	}
	r.mu.Lock()
	handles := make([]windows.Handle, len(r.handles))
	copy(handles, r.handles)
	r.mu.Unlock()
	if len(handles) == 0 {
		return 0, fmt.Errorf("reactor: no handles registered")
	}

	ms := uint32(windows.INFINITE)
	if timeout >= 0 {
		v := timeout.Milliseconds()
		if v >= int64(windows.INFINITE) {
			v = int64(windows.INFINITE) - 1
		}
		ms = uint32(v)
	}
	s, err := windows.WaitForMultipleObjects(handles, false, ms)
	switch {
	case s >= windows.WAIT_OBJECT_0 && s < windows.WAIT_OBJECT_0+uint32(len(handles)):
		h := handles[s-windows.WAIT_OBJECT_0]
		r.mu.Lock()
		ud := r.udata[h]
		r.mu.Unlock()
		events[0] = Event{Handle: uintptr(h), UserData: ud}
		return 1, nil
	case s == uint32(windows.WAIT_TIMEOUT):
		return 0, nil
	default:
		return 0, fmt.Errorf("WaitForMultipleObjects: %v", err)
	}
}

func (r *windowsReactor) Close() error {
	return nil
}
