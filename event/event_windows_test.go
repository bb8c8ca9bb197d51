//go:build windows
// +build windows

// File: event/event_windows_test.go
//
// Native-handle behavior of the Win32 backend.

package event_test

import (
	"testing"

	"golang.org/x/sys/windows"
)

func TestHandleWaitConsumesSignal(t *testing.T) {
	ev := newEvent(t)
	ev.Signal()

	// An external wait on the exposed handle consumes the signal, per
	// auto-reset object semantics.
	s, err := windows.WaitForSingleObject(ev.Handle(), 0)
	if s != windows.WAIT_OBJECT_0 {
		t.Fatalf("handle not signalled: status %#x, err %v", s, err)
	}
	if ev.TryWait() {
		t.Fatal("signal survived an external wait on the handle")
	}
}
