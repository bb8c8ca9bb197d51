//go:build unix
// +build unix

// File: internal/poll/poll_unix_test.go

package poll

import (
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func newPipe(t *testing.T) (r, w int) {
	t.Helper()
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		unix.Close(fds[0])
		unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

func TestMillis(t *testing.T) {
	if got := Millis(Infinite); got != -1 {
		t.Errorf("Millis(Infinite) = %d", got)
	}
	if got := Millis(0); got != 0 {
		t.Errorf("Millis(0) = %d", got)
	}
	if got := Millis(1500 * time.Millisecond); got != 1500 {
		t.Errorf("Millis(1.5s) = %d", got)
	}
	if got := Millis(time.Duration(1<<62) - 1); got != 1<<31-1 {
		t.Errorf("huge duration not clamped: %d", got)
	}
}

func TestWaitReadable(t *testing.T) {
	r, w := newPipe(t)

	start := time.Now()
	if WaitReadable(r, 50*time.Millisecond) {
		t.Fatal("empty pipe reported readable")
	}
	if elapsed := time.Since(start); elapsed < 45*time.Millisecond {
		t.Fatalf("WaitReadable(50ms) returned after %v", elapsed)
	}

	if _, err := unix.Write(w, []byte{1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !WaitReadable(r, 0) {
		t.Fatal("pipe with data not reported readable")
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		unix.Write(w, []byte{1})
	}()
	var buf [1]byte
	unix.Read(r, buf[:])
	if !WaitReadable(r, Infinite) {
		t.Fatal("blocking wait did not see the write")
	}
}
