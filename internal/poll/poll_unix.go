//go:build unix
// +build unix

// File: internal/poll/poll_unix.go
//
// Readability polling for descriptor-backed events. Wraps poll(2) with EINTR
// restarts and millisecond clamping so backend code issues at most one logical
// kernel wait per call.

package poll

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/sys/unix"
)

// Infinite requests an unbounded wait from WaitReadable.
const Infinite time.Duration = -1

// Millis converts a timeout to poll(2) milliseconds. Negative durations map to
// -1 (infinite); durations beyond the representable maximum clamp to it.
func Millis(d time.Duration) int {
	if d < 0 {
		return -1
	}
	ms := d.Milliseconds()
	if ms > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(ms)
}

// WaitReadable blocks until fd is readable or the timeout elapses, reporting
// whether the descriptor became readable. A timeout of Infinite blocks until
// readiness. Interrupted waits restart with the time remaining to the original
// deadline, so a bounded wait never returns early and never stretches the
// window.
//
// Readability is a hint, not a guarantee: with multiple waiters another thread
// may consume the descriptor between poll and the subsequent read. Panics on
// any poll failure other than EINTR; the descriptor is known valid, so failure
// here is an unrecoverable environment fault.
func WaitReadable(fd int, timeout time.Duration) bool {
	var deadline time.Time
	if timeout >= 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		remaining := Infinite
		if timeout >= 0 {
			remaining = time.Until(deadline)
			if remaining < 0 {
				remaining = 0
			}
		}
		pfd := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(pfd, Millis(remaining))
		if err == unix.EINTR {
			if timeout >= 0 && !time.Now().Before(deadline) {
				return false
			}
			continue
		}
		if err != nil {
			panic(fmt.Sprintf("poll failed on fd %d: %v", fd, err))
		}
		if n == 0 {
			return false
		}
		return pfd[0].Revents&unix.POLLIN != 0
	}
}
