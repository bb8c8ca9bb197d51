// File: event/doc.go

// Package event implements a cross-platform autoreset event: a binary
// synchronization primitive shared between threads.
//
// Signalling an event wakes exactly one waiter and atomically resets the
// event to the unsignalled state. If no thread is waiting, the event stays
// signalled until the next wait consumes it; further signals in that window
// collapse into the same single pending wake. This distinguishes the
// primitive from a semaphore (no accumulation) and from a condition variable
// (no predicate, no broadcast).
//
// One backend is compiled per target platform:
//
//   - linux (incl. android): eventfd(2), the counter drained on wait
//   - darwin, freebsd, dragonfly: kqueue EVFILT_USER plus a pipe whose read
//     end is exposed for external polling
//   - other unix (netbsd, openbsd, solaris, aix): a nonblocking self-pipe
//   - windows: a Win32 auto-reset event object
//
// All backends present identical observable semantics and are safe for
// concurrent use from any number of goroutines without additional locking;
// the signalled bit lives in kernel state. An Event must be shared by
// pointer, never copied: it exclusively owns its kernel handle(s), which
// Close releases exactly once.
//
// Descriptor-backed platforms expose the underlying descriptor via Fd so
// external pollers (epoll, kqueue, select-style loops) can multiplex on
// readiness; windows exposes the native handle via Handle. The readiness
// handle is borrowed: it is valid exactly as long as the Event and must not
// be retained past Close.
package event
