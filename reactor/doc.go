// File: reactor/doc.go

// Package reactor multiplexes the readiness handles exposed by autoreset
// events, so one consumer can watch many events with a single kernel wait.
//
// One platform reactor is compiled per target: epoll on linux, kqueue on
// darwin/freebsd/dragonfly, poll(2) on the remaining unix platforms and
// WaitForMultipleObjects on windows. Buffered adds batch draining with
// single-event delivery on top of any of them.
//
// The reactor observes readiness only; consuming the signal remains the
// event's own API. Note the platform asymmetries documented in the event
// package: on windows the native wait consumes the signal as a side effect
// of observation, and on the kqueue platforms the watched pipe descriptor
// stays readable until the consumer drains it.
package reactor
