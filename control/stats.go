// File: control/stats.go
//
// Delivery counters for readiness multiplexing. Plain atomics; safe to share
// between the delivering goroutine and any number of observers.

package control

import "sync/atomic"

// Stats counts readiness batches, delivered events and timed-out waits.
type Stats struct {
	batches  atomic.Uint64
	events   atomic.Uint64
	timeouts atomic.Uint64
}

// AddBatch records one kernel wait that returned n ready events.
func (s *Stats) AddBatch(n int) {
	s.batches.Add(1)
	s.events.Add(uint64(n))
}

// AddTimeout records one wait window that elapsed without readiness.
func (s *Stats) AddTimeout() {
	s.timeouts.Add(1)
}

// Batches returns the number of non-empty kernel waits.
func (s *Stats) Batches() uint64 { return s.batches.Load() }

// Events returns the total number of readiness reports delivered.
func (s *Stats) Events() uint64 { return s.events.Load() }

// Timeouts returns the number of elapsed wait windows.
func (s *Stats) Timeouts() uint64 { return s.timeouts.Load() }

// Snapshot returns the current counters keyed for probe dumps.
func (s *Stats) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"batches":  s.Batches(),
		"events":   s.Events(),
		"timeouts": s.Timeouts(),
	}
}
