// File: reactor/buffered.go
//
// Single-consumer front over an EventReactor: kernel waits fill a batch, the
// queue hands ready events out one at a time.

package reactor

import (
	"time"

	"github.com/eapache/queue"

	"github.com/timblechmann/nova-autoreset-event/api"
	"github.com/timblechmann/nova-autoreset-event/control"
)

const defaultBatch = 16

// Buffered drains an EventReactor in batches and delivers single events.
// Not safe for concurrent use; one goroutine owns the consuming side.
type Buffered struct {
	r       EventReactor
	pending *queue.Queue
	scratch []Event
	stats   *control.Stats
}

// NewBuffered wraps r. batch bounds how many readiness reports one kernel
// wait may return; values below 1 fall back to the default.
func NewBuffered(r EventReactor, batch int) *Buffered {
	if batch < 1 {
		batch = defaultBatch
	}
	return &Buffered{
		r:       r,
		pending: queue.New(),
		scratch: make([]Event, batch),
	}
}

// AttachStats wires delivery counters. Pass nil to detach.
func (b *Buffered) AttachStats(s *control.Stats) {
	b.stats = s
}

// Next returns the next ready event. When the queue is empty it performs one
// reactor wait bounded by timeout; an elapsed window yields api.ErrTimedOut.
// A negative timeout blocks until readiness.
func (b *Buffered) Next(timeout time.Duration) (Event, error) {
	if b.pending.Length() == 0 {
		n, err := b.r.Wait(b.scratch, timeout)
		if err != nil {
			return Event{}, err
		}
		if n == 0 {
			if b.stats != nil {
				b.stats.AddTimeout()
			}
			return Event{}, api.ErrTimedOut
		}
		for i := 0; i < n; i++ {
			b.pending.Add(b.scratch[i])
		}
		if b.stats != nil {
			b.stats.AddBatch(n)
		}
	}
	return b.pending.Remove().(Event), nil
}

// Pending reports how many already-fetched events await delivery.
func (b *Buffered) Pending() int {
	return b.pending.Length()
}
