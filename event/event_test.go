// File: event/event_test.go
//
// Contract tests shared by every platform backend.

package event_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/timblechmann/nova-autoreset-event/event"
)

func newEvent(t *testing.T) *event.Event {
	t.Helper()
	ev, err := event.New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { ev.Close() })
	return ev
}

func TestSignalThenWait(t *testing.T) {
	ev := newEvent(t)

	ev.Signal()
	done := make(chan struct{})
	go func() {
		ev.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait() did not return on an already-signalled event")
	}
}

func TestHandoff(t *testing.T) {
	ev := newEvent(t)

	start := time.Now()
	go func() {
		time.Sleep(100 * time.Millisecond)
		ev.Signal()
	}()
	ev.Wait()
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Fatalf("Wait() returned too early: %v", elapsed)
	}
}

func TestWaitBlocksWithoutSignal(t *testing.T) {
	ev := newEvent(t)

	done := make(chan struct{})
	go func() {
		ev.Wait()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("Wait() returned without a signal")
	case <-time.After(300 * time.Millisecond):
	}

	ev.Signal()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait() did not return after Signal()")
	}
}

func TestTryWait(t *testing.T) {
	ev := newEvent(t)

	if ev.TryWait() {
		t.Fatal("TryWait() succeeded on a fresh event")
	}
	ev.Signal()
	if !ev.TryWait() {
		t.Fatal("TryWait() failed on a signalled event")
	}
	if ev.TryWait() {
		t.Fatal("TryWait() consumed the same signal twice")
	}
}

func TestNoAccumulation(t *testing.T) {
	ev := newEvent(t)

	ev.Signal()
	ev.Signal()
	ev.Signal()
	if !ev.TryWait() {
		t.Fatal("TryWait() failed after signals")
	}
	if ev.TryWait() {
		t.Fatal("repeated signals accumulated into a second wake")
	}
}

func TestTryWaitFor(t *testing.T) {
	ev := newEvent(t)

	if ev.TryWaitFor(10 * time.Millisecond) {
		t.Fatal("TryWaitFor() succeeded with no signal pending")
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		ev.Signal()
	}()
	if !ev.TryWaitFor(1000 * time.Millisecond) {
		t.Fatal("TryWaitFor() missed the signal")
	}
	if ev.TryWait() {
		t.Fatal("signal consumed twice")
	}
}

func TestTryWaitForTimeoutAccuracy(t *testing.T) {
	ev := newEvent(t)

	start := time.Now()
	if ev.TryWaitFor(50 * time.Millisecond) {
		t.Fatal("TryWaitFor() succeeded with no signal pending")
	}
	elapsed := time.Since(start)
	if elapsed < 45*time.Millisecond {
		t.Fatalf("TryWaitFor(50ms) returned after %v", elapsed)
	}

	// A signal partway through the window releases the call promptly.
	go func() {
		time.Sleep(50 * time.Millisecond)
		ev.Signal()
	}()
	start = time.Now()
	if !ev.TryWaitFor(5 * time.Second) {
		t.Fatal("TryWaitFor() missed the signal")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("TryWaitFor() waited out the window despite a signal: %v", elapsed)
	}
}

func TestSingleWaiterReleasedPerSignal(t *testing.T) {
	ev := newEvent(t)

	const waiters = 4
	var released atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev.Wait()
			released.Add(1)
		}()
	}

	ev.Signal()
	time.Sleep(300 * time.Millisecond)
	if got := released.Load(); got != 1 {
		t.Fatalf("one signal released %d waiters", got)
	}

	// Release the rest.
	for i := 0; i < waiters-1; i++ {
		ev.Signal()
		time.Sleep(50 * time.Millisecond)
	}
	wg.Wait()
	if got := released.Load(); got != waiters {
		t.Fatalf("released %d of %d waiters", got, waiters)
	}
}

func TestConcurrentConsumers(t *testing.T) {
	ev := newEvent(t)

	// Goroutines race TryWaitFor against a stream of signals. Signals sent
	// while the event is already signalled collapse, so consumptions may
	// fall short of signals sent, but can never exceed them.
	const signals = 100
	var consumed atomic.Int32
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if ev.TryWaitFor(5 * time.Millisecond) {
					consumed.Add(1)
				}
			}
		}()
	}
	for i := 0; i < signals; i++ {
		ev.Signal()
		time.Sleep(time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	close(stop)
	wg.Wait()
	got := consumed.Load()
	if got == 0 {
		t.Fatal("no signal was consumed")
	}
	if got > signals {
		t.Fatalf("consumed %d wakes from %d signals", got, signals)
	}
}

func TestCloseReleasesResources(t *testing.T) {
	ev, err := event.New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	ev.Signal()
	if err := ev.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
}
