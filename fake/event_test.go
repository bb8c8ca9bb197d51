// File: fake/event_test.go

package fake_test

import (
	"testing"
	"time"

	"github.com/timblechmann/nova-autoreset-event/fake"
)

func TestFakeEventContract(t *testing.T) {
	ev := fake.New()

	if ev.TryWait() {
		t.Fatal("TryWait() succeeded on a fresh event")
	}

	ev.Signal()
	ev.Signal()
	if !ev.TryWait() {
		t.Fatal("TryWait() failed on a signalled event")
	}
	if ev.TryWait() {
		t.Fatal("signals accumulated")
	}

	if ev.TryWaitFor(10 * time.Millisecond) {
		t.Fatal("TryWaitFor() succeeded with no signal pending")
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		ev.Signal()
	}()
	if !ev.TryWaitFor(time.Second) {
		t.Fatal("TryWaitFor() missed the signal")
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		ev.Signal()
	}()
	done := make(chan struct{})
	go func() {
		ev.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait() did not return after Signal()")
	}

	if err := ev.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
}
