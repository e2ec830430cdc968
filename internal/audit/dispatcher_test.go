package audit

import (
	"testing"
	"time"
)

type recordingWriter struct {
	entries chan string
}

func (w *recordingWriter) Log(_ *uint, action, _ string, _ *uint, _ any) error {
	w.entries <- action
	return nil
}

func TestDispatchDelivers(t *testing.T) {
	w := &recordingWriter{entries: make(chan string, 1)}
	d := NewDispatcher(w)

	userID := uint(7)
	d.Dispatch(Event{UserID: &userID, Action: "booking_created", Entity: "booking"})

	select {
	case action := <-w.entries:
		if action != "booking_created" {
			t.Errorf("action = %q, want booking_created", action)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the worker")
	}
}

type stuckWriter struct {
	block chan struct{}
}

func (w *stuckWriter) Log(*uint, string, string, *uint, any) error {
	<-w.block
	return nil
}

func TestDispatchNeverBlocks(t *testing.T) {
	w := &stuckWriter{block: make(chan struct{})}
	d := NewDispatcher(w)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			d.Dispatch(Event{Action: "flood", Entity: "booking"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
	close(w.block)
}
