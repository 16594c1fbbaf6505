package main

import (
	"testing"
	"time"

	"pubsweep/internal/driver"
)

func TestAwaitOutcomeUnblocksPendingSenders(t *testing.T) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan rewriteOutcome, 1)

	// more events than the buffer holds, so the producer blocks
	// unless the receiver keeps draining
	go func() {
		for i := 0; i < 1000; i++ {
			events <- driver.Event{Index: i, Total: 1000}
		}
		outcomeCh <- rewriteOutcome{}
		close(events)
	}()

	done := make(chan struct{})
	go func() {
		awaitOutcome(events, outcomeCh)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("outcome never arrived while events were still in flight")
	}
}
