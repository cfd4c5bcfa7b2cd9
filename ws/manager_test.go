package ws

import (
	"testing"
	"time"

	"campusconnect_backend/internal/store"
)

func TestManagerStopEndsRun(t *testing.T) {
	m := NewManager()

	finished := make(chan struct{})
	go func() {
		m.Run()
		close(finished)
	}()

	m.Notify(store.Event{Entity: "post", Action: store.ActionCreated, ID: "P1"})
	m.Stop()
	m.Stop()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestNotifyNeverBlocks(t *testing.T) {
	// No Run loop draining the queue; once full, further events are dropped
	// instead of stalling the publisher.
	m := NewManager()
	for i := 0; i < 200; i++ {
		m.Notify(store.Event{Entity: "post", Action: store.ActionUpdated, ID: "P1"})
	}
}
