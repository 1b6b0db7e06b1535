package testutil

import (
	"context"
	"sync"

	"github.com/spec-kit/developer-service/internal/events"
)

// RecordingDispatcher captures published events for assertions.
type RecordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

// NewRecordingDispatcher creates a dispatcher that records instead of delivering.
func NewRecordingDispatcher() *RecordingDispatcher {
	return &RecordingDispatcher{}
}

// Publish records the event.
func (d *RecordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

// Subscribe is a no-op.
func (d *RecordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

// Events returns everything published so far.
func (d *RecordingDispatcher) Events() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event(nil), d.published...)
}
