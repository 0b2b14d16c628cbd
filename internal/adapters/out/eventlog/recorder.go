package eventlog

import (
	"context"
	"sync"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

var _ ports.EventPublisher = (*Recorder)(nil)

// Recorder keeps every published event in memory. It backs the tests of the
// lifecycle properties and is safe for concurrent publishers.
type Recorder struct {
	mu     sync.Mutex
	events []delivery.Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, e delivery.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of every recorded event in publish order.
func (r *Recorder) Events() []delivery.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]delivery.Event, len(r.events))
	copy(out, r.events)
	return out
}

// ByName returns the recorded events with the given name.
func (r *Recorder) ByName(name delivery.EventName) []delivery.Event {
	var out []delivery.Event
	for _, e := range r.Events() {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events with the given name were recorded.
func (r *Recorder) Count(name delivery.EventName) int {
	return len(r.ByName(name))
}

// History returns the names of the events recorded for one tracking id.
func (r *Recorder) History(id kernel.UUID) []delivery.EventName {
	var out []delivery.EventName
	for _, e := range r.Events() {
		if e.TrackingID.IsEqual(id) {
			out = append(out, e.Name)
		}
	}
	return out
}
