// Package events provides the in-process refresh bus: controllers publish
// an event after every successful save and connected clients pick it up
// over SSE to rebuild their views from fresh data.
package events

import "sync"

// Event is a broadcast notification.
type Event struct {
	Type   string `json:"type"`
	Reason string `json:"reason,omitempty"`
}

// Bus fans events out to subscribers. Slow subscribers drop events rather
// than block a publisher.
type Bus struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewBus creates a new Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new listener. The returned cancel function must be
// called when the listener goes away.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber without blocking.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- e:
		default:
			// Subscriber is not keeping up; drop.
		}
	}
}

// PublishRefresh publishes the standard data-refresh event.
func (b *Bus) PublishRefresh(reason string) {
	b.Publish(Event{Type: "data:refresh", Reason: reason})
}
