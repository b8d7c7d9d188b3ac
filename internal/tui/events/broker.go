// Package events distributes loader, search, and visibility
// notifications to whoever subscribes. Subscriptions are channels so
// the TUI can pump them back into its update loop.
package events

import "sync"

const defaultBufferSize = 16

// Broker manages event distribution
type Broker struct {
	subscribers map[EventType][]chan Event
	mu          sync.RWMutex
	bufferSize  int
}

// BrokerOption configures a Broker.
type BrokerOption func(*Broker)

// WithBufferSize sets the per-subscription channel buffer.
func WithBufferSize(n int) BrokerOption {
	return func(b *Broker) {
		if n > 0 {
			b.bufferSize = n
		}
	}
}

// NewBroker creates a new event broker
func NewBroker(opts ...BrokerOption) *Broker {
	b := &Broker{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  defaultBufferSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe creates a subscription to specific event types.
// With no types given, the subscription receives everything.
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)

	if len(eventTypes) == 0 {
		eventTypes = []EventType{"*"} // wildcard
	}

	for _, eventType := range eventTypes {
		b.subscribers[eventType] = append(b.subscribers[eventType], ch)
	}

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broker) Unsubscribe(ch <-chan Event, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		eventTypes = make([]EventType, 0, len(b.subscribers))
		for eventType := range b.subscribers {
			eventTypes = append(eventTypes, eventType)
		}
	}

	var removed chan Event
	for _, eventType := range eventTypes {
		if c := b.removeChannel(eventType, ch); c != nil {
			removed = c
		}
	}
	// Close once, after the channel is out of every list.
	if removed != nil {
		close(removed)
	}
}

// Publish sends an event to all subscribers. Sends never block: a
// subscriber whose buffer is full misses the event.
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[event.Type] {
		select {
		case ch <- event:
		default:
		}
	}

	for _, ch := range b.subscribers["*"] {
		select {
		case ch <- event:
		default:
		}
	}
}

// PublishAsync sends an event without holding up the caller.
func (b *Broker) PublishAsync(event Event) {
	go b.Publish(event)
}

func (b *Broker) removeChannel(eventType EventType, target <-chan Event) chan Event {
	var removed chan Event
	subscribers := b.subscribers[eventType]
	for i, ch := range subscribers {
		if ch == target {
			b.subscribers[eventType] = append(subscribers[:i], subscribers[i+1:]...)
			removed = ch
			break
		}
	}

	if len(b.subscribers[eventType]) == 0 {
		delete(b.subscribers, eventType)
	}
	return removed
}

// Clear removes all subscriptions
func (b *Broker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			close(ch)
		}
	}

	b.subscribers = make(map[EventType][]chan Event)
}
