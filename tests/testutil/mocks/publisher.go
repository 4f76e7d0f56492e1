package mocks

import (
	"context"
	"sync"

	"github.com/0xsj/wikilink/internal/domain/event"
)

// --- EventPublisher Mock ---

// EventPublisher is a mock implementation of messaging.EventPublisher.
type EventPublisher struct {
	mu sync.RWMutex

	// Published records every event in publish order.
	Published []event.Event

	// Call tracking
	Calls struct {
		Publish    int
		PublishAll int
	}

	// Error injection
	Errors struct {
		Publish    error
		PublishAll error
	}
}

// NewEventPublisher creates a new mock EventPublisher.
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

func (m *EventPublisher) Publish(ctx context.Context, evt event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Publish++

	if m.Errors.Publish != nil {
		return m.Errors.Publish
	}

	m.Published = append(m.Published, evt)
	return nil
}

func (m *EventPublisher) PublishAll(ctx context.Context, events []event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.PublishAll++

	if m.Errors.PublishAll != nil {
		return m.Errors.PublishAll
	}

	m.Published = append(m.Published, events...)
	return nil
}

// PublishedOfType returns the published events matching the given type.
func (m *EventPublisher) PublishedOfType(eventType string) []event.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []event.Event
	for _, evt := range m.Published {
		if evt.EventType() == eventType {
			result = append(result, evt)
		}
	}
	return result
}

// Reset clears all data and call counts.
func (m *EventPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = nil
	m.Calls = struct {
		Publish    int
		PublishAll int
	}{}
	m.Errors = struct {
		Publish    error
		PublishAll error
	}{}
}
