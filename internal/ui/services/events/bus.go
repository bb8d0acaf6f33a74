package events

import (
	"fmt"
	"sync"
)

// Bus is a synchronous event bus for UI services. Handlers run on the
// publishing goroutine, which is always the bubbletea update loop.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for the event type produced by Name
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners in registration order
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := make([]func(interface{}), len(b.listeners[Name(event)]))
	copy(handlers, b.listeners[Name(event)])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Name returns the event type key for an event value, e.g.
// "search.ResultChosenEvent"
func Name(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
