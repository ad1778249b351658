package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher allows event publication and subscription. Publishing is
// fire-and-forget: handlers never block or fail the publishing caller.
type Dispatcher interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler EventHandler)
}

// asyncDispatcher runs each handler in its own goroutine and logs failures.
type asyncDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventHandler
	logger    *zap.Logger
}

// NewAsyncDispatcher creates a dispatcher instance.
func NewAsyncDispatcher(logger *zap.Logger) Dispatcher {
	return &asyncDispatcher{
		listeners: make(map[EventType][]EventHandler),
		logger:    logger,
	}
}

// Publish invokes handlers for the given event without awaiting them.
// Handlers receive a fresh context; request contexts may already be
// released by the time they run.
func (d *asyncDispatcher) Publish(event Event) {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		go func(handler EventHandler) {
			if err := handler(context.Background(), event); err != nil {
				d.logger.Error("event handler failed",
					zap.String("event_type", string(event.Type)),
					zap.String("event_id", event.ID),
					zap.Error(err))
			}
		}(handler)
	}
}

// Subscribe registers a handler for the given event type.
func (d *asyncDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}
