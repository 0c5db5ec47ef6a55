package event

import (
	"log/slog"
	"sync"
)

// Handler consumes one event.
type Handler func(Event)

// Bus is a double-buffered event bus. Publish appends to the pending
// buffer; SwapAndDispatch swaps buffers and delivers everything queued
// before the swap, so handlers always observe a stable snapshot and
// never events published while they run.
type Bus struct {
	mu       sync.Mutex
	pending  []Event
	handlers map[Type][]Handler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for one event type. Not safe to call
// concurrently with dispatch; wire subscriptions during setup.
func (b *Bus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	b.handlers[t] = append(b.handlers[t], h)
	b.mu.Unlock()
}

// Publish queues an event for the next dispatch pass.
func (b *Bus) Publish(e Event) {
	if e == nil {
		return
	}
	b.mu.Lock()
	b.pending = append(b.pending, e)
	b.mu.Unlock()
}

// DispatchNow delivers an event to its handlers synchronously, bypassing
// the buffer. Used where ordering demands it: an attack intent must be
// resolved before anything else observes it.
func (b *Bus) DispatchNow(e Event) {
	if e == nil {
		return
	}
	b.mu.Lock()
	handlers := b.handlers[e.EventType()]
	b.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

// SwapAndDispatch swaps the buffers and delivers every event queued
// before the swap. Returns the number of events delivered.
func (b *Bus) SwapAndDispatch() int {
	b.mu.Lock()
	batch := b.pending
	b.pending = nil
	b.mu.Unlock()

	for _, e := range batch {
		b.DispatchNow(e)
	}

	if len(batch) > 0 {
		slog.Debug("event batch dispatched", "events", len(batch))
	}
	return len(batch)
}

// PendingCount returns the number of queued events (for tests).
func (b *Bus) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
