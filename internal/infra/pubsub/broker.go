package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/service"
)

const subscriberBuffer = 16

// Broker fans cart events out to in-process subscribers such as the SSE stream.
// A slow subscriber loses events instead of blocking the publisher.
type Broker struct {
	logger *slog.Logger

	mu     sync.RWMutex
	subs   map[uint64]chan *service.CartEvent
	nextID uint64
	closed bool
}

// NewBroker creates an empty broker.
func NewBroker(logger *slog.Logger) *Broker {
	return &Broker{
		logger: logger,
		subs:   make(map[uint64]chan *service.CartEvent),
	}
}

// Subscribe returns a channel of events and a function that unsubscribes and closes it.
func (b *Broker) Subscribe() (<-chan *service.CartEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan *service.CartEvent, subscriberBuffer)
	if b.closed {
		close(ch)

		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// PublishCartEvent delivers event to every subscriber without blocking.
func (b *Broker) PublishCartEvent(_ context.Context, event *service.CartEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn("Dropping cart event for slow subscriber",
				slog.Uint64("subscriber", id),
				slog.String("type", string(event.Type)),
			)
		}
	}

	return nil
}

// Close closes every subscriber channel.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}

	return nil
}
