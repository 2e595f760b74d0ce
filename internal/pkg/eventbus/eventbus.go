package eventbus

import (
	"context"
	"log/slog"
	"sync"
)

// Event is a domain event. Name is the routing key, e.g. "company.updated".
type Event interface {
	Name() string
}

type Handler func(ctx context.Context, e Event) error

// Bus is a synchronous in-process event bus. Publish runs every handler
// registered for the event name, in subscription order, before returning, so a
// single triggering event always drives its full downstream chain to
// completion.
type Bus struct {
	mu       sync.RWMutex
	log      *slog.Logger
	handlers map[string][]Handler
}

func New(log *slog.Logger) *Bus {
	return &Bus{
		log:      log,
		handlers: make(map[string][]Handler),
	}
}

func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish delivers e to all subscribers of e.Name(). Handler errors are logged
// and do not stop delivery to later subscribers.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	handlers := b.handlers[e.Name()]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.log.Warn("no subscribers for event", "event", e.Name())
		return
	}

	for _, h := range handlers {
		if err := b.safeCall(ctx, h, e); err != nil {
			b.log.Error("event handler failed", "event", e.Name(), "error", err)
		}
	}
}

func (b *Bus) safeCall(ctx context.Context, h Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked", "event", e.Name(), "panic", r)
		}
	}()
	return h(ctx, e)
}

func (b *Bus) SubscribersCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}
