// Package broadcast is the in-process publish point decoupling cart mutation
// from cart display. Subscribers are invoked synchronously, in registration
// order, each with its own snapshot of the cart.
package broadcast

import (
	"github.com/google/uuid"
	"github.com/lapescados/storefront/internal/domain"
	"go.uber.org/zap"
	"sync"
)

type Handler func(cart domain.Cart)

type subscription struct {
	id      uuid.UUID
	handler Handler
}

type Broadcaster struct {
	mu     sync.Mutex
	subs   []subscription
	logger *zap.Logger
}

func New(logger *zap.Logger) *Broadcaster {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Broadcaster{logger: logger}
}

// Subscribe registers a handler and returns a token for Unsubscribe.
func (b *Broadcaster) Subscribe(handler Handler) uuid.UUID {
	id := uuid.New()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{id: id, handler: handler})

	return id
}

func (b *Broadcaster) Unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the cart to every subscriber. A panicking handler is
// logged and skipped so one broken widget cannot take the others down.
func (b *Broadcaster) Publish(cart domain.Cart) {
	b.mu.Lock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, sub := range subs {
		b.deliver(sub, cart.Clone())
	}
}

func (b *Broadcaster) deliver(sub subscription, cart domain.Cart) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("cart subscriber panicked",
				zap.String("subscription", sub.id.String()),
				zap.Any("panic", r))
		}
	}()

	sub.handler(cart)
}
