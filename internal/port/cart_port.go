package port

import (
	"github.com/lapescados/storefront/internal/domain"
)

// CartRepository owns durability of the serialized cart. Load never fails on
// corrupt or missing state, it falls back to an empty cart.
type CartRepository interface {
	Load() (domain.Cart, error)
	Save(cart domain.Cart) error
	Clear() error
}

// CartPublisher is the process-wide change notification point. Publish hands
// every subscriber its own snapshot of the cart.
type CartPublisher interface {
	Publish(cart domain.Cart)
}
