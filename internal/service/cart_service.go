// Package service holds the cart store, the single owner of the authoritative
// in-memory cart. Every mutation persists the new state and then publishes a
// change notification, exactly once; true no-ops do neither.
package service

import (
	"fmt"
	"sync"

	"github.com/lapescados/storefront/internal/domain"
	"github.com/lapescados/storefront/internal/port"
	"go.uber.org/zap"
)

type Store struct {
	repo   port.CartRepository
	pub    port.CartPublisher
	logger *zap.Logger

	mu   sync.Mutex
	cart domain.Cart
}

func NewStore(repo port.CartRepository, pub port.CartPublisher, logger *zap.Logger) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}
	if pub == nil {
		return nil, fmt.Errorf("publisher is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cart, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("repo.Load: %w", err)
	}

	return &Store{
		repo:   repo,
		pub:    pub,
		logger: logger,
		cart:   cart,
	}, nil
}

// AddOrIncrement bumps the quantity of an existing line or appends a new one
// with quantity 1, snapshotting the product fields. Quantity-stepper pages
// use this; the catalog grid uses Toggle instead.
func (s *Store) AddOrIncrement(product domain.Product) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.cart.Find(product.SKU); i >= 0 {
		s.cart.Lines[i].Quantity++
	} else {
		s.cart.Lines = append(s.cart.Lines, product.Snapshot())
	}

	s.commit()
	return s.cart.Clone()
}

// Remove deletes the line with the given SKU. Removing an absent SKU is a
// true no-op: no persistence, no notification.
func (s *Store) Remove(sku string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.cart.Find(sku)
	if i < 0 {
		return s.cart.Clone()
	}

	s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)

	s.commit()
	return s.cart.Clone()
}

// SetQuantity sets the line's quantity; anything below 1 removes the line.
// Absent SKUs are a no-op.
func (s *Store) SetQuantity(sku string, n int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.cart.Find(sku)
	if i < 0 {
		return s.cart.Clone()
	}

	if n < 1 {
		s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
	} else {
		s.cart.Lines[i].Quantity = n
	}

	s.commit()
	return s.cart.Clone()
}

// Toggle removes the product if present, otherwise adds it with quantity 1.
// The catalog grid's add-to-cart button is a binary switch, not a stepper.
func (s *Store) Toggle(product domain.Product) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.cart.Find(product.SKU); i >= 0 {
		s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
	} else {
		s.cart.Lines = append(s.cart.Lines, product.Snapshot())
	}

	s.commit()
	return s.cart.Clone()
}

// Clear empties the cart and removes the persisted state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = domain.Cart{}

	if err := s.repo.Clear(); err != nil {
		s.logger.Error("cart clear failed", zap.Error(err))
	}
	s.pub.Publish(s.cart.Clone())
}

func (s *Store) IsPresent(sku string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Contains(sku)
}

// Cart returns a snapshot of the current state.
func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

// Reload re-reads the persisted state and notifies subscribers. This is the
// storage-change path: another writer may have replaced the document, and
// last write wins.
func (s *Store) Reload() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.Load()
	if err != nil {
		s.logger.Error("cart reload failed, keeping current state", zap.Error(err))
		return s.cart.Clone()
	}

	s.cart = cart
	s.pub.Publish(s.cart.Clone())
	return s.cart.Clone()
}

// commit persists then notifies, in that order. A failed save keeps the
// in-memory state authoritative and still notifies: the session continues,
// only durability is lost. Callers must hold the lock.
func (s *Store) commit() {
	if err := s.repo.Save(s.cart); err != nil {
		s.logger.Error("cart save failed, state kept in memory", zap.Error(err))
	}

	s.pub.Publish(s.cart.Clone())
}
