// internal/services/cart_service.go
package services

import (
	"context"
	"fmt"

	"github.com/terrazul/terrazul-backend/internal/cart"
	"github.com/terrazul/terrazul-backend/internal/models"
)

// Catalog is the product lookup the cart needs when adding items.
// *ProductService satisfies it.
type Catalog interface {
	GetProduct(id string) (*models.Product, error)
}

// CartService orchestrates the cart engine against a session-keyed store.
// Every mutation is written back to the store before returning.
type CartService struct {
	store   cart.Store
	catalog Catalog
}

func NewCartService(store cart.Store, catalog Catalog) *CartService {
	return &CartService{store: store, catalog: catalog}
}

func (s *CartService) load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart.FromItems(items), nil
}

func (s *CartService) save(ctx context.Context, sessionID string, c *cart.Cart) error {
	if err := s.store.Save(ctx, sessionID, c.Items()); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return s.load(ctx, sessionID)
}

func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, quantity int, selectedWeight, selectedGrind string) (*cart.Cart, error) {
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.AddItem(product, quantity, selectedWeight, selectedGrind)

	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, cartID string, quantity int) (*cart.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(cartID, quantity)

	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, cartID string) (*cart.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(cartID)

	if err := s.save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ClearCart drops the session's key outright instead of persisting an empty
// collection, so abandoned sessions leave nothing behind in the store.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	return cart.New(), nil
}
