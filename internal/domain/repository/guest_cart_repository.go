package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// GuestCartRepository persists the cart of an anonymous visitor.
type GuestCartRepository interface {
	// Load returns the stored guest cart. Missing, unreadable or corrupt data
	// degrades to an empty cart; Load never fails.
	Load(ctx context.Context) *entity.Cart

	// Save serializes and persists the cart.
	Save(ctx context.Context, cart *entity.Cart) error

	// Clear removes the stored cart.
	Clear(ctx context.Context) error
}
