// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartState is a read-only snapshot of the engine.
type CartState struct {
	Mode       entity.Mode     `json:"mode"`
	Loading    bool            `json:"loading"`
	Syncing    bool            `json:"syncing"`
	Rejected   bool            `json:"credential_rejected"` // The cart service refused the stored credential.
	Cart       *entity.Cart    `json:"cart"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CartUsecase is the uniform cart contract consumers use regardless of whether
// the cart is backed by local storage or by the remote cart service.
// Mutations return nil on success and a domain AppError otherwise; invalid
// input such as a quantity below one or an unknown line id is a no-op.
type CartUsecase interface {
	// Start initializes the engine from the observed session. An authenticated
	// session loads the server cart, merging any guest lines left in storage.
	Start(ctx context.Context, session entity.AuthSession) error

	// AddToCart adds quantity of product, merging into an existing line for the same product.
	AddToCart(ctx context.Context, product entity.Product, quantity int) error

	// RemoveFromCart removes the line named by lineID (a line id or a product id).
	RemoveFromCart(ctx context.Context, lineID entity.ID) error

	// UpdateQuantity sets the quantity of the line named by lineID.
	UpdateQuantity(ctx context.Context, lineID entity.ID, quantity int) error

	// ClearCart removes every line.
	ClearCart(ctx context.Context) error

	// FetchCart refreshes the cart from its backing store.
	FetchCart(ctx context.Context) error

	// SyncGuestCart runs the login sync if the current login has not been synced yet.
	SyncGuestCart(ctx context.Context) error

	// Mode returns the current backing of the cart.
	Mode() entity.Mode

	// Loading reports whether a fetch or sync is in flight.
	Loading() bool

	// Cart returns a deep copy of the current cart.
	Cart() *entity.Cart

	// State returns a deep-copied snapshot.
	State() CartState

	// TotalItems returns the sum of line quantities.
	TotalItems() int

	// TotalPrice returns the server total when authenticated, the computed subtotal otherwise.
	TotalPrice() decimal.Decimal

	// Close tears the engine down; late results are dropped.
	Close()
}

// SessionListener is notified by the session observer of authentication transitions.
// transition increases with every observed change; a notification carrying a
// lower value than one already handled is stale and must be ignored.
type SessionListener interface {
	// OnLogin is called once per detected login, including a replaced credential.
	OnLogin(ctx context.Context, transition uint64) error

	// OnLogout is called once per detected authenticated to guest transition.
	OnLogout(ctx context.Context, transition uint64)
}
