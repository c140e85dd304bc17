// Package service defines contracts for collaborators that live outside this process.
package service

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUnauthorized is matched by every gateway error caused by a missing,
// expired or rejected credential.
var ErrUnauthorized = errors.New("cart service rejected the credential")

// SyncItem is one guest line sent to the bulk-merge endpoint.
type SyncItem struct {
	ProductID entity.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// GatewayError describes a non-2xx answer from the remote cart service.
type GatewayError struct {
	Operation  string // Gateway operation, e.g. "fetch" or "sync".
	StatusCode int    // HTTP status returned by the service.
	Body       string // Truncated response body for diagnostics.
	Expired    bool   // The service reported the credential as expired (some deployments answer 403).
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	return fmt.Sprintf("cart service %s failed with status %d", e.Operation, e.StatusCode)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 answers and expired credentials.
func (e *GatewayError) Is(target error) bool {
	return target == ErrUnauthorized && (e.StatusCode == http.StatusUnauthorized || e.Expired)
}

// Transient reports whether retrying the same request may succeed.
func (e *GatewayError) Transient() bool {
	return e.StatusCode >= http.StatusInternalServerError ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode == http.StatusRequestTimeout
}

// CartGateway is the typed contract over the remote cart API.
// Every call requires a bearer credential.
type CartGateway interface {
	// Fetch returns the authenticated user's cart.
	Fetch(ctx context.Context) (*entity.Cart, error)

	// Add adds quantity of productID and returns the full updated cart.
	// Merging by product id is done by the server.
	Add(ctx context.Context, productID entity.ID, quantity int) (*entity.Cart, error)

	// Remove deletes a line. The caller re-fetches afterwards.
	Remove(ctx context.Context, lineID entity.ID) error

	// UpdateQuantity sets a line quantity. The caller re-fetches afterwards.
	UpdateQuantity(ctx context.Context, lineID entity.ID, quantity int) error

	// Clear empties the server cart.
	Clear(ctx context.Context) error

	// SyncGuestItems bulk-merges guest lines into the server cart and returns it.
	SyncGuestItems(ctx context.Context, items []SyncItem) (*entity.Cart, error)
}
