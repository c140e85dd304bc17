package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartEventType names the notifications emitted by the cart engine.
type CartEventType string

const (
	// CartEventSynced is emitted once the guest cart has been merged into the server cart.
	CartEventSynced CartEventType = "cart.synced"
	// CartEventModeChanged is emitted whenever the cart switches backing.
	CartEventModeChanged CartEventType = "cart.mode_changed"
	// CartEventSessionExpired is emitted when the server rejected the credential.
	CartEventSessionExpired CartEventType = "session.expired"
)

// CartEvent is a notification consumed by UIs (toasts, badges) and external sinks.
type CartEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       CartEventType   `json:"type"`
	Mode       entity.Mode     `json:"mode"`
	CartID     string          `json:"cart_id,omitempty"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// CartEventPublisher defines the interface for publishing cart events
type CartEventPublisher interface {
	// PublishCartEvent delivers the event to the configured sinks
	PublishCartEvent(ctx context.Context, event *CartEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
