// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// cartOp captures the state a cart operation was issued under.
// Results are only applied while the engine is still in the same epoch.
type cartOp struct {
	mode  entity.Mode
	epoch uint64
	cart  *entity.Cart
}

// CartEngine owns the in-memory cart and its single Mode. It serves every
// mutation from the guest store or the remote cart service depending on the mode,
// and merges the guest cart into the server cart once per login.
type CartEngine struct {
	gateway    service.CartGateway
	guestStore repository.GuestCartRepository
	publisher  service.CartEventPublisher
	logger     *slog.Logger

	// opMu serializes cart operations and is held across gateway calls.
	// Transitions (logout, credential rejection) only take mu, so they never wait on I/O.
	opMu      sync.Mutex
	syncGroup singleflight.Group

	mu         sync.Mutex
	mode       entity.Mode
	cart       *entity.Cart // replaced, never mutated in place
	loading    bool
	syncing    bool
	syncingSeq uint64
	epoch      uint64 // bumped on every mode transition
	loginSeq   uint64 // bumped on every detected login
	syncedSeq  uint64 // last login whose sync completed or was abandoned
	transition uint64 // highest observer transition handled
	rejected   bool   // the cart service refused the current credential
	closed     bool
}

// NewCartEngine is the constructor for CartEngine.
func NewCartEngine(
	gateway service.CartGateway,
	guestStore repository.GuestCartRepository,
	publisher service.CartEventPublisher,
	logger *slog.Logger,
) *CartEngine {
	return &CartEngine{
		gateway:    gateway,
		guestStore: guestStore,
		publisher:  publisher,
		logger:     logger,
		mode:       entity.ModeGuest,
		cart:       entity.NewEmptyCart(),
	}
}

var (
	_ usecase.CartUsecase     = (*CartEngine)(nil)
	_ usecase.SessionListener = (*CartEngine)(nil)
)

// log returns a request-scoped logger if available, otherwise falls back to the engine's logger.
func (e *CartEngine) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// Start initializes the engine from the observed session.
func (e *CartEngine) Start(ctx context.Context, session entity.AuthSession) error {
	if !session.Authenticated {
		guest := e.guestStore.Load(ctx)

		e.mu.Lock()
		defer e.mu.Unlock()

		if e.closed {
			return domainerrors.ErrCartEngineClosed
		}
		e.mode = entity.ModeGuest
		e.cart = guest
		e.epoch++
		e.rejected = false

		e.log(ctx).Info("Cart started in guest mode", slog.Int("total_items", guest.TotalItems()))

		return nil
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()

		return domainerrors.ErrCartEngineClosed
	}
	e.mode = entity.ModeAuthenticated
	e.cart = entity.NewEmptyCart()
	e.epoch++
	e.rejected = false
	// A restored login still has to reconcile whatever the guest store holds.
	if e.loginSeq == e.syncedSeq {
		e.loginSeq++
	}
	e.mu.Unlock()

	e.log(ctx).Info("Cart started in authenticated mode, loading server cart")

	return e.SyncGuestCart(ctx)
}

// AddToCart adds quantity of product, merging into an existing line for the same product.
func (e *CartEngine) AddToCart(ctx context.Context, product entity.Product, quantity int) error {
	if quantity < 1 {
		e.log(ctx).Debug("Ignoring add with non-positive quantity",
			slog.String("product_id", product.ID.String()),
			slog.Int("quantity", quantity),
		)

		return nil
	}
	if product.ID.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}

	op, release, err := e.acquire()
	if err != nil {
		return err
	}
	defer release()

	if op.mode == entity.ModeGuest {
		e.mutateGuest(ctx, func(cart *entity.Cart) bool {
			if i := cart.IndexOfProduct(product.ID); i >= 0 {
				cart.Items[i].Quantity += quantity

				return true
			}
			cart.Items = append(cart.Items, entity.CartLine{
				ID:       entity.NewGuestLineID(product.ID),
				Product:  product,
				Quantity: quantity,
				Price:    decimal.NewNullDecimal(product.Price),
			})

			return true
		})

		return nil
	}

	cart, err := e.gateway.Add(ctx, product.ID, quantity)
	if err != nil {
		return e.gatewayFailure(ctx, op, "add", err)
	}
	e.replaceCart(ctx, op, cart)

	return nil
}

// RemoveFromCart removes the line named by lineID (a line id or a product id).
func (e *CartEngine) RemoveFromCart(ctx context.Context, lineID entity.ID) error {
	if lineID.IsZero() {
		return nil
	}

	op, release, err := e.acquire()
	if err != nil {
		return err
	}
	defer release()

	if op.mode == entity.ModeGuest {
		e.mutateGuest(ctx, func(cart *entity.Cart) bool {
			before := len(cart.Items)
			cart.Items = slices.DeleteFunc(cart.Items, func(line entity.CartLine) bool {
				return line.Matches(lineID)
			})

			return len(cart.Items) != before
		})

		return nil
	}

	target, ok := resolveLineID(op.cart, lineID)
	if !ok {
		e.log(ctx).Debug("Ignoring remove of unknown line", slog.String("line_id", lineID.String()))

		return nil
	}
	if err := e.gateway.Remove(ctx, target); err != nil {
		return e.gatewayFailure(ctx, op, "remove", err)
	}

	return e.refetch(ctx, op)
}

// UpdateQuantity sets the quantity of the line named by lineID.
func (e *CartEngine) UpdateQuantity(ctx context.Context, lineID entity.ID, quantity int) error {
	if quantity < 1 || lineID.IsZero() {
		e.log(ctx).Debug("Ignoring quantity update",
			slog.String("line_id", lineID.String()),
			slog.Int("quantity", quantity),
		)

		return nil
	}

	op, release, err := e.acquire()
	if err != nil {
		return err
	}
	defer release()

	if op.mode == entity.ModeGuest {
		e.mutateGuest(ctx, func(cart *entity.Cart) bool {
			i := cart.IndexOf(lineID)
			if i < 0 || cart.Items[i].Quantity == quantity {
				return false
			}
			cart.Items[i].Quantity = quantity

			return true
		})

		return nil
	}

	target, ok := resolveLineID(op.cart, lineID)
	if !ok {
		e.log(ctx).Debug("Ignoring update of unknown line", slog.String("line_id", lineID.String()))

		return nil
	}
	if err := e.gateway.UpdateQuantity(ctx, target, quantity); err != nil {
		return e.gatewayFailure(ctx, op, "update_quantity", err)
	}

	return e.refetch(ctx, op)
}

// ClearCart removes every line.
func (e *CartEngine) ClearCart(ctx context.Context) error {
	op, release, err := e.acquire()
	if err != nil {
		return err
	}
	defer release()

	if op.mode == entity.ModeGuest {
		e.mu.Lock()
		if e.mode == entity.ModeGuest {
			e.cart = entity.NewEmptyCart()
		}
		e.mu.Unlock()

		if err := e.guestStore.Clear(ctx); err != nil {
			e.log(ctx).Warn("Failed to clear guest cart storage", slog.Any("error", err))
		}

		return nil
	}

	if err := e.gateway.Clear(ctx); err != nil {
		return e.gatewayFailure(ctx, op, "clear", err)
	}

	cleared := entity.NewEmptyCart()
	if op.cart != nil && op.cart.ID != nil {
		id := *op.cart.ID
		cleared.ID = &id
	}
	e.replaceCart(ctx, op, cleared)

	return nil
}

// FetchCart refreshes the cart from its backing store: the server when
// authenticated, the guest store otherwise.
func (e *CartEngine) FetchCart(ctx context.Context) error {
	op, release, err := e.acquire()
	if err != nil {
		return err
	}
	defer release()

	if op.mode == entity.ModeGuest {
		guest := e.guestStore.Load(ctx)
		e.replaceCart(ctx, op, guest)

		return nil
	}

	return e.refetch(ctx, op)
}

// Mode returns the current backing of the cart.
func (e *CartEngine) Mode() entity.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.mode
}

// Loading reports whether a fetch or sync is in flight.
func (e *CartEngine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.loading
}

// Cart returns a deep copy of the current cart.
func (e *CartEngine) Cart() *entity.Cart {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cart.Clone()
}

// State returns a deep-copied snapshot.
func (e *CartEngine) State() usecase.CartState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return usecase.CartState{
		Mode:       e.mode,
		Loading:    e.loading,
		Syncing:    e.syncing,
		Rejected:   e.rejected,
		Cart:       e.cart.Clone(),
		TotalItems: e.cart.TotalItems(),
		TotalPrice: e.totalPriceLocked(),
	}
}

// TotalItems returns the sum of line quantities.
func (e *CartEngine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cart.TotalItems()
}

// TotalPrice returns the server total when authenticated, the computed subtotal otherwise.
func (e *CartEngine) TotalPrice() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.totalPriceLocked()
}

func (e *CartEngine) totalPriceLocked() decimal.Decimal {
	if e.mode == entity.ModeAuthenticated && e.cart != nil {
		return e.cart.TotalAmount
	}

	return e.cart.Subtotal()
}

// Close tears the engine down; late results are dropped.
func (e *CartEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
}

// acquire rejects the call while a sync is in progress, then takes the
// operation lock and captures the state the operation runs under.
func (e *CartEngine) acquire() (cartOp, func(), error) {
	if err := e.available(); err != nil {
		return cartOp{}, nil, err
	}

	e.opMu.Lock()

	if err := e.available(); err != nil {
		e.opMu.Unlock()

		return cartOp{}, nil, err
	}

	e.mu.Lock()
	op := cartOp{mode: e.mode, epoch: e.epoch, cart: e.cart}
	e.mu.Unlock()

	return op, e.opMu.Unlock, nil
}

func (e *CartEngine) available() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return domainerrors.ErrCartEngineClosed
	}
	if e.syncing {
		return domainerrors.ErrSyncInProgress
	}

	return nil
}

// mutateGuest applies fn to a copy of the guest cart, recomputes the total and
// persists it. fn returns false when nothing changed.
func (e *CartEngine) mutateGuest(ctx context.Context, fn func(cart *entity.Cart) bool) {
	e.mu.Lock()
	if e.closed || e.mode != entity.ModeGuest {
		e.mu.Unlock()

		return
	}

	next := e.cart.Clone()
	next.ID = nil
	if !fn(next) {
		e.mu.Unlock()

		return
	}
	next.Recalculate()
	e.cart = next
	e.mu.Unlock()

	if err := e.guestStore.Save(ctx, next); err != nil {
		e.log(ctx).Warn("Failed to persist guest cart", slog.Any("error", err))
	}
}

// refetch replaces the cart with the server's authoritative copy.
func (e *CartEngine) refetch(ctx context.Context, op cartOp) error {
	e.setLoading(true)
	defer e.setLoading(false)

	cart, err := e.gateway.Fetch(ctx)
	if err != nil {
		return e.gatewayFailure(ctx, op, "fetch", err)
	}
	e.replaceCart(ctx, op, cart)

	return nil
}

// replaceCart installs cart unless the engine moved to another epoch since op was issued.
func (e *CartEngine) replaceCart(ctx context.Context, op cartOp, cart *entity.Cart) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.epoch != op.epoch {
		e.log(ctx).Debug("Discarding stale cart result",
			slog.String("issued_mode", op.mode.String()),
			slog.String("current_mode", e.mode.String()),
		)

		return false
	}
	e.cart = cart.Normalize()

	return true
}

func (e *CartEngine) setLoading(loading bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loading = loading
}

// gatewayFailure converts a gateway error into a domain error. A rejected
// credential also drops the engine to guest mode.
func (e *CartEngine) gatewayFailure(ctx context.Context, op cartOp, operation string, err error) error {
	logger := e.log(ctx)

	if errors.Is(err, service.ErrUnauthorized) {
		logger.Warn("Cart service rejected the credential, falling back to the guest cart",
			slog.String("operation", operation),
		)
		e.dropToGuest(ctx, op.epoch)

		return domainerrors.ErrSessionExpired.WithCause(err)
	}

	var gwErr *service.GatewayError
	if errors.As(err, &gwErr) && !gwErr.Transient() {
		logger.Warn("Cart service rejected the request",
			slog.String("operation", operation),
			slog.Int("status", gwErr.StatusCode),
		)

		return domainerrors.ErrCartRequestRejected.
			WithDetails(fmt.Sprintf("%s returned status %d", operation, gwErr.StatusCode)).
			WithCause(err)
	}

	logger.Error("Cart service call failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	return domainerrors.ErrCartServiceUnavailable.WithDetails(operation).WithCause(err)
}

// resolveLineID maps ref to the server line id of the cached cart. Callers may
// hold a product id instead of a line id; unknown references resolve to false.
func resolveLineID(cart *entity.Cart, ref entity.ID) (entity.ID, bool) {
	i := cart.IndexOf(ref)
	if i < 0 {
		return "", false
	}

	return cart.Items[i].ID, true
}

func (e *CartEngine) publish(ctx context.Context, eventType service.CartEventType) {
	if e.publisher == nil {
		return
	}

	e.mu.Lock()
	event := &service.CartEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		Mode:       e.mode,
		TotalItems: e.cart.TotalItems(),
		TotalPrice: e.totalPriceLocked(),
		OccurredAt: time.Now().UTC(),
	}
	if e.cart != nil && e.cart.ID != nil {
		event.CartID = e.cart.ID.String()
	}
	e.mu.Unlock()

	if err := e.publisher.PublishCartEvent(ctx, event); err != nil {
		e.log(ctx).Warn("Failed to publish cart event",
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}
