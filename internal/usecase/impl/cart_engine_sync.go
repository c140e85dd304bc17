package impl

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// OnLogin records a login transition and runs the guest cart sync for it.
// Repeated notifications for the same transition while its sync is still
// pending collapse into that sync. A newer transition while authenticated is a
// replaced credential: the previous login's cart is dropped before loading.
func (e *CartEngine) OnLogin(ctx context.Context, transition uint64) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()

		return nil
	}
	if transition < e.transition {
		e.mu.Unlock()
		e.log(ctx).Debug("Ignoring superseded login notification", slog.Uint64("transition", transition))

		return nil
	}
	replaced := transition > e.transition
	e.transition = transition
	if replaced || e.loginSeq == e.syncedSeq {
		e.loginSeq++
	}
	if replaced {
		e.rejected = false
		if e.mode == entity.ModeAuthenticated {
			e.cart = entity.NewEmptyCart()
			e.epoch++
		}
	}
	seq := e.loginSeq
	e.mu.Unlock()

	e.log(ctx).Info("Login detected, synchronizing guest cart",
		slog.Uint64("login_seq", seq),
		slog.Uint64("transition", transition),
	)

	return e.SyncGuestCart(ctx)
}

// OnLogout switches back to guest mode immediately. In-flight authenticated
// results and any pending sync are abandoned; the guest store is left untouched.
func (e *CartEngine) OnLogout(ctx context.Context, transition uint64) {
	guest := e.guestStore.Load(ctx)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()

		return
	}
	if transition < e.transition {
		e.mu.Unlock()
		e.log(ctx).Debug("Ignoring superseded logout notification", slog.Uint64("transition", transition))

		return
	}
	e.transition = transition
	changed := e.mode != entity.ModeGuest
	e.mode = entity.ModeGuest
	e.cart = guest
	e.epoch++
	e.syncing = false
	e.syncingSeq = 0
	e.syncedSeq = e.loginSeq
	e.loading = false
	e.rejected = false
	e.mu.Unlock()

	e.log(ctx).Info("Logout detected, cart switched to guest mode",
		slog.Int("total_items", guest.TotalItems()),
	)

	if changed {
		e.publish(ctx, service.CartEventModeChanged)
	}
}

// SyncGuestCart merges the guest cart into the server cart for the latest login.
// It is a no-op when no login is pending. Concurrent callers share one run.
func (e *CartEngine) SyncGuestCart(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()

		return domainerrors.ErrCartEngineClosed
	}
	seq := e.loginSeq
	pending := seq != 0 && e.syncedSeq < seq
	e.mu.Unlock()

	if !pending {
		return nil
	}

	_, err, shared := e.syncGroup.Do(strconv.FormatUint(seq, 10), func() (any, error) {
		return nil, e.runSync(ctx, seq)
	})
	if shared {
		e.log(ctx).Debug("Joined an in-flight guest cart sync", slog.Uint64("login_seq", seq))
	}

	return err
}

// runSync performs the login sync for seq:
// an empty guest cart just loads the server cart; otherwise the guest lines are
// sent in one request and the merged cart returned by the server is adopted. The
// guest store is cleared only after the server accepted the merge.
func (e *CartEngine) runSync(ctx context.Context, seq uint64) error {
	logger := e.log(ctx).With(slog.Uint64("login_seq", seq))

	e.mu.Lock()
	if e.syncedSeq >= seq {
		e.mu.Unlock()

		return nil
	}
	e.syncing = true
	e.syncingSeq = seq
	e.mu.Unlock()

	e.opMu.Lock()
	defer e.opMu.Unlock()
	defer e.finishSync(seq)

	e.mu.Lock()
	if e.closed || e.syncingSeq != seq || e.syncedSeq >= seq {
		e.mu.Unlock()
		logger.Debug("Guest cart sync abandoned before it started")

		return nil
	}
	op := cartOp{mode: entity.ModeAuthenticated, epoch: e.epoch, cart: e.cart}
	e.loading = true
	e.mu.Unlock()

	guest := e.guestStore.Load(ctx)

	var (
		cart      *entity.Cart
		err       error
		eventType service.CartEventType
	)
	if guest.IsEmpty() {
		logger.Info("Guest cart is empty, loading server cart")
		cart, err = e.gateway.Fetch(ctx)
		eventType = service.CartEventModeChanged
	} else {
		items := make([]service.SyncItem, 0, len(guest.Items))
		for _, line := range guest.Items {
			items = append(items, service.SyncItem{ProductID: line.Product.ID, Quantity: line.Quantity})
		}
		logger.Info("Merging guest cart into server cart", slog.Int("lines", len(items)))
		cart, err = e.gateway.SyncGuestItems(ctx, items)
		eventType = service.CartEventSynced
	}
	if err != nil {
		// The guest store is untouched, so a later SyncGuestCart can retry.
		logger.Warn("Guest cart sync failed, guest cart preserved", slog.Any("error", err))

		return e.gatewayFailure(ctx, op, "sync", err)
	}

	e.mu.Lock()
	if e.closed || e.epoch != op.epoch {
		e.mu.Unlock()
		logger.Info("Discarding guest cart sync result after a session change")

		return nil
	}
	changed := e.mode != entity.ModeAuthenticated
	e.mode = entity.ModeAuthenticated
	e.cart = cart.Normalize()
	e.epoch++
	e.syncedSeq = max(e.syncedSeq, seq)
	e.rejected = false
	e.mu.Unlock()

	if !guest.IsEmpty() {
		if err := e.guestStore.Clear(ctx); err != nil {
			logger.Warn("Failed to clear guest cart after sync", slog.Any("error", err))
		}
	}

	logger.Info("Guest cart synchronized",
		slog.Int("total_items", cart.TotalItems()),
		slog.String("total_amount", cart.TotalAmount.String()),
	)
	if changed || eventType == service.CartEventSynced {
		e.publish(ctx, eventType)
	}

	return nil
}

func (e *CartEngine) finishSync(seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.syncingSeq != seq {
		return
	}
	e.syncing = false
	e.syncingSeq = 0
	e.loading = false
}

// dropToGuest handles a rejected credential: the engine falls back to the
// guest cart unless a newer transition already happened. The credential stays
// stored; State reports it as rejected until the next login or logout.
func (e *CartEngine) dropToGuest(ctx context.Context, epoch uint64) {
	guest := e.guestStore.Load(ctx)

	e.mu.Lock()
	if e.closed || e.epoch != epoch {
		e.mu.Unlock()

		return
	}
	e.mode = entity.ModeGuest
	e.cart = guest
	e.epoch++
	e.syncedSeq = e.loginSeq
	e.rejected = true
	e.mu.Unlock()

	e.publish(ctx, service.CartEventSessionExpired)
}
