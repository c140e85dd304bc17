package kv

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

type guestCartStore struct {
	store  repository.KeyValueStore
	key    string
	logger *slog.Logger
}

// NewGuestCartStore returns the guest cart repository kept under <prefix>:guest_cart.
func NewGuestCartStore(store repository.KeyValueStore, cfg *config.Config, logger *slog.Logger) repository.GuestCartRepository {
	return &guestCartStore{
		store:  store,
		key:    namespacedKey(cfg, constants.KeyGuestCart),
		logger: logger,
	}
}

func (s *guestCartStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Load never fails: missing, unreadable or corrupt data yields an empty cart.
func (s *guestCartStore) Load(ctx context.Context) *entity.Cart {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.log(ctx).Warn("Failed to read guest cart, starting empty", slog.Any("error", err))
		}

		return entity.NewEmptyCart()
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.log(ctx).Warn("Stored guest cart is corrupt, starting empty",
			slog.String("key", s.key),
			slog.Any("error", err),
		)

		return entity.NewEmptyCart()
	}

	cart.ID = nil
	cart.Normalize()
	cart.Recalculate()

	return &cart
}

// Save serializes the cart.
func (s *guestCartStore) Save(ctx context.Context, cart *entity.Cart) error {
	if cart == nil {
		cart = entity.NewEmptyCart()
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "marshal guest cart")
	}

	return errors.Wrap(s.store.Set(ctx, s.key, data), "save guest cart")
}

// Clear removes the stored cart.
func (s *guestCartStore) Clear(ctx context.Context) error {
	return errors.Wrap(s.store.Delete(ctx, s.key), "clear guest cart")
}
