package kv

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/storage"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(prefix string) *config.Config {
	return &config.Config{Storage: &config.StorageConfig{Provider: "memory", KeyPrefix: prefix}}
}

func TestGuestCartStore_LoadMissingReturnsEmptyCart(t *testing.T) {
	kvStore := storage.OpenMemoryStore()
	repo := NewGuestCartStore(kvStore, newTestConfig("shop"), newDiscardLogger())

	cart := repo.Load(context.Background())

	require.NotNil(t, cart)
	assert.Nil(t, cart.ID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalAmount.IsZero())
}

func TestGuestCartStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	kvStore := storage.OpenMemoryStore()
	repo := NewGuestCartStore(kvStore, newTestConfig("shop"), newDiscardLogger())

	cart := entity.NewEmptyCart()
	cart.Items = append(cart.Items, entity.CartLine{
		ID:       "guest-7-a",
		Product:  entity.Product{ID: "7", Name: "Oyster grow kit", Price: decimal.RequireFromString("24.50")},
		Quantity: 2,
		Price:    decimal.NewNullDecimal(decimal.RequireFromString("24.50")),
	})
	cart.Recalculate()

	require.NoError(t, repo.Save(ctx, cart))

	raw, err := kvStore.Get(ctx, "shop:guest_cart")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"quantity":2`)

	loaded := repo.Load(ctx)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, entity.ID("7"), loaded.Items[0].Product.ID)
	assert.True(t, decimal.RequireFromString("49").Equal(loaded.TotalAmount))

	require.NoError(t, repo.Clear(ctx))
	assert.True(t, repo.Load(ctx).IsEmpty())
}

func TestGuestCartStore_CorruptDataYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	kvStore := storage.OpenMemoryStore()
	require.NoError(t, kvStore.Set(ctx, "storefront:guest_cart", []byte("{not json")))

	repo := NewGuestCartStore(kvStore, nil, newDiscardLogger())
	cart := repo.Load(ctx)

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.TotalAmount.IsZero())
}

func TestGuestCartStore_LoadNormalizesStoredCart(t *testing.T) {
	ctx := context.Background()
	kvStore := storage.OpenMemoryStore()
	stored := `{"id": 12, "items": [
		{"id": "a", "product": {"id": 1, "name": "Shiitake", "price": "10"}, "quantity": 3, "price": null},
		{"id": "b", "product": {"id": 2, "name": "Lion's mane", "price": 8}, "quantity": 0, "price": 8}
	], "total_amount": "999"}`
	require.NoError(t, kvStore.Set(ctx, "storefront:guest_cart", []byte(stored)))

	repo := NewGuestCartStore(kvStore, newTestConfig(""), newDiscardLogger())
	cart := repo.Load(ctx)

	assert.Nil(t, cart.ID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, entity.ID("1"), cart.Items[0].Product.ID)
	assert.True(t, decimal.NewFromInt(30).Equal(cart.TotalAmount))
}

func TestCredentialStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kvStore := storage.OpenMemoryStore()
	repo := NewCredentialStore(kvStore, newTestConfig("shop"), newDiscardLogger())

	credential, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, credential)

	profile := &entity.UserProfile{ID: "42", Email: "grower@example.com", Name: "Grower"}
	require.NoError(t, repo.Save(ctx, &entity.Credential{AccessToken: "opaque-token", Profile: profile}))

	raw, err := kvStore.Get(ctx, "shop:access_token")
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", string(raw))

	credential, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, credential)
	assert.Equal(t, "opaque-token", credential.AccessToken)
	assert.Equal(t, profile, credential.Profile)

	require.NoError(t, repo.Remove(ctx))
	credential, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, credential)
}

func TestCredentialStore_CorruptProfileIsIgnored(t *testing.T) {
	ctx := context.Background()
	kvStore := storage.OpenMemoryStore()
	require.NoError(t, kvStore.Set(ctx, "storefront:access_token", []byte("token")))
	require.NoError(t, kvStore.Set(ctx, "storefront:user_profile", []byte("[")))

	repo := NewCredentialStore(kvStore, nil, newDiscardLogger())
	credential, err := repo.Load(ctx)

	require.NoError(t, err)
	require.NotNil(t, credential)
	assert.Equal(t, "token", credential.AccessToken)
	assert.Nil(t, credential.Profile)
}

func TestCredentialStore_SaveRejectsEmptyToken(t *testing.T) {
	repo := NewCredentialStore(storage.OpenMemoryStore(), nil, newDiscardLogger())

	require.Error(t, repo.Save(context.Background(), &entity.Credential{}))
}

func TestGuestCartStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig("shop")
	key := namespacedKey(cfg, constants.KeyGuestCart)
	diskErr := errors.New("disk unavailable")

	t.Run("load yields an empty cart", func(t *testing.T) {
		kvStore := mockRepo.NewMockKeyValueStore(t)
		kvStore.EXPECT().Get(mock.Anything, key).Return(nil, diskErr).Once()

		cart := NewGuestCartStore(kvStore, cfg, newDiscardLogger()).Load(ctx)

		require.NotNil(t, cart)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("save is reported", func(t *testing.T) {
		kvStore := mockRepo.NewMockKeyValueStore(t)
		kvStore.EXPECT().Set(mock.Anything, key, mock.Anything).Return(diskErr).Once()

		err := NewGuestCartStore(kvStore, cfg, newDiscardLogger()).Save(ctx, entity.NewEmptyCart())

		require.Error(t, err)
		assert.ErrorIs(t, err, diskErr)
		assert.Contains(t, err.Error(), "save guest cart")
	})

	t.Run("clear is reported", func(t *testing.T) {
		kvStore := mockRepo.NewMockKeyValueStore(t)
		kvStore.EXPECT().Delete(mock.Anything, key).Return(diskErr).Once()

		err := NewGuestCartStore(kvStore, cfg, newDiscardLogger()).Clear(ctx)

		assert.ErrorIs(t, err, diskErr)
	})
}

func TestCredentialStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig("shop")
	tokenKey := namespacedKey(cfg, constants.KeyAccessToken)
	profileKey := namespacedKey(cfg, constants.KeyUserProfile)
	diskErr := errors.New("disk unavailable")

	t.Run("token read fails", func(t *testing.T) {
		kvStore := mockRepo.NewMockKeyValueStore(t)
		kvStore.EXPECT().Get(mock.Anything, tokenKey).Return(nil, diskErr).Once()

		credential, err := NewCredentialStore(kvStore, cfg, newDiscardLogger()).Load(ctx)

		assert.Nil(t, credential)
		assert.ErrorIs(t, err, diskErr)
	})

	t.Run("profile read fails keeps the token", func(t *testing.T) {
		kvStore := mockRepo.NewMockKeyValueStore(t)
		kvStore.EXPECT().Get(mock.Anything, tokenKey).Return([]byte("tok"), nil).Once()
		kvStore.EXPECT().Get(mock.Anything, profileKey).Return(nil, diskErr).Once()

		credential, err := NewCredentialStore(kvStore, cfg, newDiscardLogger()).Load(ctx)

		require.NoError(t, err)
		require.NotNil(t, credential)
		assert.Equal(t, "tok", credential.AccessToken)
		assert.Nil(t, credential.Profile)
	})

	t.Run("missing token is not an error", func(t *testing.T) {
		kvStore := mockRepo.NewMockKeyValueStore(t)
		kvStore.EXPECT().Get(mock.Anything, tokenKey).Return(nil, repository.ErrKeyNotFound).Once()

		credential, err := NewCredentialStore(kvStore, cfg, newDiscardLogger()).Load(ctx)

		require.NoError(t, err)
		assert.Nil(t, credential)
	})

	t.Run("failed token delete keeps the profile", func(t *testing.T) {
		kvStore := mockRepo.NewMockKeyValueStore(t)
		kvStore.EXPECT().Delete(mock.Anything, tokenKey).Return(diskErr).Once()

		err := NewCredentialStore(kvStore, cfg, newDiscardLogger()).Remove(ctx)

		assert.ErrorIs(t, err, diskErr)
		kvStore.AssertNotCalled(t, "Delete", mock.Anything, profileKey)
	})
}
