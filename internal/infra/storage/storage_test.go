package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, store repository.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "storefront:guest_cart")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "storefront:guest_cart", []byte(`{"items":[]}`)))
	got, err := store.Get(ctx, "storefront:guest_cart")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(got))

	require.NoError(t, store.Set(ctx, "storefront:guest_cart", []byte(`{"items":[{"id":"1"}]}`)))
	got, err = store.Get(ctx, "storefront:guest_cart")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"id":"1"}]}`, string(got))

	require.NoError(t, store.Delete(ctx, "storefront:guest_cart"))
	_, err = store.Get(ctx, "storefront:guest_cart")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	// Deleting twice is fine.
	require.NoError(t, store.Delete(ctx, "storefront:guest_cart"))
}

func TestMemoryStore(t *testing.T) {
	store := OpenMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store, err := OpenFileStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := OpenFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "storefront:access_token", []byte(`"token"`)))
	require.NoError(t, store.Close())

	reopened, err := OpenFileStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, "storefront:access_token")
	require.NoError(t, err)
	assert.Equal(t, `"token"`, string(got))
}

func TestSQLiteStore(t *testing.T) {
	store, err := OpenSQLiteStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Ping(context.Background()))
	exerciseStore(t, store)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("STOREFRONT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STOREFRONT_TEST_REDIS_ADDR not set")
	}

	store := NewRedisStore(config.RedisConfig{Addr: addr})
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Ping(context.Background()))
	exerciseStore(t, store)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     *config.StorageConfig
		wantErr string
	}{
		{name: "nil config falls back to memory", cfg: nil},
		{name: "memory", cfg: &config.StorageConfig{Provider: "memory"}},
		{name: "file", cfg: &config.StorageConfig{Provider: "file", Path: t.TempDir()}},
		{name: "blob url", cfg: &config.StorageConfig{Provider: "blob", URL: "mem://"}},
		{name: "sqlite", cfg: &config.StorageConfig{Provider: "sqlite", Path: filepath.Join(t.TempDir(), "db", "cart.db")}},
		{name: "blob without url", cfg: &config.StorageConfig{Provider: "blob"}, wantErr: "storage url is required"},
		{name: "redis without addr", cfg: &config.StorageConfig{Provider: "redis"}, wantErr: "redis address is required"},
		{name: "unknown", cfg: &config.StorageConfig{Provider: "floppy"}, wantErr: "unknown storage provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(ctx, tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })
			exerciseStore(t, store)
		})
	}
}
