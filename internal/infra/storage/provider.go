package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

const defaultDataDir = "./data"

// pinger is implemented by backends with a remote or file connection worth checking on start.
type pinger interface {
	Ping(ctx context.Context) error
}

// Params holds dependencies for the key-value store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore opens the storage backend selected by storage.provider.
func NewKeyValueStore(params Params) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	store, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Storage opened",
		slog.String("provider", cfg.Provider),
		slog.String("key_prefix", cfg.KeyPrefix),
	)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			p, ok := store.(pinger)
			if !ok {
				return nil
			}

			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrapf(p.Ping(ctx), "storage provider %s is not reachable", cfg.Provider)
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing storage")

			return store.Close()
		},
	})

	return store, nil
}

// Open opens the backend named by cfg.Provider.
func Open(ctx context.Context, cfg *config.StorageConfig) (repository.KeyValueStore, error) {
	if cfg == nil {
		return OpenMemoryStore(), nil
	}

	switch cfg.Provider {
	case constants.StorageProviderFile:
		dir := cfg.Path
		if dir == "" {
			dir = defaultDataDir
		}

		return OpenFileStore(dir)

	case constants.StorageProviderMemory:
		return OpenMemoryStore(), nil

	case constants.StorageProviderBlob:
		if cfg.URL == "" {
			return nil, errors.New("storage url is required for blob provider")
		}

		return OpenURLStore(ctx, cfg.URL)

	case constants.StorageProviderSQLite:
		path := cfg.Path
		if path == "" {
			path = filepath.Join(defaultDataDir, "storefront.db")
		}
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return nil, errors.Wrap(err, "create sqlite directory")
			}
		}

		return OpenSQLiteStore(ctx, path)

	case constants.StorageProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}

		return NewRedisStore(cfg.Redis), nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKeyValueStore),
)
