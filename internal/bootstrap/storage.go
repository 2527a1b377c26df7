package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/RecipeBox_Go/internal/config"
	"github.com/osse101/RecipeBox_Go/internal/database"
	"github.com/osse101/RecipeBox_Go/internal/database/postgres"
	"github.com/osse101/RecipeBox_Go/internal/kvstore"
)

// InitializeStorage opens the configured key-value backend, applying
// migrations for Postgres. The backend is instrumented and, when
// cfg.CacheSize is positive, fronted by an LRU cache.
func InitializeStorage(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var store kvstore.Store = kvstore.NewInstrumentedStore(backend, cfg.StorageBackend)
	if cfg.CacheSize > 0 {
		store = kvstore.NewCachedStore(store, cfg.CacheSize, cfg.CacheTTL)
		slog.Info(LogMsgStorageCacheEnabled, "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	}

	slog.Info(LogMsgStorageInitialized, "backend", cfg.StorageBackend)
	return store, nil
}

func openBackend(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StorageBackend {
	case kvstore.BackendMemory:
		return kvstore.NewMemoryStore(), nil

	case kvstore.BackendFile:
		store, err := kvstore.NewFileStore(cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenFileStore, err)
		}
		return store, nil

	case kvstore.BackendRedis:
		ctx, cancel := context.WithTimeout(ctx, StorageConnectTimeout)
		defer cancel()
		store, err := kvstore.NewRedisStore(ctx, kvstore.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisKeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectRedis, err)
		}
		return store, nil

	case kvstore.BackendPostgres:
		ctx, cancel := context.WithTimeout(ctx, StorageConnectTimeout)
		defer cancel()
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectPostgres, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgMigratePostgres, err)
		}
		slog.Info(LogMsgMigrationsApplied)
		return postgres.NewKVRepository(pool), nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
}
