package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/storage/postgres"
)

// initStorage выбирает реализацию хранилищ по конфигурации.
// Возвращённый cleanup безопасно вызывать всегда.
func initStorage(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, func(), error) {
	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, func() {}, fmt.Errorf("postgres storage requires a DSN")
		}

		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, func() {}, fmt.Errorf("open postgres storage: %w", err)
		}

		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return nil, func() {}, fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("postgres migrations applied")
		}

		deps := &Dependencies{
			ProductRepo: postgres.NewProductRepository(store),
			OrderRepo:   postgres.NewOrderRepository(store),
			Store:       store,
			Logger:      logger,
		}
		cleanup := func() {
			if err := store.Close(); err != nil {
				logger.WithError(err).Warn("failed to close postgres store")
			}
		}
		logger.Info("using postgres storage")
		return deps, cleanup, nil

	case StorageDriverMemory, "":
		logger.Info("using in-memory storage")
		return NewDependencies(logger), func() {}, nil

	default:
		return nil, func() {}, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
