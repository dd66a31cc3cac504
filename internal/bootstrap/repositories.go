package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Cultivation_Go/internal/config"
	"github.com/osse101/Cultivation_Go/internal/database"
	"github.com/osse101/Cultivation_Go/internal/database/memory"
	"github.com/osse101/Cultivation_Go/internal/database/postgres"
	"github.com/osse101/Cultivation_Go/internal/repository"
)

// Repositories holds the store implementations used by the application
type Repositories struct {
	Cultivation repository.Cultivation
	Profiles    repository.ElementProfile

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks store connectivity for the readiness probe
func (r *Repositories) Ping(ctx context.Context) error {
	return r.ping(ctx)
}

// Close releases store resources
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// InitializeRepositories opens the configured store. For postgres it connects,
// applies embedded migrations and returns pool-backed repositories.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if !cfg.UsesPostgres() {
		slog.Warn(LogMsgUsingMemoryStore)
		store := memory.NewStore()
		return &Repositories{
			Cultivation: store,
			Profiles:    store,
			ping:        store.Ping,
		}, nil
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)
	slog.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "db", cfg.DBName)

	return &Repositories{
		Cultivation: postgres.NewCultivationRepository(pool),
		Profiles:    postgres.NewElementProfileRepository(pool),
		ping:        pool.Ping,
		close:       pool.Close,
	}, nil
}
