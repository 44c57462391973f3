package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/config"
	"github.com/hypez33/grow-lab-zen-sub000/internal/database"
	"github.com/hypez33/grow-lab-zen-sub000/internal/database/postgres"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/handler"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
	"github.com/hypez33/grow-lab-zen-sub000/internal/persistence"
)

// Storage is the save store picked from the config. DB is nil when saves
// live in memory.
type Storage struct {
	Codec *persistence.Codec
	Repo  persistence.Repository
	DB    *pgxpool.Pool
}

// NewCodec builds the save codec whose fallback state comes from cat
func NewCodec(cat *catalog.Catalog) *persistence.Codec {
	return persistence.NewCodec(func() *domain.State { return cat.NewState(0) })
}

// InitializeStorage opens the save store. With DB_HOST set it connects to
// postgres and applies migrations first. Either way the store is fronted by
// the expiring save cache.
func InitializeStorage(ctx context.Context, cfg *config.Config, cat *catalog.Catalog) (*Storage, error) {
	log := logger.FromContext(ctx)
	codec := NewCodec(cat)

	if !cfg.UsesDatabase() {
		log.Info(LogMsgUsingMemoryStore)
		return &Storage{
			Codec: codec,
			Repo:  persistence.NewCachedRepository(persistence.NewMemoryRepository(codec), cfg.SaveCacheSize, cfg.SaveCacheTTL),
		}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), DBMaxConnections, DBMaxIdleTime, DBMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
	}

	log.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "db", cfg.DBName)
	return &Storage{
		Codec: codec,
		Repo:  persistence.NewCachedRepository(postgres.NewSaveRepository(pool, codec), cfg.SaveCacheSize, cfg.SaveCacheTTL),
		DB:    pool,
	}, nil
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}

// Ready returns the database the readiness check pings, nil for the memory store
func (s *Storage) Ready() handler.Pinger {
	if s.DB == nil {
		return nil
	}
	return s.DB
}
