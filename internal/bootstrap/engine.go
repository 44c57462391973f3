package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/config"
	"github.com/hypez33/grow-lab-zen-sub000/internal/game"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
	"github.com/hypez33/grow-lab-zen-sub000/internal/territory"
	"github.com/hypez33/grow-lab-zen-sub000/internal/warehouse"
)

// LoadCatalog reads CATALOG_PATH, or the embedded catalog when it is unset
func LoadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"path", cfg.CatalogPath,
		"seeds", len(cat.Seeds),
		"channels", len(cat.Channels),
		"workers", len(cat.Workers))
	return cat, nil
}

// NewRand returns a random source seeded with seed, or with the clock when
// seed is zero.
func NewRand(ctx context.Context, seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.FromContext(ctx).Info(LogMsgRNGSeeded, "seed", seed)
	return rand.New(rand.NewSource(seed))
}

// Collaborators are the sibling ledgers the engine calls into
type Collaborators struct {
	Territory *territory.Ledger
	Warehouse *warehouse.Stock
}

// NewEngine builds the game engine with in-process collaborators
func NewEngine(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, bonuses ...territory.Bonus) (*game.Engine, Collaborators, error) {
	ledger, err := territory.NewLedger(bonuses...)
	if err != nil {
		return nil, Collaborators{}, err
	}
	c := Collaborators{
		Territory: ledger,
		Warehouse: warehouse.NewStock(),
	}
	return game.NewEngine(cat, NewRand(ctx, cfg.RNGSeed), c.Territory, c.Warehouse), c, nil
}
