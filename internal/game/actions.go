package game

import (
	"fmt"

	"github.com/hypez33/grow-lab-zen-sub000/internal/automation"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// Plant puts a seed from the pool into a slot
func (e *Engine) Plant(st *domain.State, slot int, seedID string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return nil, e.grow.Plant(next, slot, seedID)
	})
}

// Tap adds a fixed chunk of progress to a growing slot
func (e *Engine) Tap(st *domain.State, slot int) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		if err := e.grow.Tap(next, slot); err != nil {
			return nil, err
		}
		return next.GrowSlots[slot], nil
	})
}

// Water refills a slot
func (e *Engine) Water(st *domain.State, slot int) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return nil, e.grow.Water(next, slot)
	})
}

// ApplyFertilizer moves a fertilizer pack onto a slot
func (e *Engine) ApplyFertilizer(st *domain.State, slot int, fertilizerID string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return nil, e.grow.ApplyFertilizer(next, slot, fertilizerID)
	})
}

// ApplySoil swaps a slot's soil
func (e *Engine) ApplySoil(st *domain.State, slot int, soilID string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return nil, e.grow.ApplySoil(next, slot, soilID)
	})
}

// Harvest resolves a ready slot
func (e *Engine) Harvest(st *domain.State, slot int) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return e.grow.Harvest(next, slot)
	})
}

// StartDrying hangs a wet bud on a rack
func (e *Engine) StartDrying(st *domain.State, rack int, budID string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return nil, e.drying.Start(next, rack, budID)
	})
}

// CollectRack takes a finished bud off its rack
func (e *Engine) CollectRack(st *domain.State, rack int) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return e.drying.Collect(next, rack)
	})
}

// Sell sells grams of a dried bud through a channel at now
func (e *Engine) Sell(st *domain.State, budID, channelID string, grams int, now int64) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return e.sales.Sell(next, budID, channelID, grams, now)
	})
}

// SetAutoSell replaces the auto-sell settings
func (e *Engine) SetAutoSell(st *domain.State, cfg domain.AutoSellSettings) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		if cfg.MinQuality < 0 || cfg.MinQuality > domain.MaxQuality {
			return nil, fmt.Errorf("%w: min quality %d outside 0-%d", domain.ErrInvalidInput, cfg.MinQuality, domain.MaxQuality)
		}
		if cfg.Channel == "" {
			cfg.Channel = domain.AutoSellChannelAuto
		}
		if cfg.Channel != domain.AutoSellChannelAuto {
			if _, ok := next.Channel(cfg.Channel); !ok {
				return nil, fmt.Errorf("%w: %s", domain.ErrChannelNotFound, cfg.Channel)
			}
		}
		next.AutoSell = cfg
		return cfg, nil
	})
}

// BuyWorker hires a worker
func (e *Engine) BuyWorker(st *domain.State, id string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return nil, automation.BuyWorker(next, id)
	})
}

// UpgradeWorker raises a worker one level
func (e *Engine) UpgradeWorker(st *domain.State, id string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		return nil, automation.UpgradeWorker(next, id)
	})
}

// ToggleWorkerPause flips a worker between paused and running
func (e *Engine) ToggleWorkerPause(st *domain.State, id string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		paused, err := automation.TogglePause(next, id)
		if err != nil {
			return nil, err
		}
		return map[string]bool{"paused": paused}, nil
	})
}
