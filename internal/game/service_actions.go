package game

import (
	"context"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/event"
	"github.com/hypez33/grow-lab-zen-sub000/internal/grow"
	"github.com/hypez33/grow-lab-zen-sub000/internal/sales"
)

func (s *service) Plant(ctx context.Context, slot int, seedID string) domain.ActionResult {
	res, _ := s.do(ctx, "plant", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.Plant(st, slot, seedID)
	})
	return res
}

func (s *service) Tap(ctx context.Context, slot int) domain.ActionResult {
	res, _ := s.do(ctx, "tap", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.Tap(st, slot)
	})
	return res
}

func (s *service) Water(ctx context.Context, slot int) domain.ActionResult {
	res, _ := s.do(ctx, "water", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.Water(st, slot)
	})
	return res
}

func (s *service) ApplyFertilizer(ctx context.Context, slot int, fertilizerID string) domain.ActionResult {
	res, _ := s.do(ctx, "apply_fertilizer", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.ApplyFertilizer(st, slot, fertilizerID)
	})
	return res
}

func (s *service) ApplySoil(ctx context.Context, slot int, soilID string) domain.ActionResult {
	res, _ := s.do(ctx, "apply_soil", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.ApplySoil(st, slot, soilID)
	})
	return res
}

func (s *service) Harvest(ctx context.Context, slot int) domain.ActionResult {
	res, _ := s.do(ctx, "harvest", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.Harvest(st, slot)
	})
	if h, ok := res.Data.(*grow.HarvestResult); ok && res.Success {
		s.publishHarvest(ctx, *h, false)
	}
	return res
}

func (s *service) StartDrying(ctx context.Context, rack int, budID string) domain.ActionResult {
	res, _ := s.do(ctx, "start_drying", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.StartDrying(st, rack, budID)
	})
	return res
}

func (s *service) CollectRack(ctx context.Context, rack int) domain.ActionResult {
	res, _ := s.do(ctx, "collect_rack", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.CollectRack(st, rack)
	})
	return res
}

func (s *service) Sell(ctx context.Context, budID, channelID string, grams int) domain.ActionResult {
	now := s.nowMillis()
	res, _ := s.do(ctx, "sell", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.Sell(st, budID, channelID, grams, now)
	})
	if r, ok := res.Data.(*sales.SaleResult); ok && res.Success {
		s.publishSale(ctx, *r, event.SourcePlayer)
	}
	return res
}

func (s *service) SetAutoSell(ctx context.Context, cfg domain.AutoSellSettings) domain.ActionResult {
	res, _ := s.do(ctx, "set_auto_sell", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.SetAutoSell(st, cfg)
	})
	return res
}

func (s *service) BuySeed(ctx context.Context, templateID string) domain.ActionResult {
	res, _ := s.do(ctx, "buy_seed", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.BuySeed(st, templateID)
	})
	return res
}

func (s *service) BuyFertilizer(ctx context.Context, id string) domain.ActionResult {
	res, _ := s.do(ctx, "buy_fertilizer", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.BuyFertilizer(st, id)
	})
	return res
}

func (s *service) BuySoil(ctx context.Context, id string) domain.ActionResult {
	res, _ := s.do(ctx, "buy_soil", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.BuySoil(st, id)
	})
	return res
}

func (s *service) BuyUpgrade(ctx context.Context, kind domain.UpgradeKind) domain.ActionResult {
	res, _ := s.do(ctx, "buy_upgrade", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.BuyUpgrade(st, kind)
	})
	return res
}

func (s *service) UnlockSlot(ctx context.Context) domain.ActionResult {
	res, _ := s.do(ctx, "unlock_slot", s.engine.UnlockSlot)
	return res
}

func (s *service) UnlockRack(ctx context.Context) domain.ActionResult {
	res, _ := s.do(ctx, "unlock_rack", s.engine.UnlockRack)
	return res
}

func (s *service) UnlockChannel(ctx context.Context, id string) domain.ActionResult {
	res, _ := s.do(ctx, "unlock_channel", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.UnlockChannel(st, id)
	})
	return res
}

func (s *service) BuyWorker(ctx context.Context, id string) domain.ActionResult {
	res, _ := s.do(ctx, "buy_worker", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.BuyWorker(st, id)
	})
	return res
}

func (s *service) UpgradeWorker(ctx context.Context, id string) domain.ActionResult {
	res, _ := s.do(ctx, "upgrade_worker", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.UpgradeWorker(st, id)
	})
	return res
}

func (s *service) ToggleWorkerPause(ctx context.Context, id string) domain.ActionResult {
	res, _ := s.do(ctx, "toggle_worker_pause", func(st *domain.State) (*domain.State, domain.ActionResult) {
		return s.engine.ToggleWorkerPause(st, id)
	})
	return res
}
