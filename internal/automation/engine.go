// Package automation runs owned workers once per tick. Each worker resolves
// its abilities in a fixed order so earlier steps free room for later ones:
// harvest, plant, tap, water, dry, sell.
package automation

import (
	"context"
	"math"

	"github.com/hypez33/grow-lab-zen-sub000/internal/dealer"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/drying"
	"github.com/hypez33/grow-lab-zen-sub000/internal/grow"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
)

// Engine schedules worker abilities
type Engine struct {
	grow   *grow.Engine
	drying *drying.Engine
	dealer *dealer.Engine
}

// NewEngine creates a worker scheduler
func NewEngine(g *grow.Engine, d *drying.Engine, dl *dealer.Engine) *Engine {
	return &Engine{grow: g, drying: d, dealer: dl}
}

// Report counts what the workers did during one tick
type Report struct {
	Harvested  int                     `json:"harvested"`
	Planted    int                     `json:"planted"`
	Tapped     int                     `json:"tapped"`
	Watered    int                     `json:"watered"`
	Drying     int                     `json:"drying"`
	Collected  int                     `json:"collected"`
	Harvests   []grow.HarvestResult    `json:"harvests,omitempty"`
	Activities []domain.DealerActivity `json:"activities,omitempty"`
}

// WaterThreshold is the water level below which a worker of this level waters
func WaterThreshold(level int) float64 {
	return math.Min(BaseWaterThreshold+WaterThresholdPerLevel*float64(level), MaxWaterThreshold)
}

// Tick runs every active worker once
func (e *Engine) Tick(ctx context.Context, st *domain.State, now int64) Report {
	var rep Report
	for i := range st.Workers {
		w := &st.Workers[i]
		if !w.Active() {
			continue
		}
		e.runWorker(ctx, st, w, now, &rep)
	}
	return rep
}

func (e *Engine) runWorker(ctx context.Context, st *domain.State, w *domain.Worker, now int64, rep *Report) {
	log := logger.FromContext(ctx)
	capacity := w.Capacity()

	if w.Can(domain.AbilityHarvest) {
		done := 0
		for i := range st.GrowSlots {
			if done >= capacity {
				break
			}
			if !st.GrowSlots[i].Ready() {
				continue
			}
			res, err := e.grow.Harvest(st, i)
			if err != nil {
				log.Warn(LogMsgHarvestFailed, "worker", w.ID, "slot", i, "error", err)
				continue
			}
			rep.Harvests = append(rep.Harvests, *res)
			done++
		}
		rep.Harvested += done
	}

	if w.Can(domain.AbilityPlant) {
		done := 0
		for i := range st.GrowSlots {
			if done >= capacity || len(st.Seeds) == 0 {
				break
			}
			slot := &st.GrowSlots[i]
			if !slot.Unlocked || slot.Seed != nil {
				continue
			}
			if e.grow.PlantNext(st, i) == nil {
				done++
			}
		}
		rep.Planted += done
	}

	if w.Can(domain.AbilityTap) {
		done := 0
		for i := range st.GrowSlots {
			if done >= capacity {
				break
			}
			if !st.GrowSlots[i].Growing() {
				continue
			}
			if e.grow.Tap(st, i) == nil {
				done++
			}
		}
		rep.Tapped += done
	}

	if w.Can(domain.AbilityWater) {
		threshold := WaterThreshold(w.Level)
		done := 0
		for i := range st.GrowSlots {
			if done >= capacity {
				break
			}
			slot := &st.GrowSlots[i]
			if !slot.Growing() || slot.WaterLevel >= threshold {
				continue
			}
			if e.grow.Water(st, i) == nil {
				done++
			}
		}
		rep.Watered += done
	}

	if w.Can(domain.AbilityDry) {
		rep.Drying += e.drying.FillRacks(st, capacity)
		rep.Collected += e.drying.CollectReady(st, capacity)
	}

	if w.Can(domain.AbilitySell) && e.dealer != nil {
		rep.Activities = append(rep.Activities, e.dealer.Turn(ctx, st, w, now))
	}

	log.Debug(LogMsgWorkerTick, "worker", w.ID, "capacity", capacity)
}
