// Package grow advances planted seeds through their growth stages and
// resolves harvests into currency, wet buds and seed drops.
package grow

import (
	"math"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// Engine provides pure grow-slot logic (no storage dependencies)
type Engine struct {
	cat *catalog.Catalog
	rng domain.Rand
}

// NewEngine creates a new grow engine
func NewEngine(cat *catalog.Catalog, rng domain.Rand) *Engine {
	return &Engine{cat: cat, rng: rng}
}

// Tick advances every growing slot by dt seconds
func (e *Engine) Tick(st *domain.State, dt float64) {
	if dt <= 0 {
		return
	}
	bonus := Collection(e.cat, st.DiscoveredSeeds)
	growthLevel := st.Upgrades.Level(domain.UpgradeGrowthSpeed)

	for i := range st.GrowSlots {
		slot := &st.GrowSlots[i]
		if !slot.Growing() {
			continue
		}

		gain := dt * GrowthRate(slot, growthLevel, bonus.GrowthMult)
		slot.WaterLevel = domain.Clamp(slot.WaterLevel-dt/retention(slot.Soil), 0, domain.MaxWaterLevel)
		slot.Progress = domain.Clamp(slot.Progress+gain, 0, domain.MaxProgress)
		slot.Stage = domain.StageForProgress(slot.Progress)
		updateMaturity(slot)
	}
}

// GrowthRate is the progress gained per second by a slot under current modifiers
func GrowthRate(slot *domain.GrowSlot, growthLevel int, collectionMult float64) float64 {
	if slot.Seed == nil {
		return 0
	}
	rate := BaseGrowthRate * (1 + float64(growthLevel)*GrowthUpgradeStep)
	if slot.Fertilizer != nil {
		rate *= 1 + slot.Fertilizer.GrowthBoost
	}
	rate *= 1 + slot.Soil.GrowthBoost
	rate *= slot.Seed.GrowthSpeed
	rate *= collectionMult
	if slot.Seed.HasTrait(domain.TraitTurbo) {
		rate *= TurboMultiplier
	}
	if slot.Seed.HasTrait(domain.TraitSpeedBoost) {
		rate *= SpeedBoostMult
	}
	rate *= WaterGrowthFloor + WaterGrowthSpan*(domain.Clamp(slot.WaterLevel, 0, domain.MaxWaterLevel)/domain.MaxWaterLevel)
	return rate
}

func retention(soil domain.Soil) float64 {
	if soil.WaterRetention <= 0 {
		return domain.BasicSoil().WaterRetention
	}
	return soil.WaterRetention
}

// updateMaturity raises bud maturity along the flowering curve. It never regresses.
func updateMaturity(slot *domain.GrowSlot) {
	if slot.Stage < domain.StageFlower {
		return
	}
	flowerPercent := 100.0
	if slot.Stage != domain.StageHarvest {
		span := domain.HarvestThreshold - domain.FlowerThreshold
		flowerPercent = (slot.Progress - domain.FlowerThreshold) / span * 100
	}
	target := math.Pow(domain.Clamp(flowerPercent, 0, 100)/100, MaturityExponent) * domain.MaxMaturity
	if slot.Fertilizer != nil {
		target *= 1 + FertilizerMaturityFactor*slot.Fertilizer.YieldBoost
	}
	slot.BudMaturity = domain.Clamp(math.Max(slot.BudMaturity, target), 0, domain.MaxMaturity)
}
