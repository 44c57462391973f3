// Package offline credits the passive progress made while the game was closed.
//
// The growth formula here only uses the growth upgrade and the seed's own
// speed. Water, supplies, traits and collection bonuses are not tracked
// offline, so offline growth runs slower than live growth for boosted slots.
package offline

import (
	"math"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/grow"
	"github.com/hypez33/grow-lab-zen-sub000/internal/ledger"
)

// Catch-up limits
const (
	MaxOfflineSeconds = 8 * 60 * 60
	MinOfflineSeconds = 60
)

// Summary is shown to the player after a catch-up
type Summary struct {
	ElapsedSeconds int64 `json:"elapsed_seconds"`
	Capped         bool  `json:"capped"`
	Coins          int   `json:"coins"`
	Cycles         int   `json:"cycles"`
}

// Rate is the simplified per-second progress of a slot while offline
func Rate(seed domain.Seed, growthLevel int) float64 {
	return grow.BaseGrowthRate * (1 + float64(growthLevel)*grow.GrowthUpgradeStep) * seed.GrowthSpeed
}

// CycleCoins is the coin value credited for one offline growth cycle
func CycleCoins(seed domain.Seed, trimLevel int) float64 {
	yield := float64(seed.BaseYield)
	if seed.YieldRange != nil && seed.YieldRange.Max > 0 {
		yield = float64(seed.YieldRange.Min+seed.YieldRange.Max) / 2
	}
	coins := yield * seed.CoinValue * (1 + float64(trimLevel)*grow.TrimStep)
	if seed.HasTrait(domain.TraitGoldRush) {
		coins *= 1 + grow.GoldRushBonus
	}
	if seed.HasTrait(domain.TraitBountiful) {
		coins *= 1 + grow.BountifulBonus
	}
	return coins
}

// CatchUp credits the time between st.LastActive and now. The clock is
// always advanced, even when the gap is too short to earn anything.
func CatchUp(st *domain.State, now int64) Summary {
	var sum Summary
	defer func() { st.LastActive = max(st.LastActive, now) }()

	if st.LastActive <= 0 || now <= st.LastActive {
		return sum
	}
	sum.ElapsedSeconds = (now - st.LastActive) / 1000
	if sum.ElapsedSeconds > MaxOfflineSeconds {
		sum.ElapsedSeconds = MaxOfflineSeconds
		sum.Capped = true
	}
	if sum.ElapsedSeconds < MinOfflineSeconds {
		return sum
	}

	growthLevel := st.Upgrades.Level(domain.UpgradeGrowthSpeed)
	trimLevel := st.Upgrades.Level(domain.UpgradeTrim)
	coins := 0.0
	for i := range st.GrowSlots {
		slot := &st.GrowSlots[i]
		if !slot.Unlocked || slot.Seed == nil {
			continue
		}
		total := slot.Progress + Rate(*slot.Seed, growthLevel)*float64(sum.ElapsedSeconds)
		cycles := int(total / domain.MaxProgress)
		if cycles == 0 {
			slot.Progress = domain.Clamp(total, 0, domain.MaxProgress)
			slot.Stage = domain.StageForProgress(slot.Progress)
			continue
		}
		sum.Cycles += cycles
		coins += float64(cycles) * CycleCoins(*slot.Seed, trimLevel)
		slot.Progress = math.Mod(total, domain.MaxProgress)
		slot.Stage = domain.StageForProgress(slot.Progress)
		slot.BudMaturity = 0
	}

	sum.Coins = int(math.Floor(coins))
	ledger.AddCoins(&st.Resources, sum.Coins)
	return sum
}
