package grow

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/ledger"
)

// HarvestResult describes everything one harvest produced
type HarvestResult struct {
	SlotIndex int            `json:"slot_index"`
	Bud       domain.BudItem `json:"bud"`
	Coins     int            `json:"coins"`
	Resin     int            `json:"resin"`
	Essence   int            `json:"essence"`
	XP        int            `json:"xp"`
	Crit      bool           `json:"crit"`
	Double    bool           `json:"double"`
	Replanted bool           `json:"replanted"`
	Drops     []domain.Seed  `json:"drops,omitempty"`
	LevelUp   ledger.LevelUp `json:"level_up"`
}

// Harvest resolves a ready slot into a wet bud plus rewards
func (e *Engine) Harvest(st *domain.State, slotIndex int) (*HarvestResult, error) {
	slot, err := unlockedSlot(st, slotIndex)
	if err != nil {
		return nil, err
	}
	if slot.Seed == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrSlotEmpty, slotIndex)
	}
	if slot.Stage != domain.StageHarvest {
		return nil, fmt.Errorf("%w: slot %d is at %s", domain.ErrNotReady, slotIndex, slot.Stage)
	}

	updateMaturity(slot)
	seed := *slot.Seed
	bonus := Collection(e.cat, st.DiscoveredSeeds)
	res := &HarvestResult{SlotIndex: slotIndex}

	yield := float64(e.baseYield(seed)) * domain.Uniform(e.rng, YieldVarianceMin, YieldVarianceMax)

	critChance := float64(st.Upgrades.Level(domain.UpgradeCritChance)) * CritChancePerLevel
	if seed.HasTrait(domain.TraitCritMaster) {
		critChance += CritMasterBonus
	}
	if domain.Chance(e.rng, critChance) {
		res.Crit = true
		yield *= CritYieldMultiplier
	}
	if seed.HasTrait(domain.TraitDoubleHarvest) && domain.Chance(e.rng, DoubleHarvestChance) {
		res.Double = true
		yield *= 2
	}
	if seed.HasTrait(domain.TraitBountiful) {
		yield *= 1 + BountifulBonus
	}
	yield *= bonus.YieldMult

	maturityMult := math.Max(MaturityFloor, slot.BudMaturity/domain.MaxMaturity)
	supplyMult := 1 + slot.Soil.YieldBoost
	if slot.Fertilizer != nil {
		supplyMult *= 1 + slot.Fertilizer.YieldBoost
	}
	grams := int(math.Round(yield * maturityMult * supplyMult))
	if grams < 1 {
		grams = 1
	}

	coins := float64(grams) * seed.CoinValue * (1 + float64(st.Upgrades.Level(domain.UpgradeTrim))*TrimStep)
	if seed.HasTrait(domain.TraitGoldRush) {
		coins *= 1 + GoldRushBonus
	}
	res.Coins = int(math.Round(coins))

	resin := float64(max(1, grams/GramsPerResin))
	if seed.HasTrait(domain.TraitFrost) {
		resin *= 1 + FrostBonus
	}
	res.Resin = int(math.Round(resin))

	essence := float64(seed.Rarity)
	if seed.HasTrait(domain.TraitEssenceFlow) {
		essence *= 1 + EssenceFlowBonus
	}
	res.Essence = int(essence)
	res.XP = HarvestBaseXP + HarvestXPPerRarity*int(seed.Rarity)

	res.Bud = domain.BudItem{
		ID:      uuid.NewString(),
		Strain:  seed.Name,
		Rarity:  seed.Rarity,
		Grams:   grams,
		Quality: e.rollQuality(seed.Rarity),
		State:   domain.BudWet,
	}

	res.Drops = e.rollDrops(seed, bonus, res.Double)

	if slot.Fertilizer != nil {
		slot.Fertilizer.UsesLeft--
		if slot.Fertilizer.UsesLeft <= 0 {
			slot.Fertilizer = nil
		}
	}
	if seed.HasTrait(domain.TraitResilient) && domain.Chance(e.rng, ResilientReplantChance) {
		res.Replanted = true
		plantInto(slot, seed.CopyWithID(uuid.NewString()))
	} else {
		slot.Clear()
	}

	ledger.AddCoins(&st.Resources, res.Coins)
	ledger.AddResin(&st.Resources, res.Resin)
	ledger.AddEssence(&st.Resources, res.Essence)
	res.LevelUp = ledger.AddXP(&st.Resources, res.XP)

	st.Inventory = append(st.Inventory, res.Bud)
	st.Seeds = append(st.Seeds, res.Drops...)
	for _, d := range res.Drops {
		markDiscovered(st, d)
	}
	st.TotalHarvests++
	st.TotalGramsHarvested += grams
	st.SeedsDropped += len(res.Drops)
	return res, nil
}

// baseYield rolls within the seed's yield range when it has one
func (e *Engine) baseYield(seed domain.Seed) int {
	if seed.YieldRange != nil && seed.YieldRange.Max >= seed.YieldRange.Min && seed.YieldRange.Max > 0 {
		return domain.IntBetween(e.rng, seed.YieldRange.Min, seed.YieldRange.Max)
	}
	return seed.BaseYield
}

func (e *Engine) rollQuality(r domain.Rarity) int {
	base := baseQuality[domain.ClampInt(int(r), 0, len(baseQuality)-1)]
	return domain.ClampInt(base+e.rng.Intn(QualitySpread+1), 0, domain.MaxQuality)
}

// DropChance is the per-roll chance of a seed drop for the given seed
func DropChance(seed domain.Seed, bonus CollectionBonus) float64 {
	chance := BaseDropChance + bonus.DropBonus
	if seed.HasTrait(domain.TraitLucky) {
		chance += LuckyDropBonus
	}
	if seed.HasTrait(domain.TraitLuckyDrop) {
		chance += LuckyDropTraitBonus
	}
	return math.Min(chance, MaxDropChance)
}

func (e *Engine) rollDrops(seed domain.Seed, bonus CollectionBonus, double bool) []domain.Seed {
	rolls := 1
	if double {
		rolls++
	}
	chance := DropChance(seed, bonus)
	var drops []domain.Seed
	for i := 0; i < rolls; i++ {
		if domain.Chance(e.rng, chance) {
			drops = append(drops, e.dropFor(seed))
		}
	}
	return drops
}

// dropFor copies the harvested strain, falling back to its catalog template
func (e *Engine) dropFor(seed domain.Seed) domain.Seed {
	if e.cat != nil {
		if t, ok := e.cat.SeedTemplate(seed.TemplateID); ok {
			return t.NewSeed()
		}
	}
	return seed.CopyWithID(uuid.NewString())
}
