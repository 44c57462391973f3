package grow

import (
	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// CollectionBonus is the set of multipliers earned by discovering seed sets
type CollectionBonus struct {
	YieldMult  float64         `json:"yield_mult"`
	GrowthMult float64         `json:"growth_mult"`
	DropBonus  float64         `json:"drop_bonus"`
	Completed  []domain.Rarity `json:"completed"`
	Master     bool            `json:"master"`
}

// Collection computes the bonus for the discovered template ids
func Collection(cat *catalog.Catalog, discovered map[string]bool) CollectionBonus {
	bonus := CollectionBonus{YieldMult: 1, GrowthMult: 1}
	if cat == nil {
		return bonus
	}

	byRarity := cat.TemplatesByRarity()
	all := true
	for _, r := range domain.AllRarities {
		ids := byRarity[r]
		if len(ids) == 0 {
			continue
		}
		complete := true
		for _, id := range ids {
			if !discovered[id] {
				complete = false
				break
			}
		}
		if !complete {
			all = false
			continue
		}
		bonus.Completed = append(bonus.Completed, r)
		bonus.YieldMult *= 1 + collectionYieldBonus[r]
		bonus.GrowthMult *= 1 + collectionGrowthBonus[r]
		if r == domain.RarityRare {
			bonus.DropBonus += RareCollectionDropBonus
		}
	}
	if all && len(cat.Seeds) > 0 {
		bonus.Master = true
		bonus.YieldMult *= MasterCollectionMultiplier
	}
	return bonus
}
