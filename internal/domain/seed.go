package domain

// Trait tags carried by seeds
type Trait string

const (
	TraitTurbo         Trait = "turbo"
	TraitSpeedBoost    Trait = "speed_boost"
	TraitCritMaster    Trait = "crit_master"
	TraitDoubleHarvest Trait = "double_harvest"
	TraitBountiful     Trait = "bountiful"
	TraitGoldRush      Trait = "gold_rush"
	TraitFrost         Trait = "frost"
	TraitEssenceFlow   Trait = "essence_flow"
	TraitResilient     Trait = "resilient"
	TraitLucky         Trait = "lucky"
	TraitLuckyDrop     Trait = "lucky_drop"
)

// YieldRange bounds the base yield roll of a seed
type YieldRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Seed is a plantable instance copied from a catalog template
type Seed struct {
	ID          string      `json:"id"`
	TemplateID  string      `json:"template_id"`
	Name        string      `json:"name"`
	Rarity      Rarity      `json:"rarity"`
	Traits      []Trait     `json:"traits,omitempty"`
	BaseYield   int         `json:"base_yield"`
	GrowthSpeed float64     `json:"growth_speed"`
	YieldRange  *YieldRange `json:"yield_range,omitempty"`
	CoinValue   float64     `json:"coin_value"`
}

// HasTrait reports whether the seed carries the given trait
func (s Seed) HasTrait(t Trait) bool {
	for _, have := range s.Traits {
		if have == t {
			return true
		}
	}
	return false
}

// CopyWithID returns a deep copy of the seed with a fresh identity
func (s Seed) CopyWithID(id string) Seed {
	out := s
	out.ID = id
	out.Traits = nil
	if len(s.Traits) > 0 {
		out.Traits = append(make([]Trait, 0, len(s.Traits)), s.Traits...)
	}
	if s.YieldRange != nil {
		yr := *s.YieldRange
		out.YieldRange = &yr
	}
	return out
}

// Fertilizer is a consumable slot supply with a limited number of uses
type Fertilizer struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	GrowthBoost float64 `json:"growth_boost"`
	YieldBoost  float64 `json:"yield_boost"`
	UsesLeft    int     `json:"uses_left"`
}

// Soil is a durable slot supply; it is never consumed
type Soil struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	GrowthBoost    float64 `json:"growth_boost"`
	YieldBoost     float64 `json:"yield_boost"`
	WaterRetention float64 `json:"water_retention"`
}

// BasicSoilID identifies the default soil every slot starts with
const BasicSoilID = "basic"

// BasicSoil returns the default soil
func BasicSoil() Soil {
	return Soil{ID: BasicSoilID, Name: "Basic Soil", WaterRetention: 2}
}
