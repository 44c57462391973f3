package domain

// Resources holds the scalar currencies of the ledger
type Resources struct {
	Coins       int `json:"coins"`
	Resin       int `json:"resin"`
	Essence     int `json:"essence"`
	Gems        int `json:"gems"`
	XP          int `json:"xp"`
	Level       int `json:"level"`
	SkillPoints int `json:"skill_points"`
}

// Currency names what a shop price is paid in
type Currency string

const (
	CurrencyCoins       Currency = "coins"
	CurrencyGems        Currency = "gems"
	CurrencySkillPoints Currency = "skill_points"
)

// Statistics are lifetime counters shown on the stats screen
type Statistics struct {
	TotalHarvests       int `json:"total_harvests"`
	TotalGramsHarvested int `json:"total_grams_harvested"`
	TotalGramsSold      int `json:"total_grams_sold"`
	TotalRevenue        int `json:"total_revenue"`
	TotalSales          int `json:"total_sales"`
	DealerSales         int `json:"dealer_sales"`
	SeedsDropped        int `json:"seeds_dropped"`
}

// UpgradeKind names a purchasable upgrade track
type UpgradeKind string

const (
	UpgradeGrowthSpeed UpgradeKind = "growth_speed"
	UpgradeCritChance  UpgradeKind = "crit_chance"
	UpgradeTrim        UpgradeKind = "trim"
	UpgradeDryingSpeed UpgradeKind = "drying_speed"
	UpgradeHumidity    UpgradeKind = "humidity"
	UpgradeQualityCure UpgradeKind = "quality_cure"
	UpgradeUVLight     UpgradeKind = "uv_light"
)

// AllUpgradeKinds lists every track in shop order
var AllUpgradeKinds = []UpgradeKind{
	UpgradeGrowthSpeed, UpgradeCritChance, UpgradeTrim, UpgradeDryingSpeed,
	UpgradeHumidity, UpgradeQualityCure, UpgradeUVLight,
}

// Upgrades maps each track to its purchased level
type Upgrades map[UpgradeKind]int

// Level returns the level of a track, zero when never bought
func (u Upgrades) Level(k UpgradeKind) int {
	if u == nil {
		return 0
	}
	return u[k]
}
