package grow

// Growth tuning
const (
	BaseGrowthRate    = 0.8 // progress points per second before modifiers
	GrowthUpgradeStep = 0.1
	TurboMultiplier   = 1.3
	SpeedBoostMult    = 1.5
	WaterGrowthFloor  = 0.25
	WaterGrowthSpan   = 0.75
	TapProgress       = 5.0
)

// Bud maturity curve
const (
	MaturityExponent         = 1.5
	FertilizerMaturityFactor = 0.5
	MaturityFloor            = 0.2
)

// Harvest tuning
const (
	YieldVarianceMin       = 0.8
	YieldVarianceMax       = 1.2
	CritChancePerLevel     = 0.05
	CritMasterBonus        = 0.15
	CritYieldMultiplier    = 1.5
	DoubleHarvestChance    = 0.25
	BountifulBonus         = 0.30
	GoldRushBonus          = 0.50
	FrostBonus             = 0.25
	EssenceFlowBonus       = 1.0
	ResilientReplantChance = 0.20
	TrimStep               = 0.1
	GramsPerResin          = 5
	HarvestBaseXP          = 10
	HarvestXPPerRarity     = 5
	QualitySpread          = 30
)

// Seed drop chances
const (
	BaseDropChance          = 0.08
	LuckyDropBonus          = 0.10
	LuckyDropTraitBonus     = 0.15
	RareCollectionDropBonus = 0.05
	MaxDropChance           = 0.95
)

// MasterCollectionMultiplier applies once every catalog seed has been discovered
const MasterCollectionMultiplier = 1.25

// baseQuality is the bottom of the quality roll per rarity tier
var baseQuality = []int{50, 55, 60, 65, 70}

// Per-tier collection completion bonuses
var (
	collectionYieldBonus  = []float64{0.05, 0.10, 0.15, 0.20, 0.30}
	collectionGrowthBonus = []float64{0.02, 0.04, 0.06, 0.08, 0.10}
)
