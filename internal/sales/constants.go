package sales

// Pricing
const (
	QualityBonusFactor = 0.5
)

// rarityBonus is the per-tier price step, common through legendary
var rarityBonus = []float64{1, 1.1, 1.25, 1.5, 2}

// Sales window and auto-sell pacing (milliseconds)
const (
	SalesWindowMillis     = int64(60 * 60 * 1000)
	AutoSellIntervalMills = int64(1000)
	NearlyFullRatio       = 0.8
)
