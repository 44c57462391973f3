package automation

// Watering thresholds: a worker tops up slots below
// BaseWaterThreshold + WaterThresholdPerLevel*level, capped at MaxWaterThreshold
const (
	BaseWaterThreshold     = 30.0
	WaterThresholdPerLevel = 5.0
	MaxWaterThreshold      = 80.0
)

// Worker pricing
const (
	MinUpgradeCost = 50
)

// Log messages
const (
	LogMsgWorkerTick    = "worker tick resolved"
	LogMsgHarvestFailed = "worker harvest failed"
)
