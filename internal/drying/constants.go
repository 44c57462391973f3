package drying

// Drying tuning
const (
	BaseDryRate      = 1.25 // drying progress per second before upgrades
	DryingSpeedStep  = 0.15
	HumidityStep     = 0.08
	CureQualityStep  = 5
	HumidityQuality  = 3
	UVRarityStep     = 0.05
	CompleteProgress = 100.0
)
