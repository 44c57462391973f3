package domain

// Commodity kinds understood by the territory and warehouse collaborators
const (
	CommodityBud = "bud"
	CommodityAll = "all"
)

// Bounds shared by every engine
const (
	MaxProgress   = 100.0
	MaxWaterLevel = 100.0
	MaxMaturity   = 100.0
	MaxQuality    = 100
)

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
