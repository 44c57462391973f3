package domain

// GrowSlot is a single planting position
type GrowSlot struct {
	Index       int         `json:"index"`
	Seed        *Seed       `json:"seed,omitempty"`
	Stage       Stage       `json:"stage"`
	Progress    float64     `json:"progress"`
	Unlocked    bool        `json:"unlocked"`
	Fertilizer  *Fertilizer `json:"fertilizer,omitempty"`
	Soil        Soil        `json:"soil"`
	WaterLevel  float64     `json:"water_level"`
	BudMaturity float64     `json:"bud_maturity"`
}

// Clear empties the slot back to an unplanted state, keeping soil and water
func (g *GrowSlot) Clear() {
	g.Seed = nil
	g.Progress = 0
	g.Stage = StageSeed
	g.BudMaturity = 0
}

// Growing reports whether the slot holds a seed that still has growth left
func (g *GrowSlot) Growing() bool {
	return g.Unlocked && g.Seed != nil && g.Stage != StageHarvest
}

// Ready reports whether the slot can be harvested
func (g *GrowSlot) Ready() bool {
	return g.Unlocked && g.Seed != nil && g.Stage == StageHarvest
}

// DryingRack holds at most one bud while it dries
type DryingRack struct {
	Index    int      `json:"index"`
	Bud      *BudItem `json:"bud,omitempty"`
	Unlocked bool     `json:"unlocked"`
}
