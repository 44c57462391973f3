package domain

import (
	"fmt"
	"strings"
)

// Rarity is the 5-level seed/bud tier
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// AllRarities lists every tier in ascending order
var AllRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

var rarityNames = []string{"common", "uncommon", "rare", "epic", "legendary"}

func (r Rarity) String() string {
	if r < RarityCommon || r > RarityLegendary {
		return rarityNames[0]
	}
	return rarityNames[r]
}

// Next returns the next tier up, bounded at legendary
func (r Rarity) Next() Rarity {
	if r >= RarityLegendary {
		return RarityLegendary
	}
	return r + 1
}

// ParseRarity converts a tier name to a Rarity
func ParseRarity(s string) (Rarity, error) {
	for i, name := range rarityNames {
		if strings.EqualFold(name, s) {
			return Rarity(i), nil
		}
	}
	return RarityCommon, fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
}

func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText falls back to common for unknown names so old saves still load
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		*r = RarityCommon
		return nil
	}
	*r = parsed
	return nil
}

// Stage is the growth phase of a planted seed
type Stage int

const (
	StageSeed Stage = iota
	StageSprout
	StageVeg
	StageFlower
	StageHarvest
)

var stageNames = []string{"seed", "sprout", "veg", "flower", "harvest"}

// Stage thresholds on the 0-100 progress scale
const (
	SproutThreshold  = 25.0
	VegThreshold     = 50.0
	FlowerThreshold  = 75.0
	HarvestThreshold = 100.0
)

func (s Stage) String() string {
	if s < StageSeed || s > StageHarvest {
		return stageNames[0]
	}
	return stageNames[s]
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(text []byte) error {
	for i, name := range stageNames {
		if strings.EqualFold(name, string(text)) {
			*s = Stage(i)
			return nil
		}
	}
	*s = StageSeed
	return nil
}

// StageForProgress derives the stage from the progress scalar
func StageForProgress(progress float64) Stage {
	switch {
	case progress >= HarvestThreshold:
		return StageHarvest
	case progress >= FlowerThreshold:
		return StageFlower
	case progress >= VegThreshold:
		return StageVeg
	case progress >= SproutThreshold:
		return StageSprout
	default:
		return StageSeed
	}
}
