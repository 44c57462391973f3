// Package ledger owns every currency mutation. Spends are checked before
// anything changes so a rejected spend leaves the balance untouched.
package ledger

import (
	"fmt"
	"math"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// LevelUp summarises what an XP grant unlocked
type LevelUp struct {
	LevelsGained int `json:"levels_gained"`
	NewLevel     int `json:"new_level"`
	SkillPoints  int `json:"skill_points"`
	Gems         int `json:"gems"`
}

// XPForLevel returns the XP needed to advance from level to level+1
func XPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(BaseXP * math.Pow(float64(level), LevelExponent))
}

// XPToNext returns how much XP is still missing for the next level
func XPToNext(r *domain.Resources) int {
	return XPForLevel(r.Level) - r.XP
}

// AddXP grants experience and resolves any level-ups it triggers
func AddXP(r *domain.Resources, xp int) LevelUp {
	if xp <= 0 {
		return LevelUp{NewLevel: r.Level}
	}
	if r.Level < 1 {
		r.Level = 1
	}
	r.XP += xp

	var up LevelUp
	for i := 0; i < MaxLevelUpsPerGrant; i++ {
		need := XPForLevel(r.Level)
		if r.XP < need {
			break
		}
		r.XP -= need
		r.Level++
		up.LevelsGained++
		up.SkillPoints += SkillPointsPerLevel
		if r.Level%GemMilestoneEvery == 0 {
			up.Gems += GemsPerMilestone
		}
	}
	r.SkillPoints += up.SkillPoints
	AddGems(r, up.Gems)
	up.NewLevel = r.Level
	return up
}

// AddCoins credits coins; negative amounts are ignored
func AddCoins(r *domain.Resources, n int) {
	if n > 0 {
		r.Coins += n
	}
}

// AddResin credits the first secondary currency
func AddResin(r *domain.Resources, n int) {
	if n > 0 {
		r.Resin += n
	}
}

// AddEssence credits the second secondary currency
func AddEssence(r *domain.Resources, n int) {
	if n > 0 {
		r.Essence += n
	}
}

// AddGems credits premium currency
func AddGems(r *domain.Resources, n int) {
	if n > 0 {
		r.Gems += n
	}
}

// CanAfford reports whether the balance covers cost
func CanAfford(r *domain.Resources, cost int) bool {
	return cost <= 0 || r.Coins >= cost
}

// SpendCoins debits coins or rejects without touching the balance
func SpendCoins(r *domain.Resources, cost int) error {
	if cost < 0 {
		return fmt.Errorf("%w: negative cost %d", domain.ErrInvalidQuantity, cost)
	}
	if r.Coins < cost {
		return fmt.Errorf("%w: need %d coins, have %d", domain.ErrInsufficientFunds, cost, r.Coins)
	}
	r.Coins -= cost
	return nil
}

// SpendGems debits premium currency or rejects without touching the balance
func SpendGems(r *domain.Resources, cost int) error {
	if cost < 0 {
		return fmt.Errorf("%w: negative cost %d", domain.ErrInvalidQuantity, cost)
	}
	if r.Gems < cost {
		return fmt.Errorf("%w: need %d gems, have %d", domain.ErrInsufficientGems, cost, r.Gems)
	}
	r.Gems -= cost
	return nil
}

// SpendSkillPoint consumes one skill point
func SpendSkillPoint(r *domain.Resources) error {
	if r.SkillPoints < 1 {
		return fmt.Errorf("%w: no skill points left", domain.ErrInsufficientFunds)
	}
	r.SkillPoints--
	return nil
}

// Spend debits cost in the named currency. Skill point prices are always
// one point regardless of cost.
func Spend(r *domain.Resources, currency domain.Currency, cost int) error {
	switch currency {
	case domain.CurrencyGems:
		return SpendGems(r, cost)
	case domain.CurrencySkillPoints:
		return SpendSkillPoint(r)
	default:
		return SpendCoins(r, cost)
	}
}
