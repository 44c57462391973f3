// Package drying advances wet buds on racks and cures them into sellable product.
package drying

import (
	"fmt"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// Engine provides pure rack logic
type Engine struct {
	rng domain.Rand
}

// NewEngine creates a new drying engine
func NewEngine(rng domain.Rand) *Engine {
	return &Engine{rng: rng}
}

// Rate is the drying progress gained per second under the given upgrades
func Rate(u domain.Upgrades) float64 {
	return BaseDryRate * (1 +
		float64(u.Level(domain.UpgradeDryingSpeed))*DryingSpeedStep +
		float64(u.Level(domain.UpgradeHumidity))*HumidityStep)
}

// Tick advances every drying bud by dt seconds
func (e *Engine) Tick(st *domain.State, dt float64) {
	if dt <= 0 {
		return
	}
	gain := dt * Rate(st.Upgrades)
	for i := range st.DryingRacks {
		bud := st.DryingRacks[i].Bud
		if bud == nil || bud.State != domain.BudDrying {
			continue
		}
		bud.DryingProgress = domain.Clamp(bud.DryingProgress+gain, 0, CompleteProgress)
	}
}

// Start moves a wet bud from inventory onto an empty rack
func (e *Engine) Start(st *domain.State, rackIndex int, budID string) error {
	rack, ok := st.Rack(rackIndex)
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrRackNotFound, rackIndex)
	}
	if !rack.Unlocked {
		return fmt.Errorf("%w: %d", domain.ErrRackLocked, rackIndex)
	}
	if rack.Bud != nil {
		return fmt.Errorf("%w: %d", domain.ErrRackOccupied, rackIndex)
	}
	idx := domain.FindBud(st.Inventory, budID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", domain.ErrBudNotFound, budID)
	}
	if st.Inventory[idx].State != domain.BudWet {
		return fmt.Errorf("%w: bud %s is %s", domain.ErrWrongState, budID, st.Inventory[idx].State)
	}

	bud := st.Inventory[idx]
	st.Inventory = domain.RemoveBud(st.Inventory, idx)
	bud.State = domain.BudDrying
	bud.DryingProgress = 0
	rack.Bud = &bud
	return nil
}

// Collect takes a finished bud off its rack, cures it and moves it into inventory
func (e *Engine) Collect(st *domain.State, rackIndex int) (*domain.BudItem, error) {
	rack, ok := st.Rack(rackIndex)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrRackNotFound, rackIndex)
	}
	if rack.Bud == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrRackEmpty, rackIndex)
	}
	if rack.Bud.DryingProgress < CompleteProgress {
		return nil, fmt.Errorf("%w: rack %d at %.0f%%", domain.ErrDryingUnfinished, rackIndex, rack.Bud.DryingProgress)
	}

	bud := *rack.Bud
	boost := st.Upgrades.Level(domain.UpgradeQualityCure)*CureQualityStep +
		st.Upgrades.Level(domain.UpgradeHumidity)*HumidityQuality
	bud.Quality = domain.ClampInt(bud.Quality+boost, 0, domain.MaxQuality)
	if domain.Chance(e.rng, float64(st.Upgrades.Level(domain.UpgradeUVLight))*UVRarityStep) {
		bud.Rarity = bud.Rarity.Next()
	}
	bud.State = domain.BudDried
	bud.DryingProgress = CompleteProgress

	rack.Bud = nil
	st.Inventory = append(st.Inventory, bud)
	return &bud, nil
}

// FillRacks moves up to limit wet buds, oldest first, onto empty unlocked racks
func (e *Engine) FillRacks(st *domain.State, limit int) int {
	moved := 0
	for r := range st.DryingRacks {
		if moved >= limit {
			break
		}
		rack := &st.DryingRacks[r]
		if !rack.Unlocked || rack.Bud != nil {
			continue
		}
		idx := firstWet(st.Inventory)
		if idx < 0 {
			break
		}
		if err := e.Start(st, r, st.Inventory[idx].ID); err != nil {
			continue
		}
		moved++
	}
	return moved
}

// CollectReady collects up to limit finished racks
func (e *Engine) CollectReady(st *domain.State, limit int) int {
	collected := 0
	for r := range st.DryingRacks {
		if collected >= limit {
			break
		}
		bud := st.DryingRacks[r].Bud
		if bud == nil || bud.DryingProgress < CompleteProgress {
			continue
		}
		if _, err := e.Collect(st, r); err == nil {
			collected++
		}
	}
	return collected
}

// OccupiedRacks counts unlocked racks currently holding a bud
func OccupiedRacks(st *domain.State) int {
	n := 0
	for _, r := range st.DryingRacks {
		if r.Unlocked && r.Bud != nil {
			n++
		}
	}
	return n
}

func firstWet(items []domain.BudItem) int {
	for i := range items {
		if items[i].State == domain.BudWet {
			return i
		}
	}
	return -1
}
