package grow

import (
	"fmt"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// unlockedSlot resolves a slot index, rejecting unknown or locked slots
func unlockedSlot(st *domain.State, index int) (*domain.GrowSlot, error) {
	slot, ok := st.Slot(index)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrSlotNotFound, index)
	}
	if !slot.Unlocked {
		return nil, fmt.Errorf("%w: %d", domain.ErrSlotLocked, index)
	}
	return slot, nil
}

// Plant moves a seed from the seed pool into an empty slot
func (e *Engine) Plant(st *domain.State, slotIndex int, seedID string) error {
	slot, err := unlockedSlot(st, slotIndex)
	if err != nil {
		return err
	}
	if slot.Seed != nil {
		return fmt.Errorf("%w: %d", domain.ErrSlotOccupied, slotIndex)
	}

	idx := -1
	for i := range st.Seeds {
		if st.Seeds[i].ID == seedID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", domain.ErrSeedNotFound, seedID)
	}

	seed := st.Seeds[idx]
	st.Seeds = append(st.Seeds[:idx], st.Seeds[idx+1:]...)
	plantInto(slot, seed)
	markDiscovered(st, seed)
	return nil
}

// PlantNext plants the first seed of the pool into the slot. Used by automation.
func (e *Engine) PlantNext(st *domain.State, slotIndex int) error {
	if len(st.Seeds) == 0 {
		return fmt.Errorf("%w: seed pool is empty", domain.ErrSeedNotFound)
	}
	return e.Plant(st, slotIndex, st.Seeds[0].ID)
}

func plantInto(slot *domain.GrowSlot, seed domain.Seed) {
	slot.Seed = &seed
	slot.Progress = 0
	slot.Stage = domain.StageSeed
	slot.BudMaturity = 0
}

func markDiscovered(st *domain.State, seed domain.Seed) {
	if st.DiscoveredSeeds == nil {
		st.DiscoveredSeeds = map[string]bool{}
	}
	if seed.TemplateID != "" {
		st.DiscoveredSeeds[seed.TemplateID] = true
	}
}

// Tap adds a fixed burst of progress to a growing slot
func (e *Engine) Tap(st *domain.State, slotIndex int) error {
	return e.TapBy(st, slotIndex, TapProgress)
}

// TapBy adds amount progress to a growing slot
func (e *Engine) TapBy(st *domain.State, slotIndex int, amount float64) error {
	slot, err := unlockedSlot(st, slotIndex)
	if err != nil {
		return err
	}
	if slot.Seed == nil {
		return fmt.Errorf("%w: %d", domain.ErrSlotEmpty, slotIndex)
	}
	if slot.Stage == domain.StageHarvest {
		return fmt.Errorf("%w: slot %d is ready to harvest", domain.ErrWrongState, slotIndex)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: tap amount %.2f", domain.ErrInvalidQuantity, amount)
	}
	slot.Progress = domain.Clamp(slot.Progress+amount, 0, domain.MaxProgress)
	slot.Stage = domain.StageForProgress(slot.Progress)
	updateMaturity(slot)
	return nil
}

// Water tops a slot back up to full
func (e *Engine) Water(st *domain.State, slotIndex int) error {
	slot, err := unlockedSlot(st, slotIndex)
	if err != nil {
		return err
	}
	slot.WaterLevel = domain.MaxWaterLevel
	return nil
}

// ApplyFertilizer moves a fertilizer pack from inventory onto a slot
func (e *Engine) ApplyFertilizer(st *domain.State, slotIndex int, fertilizerID string) error {
	slot, err := unlockedSlot(st, slotIndex)
	if err != nil {
		return err
	}
	if slot.Fertilizer != nil {
		return fmt.Errorf("%w: slot %d already fertilized", domain.ErrSlotOccupied, slotIndex)
	}
	for i := range st.Fertilizers {
		if st.Fertilizers[i].ID != fertilizerID {
			continue
		}
		f := st.Fertilizers[i]
		if f.UsesLeft <= 0 {
			return fmt.Errorf("%w: fertilizer %s is used up", domain.ErrInvalidQuantity, fertilizerID)
		}
		st.Fertilizers = append(st.Fertilizers[:i], st.Fertilizers[i+1:]...)
		slot.Fertilizer = &f
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrFertilizerNotFound, fertilizerID)
}

// ApplySoil swaps the soil of a slot. The replaced soil goes back to
// inventory unless it is the basic soil.
func (e *Engine) ApplySoil(st *domain.State, slotIndex int, soilID string) error {
	slot, err := unlockedSlot(st, slotIndex)
	if err != nil {
		return err
	}
	if slot.Soil.ID == soilID {
		return fmt.Errorf("%w: slot %d already uses %s", domain.ErrAlreadyOwned, slotIndex, soilID)
	}
	for i := range st.Soils {
		if st.Soils[i].ID != soilID {
			continue
		}
		next := st.Soils[i]
		st.Soils = append(st.Soils[:i], st.Soils[i+1:]...)
		if slot.Soil.ID != "" && slot.Soil.ID != domain.BasicSoilID {
			st.Soils = append(st.Soils, slot.Soil)
		}
		slot.Soil = next
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrSoilNotFound, soilID)
}
