package catalog

import (
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// NewState builds the snapshot of a brand new game at the given time (unix ms)
func (c *Catalog) NewState(now int64) *domain.State {
	st := &domain.State{
		Resources: domain.Resources{
			Coins: c.Start.Coins,
			Level: 1,
		},
		DrugEffects:     map[string]domain.DealerDrugEffect{},
		Upgrades:        domain.Upgrades{},
		DiscoveredSeeds: map[string]bool{},
		AutoSell: domain.AutoSellSettings{
			Channel: domain.AutoSellChannelAuto,
		},
		LastActive: now,
	}

	st.GrowSlots = make([]domain.GrowSlot, c.Slots.Max)
	for i := range st.GrowSlots {
		st.GrowSlots[i] = domain.GrowSlot{
			Index:      i,
			Unlocked:   i < c.Start.SlotsUnlocked,
			Soil:       domain.BasicSoil(),
			WaterLevel: domain.MaxWaterLevel,
		}
	}

	st.DryingRacks = make([]domain.DryingRack, c.Racks.Max)
	for i := range st.DryingRacks {
		st.DryingRacks[i] = domain.DryingRack{Index: i, Unlocked: i < c.Start.RacksUnlocked}
	}

	for _, t := range c.Channels {
		st.SalesChannels = append(st.SalesChannels, t.Channel())
	}
	for _, t := range c.Workers {
		st.Workers = append(st.Workers, t.Worker())
	}
	for _, id := range c.Start.StarterSeeds {
		if t, ok := c.SeedTemplate(id); ok {
			st.Seeds = append(st.Seeds, t.NewSeed())
		}
	}
	return st
}
