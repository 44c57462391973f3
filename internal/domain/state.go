package domain

import "encoding/json"

// State is the single aggregate snapshot every engine reads and writes.
// The host owns one instance; transitions work on a Clone and swap it in.
type State struct {
	Version int `json:"version"`

	Resources
	Statistics

	GrowSlots        []GrowSlot                  `json:"grow_slots"`
	DryingRacks      []DryingRack                `json:"drying_racks"`
	Seeds            []Seed                      `json:"seeds"`
	Inventory        []BudItem                   `json:"inventory"`
	Fertilizers      []Fertilizer                `json:"fertilizers"`
	Soils            []Soil                      `json:"soils"`
	SalesChannels    []SalesChannel              `json:"sales_channels"`
	Workers          []Worker                    `json:"workers"`
	DealerActivities []DealerActivity            `json:"dealer_activities"`
	DrugEffects      map[string]DealerDrugEffect `json:"drug_effects"`
	AutoSell         AutoSellSettings            `json:"auto_sell"`
	SalesWindow      []SalesWindowEntry          `json:"sales_window"`
	Upgrades         Upgrades                    `json:"upgrades"`
	DiscoveredSeeds  map[string]bool             `json:"discovered_seeds"`

	LastActive     int64 `json:"last_active"`
	LastAutoSellAt int64 `json:"last_auto_sell_at"`

	// Extra carries persisted fields this build does not know about so they
	// survive a load/save round trip.
	Extra map[string]json.RawMessage `json:"-"`
}

// Clone returns a deep copy of the state. Nil collections stay nil.
func (s *State) Clone() *State {
	out := *s

	if s.GrowSlots != nil {
		out.GrowSlots = make([]GrowSlot, len(s.GrowSlots))
		for i, slot := range s.GrowSlots {
			if slot.Seed != nil {
				seed := slot.Seed.CopyWithID(slot.Seed.ID)
				slot.Seed = &seed
			}
			if slot.Fertilizer != nil {
				f := *slot.Fertilizer
				slot.Fertilizer = &f
			}
			out.GrowSlots[i] = slot
		}
	}

	if s.DryingRacks != nil {
		out.DryingRacks = make([]DryingRack, len(s.DryingRacks))
		for i, rack := range s.DryingRacks {
			if rack.Bud != nil {
				b := *rack.Bud
				rack.Bud = &b
			}
			out.DryingRacks[i] = rack
		}
	}

	if s.Seeds != nil {
		out.Seeds = make([]Seed, len(s.Seeds))
		for i, seed := range s.Seeds {
			out.Seeds[i] = seed.CopyWithID(seed.ID)
		}
	}

	if s.Workers != nil {
		out.Workers = make([]Worker, len(s.Workers))
		for i, w := range s.Workers {
			if w.Abilities != nil {
				w.Abilities = append(make([]Ability, 0, len(w.Abilities)), w.Abilities...)
			}
			out.Workers[i] = w
		}
	}

	out.Inventory = cloneSlice(s.Inventory)
	out.Fertilizers = cloneSlice(s.Fertilizers)
	out.Soils = cloneSlice(s.Soils)
	out.SalesChannels = cloneSlice(s.SalesChannels)
	out.DealerActivities = cloneSlice(s.DealerActivities)
	out.SalesWindow = cloneSlice(s.SalesWindow)

	out.DrugEffects = cloneMap(s.DrugEffects)
	out.Upgrades = cloneMap(s.Upgrades)
	out.DiscoveredSeeds = cloneMap(s.DiscoveredSeeds)
	if s.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}

func cloneMap[M ~map[K]V, K comparable, V any](in M) M {
	if in == nil {
		return nil
	}
	out := make(M, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Slot returns the grow slot with the given index
func (s *State) Slot(index int) (*GrowSlot, bool) {
	if index < 0 || index >= len(s.GrowSlots) {
		return nil, false
	}
	return &s.GrowSlots[index], true
}

// Rack returns the drying rack with the given index
func (s *State) Rack(index int) (*DryingRack, bool) {
	if index < 0 || index >= len(s.DryingRacks) {
		return nil, false
	}
	return &s.DryingRacks[index], true
}

// Channel returns the sales channel with the given id
func (s *State) Channel(id string) (*SalesChannel, bool) {
	for i := range s.SalesChannels {
		if s.SalesChannels[i].ID == id {
			return &s.SalesChannels[i], true
		}
	}
	return nil, false
}

// Worker returns the worker with the given id
func (s *State) Worker(id string) (*Worker, bool) {
	for i := range s.Workers {
		if s.Workers[i].ID == id {
			return &s.Workers[i], true
		}
	}
	return nil, false
}

// UnlockedRacks counts racks the player has unlocked
func (s *State) UnlockedRacks() int {
	n := 0
	for _, r := range s.DryingRacks {
		if r.Unlocked {
			n++
		}
	}
	return n
}

// AppendActivity adds a narrative entry, keeping only the newest MaxDealerActivities
func (s *State) AppendActivity(a DealerActivity) {
	s.DealerActivities = append(s.DealerActivities, a)
	if over := len(s.DealerActivities) - MaxDealerActivities; over > 0 {
		s.DealerActivities = append([]DealerActivity(nil), s.DealerActivities[over:]...)
	}
}
