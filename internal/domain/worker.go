package domain

// Ability is one automated action a worker can perform
type Ability string

const (
	AbilityPlant   Ability = "plant"
	AbilityTap     Ability = "tap"
	AbilityHarvest Ability = "harvest"
	AbilityDry     Ability = "dry"
	AbilitySell    Ability = "sell"
	AbilityWater   Ability = "water"
)

// Archetype selects a worker's dealer behaviour profile
type Archetype string

const (
	ArchetypeRunner   Archetype = "runner"
	ArchetypeGangster Archetype = "gangster"
	ArchetypeCartel   Archetype = "cartel"
)

// WorkerCost is paid in coins and/or grams of dried product
type WorkerCost struct {
	Coins int `json:"coins"`
	Grams int `json:"grams"`
}

// Worker is an automated unit that manages slots, racks and sales
type Worker struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Archetype    Archetype  `json:"archetype"`
	Cost         WorkerCost `json:"cost"`
	Owned        bool       `json:"owned"`
	Paused       bool       `json:"paused"`
	Level        int        `json:"level"`
	MaxLevel     int        `json:"max_level"`
	SlotsManaged int        `json:"slots_managed"`
	Abilities    []Ability  `json:"abilities"`
}

// Active reports whether the scheduler should run this worker
func (w Worker) Active() bool {
	return w.Owned && !w.Paused
}

// Can reports whether the worker has the given ability
func (w Worker) Can(a Ability) bool {
	for _, have := range w.Abilities {
		if have == a {
			return true
		}
	}
	return false
}

// Capacity is the per-tick bound on how many targets each ability touches
func (w Worker) Capacity() int {
	c := w.SlotsManaged + w.Level - 1
	if c < 1 {
		return 1
	}
	return c
}
