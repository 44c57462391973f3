package automation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/dealer"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/drying"
	"github.com/hypez33/grow-lab-zen-sub000/internal/grow"
	"github.com/hypez33/grow-lab-zen-sub000/internal/sales"
	"github.com/hypez33/grow-lab-zen-sub000/internal/territory"
	"github.com/hypez33/grow-lab-zen-sub000/internal/testing/rngtest"
)

const now = int64(1_700_000_000_000)

func newScheduler(cat *catalog.Catalog, rng domain.Rand) *Engine {
	s := sales.NewEngine(territory.Fixed(1))
	return NewEngine(grow.NewEngine(cat, rng), drying.NewEngine(rng), dealer.NewEngine(s, nil, rng))
}

func readySlot(st *domain.State, cat *catalog.Catalog, i int) {
	tmpl, _ := cat.SeedTemplate("white_widow")
	seed := tmpl.NewSeed()
	st.GrowSlots[i].Unlocked = true
	st.GrowSlots[i].Seed = &seed
	st.GrowSlots[i].Progress = 100
	st.GrowSlots[i].Stage = domain.StageHarvest
}

func ownedWorker(id string, level, slots int, abilities ...domain.Ability) domain.Worker {
	return domain.Worker{
		ID: id, Name: id, Archetype: domain.ArchetypeRunner, Owned: true,
		Level: level, MaxLevel: 5, SlotsManaged: slots, Abilities: abilities,
	}
}

func TestTick_HarvestAndDryScenario(t *testing.T) {
	cat := catalog.MustDefault()
	st := cat.NewState(now)
	st.Seeds = nil
	for i := 0; i < 3; i++ {
		readySlot(st, cat, i)
	}
	st.Workers = []domain.Worker{ownedWorker("curer", 1, 3, domain.AbilityHarvest, domain.AbilityDry)}
	e := newScheduler(cat, rngtest.Fixed{F: 0.99})

	rep := e.Tick(context.Background(), st, now)

	assert.Equal(t, 3, rep.Harvested)
	assert.Equal(t, 1, rep.Drying)
	assert.Equal(t, 1, drying.OccupiedRacks(st))
	require.Len(t, st.Inventory, 2)
	for _, b := range st.Inventory {
		assert.Equal(t, domain.BudWet, b.State)
	}
	for i := 0; i < 3; i++ {
		assert.Nil(t, st.GrowSlots[i].Seed)
	}
}

func TestTick_CapacityBoundsHarvest(t *testing.T) {
	cat := catalog.MustDefault()
	st := cat.NewState(now)
	for i := 0; i < 4; i++ {
		readySlot(st, cat, i)
	}
	st.Workers = []domain.Worker{ownedWorker("planter", 2, 1, domain.AbilityHarvest)}
	e := newScheduler(cat, rngtest.Fixed{F: 0.99})

	rep := e.Tick(context.Background(), st, now)

	// capacity = slots 1 + level 2 - 1
	assert.Equal(t, 2, rep.Harvested)
	assert.Len(t, st.Inventory, 2)
	assert.True(t, st.GrowSlots[2].Ready())
}

func TestTick_HarvestThenPlantSameTick(t *testing.T) {
	cat := catalog.MustDefault()
	st := cat.NewState(now)
	readySlot(st, cat, 0)
	st.Workers = []domain.Worker{ownedWorker("planter", 1, 2, domain.AbilityPlant, domain.AbilityHarvest)}
	e := newScheduler(cat, rngtest.Fixed{F: 0.99})

	rep := e.Tick(context.Background(), st, now)

	assert.Equal(t, 1, rep.Harvested)
	assert.Equal(t, 1, rep.Planted)
	require.NotNil(t, st.GrowSlots[0].Seed)
	assert.Equal(t, domain.StageSeed, st.GrowSlots[0].Stage)
	assert.Empty(t, st.Seeds)
}

func TestTick_TapAndWater(t *testing.T) {
	cat := catalog.MustDefault()
	st := cat.NewState(now)
	e := newScheduler(cat, rngtest.Fixed{F: 0.99})
	for i := 0; i < 2; i++ {
		tmpl, _ := cat.SeedTemplate("blue_dream")
		seed := tmpl.NewSeed()
		st.GrowSlots[i].Seed = &seed
	}
	st.GrowSlots[0].WaterLevel = 10
	st.GrowSlots[1].WaterLevel = 50
	st.Workers = []domain.Worker{ownedWorker("gardener", 1, 2, domain.AbilityWater, domain.AbilityTap)}

	rep := e.Tick(context.Background(), st, now)

	assert.Equal(t, 2, rep.Tapped)
	assert.Equal(t, 1, rep.Watered)
	assert.Equal(t, grow.TapProgress, st.GrowSlots[0].Progress)
	assert.Equal(t, domain.MaxWaterLevel, st.GrowSlots[0].WaterLevel)
	assert.Equal(t, 50.0, st.GrowSlots[1].WaterLevel)
}

func TestTick_SkipsPausedAndUnowned(t *testing.T) {
	cat := catalog.MustDefault()
	st := cat.NewState(now)
	readySlot(st, cat, 0)
	paused := ownedWorker("a", 1, 3, domain.AbilityHarvest)
	paused.Paused = true
	unowned := ownedWorker("b", 1, 3, domain.AbilityHarvest)
	unowned.Owned = false
	st.Workers = []domain.Worker{paused, unowned}
	e := newScheduler(cat, rngtest.Fixed{F: 0.99})

	rep := e.Tick(context.Background(), st, now)

	assert.Zero(t, rep.Harvested)
	assert.True(t, st.GrowSlots[0].Ready())
}

func TestTick_SellerLogsActivity(t *testing.T) {
	cat := catalog.MustDefault()
	st := cat.NewState(now)
	st.Inventory = []domain.BudItem{{ID: "b", Strain: "x", Grams: 10, Quality: 50, State: domain.BudDried, DryingProgress: 100}}
	st.Workers = []domain.Worker{ownedWorker("runner", 1, 1, domain.AbilitySell)}
	e := newScheduler(cat, rngtest.Fixed{F: 0.99})

	rep := e.Tick(context.Background(), st, now)

	require.Len(t, rep.Activities, 1)
	assert.Equal(t, domain.OutcomeSale, rep.Activities[0].Kind)
	assert.Len(t, st.DealerActivities, 1)
	assert.Less(t, st.Inventory[0].Grams, 10)
}

func TestWaterThreshold(t *testing.T) {
	assert.Equal(t, 35.0, WaterThreshold(1))
	assert.Equal(t, 55.0, WaterThreshold(5))
	assert.Equal(t, MaxWaterThreshold, WaterThreshold(20))
}
