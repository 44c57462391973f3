package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/grow"
	"github.com/hypez33/grow-lab-zen-sub000/internal/sales"
	"github.com/hypez33/grow-lab-zen-sub000/internal/testing/rngtest"
)

const testNow = int64(1_700_000_000_000)

func newTestEngine(t *testing.T) (*Engine, *domain.State) {
	t.Helper()
	e := NewEngine(catalog.MustDefault(), rngtest.Fixed{F: 0.5}, nil, nil)
	return e, e.NewState(testNow)
}

func TestApplyTick_DoesNotMutateInput(t *testing.T) {
	e, st := newTestEngine(t)
	st, res := e.Plant(st, 0, st.Seeds[0].ID)
	require.True(t, res.Success, res.Reason)

	before := st.Clone()
	next, _ := e.ApplyTick(context.Background(), st, 10, testNow+10_000)

	assert.Equal(t, before, st)
	assert.Greater(t, next.GrowSlots[0].Progress, st.GrowSlots[0].Progress)
	assert.Equal(t, testNow+10_000, next.LastActive)
}

func TestApplyTick_NegativeDeltaIsNoop(t *testing.T) {
	e, st := newTestEngine(t)
	st, _ = e.Plant(st, 0, st.Seeds[0].ID)

	next, rep := e.ApplyTick(context.Background(), st, -5, testNow)
	assert.Equal(t, st.GrowSlots, next.GrowSlots)
	assert.Zero(t, rep.Harvested)
	assert.Empty(t, rep.AutoSales)
}

func TestGrowDrySellLoop(t *testing.T) {
	ctx := context.Background()
	e, st := newTestEngine(t)

	st, res := e.Plant(st, 0, st.Seeds[0].ID)
	require.True(t, res.Success, res.Reason)
	assert.Empty(t, st.Seeds)

	st.GrowSlots[0].Progress = 100
	st.GrowSlots[0].Stage = domain.StageHarvest
	st, res = e.Harvest(st, 0)
	require.True(t, res.Success, res.Reason)
	harvest, ok := res.Data.(*grow.HarvestResult)
	require.True(t, ok)
	require.Len(t, st.Inventory, 1)
	assert.Equal(t, domain.BudWet, st.Inventory[0].State)

	budID := st.Inventory[0].ID
	st, res = e.StartDrying(st, 0, budID)
	require.True(t, res.Success, res.Reason)
	assert.Empty(t, st.Inventory)

	// half-dried rack cannot be collected yet
	st, _ = e.ApplyTick(ctx, st, 40, testNow+40_000)
	_, res = e.CollectRack(st, 0)
	assert.False(t, res.Success)

	st, _ = e.ApplyTick(ctx, st, 40, testNow+80_000)
	st, res = e.CollectRack(st, 0)
	require.True(t, res.Success, res.Reason)
	require.Len(t, st.Inventory, 1)
	assert.Equal(t, domain.BudDried, st.Inventory[0].State)

	coins := st.Coins
	grams := harvest.Bud.Grams
	st, res = e.Sell(st, budID, "street", grams, testNow+90_000)
	require.True(t, res.Success, res.Reason)
	sale, ok := res.Data.(*sales.SaleResult)
	require.True(t, ok)
	assert.True(t, sale.Removed)
	assert.Positive(t, sale.Revenue)
	assert.Equal(t, coins+sale.Revenue, st.Coins)
	assert.Empty(t, st.Inventory)
	assert.Equal(t, grams, st.TotalGramsSold)

	// street cooldown is one minute
	_, res = e.Sell(st, budID, "street", 1, testNow+100_000)
	assert.False(t, res.Success)
}

func TestRejectedActionsLeaveStateUnchanged(t *testing.T) {
	e, st := newTestEngine(t)
	st.Coins = 5
	before := st.Clone()

	cases := []struct {
		name string
		run  func(*domain.State) (*domain.State, domain.ActionResult)
		err  error
	}{
		{"buy seed without coins", func(s *domain.State) (*domain.State, domain.ActionResult) { return e.BuySeed(s, "white_widow") }, domain.ErrInsufficientFunds},
		{"unknown seed", func(s *domain.State) (*domain.State, domain.ActionResult) { return e.BuySeed(s, "nope") }, domain.ErrSeedNotFound},
		{"unknown fertilizer", func(s *domain.State) (*domain.State, domain.ActionResult) { return e.BuyFertilizer(s, "nope") }, domain.ErrFertilizerNotFound},
		{"fertilizer without coins", func(s *domain.State) (*domain.State, domain.ActionResult) { return e.BuyFertilizer(s, "compost") }, domain.ErrInsufficientFunds},
		{"unknown soil", func(s *domain.State) (*domain.State, domain.ActionResult) { return e.BuySoil(s, "nope") }, domain.ErrSoilNotFound},
		{"unknown upgrade", func(s *domain.State) (*domain.State, domain.ActionResult) { return e.BuyUpgrade(s, "nope") }, domain.ErrUpgradeNotFound},
		{"upgrade without coins", func(s *domain.State) (*domain.State, domain.ActionResult) { return e.BuyUpgrade(s, domain.UpgradeGrowthSpeed) }, domain.ErrInsufficientFunds},
		{"unlock slot without coins", e.UnlockSlot, domain.ErrInsufficientFunds},
		{"unlock rack without coins", e.UnlockRack, domain.ErrInsufficientFunds},
		{"unlock street again", func(s *domain.State) (*domain.State, domain.ActionResult) { return e.UnlockChannel(s, "street") }, domain.ErrAlreadyUnlocked},
		{"unknown channel", func(s *domain.State) (*domain.State, domain.ActionResult) { return e.UnlockChannel(s, "moon") }, domain.ErrChannelNotFound},
		{"auto-sell quality out of range", func(s *domain.State) (*domain.State, domain.ActionResult) {
			return e.SetAutoSell(s, domain.AutoSellSettings{Enabled: true, MinQuality: 101})
		}, domain.ErrInvalidInput},
		{"auto-sell unknown channel", func(s *domain.State) (*domain.State, domain.ActionResult) {
			return e.SetAutoSell(s, domain.AutoSellSettings{Enabled: true, Channel: "moon"})
		}, domain.ErrChannelNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, res := tc.run(st)
			assert.False(t, res.Success)
			assert.Contains(t, res.Reason, tc.err.Error())
			assert.Same(t, st, got)
			assert.Equal(t, before, st)
		})
	}
}

func TestShop_Purchases(t *testing.T) {
	e, st := newTestEngine(t)
	st.Coins = 1000

	st, res := e.BuySeed(st, "white_widow")
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, 990, st.Coins)
	assert.Len(t, st.Seeds, 2)
	assert.NotEqual(t, st.Seeds[0].ID, st.Seeds[1].ID)

	st, res = e.BuyFertilizer(st, "compost")
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, 965, st.Coins)
	assert.Len(t, st.Fertilizers, 1)

	st, res = e.UnlockSlot(st)
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, 785, st.Coins)
	assert.True(t, st.GrowSlots[2].Unlocked)

	st, res = e.UnlockRack(st)
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, 635, st.Coins)
	assert.Equal(t, 2, st.UnlockedRacks())

	st, res = e.BuyUpgrade(st, domain.UpgradeGrowthSpeed)
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, 585, st.Coins)
	assert.Equal(t, 1, st.Upgrades.Level(domain.UpgradeGrowthSpeed))

	st, res = e.BuyUpgrade(st, domain.UpgradeGrowthSpeed)
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, 510, st.Coins)
}

func TestBuyUpgrade_SpendsTrackCurrency(t *testing.T) {
	e, st := newTestEngine(t)
	st.Coins = 0
	st.Gems = 6
	st.SkillPoints = 1

	st, res := e.BuyUpgrade(st, domain.UpgradeQualityCure)
	require.True(t, res.Success, res.Reason)
	assert.Zero(t, st.SkillPoints)
	assert.Equal(t, 1, st.Upgrades.Level(domain.UpgradeQualityCure))

	_, res = e.BuyUpgrade(st, domain.UpgradeQualityCure)
	assert.False(t, res.Success)
	assert.Contains(t, res.Reason, domain.ErrInsufficientFunds.Error())

	st, res = e.BuyUpgrade(st, domain.UpgradeUVLight)
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, 1, st.Gems)
	assert.Equal(t, 1, st.Upgrades.Level(domain.UpgradeUVLight))

	before := st.Clone()
	next, res := e.BuyUpgrade(st, domain.UpgradeUVLight)
	assert.False(t, res.Success)
	assert.Contains(t, res.Reason, domain.ErrInsufficientGems.Error())
	assert.Equal(t, before, next)
}

func TestUnlockSlot_AllUnlocked(t *testing.T) {
	e, st := newTestEngine(t)
	for i := range st.GrowSlots {
		st.GrowSlots[i].Unlocked = true
	}
	st.Coins = 1_000_000

	_, res := e.UnlockSlot(st)
	assert.False(t, res.Success)
	assert.Contains(t, res.Reason, domain.ErrMaxReached.Error())
}

func TestSetAutoSell_DefaultsToAuto(t *testing.T) {
	e, st := newTestEngine(t)

	next, res := e.SetAutoSell(st, domain.AutoSellSettings{Enabled: true, MinQuality: 40})
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, domain.AutoSellChannelAuto, next.AutoSell.Channel)
	assert.Equal(t, 40, next.AutoSell.MinQuality)
	assert.False(t, st.AutoSell.Enabled)
}

func TestToggleWorkerPause(t *testing.T) {
	e, st := newTestEngine(t)
	st.Coins = 1000

	st, res := e.BuyWorker(st, "gardener")
	require.True(t, res.Success, res.Reason)

	st, res = e.ToggleWorkerPause(st, "gardener")
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, map[string]bool{"paused": true}, res.Data)

	_, res = e.ToggleWorkerPause(st, "gardener")
	assert.Equal(t, map[string]bool{"paused": false}, res.Data)
}
