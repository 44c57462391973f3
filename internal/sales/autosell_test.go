package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/territory"
)

func autoState(buds ...domain.BudItem) *domain.State {
	st := newSalesState(buds...)
	street := friends()
	street.ID, street.PricePerGram, street.MinQuality, street.MinLevel, street.MaxGramsPerSale = "street", 4, 0, 1, 10
	st.SalesChannels = append(st.SalesChannels, street)
	st.AutoSell = domain.AutoSellSettings{Enabled: true, Channel: domain.AutoSellChannelAuto}
	return st
}

func TestAutoSell_MinQuality100SellsNothing(t *testing.T) {
	st := autoState(driedBud("a", 10, 99), driedBud("b", 5, 80))
	st.AutoSell.MinQuality = 100
	e := NewEngine(territory.Fixed(1))

	sold := e.AutoSell(st, start)

	assert.Empty(t, sold)
	assert.Len(t, st.Inventory, 2)
	assert.Equal(t, 0, st.Coins)
}

func TestAutoSell_LowestQualityThenGramsFirst(t *testing.T) {
	st := autoState(driedBud("hi", 5, 90), driedBud("low-big", 9, 40), driedBud("low-small", 3, 40))
	e := NewEngine(territory.Fixed(1))

	sold := e.AutoSell(st, start)

	// friends pays best and takes the first candidate, street takes the next
	require.Len(t, sold, 2)
	assert.Equal(t, "low-small", sold[0].BudID)
	assert.Equal(t, "friends", sold[0].ChannelID)
	assert.Equal(t, "low-big", sold[1].BudID)
	assert.Equal(t, "street", sold[1].ChannelID)
	require.Len(t, st.Inventory, 1)
	assert.Equal(t, "hi", st.Inventory[0].ID)
}

func TestAutoSell_PinnedChannel(t *testing.T) {
	st := autoState(driedBud("a", 25, 50))
	st.AutoSell.Channel = "street"
	e := NewEngine(territory.Fixed(1))

	sold := e.AutoSell(st, start)

	require.Len(t, sold, 1)
	assert.Equal(t, "street", sold[0].ChannelID)
	assert.Equal(t, 10, sold[0].Grams)
	assert.Equal(t, 15, st.Inventory[0].Grams)
}

func TestAutoSell_OncePerSecond(t *testing.T) {
	st := autoState(driedBud("a", 5, 50), driedBud("b", 5, 50), driedBud("c", 5, 50))
	e := NewEngine(territory.Fixed(1))

	assert.Len(t, e.AutoSell(st, start), 2)
	st.SalesChannels[0].LastSaleTime = 0
	st.SalesChannels[1].LastSaleTime = 0
	assert.Empty(t, e.AutoSell(st, start+500))
	assert.Len(t, e.AutoSell(st, start+1000), 1)
}

func TestAutoSell_NearlyFullGate(t *testing.T) {
	st := autoState(driedBud("a", 5, 50))
	st.AutoSell.OnlyWhenNearlyFull = true
	st.DryingRacks = []domain.DryingRack{
		{Index: 0, Unlocked: true, Bud: &domain.BudItem{ID: "r0", Grams: 1, State: domain.BudDrying}},
		{Index: 1, Unlocked: true},
		{Index: 2, Unlocked: false},
	}
	e := NewEngine(territory.Fixed(1))

	assert.False(t, NearlyFull(st))
	assert.Empty(t, e.AutoSell(st, start))

	st.DryingRacks[1].Bud = &domain.BudItem{ID: "r1", Grams: 1, State: domain.BudDrying}
	assert.True(t, NearlyFull(st))
	assert.Len(t, e.AutoSell(st, start+1000), 1)
}

func TestAutoSell_Disabled(t *testing.T) {
	st := autoState(driedBud("a", 5, 50))
	st.AutoSell.Enabled = false
	e := NewEngine(territory.Fixed(1))

	assert.Nil(t, e.AutoSell(st, start))
	assert.Zero(t, st.LastAutoSellAt)
}
