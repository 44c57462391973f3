package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/validation"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Seeds)
	assert.NotEmpty(t, c.Channels)
	assert.NotEmpty(t, c.Workers)

	byRarity := c.TemplatesByRarity()
	for _, r := range domain.AllRarities {
		assert.NotEmpty(t, byRarity[r], "every tier should have at least one seed: %s", r)
	}
}

func TestParseRejectsInvalidCatalog(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "seeds: [::"},
		{"no seeds", "start: {coins: 1, slots_unlocked: 1, racks_unlocked: 1}\nslots: {max: 1, unlock_cost_growth: 1}\nracks: {max: 1, unlock_cost_growth: 1}\nchannels: [{id: a, name: a, price_per_gram: 1, max_grams_per_sale: 1}]"},
		{"bad rarity", `
start: {coins: 1, slots_unlocked: 1, racks_unlocked: 1}
slots: {max: 1, unlock_cost_growth: 1}
racks: {max: 1, unlock_cost_growth: 1}
seeds: [{id: a, name: a, rarity: mythic, base_yield: 1, growth_speed: 1}]
channels: [{id: a, name: a, price_per_gram: 1, max_grams_per_sale: 1}]`},
		{"unknown starter seed", `
start: {coins: 1, slots_unlocked: 1, racks_unlocked: 1, starter_seeds: [nope]}
slots: {max: 1, unlock_cost_growth: 1}
racks: {max: 1, unlock_cost_growth: 1}
seeds: [{id: a, name: a, rarity: common, base_yield: 1, growth_speed: 1}]
channels: [{id: a, name: a, price_per_gram: 1, max_grams_per_sale: 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

const minimalCatalog = `
start: {coins: 1, slots_unlocked: 1, racks_unlocked: 1}
slots: {max: 1, unlock_cost_growth: 1}
racks: {max: 1, unlock_cost_growth: 1}
seeds: [{id: a, name: a, rarity: common, base_yield: 1, growth_speed: 1}]
channels: [{id: a, name: a, price_per_gram: 1, max_grams_per_sale: 1}]
`

func TestParseMinimalCatalog(t *testing.T) {
	c, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)
	assert.Len(t, c.Seeds, 1)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		location string
	}{
		{"top level", minimalCatalog + "sead_bank: []\n", "(root)"},
		{"seed field", strings.Replace(minimalCatalog, "base_yield: 1", "base_yeild: 1", 1), "/seeds/0"},
		{"channel field", strings.Replace(minimalCatalog, "price_per_gram", "price_gram", 1), "/channels/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, validation.ErrSchemaViolation)
			assert.Contains(t, err.Error(), tt.location)
		})
	}
}

func TestNewSeedCopiesTemplate(t *testing.T) {
	c := MustDefault()
	tmpl, ok := c.SeedTemplate("white_widow")
	require.True(t, ok)

	a := tmpl.NewSeed()
	b := tmpl.NewSeed()

	assert.NotEqual(t, a.ID, b.ID, "each instance gets a fresh identity")
	assert.Equal(t, "white_widow", a.TemplateID)
	assert.Equal(t, domain.RarityCommon, a.Rarity)
	require.NotNil(t, a.YieldRange)
	assert.Equal(t, 8, a.YieldRange.Min)
	assert.Equal(t, 12, a.YieldRange.Max)
	assert.Nil(t, a.Traits, "traitless templates carry no trait slice")

	og, ok := c.SeedTemplate("og_kush")
	require.True(t, ok)
	assert.Equal(t, []domain.Trait{domain.TraitLucky, domain.TraitFrost}, og.NewSeed().Traits)
}

func TestNewState(t *testing.T) {
	c := MustDefault()
	st := c.NewState(1000)

	assert.Equal(t, 1, st.Level)
	assert.Equal(t, c.Start.Coins, st.Coins)
	assert.Len(t, st.GrowSlots, c.Slots.Max)
	assert.Len(t, st.DryingRacks, c.Racks.Max)
	assert.True(t, st.GrowSlots[0].Unlocked)
	assert.False(t, st.GrowSlots[c.Slots.Max-1].Unlocked)
	assert.Equal(t, domain.BasicSoilID, st.GrowSlots[0].Soil.ID)
	assert.Equal(t, 1, st.UnlockedRacks())
	assert.Len(t, st.Seeds, len(c.Start.StarterSeeds))

	street, ok := st.Channel("street")
	require.True(t, ok)
	assert.True(t, street.Unlocked, "free channels start unlocked")

	for _, w := range st.Workers {
		assert.False(t, w.Owned)
		assert.Equal(t, 1, w.Level)
	}
}

func TestDefaultUpgradeCurrencies(t *testing.T) {
	cat := MustDefault()

	cure, ok := cat.Upgrade(domain.UpgradeQualityCure)
	require.True(t, ok)
	assert.Equal(t, domain.CurrencySkillPoints, cure.PaidIn())

	uv, ok := cat.Upgrade(domain.UpgradeUVLight)
	require.True(t, ok)
	assert.Equal(t, domain.CurrencyGems, uv.PaidIn())

	growth, ok := cat.Upgrade(domain.UpgradeGrowthSpeed)
	require.True(t, ok)
	assert.Equal(t, domain.CurrencyCoins, growth.PaidIn())
}

func TestCosts(t *testing.T) {
	up := UpgradeTemplate{BaseCost: 100, CostGrowth: 1.5}
	assert.Equal(t, 100, up.Cost(0))
	assert.Equal(t, 150, up.Cost(1))
	assert.Equal(t, 225, up.Cost(2))

	assert.Equal(t, domain.CurrencyCoins, up.PaidIn())

	slots := UnlockSettings{UnlockBaseCost: 100, UnlockCostGrowth: 2}
	assert.Equal(t, 100, slots.UnlockCost(1))
	assert.Equal(t, 400, slots.UnlockCost(3))
}
