package persistence

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

func TestExportImport_RoundTrip(t *testing.T) {
	c, cat := newTestCodec()
	ctx := context.Background()

	st := cat.NewState(1000)
	st.Coins = 4321
	st.Upgrades[domain.UpgradeTrim] = 3
	st.Inventory = append(st.Inventory, domain.BudItem{
		ID: "b1", Strain: "gelato", Rarity: domain.RarityEpic, Grams: 7, Quality: 88, State: domain.BudDried, DryingProgress: 100,
	})

	text, err := c.Export(st)
	require.NoError(t, err)
	assert.NotEmpty(t, text)

	got, err := c.Import(ctx, text)
	require.NoError(t, err)

	assert.Equal(t, 4321, got.Coins)
	assert.Equal(t, 3, got.Upgrades.Level(domain.UpgradeTrim))
	require.Len(t, got.Inventory, 1)
	assert.Equal(t, st.Inventory[0], got.Inventory[0])
	assert.Equal(t, st.Seeds, got.Seeds)
}

func TestExportImport_RestoresSeedsAndSlots(t *testing.T) {
	c, cat := newTestCodec()
	ctx := context.Background()

	st := cat.NewState(1000)
	for _, id := range []string{"og_kush", "blue_dream"} {
		tmpl, ok := cat.SeedTemplate(id)
		require.True(t, ok)
		st.Seeds = append(st.Seeds, tmpl.NewSeed())
	}
	planted := st.Seeds[0].CopyWithID("planted")
	st.GrowSlots[0].Seed = &planted
	st.GrowSlots[0].Progress = 42

	text, err := c.Export(st)
	require.NoError(t, err)
	got, err := c.Import(ctx, text)
	require.NoError(t, err)

	assert.Equal(t, st.Seeds, got.Seeds)
	require.NotNil(t, got.GrowSlots[0].Seed)
	assert.Equal(t, planted, *got.GrowSlots[0].Seed)
	assert.Equal(t, 42.0, got.GrowSlots[0].Progress)
}

func TestImport_RejectsCorruptInput(t *testing.T) {
	c, _ := newTestCodec()
	ctx := context.Background()

	enc, _, err := codecs()
	require.NoError(t, err)
	pack := func(s string) string {
		return base64.StdEncoding.EncodeToString(enc.EncodeAll([]byte(s), nil))
	}

	tests := []struct {
		name string
		text string
	}{
		{"not base64", "%%%"},
		{"not zstd", base64.StdEncoding.EncodeToString([]byte("plain text"))},
		{"not json", pack("nope")},
		{"array", pack("[1,2]")},
		{"no known fields", pack(`{"hello": "world"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := c.Import(ctx, tt.text)
			assert.ErrorIs(t, err, domain.ErrCorruptSave)
			assert.Nil(t, st)
		})
	}
}
