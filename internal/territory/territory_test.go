package territory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

func TestFixed(t *testing.T) {
	assert.Equal(t, 1.0, Fixed(0.5).Multiplier(domain.CommodityBud))
	assert.Equal(t, 1.3, Fixed(1.3).Multiplier(domain.CommodityBud))
}

func TestLedger_Multiplier(t *testing.T) {
	l, err := NewLedger(
		Bonus{ID: "docks", Commodity: domain.CommodityBud, Multiplier: 1.2, Active: true},
		Bonus{ID: "downtown", Commodity: domain.CommodityAll, Multiplier: 1.5, Active: true},
		Bonus{ID: "airport", Commodity: "pills", Multiplier: 2, Active: true},
		Bonus{ID: "harbor", Commodity: domain.CommodityBud, Multiplier: 3, Active: false},
	)
	require.NoError(t, err)

	assert.InDelta(t, 1.8, l.Multiplier(domain.CommodityBud), 0.0001)
	assert.InDelta(t, 3.0, l.Multiplier("pills"), 0.0001)
	assert.InDelta(t, 1.5, l.Multiplier("other"), 0.0001)

	require.True(t, l.SetActive("harbor", true))
	assert.InDelta(t, 5.4, l.Multiplier(domain.CommodityBud), 0.0001)

	l.Revoke("downtown")
	assert.InDelta(t, 3.6, l.Multiplier(domain.CommodityBud), 0.0001)
	assert.False(t, l.SetActive("missing", true))
	assert.Len(t, l.Bonuses(), 3)
}

func TestNewLedger_RejectsInvalidBonus(t *testing.T) {
	l, err := NewLedger(
		Bonus{ID: "docks", Commodity: domain.CommodityBud, Multiplier: 1.2, Active: true},
		Bonus{ID: "cursed", Commodity: domain.CommodityBud, Multiplier: 0.5, Active: true},
	)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, "cursed")
	assert.Nil(t, l)
}

func TestLedger_GrantValidation(t *testing.T) {
	l, err := NewLedger()
	require.NoError(t, err)
	assert.ErrorIs(t, l.Grant(Bonus{ID: "x", Commodity: "bud", Multiplier: 0.9}), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.Grant(Bonus{Commodity: "bud", Multiplier: 1.1}), domain.ErrInvalidInput)
	assert.Equal(t, 1.0, l.Multiplier(domain.CommodityBud))
}

func TestLedger_ConcurrentAccess(t *testing.T) {
	l, err := NewLedger()
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = l.Grant(Bonus{ID: "a", Commodity: domain.CommodityAll, Multiplier: 1.1, Active: true})
		}()
		go func() {
			defer wg.Done()
			_ = l.Multiplier(domain.CommodityBud)
		}()
	}
	wg.Wait()
	assert.InDelta(t, 1.1, l.Multiplier(domain.CommodityBud), 0.0001)
}
