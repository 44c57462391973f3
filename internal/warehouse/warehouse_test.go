package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

func TestBulkSell_FIFOAndAverageQuality(t *testing.T) {
	s := NewStock(
		Lot{Commodity: domain.CommodityBud, Grams: 10, Quality: 40},
		Lot{Commodity: "pills", Grams: 50, Quality: 90},
		Lot{Commodity: domain.CommodityBud, Grams: 10, Quality: 80},
	)

	res := s.BulkSell(domain.CommodityBud, 15, false)

	assert.Equal(t, 15, res.GramsSold)
	// (10*40 + 5*80) / 15
	assert.Equal(t, 53, res.AvgQuality)
	assert.Equal(t, 5, s.Grams(domain.CommodityBud))
	assert.Equal(t, 50, s.Grams("pills"))
}

func TestBulkSell_SimulateDoesNotMutate(t *testing.T) {
	s := NewStock(Lot{Commodity: domain.CommodityBud, Grams: 8, Quality: 60})

	res := s.BulkSell(domain.CommodityBud, 20, true)

	assert.Equal(t, Result{GramsSold: 8, AvgQuality: 60}, res)
	assert.Equal(t, 8, s.Grams(domain.CommodityBud))
}

func TestBulkSell_EmptyOrInvalid(t *testing.T) {
	s := NewStock(Lot{Commodity: domain.CommodityBud, Grams: 0, Quality: 60})

	assert.Equal(t, Result{}, s.BulkSell(domain.CommodityBud, 5, false))
	assert.Equal(t, Result{}, s.BulkSell(domain.CommodityBud, 0, false))
	assert.Equal(t, Result{}, s.BulkSell(domain.CommodityBud, -3, false))
}
