package sales

import (
	"sort"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/drying"
)

// AutoSell runs one auto-sell pass. It is a no-op when disabled, when the
// previous pass was less than a second ago, or when the nearly-full gate
// is configured and not met.
func (e *Engine) AutoSell(st *domain.State, now int64) []SaleResult {
	cfg := st.AutoSell
	if !cfg.Enabled {
		return nil
	}
	if st.LastAutoSellAt > 0 && now-st.LastAutoSellAt < AutoSellIntervalMills {
		return nil
	}
	st.LastAutoSellAt = now
	if cfg.OnlyWhenNearlyFull && !NearlyFull(st) {
		return nil
	}

	candidates := make([]domain.BudItem, 0, len(st.Inventory))
	for _, b := range st.Inventory {
		if b.State == domain.BudDried && b.Quality >= cfg.MinQuality && b.Grams > 0 {
			candidates = append(candidates, b)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Quality != candidates[j].Quality {
			return candidates[i].Quality < candidates[j].Quality
		}
		return candidates[i].Grams < candidates[j].Grams
	})

	var sold []SaleResult
	for _, b := range candidates {
		ch := e.pickChannel(st, cfg.Channel, b.Quality, now)
		if ch == nil {
			continue
		}
		res, err := e.Sell(st, b.ID, ch.ID, min(b.Grams, ch.MaxGramsPerSale), now)
		if err != nil {
			continue
		}
		sold = append(sold, *res)
	}
	return sold
}

func (e *Engine) pickChannel(st *domain.State, pinned string, quality int, now int64) *domain.SalesChannel {
	if pinned == "" || pinned == domain.AutoSellChannelAuto {
		return BestChannel(st, quality, now, true)
	}
	ch, ok := st.Channel(pinned)
	if !ok || Eligible(*ch, quality, st.Level) != nil || Ready(*ch, now) != nil {
		return nil
	}
	return ch
}

// NearlyFull reports whether at least 80% of unlocked racks hold stock
func NearlyFull(st *domain.State) bool {
	unlocked := st.UnlockedRacks()
	if unlocked == 0 {
		return false
	}
	return float64(drying.OccupiedRacks(st))/float64(unlocked) >= NearlyFullRatio
}
