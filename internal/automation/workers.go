package automation

import (
	"fmt"
	"math"
	"sort"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/ledger"
)

func findWorker(st *domain.State, id string) (*domain.Worker, error) {
	w, ok := st.Worker(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorkerNotFound, id)
	}
	return w, nil
}

// BuyWorker hires a worker, paying coins and dried grams. Nothing changes
// unless both can be paid.
func BuyWorker(st *domain.State, id string) error {
	w, err := findWorker(st, id)
	if err != nil {
		return err
	}
	if w.Owned {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, id)
	}
	if !ledger.CanAfford(&st.Resources, w.Cost.Coins) {
		return fmt.Errorf("%w: %s costs %d coins", domain.ErrInsufficientFunds, id, w.Cost.Coins)
	}
	if have := domain.DriedGrams(st.Inventory); have < w.Cost.Grams {
		return fmt.Errorf("%w: %s costs %dg, have %dg", domain.ErrInsufficientProduct, id, w.Cost.Grams, have)
	}
	if err := ledger.SpendCoins(&st.Resources, w.Cost.Coins); err != nil {
		return err
	}
	consumeDried(st, w.Cost.Grams)
	w.Owned = true
	w.Paused = false
	if w.Level < 1 {
		w.Level = 1
	}
	return nil
}

// UpgradeCost prices the next level of a worker
func UpgradeCost(w domain.Worker) int {
	cost := int(math.Floor(float64(w.Cost.Coins) * math.Pow(catalog.UpgradeCostMultiplier, float64(w.Level))))
	return max(cost, MinUpgradeCost)
}

// UpgradeWorker raises an owned worker one level
func UpgradeWorker(st *domain.State, id string) error {
	w, err := findWorker(st, id)
	if err != nil {
		return err
	}
	if !w.Owned {
		return fmt.Errorf("%w: %s", domain.ErrNotOwned, id)
	}
	if w.Level >= w.MaxLevel {
		return fmt.Errorf("%w: %s is level %d", domain.ErrMaxLevel, id, w.Level)
	}
	if err := ledger.SpendCoins(&st.Resources, UpgradeCost(*w)); err != nil {
		return err
	}
	w.Level++
	return nil
}

// TogglePause flips the paused flag of an owned worker and returns the new value
func TogglePause(st *domain.State, id string) (bool, error) {
	w, err := findWorker(st, id)
	if err != nil {
		return false, err
	}
	if !w.Owned {
		return false, fmt.Errorf("%w: %s", domain.ErrNotOwned, id)
	}
	w.Paused = !w.Paused
	return w.Paused, nil
}

// consumeDried removes grams from dried buds, lowest quality first
func consumeDried(st *domain.State, grams int) {
	if grams <= 0 {
		return
	}
	order := make([]int, 0, len(st.Inventory))
	for i, b := range st.Inventory {
		if b.State == domain.BudDried {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return st.Inventory[order[a]].Quality < st.Inventory[order[b]].Quality
	})

	remaining := grams
	for _, i := range order {
		if remaining == 0 {
			break
		}
		take := min(st.Inventory[i].Grams, remaining)
		st.Inventory[i].Grams -= take
		remaining -= take
	}

	kept := st.Inventory[:0]
	for _, b := range st.Inventory {
		if b.Grams > 0 {
			kept = append(kept, b)
		}
	}
	st.Inventory = kept
}
