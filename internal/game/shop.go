package game

import (
	"fmt"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/ledger"
)

// BuySeed buys one seed of a template into the pool
func (e *Engine) BuySeed(st *domain.State, templateID string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		t, ok := e.cat.SeedTemplate(templateID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrSeedNotFound, templateID)
		}
		if err := ledger.SpendCoins(&next.Resources, t.Price); err != nil {
			return nil, err
		}
		seed := t.NewSeed()
		next.Seeds = append(next.Seeds, seed)
		return seed, nil
	})
}

// BuyFertilizer buys one fertilizer pack
func (e *Engine) BuyFertilizer(st *domain.State, id string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		t, ok := e.cat.Fertilizer(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrFertilizerNotFound, id)
		}
		if err := ledger.SpendCoins(&next.Resources, t.Price); err != nil {
			return nil, err
		}
		f := t.Instance()
		next.Fertilizers = append(next.Fertilizers, f)
		return f, nil
	})
}

// BuySoil buys one bag of soil
func (e *Engine) BuySoil(st *domain.State, id string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		t, ok := e.cat.Soil(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrSoilNotFound, id)
		}
		if err := ledger.SpendCoins(&next.Resources, t.Price); err != nil {
			return nil, err
		}
		s := t.Instance()
		next.Soils = append(next.Soils, s)
		return s, nil
	})
}

// UnlockSlot opens the next locked grow slot
func (e *Engine) UnlockSlot(st *domain.State) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		unlocked, target := 0, -1
		for i, s := range next.GrowSlots {
			if s.Unlocked {
				unlocked++
			} else if target < 0 {
				target = i
			}
		}
		if target < 0 {
			return nil, fmt.Errorf("%w: all %d slots unlocked", domain.ErrMaxReached, len(next.GrowSlots))
		}
		if err := spendUnlock(next, e.cat.Slots, unlocked); err != nil {
			return nil, err
		}
		next.GrowSlots[target].Unlocked = true
		return next.GrowSlots[target], nil
	})
}

// UnlockRack opens the next locked drying rack
func (e *Engine) UnlockRack(st *domain.State) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		target := -1
		for i, r := range next.DryingRacks {
			if !r.Unlocked {
				target = i
				break
			}
		}
		if target < 0 {
			return nil, fmt.Errorf("%w: all %d racks unlocked", domain.ErrMaxReached, len(next.DryingRacks))
		}
		if err := spendUnlock(next, e.cat.Racks, next.UnlockedRacks()); err != nil {
			return nil, err
		}
		next.DryingRacks[target].Unlocked = true
		return next.DryingRacks[target], nil
	})
}

func spendUnlock(st *domain.State, u catalog.UnlockSettings, unlocked int) error {
	return ledger.SpendCoins(&st.Resources, u.UnlockCost(unlocked))
}

// UnlockChannel pays a channel's one-off unlock cost
func (e *Engine) UnlockChannel(st *domain.State, id string) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		ch, ok := next.Channel(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrChannelNotFound, id)
		}
		if ch.Unlocked {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyUnlocked, id)
		}
		if err := ledger.SpendCoins(&next.Resources, ch.UnlockCost); err != nil {
			return nil, err
		}
		ch.Unlocked = true
		return *ch, nil
	})
}

// BuyUpgrade buys the next level of an upgrade track
func (e *Engine) BuyUpgrade(st *domain.State, kind domain.UpgradeKind) (*domain.State, domain.ActionResult) {
	return e.apply(st, func(next *domain.State) (any, error) {
		t, ok := e.cat.Upgrade(kind)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUpgradeNotFound, kind)
		}
		level := next.Upgrades.Level(kind)
		if level >= t.MaxLevel {
			return nil, fmt.Errorf("%w: %s is level %d", domain.ErrMaxReached, kind, level)
		}
		if err := ledger.Spend(&next.Resources, t.PaidIn(), t.Cost(level)); err != nil {
			return nil, err
		}
		if next.Upgrades == nil {
			next.Upgrades = domain.Upgrades{}
		}
		next.Upgrades[kind] = level + 1
		return map[string]any{"level": level + 1, "currency": t.PaidIn()}, nil
	})
}
