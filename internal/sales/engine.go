// Package sales validates and prices sales through channels and runs the
// periodic auto-sell pass.
package sales

import (
	"fmt"
	"math"
	"time"

	"github.com/hypez33/grow-lab-zen-sub000/internal/cooldown"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/ledger"
	"github.com/hypez33/grow-lab-zen-sub000/internal/territory"
)

// Engine prices and applies sales
type Engine struct {
	territory territory.Provider
}

// NewEngine creates a sales engine reading multipliers from the territory provider
func NewEngine(t territory.Provider) *Engine {
	if t == nil {
		t = territory.Fixed(1)
	}
	return &Engine{territory: t}
}

// SaleResult describes one completed sale
type SaleResult struct {
	ChannelID string `json:"channel_id"`
	BudID     string `json:"bud_id"`
	Grams     int    `json:"grams"`
	Revenue   int    `json:"revenue"`
	Remaining int    `json:"remaining"`
	Removed   bool   `json:"removed"`
}

// QualityBonus scales price by quality: 1 at q0, 1.5 at q100
func QualityBonus(quality int) float64 {
	return 1 + QualityBonusFactor*float64(domain.ClampInt(quality, 0, domain.MaxQuality))/100
}

// RarityBonus is the price step for a rarity tier
func RarityBonus(r domain.Rarity) float64 {
	return rarityBonus[domain.ClampInt(int(r), 0, len(rarityBonus)-1)]
}

// Revenue prices grams of a bud through a channel
func Revenue(grams int, pricePerGram float64, quality int, r domain.Rarity, territoryMult float64) int {
	if grams <= 0 {
		return 0
	}
	return int(math.Floor(float64(grams) * pricePerGram * QualityBonus(quality) * RarityBonus(r) * territoryMult))
}

// Eligible reports whether the channel may take product of this quality at this level
func Eligible(ch domain.SalesChannel, quality, level int) error {
	if !ch.Unlocked {
		return fmt.Errorf("%w: %s", domain.ErrChannelLocked, ch.ID)
	}
	if level < ch.MinLevel {
		return fmt.Errorf("%w: %s needs level %d", domain.ErrLevelTooLow, ch.ID, ch.MinLevel)
	}
	if quality < ch.MinQuality {
		return fmt.Errorf("%w: %s needs quality %d, got %d", domain.ErrQualityTooLow, ch.ID, ch.MinQuality, quality)
	}
	return nil
}

// Ready checks the channel cooldown at now
func Ready(ch domain.SalesChannel, now int64) error {
	return cooldown.Check(ch.ID, ch.LastSaleTime, time.Duration(ch.CooldownMillis())*time.Millisecond, now)
}

// Sell sells grams of a dried bud through a channel. Any failed gate returns
// an error before anything is mutated.
func (e *Engine) Sell(st *domain.State, budID, channelID string, grams int, now int64) (*SaleResult, error) {
	if grams <= 0 {
		return nil, fmt.Errorf("%w: grams %d", domain.ErrInvalidQuantity, grams)
	}
	ch, ok := st.Channel(channelID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrChannelNotFound, channelID)
	}
	idx := domain.FindBud(st.Inventory, budID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrBudNotFound, budID)
	}
	bud := st.Inventory[idx]
	if bud.State != domain.BudDried {
		return nil, fmt.Errorf("%w: bud %s is %s", domain.ErrNotDried, budID, bud.State)
	}
	if err := Eligible(*ch, bud.Quality, st.Level); err != nil {
		return nil, err
	}
	if grams > ch.MaxGramsPerSale {
		return nil, fmt.Errorf("%w: %s takes at most %dg", domain.ErrExceedsSaleCap, ch.ID, ch.MaxGramsPerSale)
	}
	if grams > bud.Grams {
		return nil, fmt.Errorf("%w: bud %s has %dg", domain.ErrInsufficientProduct, budID, bud.Grams)
	}
	if err := Ready(*ch, now); err != nil {
		return nil, err
	}

	revenue := Revenue(grams, ch.PricePerGram, bud.Quality, bud.Rarity, e.territory.Multiplier(domain.CommodityBud))
	res := takeGrams(st, idx, grams)
	res.ChannelID = ch.ID
	res.Revenue = revenue
	ch.LastSaleTime = now
	RecordSale(st, grams, revenue, now)
	return res, nil
}

// takeGrams removes grams from the inventory bud at idx
func takeGrams(st *domain.State, idx, grams int) *SaleResult {
	bud := &st.Inventory[idx]
	res := &SaleResult{BudID: bud.ID, Grams: grams}
	bud.Grams -= grams
	res.Remaining = bud.Grams
	if bud.Grams <= 0 {
		st.Inventory = domain.RemoveBud(st.Inventory, idx)
		res.Removed = true
		res.Remaining = 0
	}
	return res
}

// TakeGrams removes grams from a dried bud without pricing. Used by dealers.
func TakeGrams(st *domain.State, budID string, grams int) (*SaleResult, error) {
	idx := domain.FindBud(st.Inventory, budID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrBudNotFound, budID)
	}
	if grams <= 0 || grams > st.Inventory[idx].Grams {
		return nil, fmt.Errorf("%w: grams %d", domain.ErrInvalidQuantity, grams)
	}
	return takeGrams(st, idx, grams), nil
}

// RecordSale credits revenue and updates the sales window and statistics
func RecordSale(st *domain.State, grams, revenue int, now int64) {
	ledger.AddCoins(&st.Resources, revenue)
	st.TotalGramsSold += grams
	st.TotalRevenue += revenue
	st.TotalSales++
	st.SalesWindow = append(st.SalesWindow, domain.SalesWindowEntry{Timestamp: now, Revenue: revenue})
	TrimWindow(st, now)
}

// TrimWindow drops sales-window entries older than one hour
func TrimWindow(st *domain.State, now int64) {
	cutoff := now - SalesWindowMillis
	kept := st.SalesWindow[:0]
	for _, e := range st.SalesWindow {
		if e.Timestamp >= cutoff {
			kept = append(kept, e)
		}
	}
	st.SalesWindow = kept
}

// WindowRevenue sums revenue in the trailing hour
func WindowRevenue(st *domain.State, now int64) int {
	cutoff := now - SalesWindowMillis
	total := 0
	for _, e := range st.SalesWindow {
		if e.Timestamp >= cutoff {
			total += e.Revenue
		}
	}
	return total
}

// BestChannel returns the highest paying channel eligible for the quality.
// With checkCooldown set, channels still cooling down are skipped.
func BestChannel(st *domain.State, quality int, now int64, checkCooldown bool) *domain.SalesChannel {
	var best *domain.SalesChannel
	for i := range st.SalesChannels {
		ch := &st.SalesChannels[i]
		if Eligible(*ch, quality, st.Level) != nil {
			continue
		}
		if checkCooldown && Ready(*ch, now) != nil {
			continue
		}
		if best == nil || ch.PricePerGram > best.PricePerGram {
			best = ch
		}
	}
	return best
}

// Multiplier exposes the territory bonus for a commodity
func (e *Engine) Multiplier(commodity string) float64 {
	return e.territory.Multiplier(commodity)
}
