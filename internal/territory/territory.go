// Package territory is the in-process territory-control collaborator. The
// core only reads an aggregated sales multiplier per commodity from it.
package territory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// Provider returns the sales bonus (>= 1) currently active for a commodity
type Provider interface {
	Multiplier(commodity string) float64
}

// Fixed is a Provider with a constant multiplier
type Fixed float64

// Multiplier implements Provider
func (f Fixed) Multiplier(string) float64 {
	if f < 1 {
		return 1
	}
	return float64(f)
}

// Bonus is one controlled-territory perk
type Bonus struct {
	ID         string  `json:"id"`
	Commodity  string  `json:"commodity"`
	Multiplier float64 `json:"multiplier"`
	Active     bool    `json:"active"`
}

// Ledger holds the territory bonuses. Safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	bonuses map[string]Bonus
}

// NewLedger creates a territory ledger holding the given bonuses. It fails on
// the first invalid bonus.
func NewLedger(bonuses ...Bonus) (*Ledger, error) {
	l := &Ledger{bonuses: make(map[string]Bonus)}
	for _, b := range bonuses {
		if err := l.Grant(b); err != nil {
			return nil, fmt.Errorf("failed to seed territory bonus %q: %w", b.ID, err)
		}
	}
	return l, nil
}

// Grant adds or replaces a bonus
func (l *Ledger) Grant(b Bonus) error {
	if b.ID == "" || b.Commodity == "" {
		return fmt.Errorf("%w: bonus needs id and commodity", domain.ErrInvalidInput)
	}
	if b.Multiplier < 1 {
		return fmt.Errorf("%w: multiplier %.2f below 1", domain.ErrInvalidInput, b.Multiplier)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bonuses[b.ID] = b
	return nil
}

// SetActive toggles a bonus on or off
func (l *Ledger) SetActive(id string, active bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.bonuses[id]
	if !ok {
		return false
	}
	b.Active = active
	l.bonuses[id] = b
	return true
}

// Revoke removes a bonus
func (l *Ledger) Revoke(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.bonuses, id)
}

// Multiplier multiplies every active bonus matching commodity or "all"
func (l *Ledger) Multiplier(commodity string) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	mult := 1.0
	for _, b := range l.bonuses {
		if !b.Active {
			continue
		}
		if b.Commodity == commodity || b.Commodity == domain.CommodityAll {
			mult *= b.Multiplier
		}
	}
	return mult
}

// Bonuses lists all bonuses ordered by id
func (l *Ledger) Bonuses() []Bonus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Bonus, 0, len(l.bonuses))
	for _, b := range l.bonuses {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
