// Package warehouse is the in-process business stock collaborator. Dealers
// may bulk-sell out of it when the player's own stock is empty.
package warehouse

import (
	"sync"
)

// Seller sells stock held outside the game snapshot. A call either sells
// (part of) the request or returns a zero result; it never fails halfway.
type Seller interface {
	BulkSell(commodity string, grams int, simulate bool) Result
}

// Result is what a bulk sale moved
type Result struct {
	GramsSold  int `json:"grams_sold"`
	AvgQuality int `json:"avg_quality"`
}

// Lot is one batch of stored product
type Lot struct {
	Commodity string `json:"commodity"`
	Grams     int    `json:"grams"`
	Quality   int    `json:"quality"`
}

// Stock is a FIFO warehouse. Safe for concurrent use.
type Stock struct {
	mu   sync.Mutex
	lots []Lot
}

// NewStock creates a warehouse seeded with lots
func NewStock(lots ...Lot) *Stock {
	s := &Stock{}
	for _, l := range lots {
		s.Add(l)
	}
	return s
}

// Add stores a lot; empty lots are ignored
func (s *Stock) Add(l Lot) {
	if l.Grams <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lots = append(s.lots, l)
}

// Grams totals the stored grams of a commodity
func (s *Stock) Grams(commodity string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lots {
		if l.Commodity == commodity {
			total += l.Grams
		}
	}
	return total
}

// BulkSell takes up to grams of commodity, oldest lots first. With simulate
// set it reports what would sell without touching stock.
func (s *Stock) BulkSell(commodity string, grams int, simulate bool) Result {
	if grams <= 0 {
		return Result{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := grams
	sold := 0
	qualitySum := 0
	kept := make([]Lot, 0, len(s.lots))
	for _, l := range s.lots {
		if remaining == 0 || l.Commodity != commodity {
			kept = append(kept, l)
			continue
		}
		take := min(l.Grams, remaining)
		sold += take
		qualitySum += take * l.Quality
		remaining -= take
		if l.Grams > take {
			l.Grams -= take
			kept = append(kept, l)
		}
	}
	if sold == 0 {
		return Result{}
	}
	if !simulate {
		s.lots = kept
	}
	return Result{GramsSold: sold, AvgQuality: qualitySum / sold}
}
