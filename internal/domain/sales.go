package domain

// SalesChannel is an outlet product can be sold through
type SalesChannel struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PricePerGram    float64 `json:"price_per_gram"`
	MinQuality      int     `json:"min_quality"`
	MinLevel        int     `json:"min_level"`
	MaxGramsPerSale int     `json:"max_grams_per_sale"`
	CooldownMinutes float64 `json:"cooldown_minutes"`
	LastSaleTime    int64   `json:"last_sale_time"`
	Unlocked        bool    `json:"unlocked"`
	UnlockCost      int     `json:"unlock_cost"`
}

// CooldownMillis returns the channel cooldown in milliseconds
func (c SalesChannel) CooldownMillis() int64 {
	return int64(c.CooldownMinutes * 60000)
}

// AutoSellChannelAuto lets auto-sell pick the best paying channel
const AutoSellChannelAuto = "auto"

// AutoSellSettings configures the periodic auto-sell pass
type AutoSellSettings struct {
	Enabled            bool   `json:"enabled"`
	MinQuality         int    `json:"min_quality"`
	Channel            string `json:"channel"`
	OnlyWhenNearlyFull bool   `json:"only_when_nearly_full"`
}

// SalesWindowEntry is one sale kept for the trailing-hour revenue rate
type SalesWindowEntry struct {
	Timestamp int64 `json:"timestamp"`
	Revenue   int   `json:"revenue"`
}
