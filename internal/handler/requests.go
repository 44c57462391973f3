package handler

import "github.com/hypez33/grow-lab-zen-sub000/internal/domain"

// SlotRequest targets one grow slot
type SlotRequest struct {
	Slot int `json:"slot" validate:"gte=0"`
}

// PlantRequest plants a seed from the pool
type PlantRequest struct {
	Slot   int    `json:"slot" validate:"gte=0"`
	SeedID string `json:"seed_id" validate:"required"`
}

// FertilizeRequest applies a fertilizer pack
type FertilizeRequest struct {
	Slot         int    `json:"slot" validate:"gte=0"`
	FertilizerID string `json:"fertilizer_id" validate:"required"`
}

// SoilRequest swaps a slot's soil
type SoilRequest struct {
	Slot   int    `json:"slot" validate:"gte=0"`
	SoilID string `json:"soil_id" validate:"required"`
}

// RackRequest targets one drying rack
type RackRequest struct {
	Rack int `json:"rack" validate:"gte=0"`
}

// DryRequest hangs a wet bud on a rack
type DryRequest struct {
	Rack  int    `json:"rack" validate:"gte=0"`
	BudID string `json:"bud_id" validate:"required"`
}

// SellRequest sells grams of a dried bud
type SellRequest struct {
	BudID     string `json:"bud_id" validate:"required"`
	ChannelID string `json:"channel_id" validate:"required"`
	Grams     int    `json:"grams" validate:"gte=1"`
}

// AutoSellRequest replaces the auto-sell settings
type AutoSellRequest struct {
	Enabled    bool   `json:"enabled"`
	MinQuality int    `json:"min_quality" validate:"gte=0,lte=100"`
	Channel    string `json:"channel" validate:"max=64"`

	OnlyWhenNearlyFull bool `json:"only_when_nearly_full"`
}

// Settings converts the request to domain settings
func (r AutoSellRequest) Settings() domain.AutoSellSettings {
	return domain.AutoSellSettings{
		Enabled:            r.Enabled,
		MinQuality:         r.MinQuality,
		Channel:            r.Channel,
		OnlyWhenNearlyFull: r.OnlyWhenNearlyFull,
	}
}

// IDRequest names a catalog entry, channel or worker
type IDRequest struct {
	ID string `json:"id" validate:"required,max=64"`
}

// UpgradeRequest buys one level of an upgrade track
type UpgradeRequest struct {
	Kind string `json:"kind" validate:"required,upgrade_kind"`
}

// ImportRequest carries an exported save string
type ImportRequest struct {
	Data string `json:"data" validate:"required"`
}
