package persistence

// CurrentVersion is the save schema this build writes
const CurrentVersion = 7

// Error message formats
const (
	ErrMsgDecodeSave     = "failed to decode save: %w"
	ErrMsgEncodeSave     = "failed to encode save: %w"
	ErrMsgFutureVersion  = "save version %d is newer than supported version %d"
	ErrMsgNotAnObject    = "save payload is not a JSON object"
	ErrMsgNoKnownFields  = "save payload has no known fields"
	ErrMsgExportEncoding = "failed to decode export string: %w"
	ErrMsgDecompress     = "failed to decompress export: %w"
)

// Log messages
const (
	LogMsgFieldFallback  = "save field malformed, using default"
	LogMsgElementDropped = "save element malformed, dropped"
	LogMsgMigrated       = "save migrated"
)

// Persisted key names touched by migrations
const (
	keyVersion             = "version"
	keyTotalGramsHarvested = "total_grams_harvested"
	keyDryingRacks         = "drying_racks"
	keyInventory           = "inventory"
	keyWorkers             = "workers"
	keyDealerActivities    = "dealer_activities"
	keyDrugEffects         = "drug_effects"
	keySalesWindow         = "sales_window"
	keyAutoSell            = "auto_sell"
	keyUpgrades            = "upgrades"
	keyDiscoveredSeeds     = "discovered_seeds"
	keyGrowSlots           = "grow_slots"
)

// Flat auto-sell keys written before auto_sell became a nested object
const (
	legacyAutoSellEnabled    = "auto_sell_enabled"
	legacyAutoSellMinQuality = "auto_sell_min_quality"
	legacyAutoSellChannel    = "auto_sell_channel"
	legacyAutoSellNearlyFull = "auto_sell_only_when_nearly_full"
)
