package persistence

import (
	"fmt"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// Migration upgrades a raw save from version To-1 to To. Steps only add or
// normalize fields; unknown keys are never removed.
type Migration struct {
	To    int
	Name  string
	Apply func(raw map[string]any)
}

// Migrations is the ordered chain. Each step assumes every earlier step ran.
var Migrations = []Migration{
	{To: 2, Name: "backfill total grams harvested", Apply: migrateV1ToV2},
	{To: 3, Name: "introduce drying racks", Apply: migrateV2ToV3},
	{To: 4, Name: "worker pause and abilities", Apply: migrateV3ToV4},
	{To: 5, Name: "dealer log and sales window", Apply: migrateV4ToV5},
	{To: 6, Name: "nest auto-sell settings", Apply: migrateV5ToV6},
	{To: 7, Name: "slot water, maturity and soil", Apply: migrateV6ToV7},
}

// VersionOf reads the save version, treating missing or malformed values as 1
func VersionOf(raw map[string]any) int {
	if n, ok := number(raw[keyVersion]); ok && n >= 1 {
		return int(n)
	}
	return 1
}

// Migrate runs every step newer than the save's version and stamps the
// current version. It returns the version the save started at.
func Migrate(raw map[string]any) (int, error) {
	from := VersionOf(raw)
	if from > CurrentVersion {
		return from, fmt.Errorf("%w: "+ErrMsgFutureVersion, domain.ErrFutureVersion, from, CurrentVersion)
	}
	v := from
	for _, m := range Migrations {
		if v < m.To {
			m.Apply(raw)
			v = m.To
		}
	}
	raw[keyVersion] = float64(CurrentVersion)
	return from, nil
}

func migrateV1ToV2(raw map[string]any) {
	setDefault(raw, keyTotalGramsHarvested, float64(0))
}

// Before racks existed harvested product was immediately sellable
func migrateV2ToV3(raw map[string]any) {
	if _, ok := raw[keyDryingRacks].([]any); !ok {
		raw[keyDryingRacks] = []any{map[string]any{"index": float64(0), "unlocked": true}}
	}
	for _, item := range objects(raw, keyInventory) {
		if _, ok := item["state"].(string); !ok {
			item["state"] = string(domain.BudDried)
			item["drying_progress"] = float64(100)
		}
	}
}

func migrateV3ToV4(raw map[string]any) {
	for _, w := range objects(raw, keyWorkers) {
		setDefault(w, "paused", false)
		setDefault(w, "level", float64(1))
		setDefault(w, "slots_managed", float64(1))
		if _, ok := number(w["max_level"]); !ok {
			lvl, _ := number(w["level"])
			w["max_level"] = lvl
		}
		if list, ok := w["abilities"].([]any); !ok || len(list) == 0 {
			w["abilities"] = []any{string(domain.AbilityHarvest)}
		}
	}
}

func migrateV4ToV5(raw map[string]any) {
	if _, ok := raw[keyDealerActivities].([]any); !ok {
		raw[keyDealerActivities] = []any{}
	}
	if _, ok := raw[keyDrugEffects].(map[string]any); !ok {
		raw[keyDrugEffects] = map[string]any{}
	}
	if _, ok := raw[keySalesWindow].([]any); !ok {
		raw[keySalesWindow] = []any{}
	}
}

func migrateV5ToV6(raw map[string]any) {
	auto, ok := raw[keyAutoSell].(map[string]any)
	if !ok {
		auto = map[string]any{}
		raw[keyAutoSell] = auto
	}
	moves := map[string]string{
		legacyAutoSellEnabled:    "enabled",
		legacyAutoSellMinQuality: "min_quality",
		legacyAutoSellChannel:    "channel",
		legacyAutoSellNearlyFull: "only_when_nearly_full",
	}
	for legacy, nested := range moves {
		if v, ok := raw[legacy]; ok {
			if _, set := auto[nested]; !set {
				auto[nested] = v
			}
			delete(raw, legacy)
		}
	}
	setDefault(auto, "enabled", false)
	setDefault(auto, "min_quality", float64(0))
	setDefault(auto, "channel", domain.AutoSellChannelAuto)
	setDefault(auto, "only_when_nearly_full", false)

	if _, ok := raw[keyUpgrades].(map[string]any); !ok {
		raw[keyUpgrades] = map[string]any{}
	}
	if _, ok := raw[keyDiscoveredSeeds].(map[string]any); !ok {
		raw[keyDiscoveredSeeds] = map[string]any{}
	}
}

func migrateV6ToV7(raw map[string]any) {
	for _, slot := range objects(raw, keyGrowSlots) {
		setDefault(slot, "water_level", domain.MaxWaterLevel)
		setDefault(slot, "bud_maturity", float64(0))
		if _, ok := slot["soil"].(map[string]any); !ok {
			basic := domain.BasicSoil()
			slot["soil"] = map[string]any{
				"id":              basic.ID,
				"name":            basic.Name,
				"growth_boost":    basic.GrowthBoost,
				"yield_boost":     basic.YieldBoost,
				"water_retention": basic.WaterRetention,
			}
		}
	}
}

func setDefault(m map[string]any, key string, v any) {
	if _, ok := m[key]; !ok {
		m[key] = v
	}
}

// objects returns the object elements of an array field, skipping anything else
func objects(raw map[string]any, key string) []map[string]any {
	list, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, el := range list {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
