package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
)

// Codec turns save payloads into states and back. Fresh supplies the
// defaults used for missing or malformed fields.
type Codec struct {
	Fresh func() *domain.State
}

// NewCodec creates a codec backed by a default-state factory
func NewCodec(fresh func() *domain.State) *Codec {
	return &Codec{Fresh: fresh}
}

// Encode serializes a state, re-emitting any unknown fields it was loaded with
func (c *Codec) Encode(st *domain.State) ([]byte, error) {
	out := *st
	out.Version = CurrentVersion
	data, err := json.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeSave, err)
	}
	if len(st.Extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeSave, err)
	}
	for k, v := range st.Extra {
		if _, known := merged[k]; !known {
			merged[k] = v
		}
	}
	data, err = json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeSave, err)
	}
	return data, nil
}

// Decode parses, migrates and normalizes a save payload. Only a payload that
// is not a JSON object, or one from a newer build, is rejected; individual
// malformed fields fall back to their defaults.
func (c *Codec) Decode(ctx context.Context, data []byte) (*domain.State, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgDecodeSave, domain.ErrCorruptSave, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCorruptSave, ErrMsgNotAnObject)
	}
	return c.FromRaw(ctx, raw)
}

// FromRaw migrates a parsed save map and builds the state from it
func (c *Codec) FromRaw(ctx context.Context, raw map[string]any) (*domain.State, error) {
	log := logger.FromContext(ctx)

	from, err := Migrate(raw)
	if err != nil {
		return nil, err
	}
	if from != CurrentVersion {
		log.Info(LogMsgMigrated, "from", from, "to", CurrentVersion)
	}

	defaults := c.fresh()
	st := defaults.Clone()
	targets := fieldTargets(st)
	for key, val := range raw {
		encoded, err := json.Marshal(val)
		if err != nil {
			continue
		}
		target, known := targets[key]
		if !known {
			if st.Extra == nil {
				st.Extra = map[string]json.RawMessage{}
			}
			st.Extra[key] = encoded
			continue
		}
		// a failed decode leaves the default in place
		if err := decodeField(ctx, key, encoded, target); err != nil {
			log.Warn(LogMsgFieldFallback, "field", key, "error", err)
		}
	}

	normalize(st, defaults)
	st.Version = CurrentVersion
	return st, nil
}

func (c *Codec) fresh() *domain.State {
	if c.Fresh != nil {
		if st := c.Fresh(); st != nil {
			return st
		}
	}
	return &domain.State{Resources: domain.Resources{Level: 1}}
}

// decodeField decodes one top-level field. Slices decode element by element
// so a single bad entry is dropped instead of losing the whole collection.
func decodeField(ctx context.Context, key string, data []byte, target reflect.Value) error {
	if target.Kind() != reflect.Slice {
		fresh := reflect.New(target.Type())
		if err := json.Unmarshal(data, fresh.Interface()); err != nil {
			return err
		}
		target.Set(fresh.Elem())
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	if elems == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}
	out := reflect.MakeSlice(target.Type(), 0, len(elems))
	for i, el := range elems {
		item := reflect.New(target.Type().Elem())
		if err := json.Unmarshal(el, item.Interface()); err != nil {
			logger.FromContext(ctx).Warn(LogMsgElementDropped, "field", key, "index", i, "error", err)
			continue
		}
		out = reflect.Append(out, item.Elem())
	}
	target.Set(out)
	return nil
}

// fieldTargets maps each persisted key to its settable field, flattening
// the embedded ledger and statistics structs the way encoding/json does
func fieldTargets(st *domain.State) map[string]reflect.Value {
	out := make(map[string]reflect.Value)
	collectFields(reflect.ValueOf(st).Elem(), out)
	return out
}

func collectFields(v reflect.Value, out map[string]reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFields(v.Field(i), out)
			continue
		}
		name := jsonName(f)
		if name == "" {
			continue
		}
		out[name] = v.Field(i)
	}
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

// normalize repairs cross-field invariants after a tolerant decode
func normalize(st, defaults *domain.State) {
	if st.Level < 1 {
		st.Level = 1
	}
	clampNonNegative(&st.Resources)

	if len(st.GrowSlots) < len(defaults.GrowSlots) {
		st.GrowSlots = append(st.GrowSlots, defaults.Clone().GrowSlots[len(st.GrowSlots):]...)
	}
	for i := range st.GrowSlots {
		slot := &st.GrowSlots[i]
		slot.Index = i
		if slot.Seed != nil && !slot.Unlocked {
			st.Seeds = append(st.Seeds, *slot.Seed)
			slot.Clear()
		}
		if slot.Soil.ID == "" {
			slot.Soil = domain.BasicSoil()
		}
		slot.Progress = domain.Clamp(slot.Progress, 0, domain.MaxProgress)
		slot.WaterLevel = domain.Clamp(slot.WaterLevel, 0, domain.MaxWaterLevel)
		slot.BudMaturity = domain.Clamp(slot.BudMaturity, 0, domain.MaxMaturity)
		if slot.Seed == nil {
			slot.Progress = 0
			slot.BudMaturity = 0
		}
		slot.Stage = domain.StageForProgress(slot.Progress)
	}

	if len(st.DryingRacks) < len(defaults.DryingRacks) {
		st.DryingRacks = append(st.DryingRacks, defaults.Clone().DryingRacks[len(st.DryingRacks):]...)
	}
	for i := range st.DryingRacks {
		rack := &st.DryingRacks[i]
		rack.Index = i
		if rack.Bud != nil {
			if rack.Bud.Grams <= 0 {
				rack.Bud = nil
				continue
			}
			normalizeBud(rack.Bud)
			if rack.Bud.State == domain.BudWet {
				rack.Bud.State = domain.BudDrying
			}
		}
	}

	kept := st.Inventory[:0]
	for _, b := range st.Inventory {
		if b.Grams <= 0 {
			continue
		}
		normalizeBud(&b)
		kept = append(kept, b)
	}
	st.Inventory = kept

	for _, ch := range defaults.SalesChannels {
		if _, ok := st.Channel(ch.ID); !ok {
			st.SalesChannels = append(st.SalesChannels, ch)
		}
	}
	for _, w := range defaults.Workers {
		if _, ok := st.Worker(w.ID); !ok {
			st.Workers = append(st.Workers, w)
		}
	}
	for i := range st.Workers {
		w := &st.Workers[i]
		w.Level = max(w.Level, 1)
		w.MaxLevel = max(w.MaxLevel, w.Level)
		w.SlotsManaged = max(w.SlotsManaged, 1)
	}

	if len(st.DealerActivities) > domain.MaxDealerActivities {
		st.DealerActivities = st.DealerActivities[len(st.DealerActivities)-domain.MaxDealerActivities:]
	}
	if st.DrugEffects == nil {
		st.DrugEffects = map[string]domain.DealerDrugEffect{}
	}
	if st.Upgrades == nil {
		st.Upgrades = domain.Upgrades{}
	}
	if st.DiscoveredSeeds == nil {
		st.DiscoveredSeeds = map[string]bool{}
	}
	if st.AutoSell.Channel == "" {
		st.AutoSell.Channel = domain.AutoSellChannelAuto
	}
	st.AutoSell.MinQuality = domain.ClampInt(st.AutoSell.MinQuality, 0, domain.MaxQuality)
}

func normalizeBud(b *domain.BudItem) {
	b.Quality = domain.ClampInt(b.Quality, 0, domain.MaxQuality)
	b.DryingProgress = domain.Clamp(b.DryingProgress, 0, 100)
	switch b.State {
	case domain.BudWet, domain.BudDrying:
	case domain.BudDried:
		b.DryingProgress = 100
	default:
		b.State = domain.BudWet
	}
}

func clampNonNegative(r *domain.Resources) {
	for _, p := range []*int{&r.Coins, &r.Resin, &r.Essence, &r.Gems, &r.XP, &r.SkillPoints} {
		if *p < 0 {
			*p = 0
		}
	}
}
