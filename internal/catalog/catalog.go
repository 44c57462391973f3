package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/validation"
)

//go:embed default.yaml
var defaultCatalog []byte

//go:embed catalog.schema.json
var schemaFS embed.FS

var schemas = validation.NewSchemaValidator(schemaFS)

// Catalog holds every template the engines instantiate from
type Catalog struct {
	Start       StartSettings        `yaml:"start" validate:"required"`
	Slots       UnlockSettings       `yaml:"slots" validate:"required"`
	Racks       UnlockSettings       `yaml:"racks" validate:"required"`
	Seeds       []SeedTemplate       `yaml:"seeds" validate:"required,min=1,dive"`
	Channels    []ChannelTemplate    `yaml:"channels" validate:"required,min=1,dive"`
	Workers     []WorkerTemplate     `yaml:"workers" validate:"dive"`
	Fertilizers []FertilizerTemplate `yaml:"fertilizers" validate:"dive"`
	Soils       []SoilTemplate       `yaml:"soils" validate:"dive"`
	Upgrades    []UpgradeTemplate    `yaml:"upgrades" validate:"dive"`
}

// StartSettings describe a brand new save
type StartSettings struct {
	Coins         int      `yaml:"coins" validate:"gte=0"`
	SlotsUnlocked int      `yaml:"slots_unlocked" validate:"gte=1"`
	RacksUnlocked int      `yaml:"racks_unlocked" validate:"gte=1"`
	StarterSeeds  []string `yaml:"starter_seeds"`
}

// UnlockSettings size a slot/rack grid and price its expansion
type UnlockSettings struct {
	Max              int     `yaml:"max" validate:"gte=1"`
	UnlockBaseCost   int     `yaml:"unlock_base_cost" validate:"gte=0"`
	UnlockCostGrowth float64 `yaml:"unlock_cost_growth" validate:"gte=1"`
}

// SeedTemplate is the immutable definition a planted Seed is copied from
type SeedTemplate struct {
	ID          string   `yaml:"id" validate:"required"`
	Name        string   `yaml:"name" validate:"required"`
	Rarity      string   `yaml:"rarity" validate:"required,oneof=common uncommon rare epic legendary"`
	Traits      []string `yaml:"traits"`
	BaseYield   int      `yaml:"base_yield" validate:"gt=0"`
	YieldMin    int      `yaml:"yield_min" validate:"gte=0"`
	YieldMax    int      `yaml:"yield_max" validate:"gtefield=YieldMin"`
	GrowthSpeed float64  `yaml:"growth_speed" validate:"gt=0"`
	CoinValue   float64  `yaml:"coin_value" validate:"gte=0"`
	Price       int      `yaml:"price" validate:"gte=0"`
}

// ChannelTemplate defines a sales channel
type ChannelTemplate struct {
	ID              string  `yaml:"id" validate:"required"`
	Name            string  `yaml:"name" validate:"required"`
	PricePerGram    float64 `yaml:"price_per_gram" validate:"gt=0"`
	MinQuality      int     `yaml:"min_quality" validate:"gte=0,lte=100"`
	MinLevel        int     `yaml:"min_level" validate:"gte=0"`
	MaxGramsPerSale int     `yaml:"max_grams_per_sale" validate:"gt=0"`
	CooldownMinutes float64 `yaml:"cooldown_minutes" validate:"gte=0"`
	UnlockCost      int     `yaml:"unlock_cost" validate:"gte=0"`
}

// WorkerTemplate defines a hireable worker
type WorkerTemplate struct {
	ID           string   `yaml:"id" validate:"required"`
	Name         string   `yaml:"name" validate:"required"`
	Archetype    string   `yaml:"archetype" validate:"required,oneof=runner gangster cartel"`
	Abilities    []string `yaml:"abilities" validate:"required,min=1,dive,oneof=plant tap harvest dry sell water"`
	CostCoins    int      `yaml:"cost_coins" validate:"gte=0"`
	CostGrams    int      `yaml:"cost_grams" validate:"gte=0"`
	MaxLevel     int      `yaml:"max_level" validate:"gte=1"`
	SlotsManaged int      `yaml:"slots_managed" validate:"gte=1"`
}

// FertilizerTemplate defines a purchasable fertilizer pack
type FertilizerTemplate struct {
	ID          string  `yaml:"id" validate:"required"`
	Name        string  `yaml:"name" validate:"required"`
	GrowthBoost float64 `yaml:"growth_boost" validate:"gte=0"`
	YieldBoost  float64 `yaml:"yield_boost" validate:"gte=0"`
	Uses        int     `yaml:"uses" validate:"gte=1"`
	Price       int     `yaml:"price" validate:"gte=0"`
}

// SoilTemplate defines a purchasable soil
type SoilTemplate struct {
	ID             string  `yaml:"id" validate:"required"`
	Name           string  `yaml:"name" validate:"required"`
	GrowthBoost    float64 `yaml:"growth_boost" validate:"gte=0"`
	YieldBoost     float64 `yaml:"yield_boost" validate:"gte=0"`
	WaterRetention float64 `yaml:"water_retention" validate:"gt=0"`
	Price          int     `yaml:"price" validate:"gte=0"`
}

// UpgradeTemplate prices one upgrade track
type UpgradeTemplate struct {
	Kind       string  `yaml:"kind" validate:"required,oneof=growth_speed crit_chance trim drying_speed humidity quality_cure uv_light"`
	BaseCost   int     `yaml:"base_cost" validate:"gt=0"`
	CostGrowth float64 `yaml:"cost_growth" validate:"gte=1"`
	MaxLevel   int     `yaml:"max_level" validate:"gte=1"`
	Currency   string  `yaml:"currency" validate:"omitempty,oneof=coins gems skill_points"`
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// MustDefault returns the embedded catalog and panics if it is invalid
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog from a YAML file, falling back to the embedded default when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML. The document shape is checked
// against the catalog schema first, so misspelled keys are reported instead
// of silently ignored.
func Parse(data []byte) (*Catalog, error) {
	if err := checkSchema(data); err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidCatalog, err)
	}
	if err := c.checkReferences(); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidCatalog, err)
	}
	return &c, nil
}

func checkSchema(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	doc, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}
	if err := schemas.ValidateBytes(doc, SchemaName); err != nil {
		return fmt.Errorf(ErrMsgInvalidCatalog, err)
	}
	return nil
}

func (c *Catalog) checkReferences() error {
	seen := make(map[string]bool, len(c.Seeds))
	for _, s := range c.Seeds {
		if seen[s.ID] {
			return fmt.Errorf("duplicate seed id %q", s.ID)
		}
		seen[s.ID] = true
	}
	for _, id := range c.Start.StarterSeeds {
		if !seen[id] {
			return fmt.Errorf("starter seed %q is not defined", id)
		}
	}
	return nil
}

// SeedTemplate looks up a seed template by id
func (c *Catalog) SeedTemplate(id string) (SeedTemplate, bool) {
	for _, s := range c.Seeds {
		if s.ID == id {
			return s, true
		}
	}
	return SeedTemplate{}, false
}

// NewSeed instantiates a seed template with a fresh identity
func (t SeedTemplate) NewSeed() domain.Seed {
	rarity, _ := domain.ParseRarity(t.Rarity)
	var traits []domain.Trait
	for _, tr := range t.Traits {
		traits = append(traits, domain.Trait(tr))
	}
	seed := domain.Seed{
		ID:          uuid.NewString(),
		TemplateID:  t.ID,
		Name:        t.Name,
		Rarity:      rarity,
		Traits:      traits,
		BaseYield:   t.BaseYield,
		GrowthSpeed: t.GrowthSpeed,
		CoinValue:   t.CoinValue,
	}
	if t.YieldMax > 0 {
		seed.YieldRange = &domain.YieldRange{Min: t.YieldMin, Max: t.YieldMax}
	}
	return seed
}

// TemplatesByRarity groups seed template ids per tier
func (c *Catalog) TemplatesByRarity() map[domain.Rarity][]string {
	out := make(map[domain.Rarity][]string)
	for _, s := range c.Seeds {
		r, _ := domain.ParseRarity(s.Rarity)
		out[r] = append(out[r], s.ID)
	}
	return out
}

// Channel builds a locked sales channel from its template
func (t ChannelTemplate) Channel() domain.SalesChannel {
	return domain.SalesChannel{
		ID:              t.ID,
		Name:            t.Name,
		PricePerGram:    t.PricePerGram,
		MinQuality:      t.MinQuality,
		MinLevel:        t.MinLevel,
		MaxGramsPerSale: t.MaxGramsPerSale,
		CooldownMinutes: t.CooldownMinutes,
		UnlockCost:      t.UnlockCost,
		Unlocked:        t.UnlockCost == 0,
	}
}

// Worker builds an unowned level-1 worker from its template
func (t WorkerTemplate) Worker() domain.Worker {
	abilities := make([]domain.Ability, 0, len(t.Abilities))
	for _, a := range t.Abilities {
		abilities = append(abilities, domain.Ability(a))
	}
	return domain.Worker{
		ID:           t.ID,
		Name:         t.Name,
		Archetype:    domain.Archetype(t.Archetype),
		Cost:         domain.WorkerCost{Coins: t.CostCoins, Grams: t.CostGrams},
		Level:        1,
		MaxLevel:     t.MaxLevel,
		SlotsManaged: t.SlotsManaged,
		Abilities:    abilities,
	}
}

// Fertilizer looks up a fertilizer template by id
func (c *Catalog) Fertilizer(id string) (FertilizerTemplate, bool) {
	for _, f := range c.Fertilizers {
		if f.ID == id {
			return f, true
		}
	}
	return FertilizerTemplate{}, false
}

// Instance builds a fresh fertilizer pack
func (t FertilizerTemplate) Instance() domain.Fertilizer {
	return domain.Fertilizer{
		ID:          uuid.NewString(),
		Name:        t.Name,
		GrowthBoost: t.GrowthBoost,
		YieldBoost:  t.YieldBoost,
		UsesLeft:    t.Uses,
	}
}

// Soil looks up a soil template by id
func (c *Catalog) Soil(id string) (SoilTemplate, bool) {
	for _, s := range c.Soils {
		if s.ID == id {
			return s, true
		}
	}
	return SoilTemplate{}, false
}

// Instance builds a soil bag
func (t SoilTemplate) Instance() domain.Soil {
	return domain.Soil{
		ID:             t.ID,
		Name:           t.Name,
		GrowthBoost:    t.GrowthBoost,
		YieldBoost:     t.YieldBoost,
		WaterRetention: t.WaterRetention,
	}
}

// Upgrade looks up an upgrade track
func (c *Catalog) Upgrade(kind domain.UpgradeKind) (UpgradeTemplate, bool) {
	for _, u := range c.Upgrades {
		if u.Kind == string(kind) {
			return u, true
		}
	}
	return UpgradeTemplate{}, false
}

// Cost prices the next level of an upgrade track
func (t UpgradeTemplate) Cost(currentLevel int) int {
	return growthCost(t.BaseCost, t.CostGrowth, currentLevel)
}

// PaidIn returns the currency the track is priced in, coins by default
func (t UpgradeTemplate) PaidIn() domain.Currency {
	if t.Currency == "" {
		return domain.CurrencyCoins
	}
	return domain.Currency(t.Currency)
}

// UnlockCost prices unlocking one more slot/rack when `unlocked` are already open
func (u UnlockSettings) UnlockCost(unlocked int) int {
	return growthCost(u.UnlockBaseCost, u.UnlockCostGrowth, unlocked-1)
}

func growthCost(base int, growth float64, level int) int {
	if level < 0 {
		level = 0
	}
	return int(math.Floor(float64(base) * math.Pow(growth, float64(level))))
}
