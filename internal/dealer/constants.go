package dealer

import "github.com/hypez33/grow-lab-zen-sub000/internal/domain"

// Drug effect tuning
const (
	DrugEffectMillis = int64(60 * 1000)
	DrugMultMin      = 1.1
	DrugMultMax      = 1.5
	DrugScamMin      = 0.05
	DrugScamMax      = 0.15
)

// Payouts for outcomes that do not consume stock
const (
	ScamCoinsMin     = 20
	ScamCoinsMax     = 60
	ViolenceCoinsMin = 50
	ViolenceCoinsMax = 150
	RobberyCoinsMin  = 100
	RobberyCoinsMax  = 300
)

// XPPerGram is credited for every gram a dealer moves
const XPPerGram = 1

// WarehouseAttemptChance is the chance an idle dealer tries the warehouse
const WarehouseAttemptChance = 0.5

// Log messages
const (
	LogMsgDealerTurn     = "dealer turn resolved"
	LogMsgWarehouseSale  = "dealer sold warehouse stock"
	LogMsgDrugEffectGone = "dealer drug effect expired"
)

// BasisPoints is the scale of outcome weights; 10000 is certainty
const BasisPoints = 10000

type outcomeWeight struct {
	kind   domain.OutcomeKind
	weight int
}

// outcomeTables lists the non-sale branches per archetype in basis points.
// Whatever is left over rolls a sale.
var outcomeTables = map[domain.Archetype][]outcomeWeight{
	domain.ArchetypeRunner: {
		{domain.OutcomeKill, 100},
		{domain.OutcomeDrugs, 400},
		{domain.OutcomeScam, 800},
		{domain.OutcomeRandom, 700},
		{domain.OutcomeMeeting, 1000},
	},
	domain.ArchetypeGangster: {
		{domain.OutcomeKill, 200},
		{domain.OutcomeViolence, 500},
		{domain.OutcomeDrugs, 500},
		{domain.OutcomeScam, 1000},
		{domain.OutcomeRandom, 600},
		{domain.OutcomeMeeting, 800},
	},
	domain.ArchetypeCartel: {
		{domain.OutcomeKill, 200},
		{domain.OutcomeRobbery, 600},
		{domain.OutcomeDrugs, 500},
		{domain.OutcomeScam, 800},
		{domain.OutcomeRandom, 500},
		{domain.OutcomeMeeting, 600},
	},
}

// profile holds the per-archetype economics
type profile struct {
	gramsMin   int
	gramsMax   int
	priceBonus float64
	scamMult   float64
}

var profiles = map[domain.Archetype]profile{
	domain.ArchetypeRunner:   {gramsMin: 2, gramsMax: 8, priceBonus: 1.0, scamMult: 1.0},
	domain.ArchetypeGangster: {gramsMin: 5, gramsMax: 14, priceBonus: 1.15, scamMult: 1.5},
	domain.ArchetypeCartel:   {gramsMin: 8, gramsMax: 20, priceBonus: 1.3, scamMult: 2.5},
}

func profileFor(a domain.Archetype) profile {
	if p, ok := profiles[a]; ok {
		return p
	}
	return profiles[domain.ArchetypeRunner]
}

func tableFor(a domain.Archetype) []outcomeWeight {
	if t, ok := outcomeTables[a]; ok {
		return t
	}
	return outcomeTables[domain.ArchetypeRunner]
}
