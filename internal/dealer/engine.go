// Package dealer resolves one narrative dealer turn for a sell-capable worker.
package dealer

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/ledger"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
	"github.com/hypez33/grow-lab-zen-sub000/internal/sales"
	"github.com/hypez33/grow-lab-zen-sub000/internal/warehouse"
)

// Engine rolls dealer outcomes. The warehouse is optional.
type Engine struct {
	sales     *sales.Engine
	warehouse warehouse.Seller
	rng       domain.Rand
}

// NewEngine creates a dealer engine
func NewEngine(s *sales.Engine, w warehouse.Seller, rng domain.Rand) *Engine {
	return &Engine{sales: s, warehouse: w, rng: rng}
}

// Turn runs one dealer turn for the worker and appends the resulting entry
// to the shared activity log
func (e *Engine) Turn(ctx context.Context, st *domain.State, w *domain.Worker, now int64) domain.DealerActivity {
	log := logger.FromContext(ctx)

	if eff, ok := st.DrugEffects[w.ID]; ok && eff.Expired(now) {
		delete(st.DrugEffects, w.ID)
		log.Debug(LogMsgDrugEffectGone, "worker", w.ID)
	}

	var act domain.DealerActivity
	if idx := firstDried(st.Inventory); idx >= 0 {
		act = e.withStock(st, w, idx, now)
	} else {
		act = e.withoutStock(ctx, st, w, now)
	}

	act.ID = uuid.NewString()
	act.Timestamp = now
	act.WorkerID = w.ID
	st.AppendActivity(act)
	log.Debug(LogMsgDealerTurn, "worker", w.ID, "kind", act.Kind, "grams", act.Grams, "revenue", act.Revenue)
	return act
}

// Roll picks an outcome for the archetype, adding scamBonus to the scam branch
func (e *Engine) Roll(a domain.Archetype, scamBonus float64) domain.OutcomeKind {
	r := e.rng.Float64() * BasisPoints
	bonus := int(math.Round(scamBonus * BasisPoints))
	cumulative := 0
	for _, o := range tableFor(a) {
		w := o.weight
		if o.kind == domain.OutcomeScam {
			w += bonus
		}
		cumulative += w
		if r < float64(cumulative) {
			return o.kind
		}
	}
	return domain.OutcomeSale
}

func (e *Engine) withStock(st *domain.State, w *domain.Worker, idx int, now int64) domain.DealerActivity {
	p := profileFor(w.Archetype)
	eff, hasEffect := st.DrugEffects[w.ID]
	scamBonus := 0.0
	if hasEffect {
		scamBonus = eff.ScamBonus
	}

	kind := e.Roll(w.Archetype, scamBonus)
	act := domain.DealerActivity{Kind: kind}
	vars := e.vars(w)

	switch kind {
	case domain.OutcomeSale:
		return e.sellStock(st, w, idx, now)
	case domain.OutcomeScam:
		act.Revenue = int(math.Round(float64(domain.IntBetween(e.rng, ScamCoinsMin, ScamCoinsMax)) * p.scamMult))
		ledger.AddCoins(&st.Resources, act.Revenue)
	case domain.OutcomeViolence:
		act.Revenue = domain.IntBetween(e.rng, ViolenceCoinsMin, ViolenceCoinsMax)
		ledger.AddCoins(&st.Resources, act.Revenue)
	case domain.OutcomeRobbery:
		act.Revenue = domain.IntBetween(e.rng, RobberyCoinsMin, RobberyCoinsMax)
		ledger.AddCoins(&st.Resources, act.Revenue)
	case domain.OutcomeDrugs:
		effect := domain.DealerDrugEffect{
			WorkerID:        w.ID,
			SalesMultiplier: domain.Uniform(e.rng, DrugMultMin, DrugMultMax),
			ScamBonus:       domain.Uniform(e.rng, DrugScamMin, DrugScamMax),
			ExpiresAt:       now + DrugEffectMillis,
		}
		if st.DrugEffects == nil {
			st.DrugEffects = map[string]domain.DealerDrugEffect{}
		}
		st.DrugEffects[w.ID] = effect
		vars.mult = effect.SalesMultiplier
	case domain.OutcomeMeeting:
		act.Customer = e.customer()
		vars.customer = act.Customer
	}

	vars.revenue = act.Revenue
	act.Message = e.message(w.Archetype, kind, vars)
	return act
}

// sellStock sells from the first dried bud through the best paying channel
func (e *Engine) sellStock(st *domain.State, w *domain.Worker, idx int, now int64) domain.DealerActivity {
	bud := st.Inventory[idx]
	ch := sales.BestChannel(st, bud.Quality, now, false)
	if ch == nil {
		return e.idle(w, domain.OutcomeWaiting)
	}

	p := profileFor(w.Archetype)
	grams := min(domain.IntBetween(e.rng, p.gramsMin, p.gramsMax), bud.Grams, ch.MaxGramsPerSale)
	mult := p.priceBonus * e.drugMultiplier(st, w.ID) * e.sales.Multiplier(domain.CommodityBud)
	revenue := sales.Revenue(grams, ch.PricePerGram, bud.Quality, bud.Rarity, mult)

	if _, err := sales.TakeGrams(st, bud.ID, grams); err != nil {
		return e.idle(w, domain.OutcomeWaiting)
	}
	e.credit(st, grams, revenue, now)

	act := domain.DealerActivity{Kind: domain.OutcomeSale, Grams: grams, Revenue: revenue, Customer: e.customer()}
	vars := e.vars(w)
	vars.grams, vars.revenue, vars.customer, vars.channel = grams, revenue, act.Customer, ch.Name
	act.Message = e.message(w.Archetype, domain.OutcomeSale, vars)
	return act
}

// withoutStock tries the warehouse, falling back to an idle entry
func (e *Engine) withoutStock(ctx context.Context, st *domain.State, w *domain.Worker, now int64) domain.DealerActivity {
	if e.warehouse == nil || !domain.Chance(e.rng, WarehouseAttemptChance) {
		return e.idle(w, e.idleKind())
	}

	p := profileFor(w.Archetype)
	want := domain.IntBetween(e.rng, p.gramsMin, p.gramsMax)
	quote := e.warehouse.BulkSell(domain.CommodityBud, want, true)
	if quote.GramsSold <= 0 {
		return e.idle(w, e.idleKind())
	}
	ch := sales.BestChannel(st, quote.AvgQuality, now, false)
	if ch == nil {
		return e.idle(w, domain.OutcomeWaiting)
	}

	grams := min(quote.GramsSold, ch.MaxGramsPerSale)
	res := e.warehouse.BulkSell(domain.CommodityBud, grams, false)
	if res.GramsSold <= 0 {
		return e.idle(w, e.idleKind())
	}

	mult := p.priceBonus * e.drugMultiplier(st, w.ID) * e.sales.Multiplier(domain.CommodityBud)
	revenue := sales.Revenue(res.GramsSold, ch.PricePerGram, res.AvgQuality, domain.RarityCommon, mult)
	e.credit(st, res.GramsSold, revenue, now)
	logger.FromContext(ctx).Debug(LogMsgWarehouseSale, "worker", w.ID, "grams", res.GramsSold, "revenue", revenue)

	act := domain.DealerActivity{Kind: domain.OutcomeSale, Grams: res.GramsSold, Revenue: revenue, Customer: e.customer()}
	vars := e.vars(w)
	vars.grams, vars.revenue, vars.customer, vars.channel = res.GramsSold, revenue, act.Customer, ch.Name
	act.Message = e.message(w.Archetype, domain.OutcomeSale, vars)
	return act
}

func (e *Engine) credit(st *domain.State, grams, revenue int, now int64) {
	sales.RecordSale(st, grams, revenue, now)
	st.DealerSales++
	ledger.AddXP(&st.Resources, grams*XPPerGram)
}

func (e *Engine) drugMultiplier(st *domain.State, workerID string) float64 {
	if eff, ok := st.DrugEffects[workerID]; ok && eff.SalesMultiplier > 0 {
		return eff.SalesMultiplier
	}
	return 1
}

func (e *Engine) idleKind() domain.OutcomeKind {
	kinds := []domain.OutcomeKind{domain.OutcomeMeeting, domain.OutcomeWaiting, domain.OutcomeRandom}
	return kinds[e.rng.Intn(len(kinds))]
}

func (e *Engine) idle(w *domain.Worker, kind domain.OutcomeKind) domain.DealerActivity {
	act := domain.DealerActivity{Kind: kind}
	vars := e.vars(w)
	if kind == domain.OutcomeMeeting {
		act.Customer = e.customer()
		vars.customer = act.Customer
	}
	act.Message = e.message(w.Archetype, kind, vars)
	return act
}

func firstDried(items []domain.BudItem) int {
	for i := range items {
		if items[i].State == domain.BudDried && items[i].Grams > 0 {
			return i
		}
	}
	return -1
}
