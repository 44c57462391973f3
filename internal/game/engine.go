// Package game composes the simulation engines into one aggregate: a pure
// ApplyTick transition plus every host action, each computed on a clone of
// the snapshot and returned only when it succeeds.
package game

import (
	"context"

	"github.com/hypez33/grow-lab-zen-sub000/internal/automation"
	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/dealer"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/drying"
	"github.com/hypez33/grow-lab-zen-sub000/internal/grow"
	"github.com/hypez33/grow-lab-zen-sub000/internal/sales"
	"github.com/hypez33/grow-lab-zen-sub000/internal/territory"
	"github.com/hypez33/grow-lab-zen-sub000/internal/warehouse"
)

// Engine wires the per-concern engines together. It holds no state of its own.
type Engine struct {
	cat        *catalog.Catalog
	grow       *grow.Engine
	drying     *drying.Engine
	sales      *sales.Engine
	automation *automation.Engine
}

// NewEngine builds the aggregate engine. A nil territory provider means no
// bonus; a nil warehouse means workers never fall back to bulk sales.
func NewEngine(cat *catalog.Catalog, rng domain.Rand, t territory.Provider, w warehouse.Seller) *Engine {
	g := grow.NewEngine(cat, rng)
	d := drying.NewEngine(rng)
	s := sales.NewEngine(t)
	return &Engine{
		cat:        cat,
		grow:       g,
		drying:     d,
		sales:      s,
		automation: automation.NewEngine(g, d, dealer.NewEngine(s, w, rng)),
	}
}

// Catalog returns the templates the engine was built with
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// NewState creates a fresh game at now
func (e *Engine) NewState(now int64) *domain.State {
	return e.cat.NewState(now)
}

// TickReport is everything one tick produced
type TickReport struct {
	automation.Report
	AutoSales []sales.SaleResult `json:"auto_sales,omitempty"`
}

// ApplyTick advances the snapshot by dt seconds at wall-clock now (unix ms)
// and returns the next snapshot. The input is never modified.
func (e *Engine) ApplyTick(ctx context.Context, st *domain.State, dt float64, now int64) (*domain.State, TickReport) {
	next := st.Clone()
	var rep TickReport
	if dt < 0 {
		dt = 0
	}

	e.grow.Tick(next, dt)
	e.drying.Tick(next, dt)
	rep.Report = e.automation.Tick(ctx, next, now)
	rep.AutoSales = e.sales.AutoSell(next, now)
	sales.TrimWindow(next, now)

	next.LastActive = max(next.LastActive, now)
	return next, rep
}

// apply runs fn against a clone. On error the original snapshot comes back
// with a rejected result.
func (e *Engine) apply(st *domain.State, fn func(next *domain.State) (any, error)) (*domain.State, domain.ActionResult) {
	next := st.Clone()
	data, err := fn(next)
	if err != nil {
		return st, domain.Reject(err)
	}
	return next, domain.Ok(data)
}
