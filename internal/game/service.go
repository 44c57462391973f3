package game

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/event"
	"github.com/hypez33/grow-lab-zen-sub000/internal/grow"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
	"github.com/hypez33/grow-lab-zen-sub000/internal/offline"
	"github.com/hypez33/grow-lab-zen-sub000/internal/persistence"
	"github.com/hypez33/grow-lab-zen-sub000/internal/sales"
)

// Service owns the live snapshot. Ticks and actions are serialized; each
// one reads the current snapshot and swaps in the result wholesale.
type Service interface {
	Snapshot() *domain.State
	Load(ctx context.Context) (*offline.Summary, error)
	Save(ctx context.Context, trigger string) error
	Tick(ctx context.Context, dt float64) TickReport
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, text string) domain.ActionResult

	Plant(ctx context.Context, slot int, seedID string) domain.ActionResult
	Tap(ctx context.Context, slot int) domain.ActionResult
	Water(ctx context.Context, slot int) domain.ActionResult
	ApplyFertilizer(ctx context.Context, slot int, fertilizerID string) domain.ActionResult
	ApplySoil(ctx context.Context, slot int, soilID string) domain.ActionResult
	Harvest(ctx context.Context, slot int) domain.ActionResult
	StartDrying(ctx context.Context, rack int, budID string) domain.ActionResult
	CollectRack(ctx context.Context, rack int) domain.ActionResult
	Sell(ctx context.Context, budID, channelID string, grams int) domain.ActionResult
	SetAutoSell(ctx context.Context, cfg domain.AutoSellSettings) domain.ActionResult

	BuySeed(ctx context.Context, templateID string) domain.ActionResult
	BuyFertilizer(ctx context.Context, id string) domain.ActionResult
	BuySoil(ctx context.Context, id string) domain.ActionResult
	BuyUpgrade(ctx context.Context, kind domain.UpgradeKind) domain.ActionResult
	UnlockSlot(ctx context.Context) domain.ActionResult
	UnlockRack(ctx context.Context) domain.ActionResult
	UnlockChannel(ctx context.Context, id string) domain.ActionResult
	BuyWorker(ctx context.Context, id string) domain.ActionResult
	UpgradeWorker(ctx context.Context, id string) domain.ActionResult
	ToggleWorkerPause(ctx context.Context, id string) domain.ActionResult
}

// Clock returns the current wall-clock time
type Clock func() time.Time

type service struct {
	mu     sync.Mutex
	saveMu sync.Mutex // held from snapshot to repository write
	state  *domain.State
	engine *Engine
	repo   persistence.Repository
	codec  *persistence.Codec
	bus    event.Bus
	saveID string
	now    Clock
}

// NewService creates a game service. Until Load is called it runs a fresh game.
func NewService(engine *Engine, repo persistence.Repository, codec *persistence.Codec, bus event.Bus, saveID string, now Clock) Service {
	if bus == nil {
		bus = event.NopBus{}
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		state:  engine.NewState(now().UnixMilli()),
		engine: engine,
		repo:   repo,
		codec:  codec,
		bus:    bus,
		saveID: saveID,
		now:    now,
	}
}

func (s *service) nowMillis() int64 {
	return s.now().UnixMilli()
}

// Snapshot returns a copy of the live state
func (s *service) Snapshot() *domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Load replaces the live state with the stored save, migrated and caught up
// for the time spent offline. A missing save starts a new game.
func (s *service) Load(ctx context.Context) (*offline.Summary, error) {
	log := logger.FromContext(ctx)
	now := s.nowMillis()

	st, err := s.repo.Load(ctx, s.saveID)
	switch {
	case errors.Is(err, domain.ErrSaveNotFound):
		log.Info(LogMsgNewGame, "save_id", s.saveID)
		s.mu.Lock()
		s.state = s.engine.NewState(now)
		s.mu.Unlock()
		return nil, s.Save(ctx, TriggerNewGame)
	case err != nil:
		return nil, err
	}
	log.Info(LogMsgLoadedSave, "save_id", s.saveID, "coins", st.Coins, "level", st.Level)

	summary := offline.CatchUp(st, now)
	if summary.Coins > 0 || summary.Cycles > 0 {
		log.Info(LogMsgOfflineCatchUp, "elapsed_seconds", summary.ElapsedSeconds, "coins", summary.Coins, "cycles", summary.Cycles, "capped", summary.Capped)
		s.publish(ctx, event.New(event.OfflineResumed, event.OfflineResumedPayloadV1{
			ElapsedSeconds: summary.ElapsedSeconds,
			Capped:         summary.Capped,
			Coins:          summary.Coins,
			Cycles:         summary.Cycles,
		}))
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return &summary, nil
}

// Save writes the live snapshot to the repository. Writes are serialized so
// an older snapshot never lands after a newer one.
func (s *service) Save(ctx context.Context, trigger string) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.persist(ctx, trigger)
}

// persist writes the live snapshot. Callers hold saveMu.
func (s *service) persist(ctx context.Context, trigger string) error {
	st := s.Snapshot()
	if err := s.repo.Save(ctx, s.saveID, st); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "save_id", s.saveID, "trigger", trigger, "error", err)
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgSaved, "save_id", s.saveID, "trigger", trigger)
	s.publish(ctx, event.New(event.SaveWritten, event.SaveWrittenPayloadV1{SaveID: s.saveID, Trigger: trigger}))
	return nil
}

// Tick advances the live state by dt seconds
func (s *service) Tick(ctx context.Context, dt float64) TickReport {
	start := time.Now()
	dt = min(max(dt, 0), MaxTickSeconds)

	s.mu.Lock()
	before := s.state.Level
	next, rep := s.engine.ApplyTick(ctx, s.state, dt, s.nowMillis())
	s.state = next
	after := next.Level
	s.mu.Unlock()

	for _, h := range rep.Harvests {
		s.publishHarvest(ctx, h, true)
	}
	for _, a := range rep.Activities {
		s.publish(ctx, event.New(event.DealerActivity, event.DealerActivityPayloadV1{
			WorkerID: a.WorkerID,
			Kind:     string(a.Kind),
			Grams:    a.Grams,
			Revenue:  a.Revenue,
		}))
	}
	for _, sale := range rep.AutoSales {
		s.publishSale(ctx, sale, event.SourceAutoSell)
	}
	s.publishLevelUp(ctx, before, after)

	logger.FromContext(ctx).Debug(LogMsgTickApplied, "dt", dt, "harvested", rep.Harvested, "collected", rep.Collected, "auto_sales", len(rep.AutoSales))
	s.publish(ctx, event.New(event.TickCompleted, event.TickCompletedPayloadV1{
		DeltaSeconds:    dt,
		DurationSeconds: time.Since(start).Seconds(),
		Harvested:       rep.Harvested,
		Planted:         rep.Planted,
		Collected:       rep.Collected,
		AutoSales:       len(rep.AutoSales),
	}))
	return rep
}

// Export renders the live state as a portable string
func (s *service) Export(ctx context.Context) (string, error) {
	return s.codec.Export(s.Snapshot())
}

// Import replaces the live state with a decoded export. Corrupt input is
// rejected and the live state stays as it was.
func (s *service) Import(ctx context.Context, text string) domain.ActionResult {
	st, err := s.codec.Import(ctx, text)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgImportRejected, "error", err)
		return domain.Reject(err)
	}
	st.LastActive = s.nowMillis()

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgImported, "version", st.Version)
	if err := s.persist(ctx, TriggerImport); err != nil {
		return domain.Reject(err)
	}
	return domain.Ok(nil)
}

type transition func(st *domain.State) (*domain.State, domain.ActionResult)

// do runs one action under the lock and swaps in the result on success
func (s *service) do(ctx context.Context, action string, fn transition) (domain.ActionResult, *domain.State) {
	s.mu.Lock()
	before := s.state.Level
	next, res := fn(s.state)
	if res.Success {
		s.state = next
	}
	after := s.state.Level
	s.mu.Unlock()

	if !res.Success {
		logger.FromContext(ctx).Debug(LogMsgActionRejected, "action", action, "reason", res.Reason)
		return res, nil
	}
	s.publishLevelUp(ctx, before, after)
	return res, next
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", e.Type, "error", err)
	}
}

func (s *service) publishHarvest(ctx context.Context, h grow.HarvestResult, automated bool) {
	s.publish(ctx, event.New(event.HarvestCompleted, event.HarvestCompletedPayloadV1{
		SlotIndex: h.SlotIndex,
		Strain:    h.Bud.Strain,
		Rarity:    h.Bud.Rarity.String(),
		Grams:     h.Bud.Grams,
		Quality:   h.Bud.Quality,
		Crit:      h.Crit,
		Double:    h.Double,
		Drops:     len(h.Drops),
		Automated: automated,
	}))
}

func (s *service) publishSale(ctx context.Context, r sales.SaleResult, source string) {
	s.publish(ctx, event.New(event.SaleCompleted, event.SaleCompletedPayloadV1{
		ChannelID: r.ChannelID,
		Grams:     r.Grams,
		Revenue:   r.Revenue,
		Source:    source,
	}))
}

func (s *service) publishLevelUp(ctx context.Context, before, after int) {
	if after > before {
		s.publish(ctx, event.New(event.LevelUp, event.LevelUpPayloadV1{NewLevel: after, LevelsGained: after - before}))
	}
}
