package game

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypez33/grow-lab-zen-sub000/internal/catalog"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/event"
	"github.com/hypez33/grow-lab-zen-sub000/internal/persistence"
	"github.com/hypez33/grow-lab-zen-sub000/internal/testing/rngtest"
)

type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) ofType(t event.Type) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	svc   Service
	repo  *persistence.MemoryRepository
	codec *persistence.Codec
	rec   *recorder
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat := catalog.MustDefault()
	codec := persistence.NewCodec(func() *domain.State { return cat.NewState(0) })
	repo := persistence.NewMemoryRepository(codec)

	bus := event.NewMemoryBus()
	rec := &recorder{}
	for _, typ := range []event.Type{
		event.HarvestCompleted, event.SaleCompleted, event.DealerActivity, event.LevelUp,
		event.TickCompleted, event.OfflineResumed, event.SaveWritten,
	} {
		bus.Subscribe(typ, rec.handle)
	}

	f := &fixture{repo: repo, codec: codec, rec: rec, now: time.UnixMilli(testNow)}
	engine := NewEngine(cat, rngtest.Fixed{F: 0.5}, nil, nil)
	f.svc = NewService(engine, repo, codec, bus, "test", func() time.Time { return f.now })
	return f
}

func TestService_LoadStartsNewGame(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	summary, err := f.svc.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, summary)

	stored, err := f.repo.Load(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, 50, stored.Coins)
	require.Len(t, f.rec.ofType(event.SaveWritten), 1)
	assert.Equal(t, TriggerNewGame, f.rec.ofType(event.SaveWritten)[0].Payload.(event.SaveWrittenPayloadV1).Trigger)
}

func TestService_LoadResumesSave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved := catalog.MustDefault().NewState(testNow)
	saved.Coins = 777
	require.NoError(t, f.repo.Save(ctx, "test", saved))

	f.now = f.now.Add(time.Hour)
	summary, err := f.svc.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, int64(3600), summary.ElapsedSeconds)

	snap := f.svc.Snapshot()
	assert.GreaterOrEqual(t, snap.Coins, 777)
	assert.Equal(t, f.now.UnixMilli(), snap.LastActive)
}

func TestService_SnapshotIsACopy(t *testing.T) {
	f := newFixture(t)

	snap := f.svc.Snapshot()
	snap.Coins = 1_000_000
	assert.Equal(t, 50, f.svc.Snapshot().Coins)
}

func TestService_ActionsSwapOnlyOnSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.svc.BuyUpgrade(ctx, domain.UpgradeGrowthSpeed)
	assert.True(t, res.Success, res.Reason)
	assert.Equal(t, 0, f.svc.Snapshot().Coins)

	res = f.svc.BuySeed(ctx, "white_widow")
	assert.False(t, res.Success)
	assert.Contains(t, res.Reason, domain.ErrInsufficientFunds.Error())
	assert.Equal(t, 1, f.svc.Snapshot().Upgrades.Level(domain.UpgradeGrowthSpeed))
}

func TestService_HarvestPublishesEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved := catalog.MustDefault().NewState(testNow)
	seed := saved.Seeds[0]
	saved.Seeds = nil
	saved.GrowSlots[0].Seed = &seed
	saved.GrowSlots[0].Progress = domain.MaxProgress
	saved.GrowSlots[0].Stage = domain.StageHarvest
	saved.GrowSlots[0].BudMaturity = 100
	require.NoError(t, f.repo.Save(ctx, "test", saved))
	_, err := f.svc.Load(ctx)
	require.NoError(t, err)

	res := f.svc.Harvest(ctx, 0)
	require.True(t, res.Success, res.Reason)

	harvests := f.rec.ofType(event.HarvestCompleted)
	require.Len(t, harvests, 1)
	p := harvests[0].Payload.(event.HarvestCompletedPayloadV1)
	assert.Equal(t, 0, p.SlotIndex)
	assert.Equal(t, "white widow", p.Strain)
	assert.Equal(t, "common", p.Rarity)
	assert.False(t, p.Automated)
	assert.Positive(t, p.Grams)
	assert.Len(t, f.svc.Snapshot().Inventory, 1)
}

func TestService_TickClampsDelta(t *testing.T) {
	f := newFixture(t)

	f.svc.Tick(context.Background(), 10_000)
	ticks := f.rec.ofType(event.TickCompleted)
	require.Len(t, ticks, 1)
	assert.Equal(t, MaxTickSeconds, ticks[0].Payload.(event.TickCompletedPayloadV1).DeltaSeconds)
}

func TestService_ExportImport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.True(t, f.svc.BuySeed(ctx, "white_widow").Success)
	text, err := f.svc.Export(ctx)
	require.NoError(t, err)

	other := newFixture(t)
	res := other.svc.Import(ctx, text)
	require.True(t, res.Success, res.Reason)
	assert.Equal(t, 40, other.svc.Snapshot().Coins)
	assert.Len(t, other.svc.Snapshot().Seeds, 2)

	stored, err := other.repo.Load(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, 40, stored.Coins)
}

func TestService_ImportRejectsCorruptInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.True(t, f.svc.BuySeed(ctx, "white_widow").Success)
	before := f.svc.Snapshot()

	res := f.svc.Import(ctx, "definitely not a save")
	assert.False(t, res.Success)
	assert.Contains(t, res.Reason, domain.ErrCorruptSave.Error())
	assert.Equal(t, before, f.svc.Snapshot())
	assert.Empty(t, f.rec.ofType(event.SaveWritten))
}

// gatedRepo holds the first Save open until release is closed
type gatedRepo struct {
	*persistence.MemoryRepository
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepo) Save(ctx context.Context, saveID string, st *domain.State) error {
	first := false
	r.once.Do(func() { first = true })
	if first {
		close(r.entered)
		<-r.release
	}
	return r.MemoryRepository.Save(ctx, saveID, st)
}

func TestService_ImportWaitsForInFlightSave(t *testing.T) {
	ctx := context.Background()
	src := newFixture(t)
	require.True(t, src.svc.BuySeed(ctx, "white_widow").Success)
	text, err := src.svc.Export(ctx)
	require.NoError(t, err)

	cat := catalog.MustDefault()
	codec := persistence.NewCodec(func() *domain.State { return cat.NewState(0) })
	repo := &gatedRepo{
		MemoryRepository: persistence.NewMemoryRepository(codec),
		entered:          make(chan struct{}),
		release:          make(chan struct{}),
	}
	svc := NewService(NewEngine(cat, rngtest.Fixed{F: 0.5}, nil, nil), repo, codec, nil, "test",
		func() time.Time { return time.UnixMilli(testNow) })
	stale := svc.Snapshot().Coins
	require.NotEqual(t, 40, stale)

	autosaveDone := make(chan error, 1)
	go func() { autosaveDone <- svc.Save(ctx, TriggerAutosave) }()
	<-repo.entered

	importDone := make(chan domain.ActionResult, 1)
	go func() { importDone <- svc.Import(ctx, text) }()

	select {
	case <-importDone:
		t.Fatal("import wrote while an older snapshot was still being saved")
	case <-time.After(50 * time.Millisecond):
	}

	close(repo.release)
	require.NoError(t, <-autosaveDone)
	res := <-importDone
	require.True(t, res.Success, res.Reason)

	stored, err := repo.Load(ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, 40, stored.Coins)
	assert.Equal(t, 40, svc.Snapshot().Coins)
}

func TestService_TickLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	f := newFixture(t)
	f.svc.Tick(context.Background(), 1)

	assert.Contains(t, buf.String(), LogMsgTickApplied)
}
