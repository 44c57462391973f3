package worker

import (
	"context"
	"sync"
	"time"

	"github.com/hypez33/grow-lab-zen-sub000/internal/game"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
)

// Ticker is the slice of the game service the tick job drives
type Ticker interface {
	Tick(ctx context.Context, dt float64) game.TickReport
}

// Saver is the slice of the game service the autosave job drives
type Saver interface {
	Save(ctx context.Context, trigger string) error
}

// TickJob advances the simulation by the wall-clock time since its last run
type TickJob struct {
	game Ticker
	now  func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewTickJob creates a tick job whose first step measures from now
func NewTickJob(g Ticker, now func() time.Time) *TickJob {
	if now == nil {
		now = time.Now
	}
	return &TickJob{game: g, now: now, last: now()}
}

func (j *TickJob) Process(ctx context.Context) error {
	j.mu.Lock()
	now := j.now()
	dt := now.Sub(j.last).Seconds()
	j.last = now
	j.mu.Unlock()

	if dt <= 0 {
		return nil
	}
	j.game.Tick(ctx, dt)
	return nil
}

// AutosaveJob writes the live snapshot on an interval
type AutosaveJob struct {
	game Saver
}

// NewAutosaveJob creates an autosave job
func NewAutosaveJob(g Saver) *AutosaveJob {
	return &AutosaveJob{game: g}
}

func (j *AutosaveJob) Process(ctx context.Context) error {
	if err := j.game.Save(ctx, game.TriggerAutosave); err != nil {
		logger.FromContext(ctx).Warn(LogMsgAutosaveFailed, "error", err)
		return err
	}
	return nil
}
