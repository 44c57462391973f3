package bootstrap

import (
	"context"
	"log/slog"

	"github.com/hypez33/grow-lab-zen-sub000/internal/game"
)

type stopper interface {
	Stop()
}

type contextStopper interface {
	Stop(ctx context.Context) error
}

type finalSaver interface {
	Save(ctx context.Context, trigger string) error
}

// ShutdownComponents holds everything that needs an orderly stop. Nil
// fields are skipped.
type ShutdownComponents struct {
	Events    stopper
	Server    contextStopper
	Scheduler stopper
	Pool      stopper
	Game      finalSaver
	Storage   *Storage
}

// GracefulShutdown stops the components in order:
// 1. Event streams, so open SSE requests return
// 2. HTTP server (no new actions)
// 3. Scheduler, then worker pool (no new ticks, in-flight tick finishes)
// 4. Final save
// 5. Database pool
//
// Errors are logged and never interrupt the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Events != nil {
		c.Events.Stop()
	}
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedStop, "error", err)
		}
	}

	slog.Info(LogMsgStoppingBackground)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Game != nil {
		if err := c.Game.Save(ctx, game.TriggerShutdown); err != nil {
			slog.Error(LogMsgFinalSaveFailed, "error", err)
		}
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
