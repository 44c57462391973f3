package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hypez33/grow-lab-zen-sub000/docs"
	"github.com/hypez33/grow-lab-zen-sub000/internal/bootstrap"
	"github.com/hypez33/grow-lab-zen-sub000/internal/config"
	"github.com/hypez33/grow-lab-zen-sub000/internal/game"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
	"github.com/hypez33/grow-lab-zen-sub000/internal/scheduler"
	"github.com/hypez33/grow-lab-zen-sub000/internal/server"
	"github.com/hypez33/grow-lab-zen-sub000/internal/sse"
	"github.com/hypez33/grow-lab-zen-sub000/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// @title Grow Lab API
// @description Tick-driven grow and sell simulation: grow slots, drying racks, sales channels, workers and dealers.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "grow-lab: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	storage, err := bootstrap.InitializeStorage(ctx, cfg, cat)
	if err != nil {
		return err
	}
	bus, hub := bootstrap.InitializeEventSystem(ctx)
	engine, _, err := bootstrap.NewEngine(ctx, cfg, cat)
	if err != nil {
		hub.Stop()
		storage.Close()
		return err
	}

	svc := game.NewService(engine, storage.Repo, storage.Codec, bus, cfg.SaveID, time.Now)
	summary, err := svc.Load(ctx)
	if err != nil {
		hub.Stop()
		storage.Close()
		return fmt.Errorf("failed to load save %q: %w", cfg.SaveID, err)
	}
	if summary != nil {
		logger.Info("Resumed save",
			"save_id", cfg.SaveID,
			"elapsed_seconds", summary.ElapsedSeconds,
			"coins", summary.Coins,
			"cycles", summary.Cycles)
	}

	pool := worker.NewPool(ctx, worker.DefaultWorkers, worker.DefaultQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.TickInterval, worker.NewTickJob(svc, time.Now))
	sched.Schedule(cfg.AutosaveInterval, worker.NewAutosaveJob(svc))

	if cfg.Version != "" {
		docs.SwaggerInfo.Version = cfg.Version
	}
	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		Version:        cfg.Version,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Events:         sse.Handler(hub),
	}, svc, storage.Ready())

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Events:    hub,
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Game:      svc,
		Storage:   storage,
	})
	return err
}
