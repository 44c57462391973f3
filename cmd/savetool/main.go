// Command savetool inspects and maintains the stored game save.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hypez33/grow-lab-zen-sub000/internal/bootstrap"
	"github.com/hypez33/grow-lab-zen-sub000/internal/config"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := UI{w: os.Stderr}

	cfg, err := config.Load()
	if err != nil {
		ui.Error("%v", err)
		return 1
	}
	logger.InitLoggerWithWriter(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		ui.Error("%v", err)
		return 1
	}
	storage, err := bootstrap.InitializeStorage(ctx, cfg, cat)
	if err != nil {
		ui.Error("%v", err)
		return 1
	}
	defer storage.Close()
	if storage.DB == nil {
		ui.Warning("DB_HOST is not set, working on an empty in-memory store")
	}

	e := &env{
		saveID:  cfg.SaveID,
		storage: storage,
		ui:      ui,
		out:     os.Stdout,
		in:      os.Stdin,
		now:     time.Now,
	}
	return dispatch(ctx, newRegistry(e), e.ui, args)
}

func newRegistry(e *env) *Registry {
	r := NewRegistry()
	r.Register(&MigrateCommand{env: e})
	r.Register(&ExportCommand{env: e})
	r.Register(&ImportCommand{env: e})
	r.Register(&ResetCommand{env: e})
	r.Register(&InspectCommand{env: e})
	r.Register(&OfflineCommand{env: e})
	return r
}

func dispatch(ctx context.Context, r *Registry, ui UI, args []string) int {
	if len(args) < 1 {
		r.PrintHelp(ui.w)
		return 1
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		ui.Error("unknown command: %s", args[0])
		r.PrintHelp(ui.w)
		return 1
	}
	if err := cmd.Run(ctx, args[1:]); err != nil {
		ui.Error("%s: %v", cmd.Name(), err)
		return 1
	}
	return 0
}
