package bootstrap

import (
	"log/slog"
	"slices"

	"github.com/hypez33/grow-lab-zen-sub000/internal/config"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
)

// SetupLogger initializes the default slog logger from the app config and
// logs the startup banner plus any configuration warnings.
func SetupLogger(cfg *config.Config) {
	addSource := slices.Contains(devEnvironments, cfg.Environment)

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	logger.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel)
	logger.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	logger.Info(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"port", cfg.Port,
		"save_id", cfg.SaveID,
		"tick_interval", cfg.TickInterval,
		"autosave_interval", cfg.AutosaveInterval)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
