package bootstrap

import "time"

// Log messages
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting grow lab"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"

	LogMsgCatalogLoaded      = "Catalog loaded"
	LogMsgRNGSeeded          = "Random source seeded"
	LogMsgUsingMemoryStore   = "DB_HOST not set, saves are kept in memory"
	LogMsgUsingPostgresStore = "Saves are stored in postgres"
	LogMsgEventSystemReady   = "Event system initialized"
	LogMsgShuttingDownServer = "Shutting down server..."
	LogMsgServerForcedStop   = "Server forced to shutdown"
	LogMsgStoppingBackground = "Stopping tick scheduler and worker pool"
	LogMsgFinalSaveFailed    = "Final save failed"
	LogMsgServerStopped      = "Server stopped"
)

// Error messages
const (
	ErrMsgFailedLoadCatalog = "failed to load catalog"
	ErrMsgFailedConnectDB   = "failed to connect to database"
	ErrMsgFailedMigrateDB   = "failed to migrate database"
)

// Database pool sizing for the single-save host
const (
	DBMaxConnections = 4
	DBMaxIdleTime    = 5 * time.Minute
	DBMaxLifetime    = time.Hour
)

// Environment names that get source locations in log lines
var devEnvironments = []string{"dev", "development"}
