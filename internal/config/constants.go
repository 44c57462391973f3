package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvDBUser           = "DB_USER"
	EnvDBPassword       = "DB_PASSWORD"
	EnvDBHost           = "DB_HOST"
	EnvDBPort           = "DB_PORT"
	EnvDBName           = "DB_NAME"
	EnvSaveID           = "SAVE_ID"
	EnvTickInterval     = "TICK_INTERVAL"
	EnvAutosaveInterval = "AUTOSAVE_INTERVAL"
	EnvRNGSeed          = "RNG_SEED"
	EnvCatalogPath      = "CATALOG_PATH"
	EnvSaveCacheSize    = "SAVE_CACHE_SIZE"
	EnvSaveCacheTTL     = "SAVE_CACHE_TTL"
	EnvAPIKey           = "API_KEY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "grow-lab"
	DefaultVersion     = "dev"
	DefaultDBUser      = "postgres"
	DefaultDBPassword  = "postgres"
	DefaultDBPort      = "5432"
	DefaultDBName      = "growlab"
	DefaultSaveID      = "default"

	DefaultTickInterval     = time.Second
	DefaultAutosaveInterval = 30 * time.Second
	DefaultSaveCacheSize    = 16
	DefaultSaveCacheTTL     = 10 * time.Minute
)

// InsecureDBPassword is the example password shipped in .env.example
const InsecureDBPassword = "change_this_secure_password"
