package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// DBHost empty keeps saves in memory
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string `validate:"required_with=DBHost"`
	DBName     string `validate:"required_with=DBHost"`

	SaveID           string        `validate:"required,max=128"`
	TickInterval     time.Duration `validate:"min=10ms"`
	AutosaveInterval time.Duration `validate:"min=1s"`
	RNGSeed          int64
	CatalogPath      string
	SaveCacheSize    int           `validate:"min=1"`
	SaveCacheTTL     time.Duration `validate:"min=1s"`

	// APIKey empty leaves the HTTP API open
	APIKey         string
	TrustedProxies []string `validate:"dive,ip"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		DBUser:      getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:  getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:      getEnv(EnvDBHost, ""),
		DBPort:      getEnv(EnvDBPort, DefaultDBPort),
		DBName:      getEnv(EnvDBName, DefaultDBName),
		SaveID:      getEnv(EnvSaveID, DefaultSaveID),
		CatalogPath: getEnv(EnvCatalogPath, ""),
		APIKey:      getEnv(EnvAPIKey, ""),

		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		TickInterval:     getEnvAsDuration(EnvTickInterval, DefaultTickInterval),
		AutosaveInterval: getEnvAsDuration(EnvAutosaveInterval, DefaultAutosaveInterval),
		RNGSeed:          getEnvAsInt64(EnvRNGSeed, 0),
		SaveCacheSize:    getEnvAsInt(EnvSaveCacheSize, DefaultSaveCacheSize),
		SaveCacheTTL:     getEnvAsDuration(EnvSaveCacheTTL, DefaultSaveCacheTTL),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsesDatabase reports whether saves go to Postgres
func (c *Config) UsesDatabase() bool {
	return c.DBHost != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if v, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
