// Package config reads assetdeck configuration from environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Env var names. Tests override these to point at temp dirs.
const (
	EnvAddr         = "ASSETDECK_ADDR"
	EnvDBPath       = "ASSETDECK_DB_PATH"
	EnvDataDir      = "ASSETDECK_DATA_DIR"
	EnvServerURL    = "ASSETDECK_SERVER_URL"
	EnvOTLPEndpoint = "ASSETDECK_OTLP_ENDPOINT"
	EnvPageSize     = "ASSETDECK_PAGE_SIZE"
	EnvDebug        = "ASSETDECK_DEBUG"
)

// Defaults.
const (
	DefaultAddr      = ":8199"
	DefaultServerURL = "http://localhost:8199"
	DefaultPageSize  = 8
	MaxPageSize      = 25
)

// Config holds server and client settings.
type Config struct {
	Addr         string // HTTP listen address
	DBPath       string // SQLite database file
	DataDir      string // image blob directory
	ServerURL    string // base URL the TUI client talks to
	OTLPEndpoint string // OTLP/HTTP collector endpoint; empty disables export
	PageSize     int    // default page size for list endpoints
	Debug        bool
}

// Load reads configuration from the environment, filling defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:         getenv(EnvAddr, DefaultAddr),
		DBPath:       os.Getenv(EnvDBPath),
		DataDir:      os.Getenv(EnvDataDir),
		ServerURL:    getenv(EnvServerURL, DefaultServerURL),
		OTLPEndpoint: os.Getenv(EnvOTLPEndpoint),
		PageSize:     DefaultPageSize,
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = filepath.Join(home, ".assetdeck")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "assetdeck.db")
	}

	if s := os.Getenv(EnvPageSize); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= MaxPageSize {
			cfg.PageSize = n
		}
	}
	cfg.Debug, _ = strconv.ParseBool(os.Getenv(EnvDebug))
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
