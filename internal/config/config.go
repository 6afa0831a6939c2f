// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends selectable via SC_STORE.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds all runtime settings for the service.
type Config struct {
	ListenAddr    string
	DBPath        string
	Store         string
	JWTSecret     string
	TokenDuration time.Duration
	DevMode       bool
}

// Load reads configuration from the environment, applying defaults.
// A .env file in the working directory is honored if present.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:    getEnv("SC_LISTEN_ADDR", ":8080"),
		DBPath:        getEnv("SC_DB_PATH", ""),
		Store:         getEnv("SC_STORE", StoreSQLite),
		JWTSecret:     getEnv("SC_JWT_SECRET", ""),
		TokenDuration: 24 * time.Hour,
		DevMode:       os.Getenv("SC_DEV_MODE") == "1",
	}

	if v := os.Getenv("SC_TOKEN_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid SC_TOKEN_TTL_MINUTES %q", v)
		}
		cfg.TokenDuration = time.Duration(minutes) * time.Minute
	}

	if cfg.Store != StoreSQLite && cfg.Store != StoreMemory {
		return nil, fmt.Errorf("invalid SC_STORE %q (want %s or %s)", cfg.Store, StoreSQLite, StoreMemory)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("SC_JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
