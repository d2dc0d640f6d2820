package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Pricing  PricingConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// PricingConfig selects and tunes the price source.
// Source is "simulated" or "live"; Seed only applies to the simulated
// source. RefreshSchedule is an optional cron expression; when empty no
// background refresh runs and the session gate governs cadence.
type PricingConfig struct {
	Source          string
	Seed            int64
	RefreshSchedule string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Price source names accepted in PRICE_SOURCE.
const (
	PriceSourceSimulated = "simulated"
	PriceSourceLive      = "live"
)

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	seed, err := strconv.ParseInt(getEnv("PRICE_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICE_SEED: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/networth.db"),
		},
		Pricing: PricingConfig{
			Source:          getEnv("PRICE_SOURCE", PriceSourceSimulated),
			Seed:            seed,
			RefreshSchedule: getEnv("PRICE_REFRESH_SCHEDULE", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	if config.Pricing.Source != PriceSourceSimulated && config.Pricing.Source != PriceSourceLive {
		return nil, fmt.Errorf("invalid PRICE_SOURCE %q: must be %q or %q",
			config.Pricing.Source, PriceSourceSimulated, PriceSourceLive)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
