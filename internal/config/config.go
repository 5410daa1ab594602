package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultEnv        = "development"
	defaultDBPath     = "./dev.db"
	defaultPort       = "8080"
	defaultLogLevel   = "info"
	defaultVATPercent = 8.0
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env        string
	Port       string
	DBPath     string
	LogLevel   string
	VATPercent float64

	// Warnings collects problems found while loading, to be logged once a logger exists.
	Warnings []string
}

// IsDev reports whether the service runs outside production.
func (c Config) IsDev() bool {
	return c.Env != "production"
}

// Load reads the local .env file (if any) and the environment.
func Load() Config {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path.
func LoadFrom(dotenvPath string) Config {
	cfg := Config{}

	// Best-effort: production injects real environment variables.
	if err := loadDotEnv(dotenvPath); err != nil {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("load %s: %v", dotenvPath, err))
	}

	cfg.Env = getEnv("APP_ENV", defaultEnv)
	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DBPath = getEnv("DB_PATH", defaultDBPath)
	cfg.LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)
	cfg.VATPercent = defaultVATPercent

	if raw := os.Getenv("VAT_PERCENT"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("VAT_PERCENT %q is not numeric, using %.0f", raw, defaultVATPercent))
		case v < 0 || v > 100:
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("VAT_PERCENT %q must be between 0 and 100, using %.0f", raw, defaultVATPercent))
		default:
			cfg.VATPercent = v
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
