package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	// Database. Empty means the server runs on the seeded in-memory store.
	DatabaseURL string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Reporting
	ReportingTZ *time.Location
	FXRateUSD   decimal.Decimal
	FXRateEUR   decimal.Decimal
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:         getEnv("ENV", "development"),
	}

	tzName := getEnv("REPORTING_TZ", "Asia/Kolkata")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORTING_TZ %q: %w", tzName, err)
	}
	cfg.ReportingTZ = loc

	if cfg.FXRateUSD, err = getRate("FX_RATE_USD", "84"); err != nil {
		return nil, err
	}
	if cfg.FXRateEUR, err = getRate("FX_RATE_EUR", "92"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getRate(key, defaultValue string) (decimal.Decimal, error) {
	raw := getEnv(key, defaultValue)
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return rate, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
