// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port     int
	LogLevel string

	// DBPath is the SQLite database. The default keeps session data in
	// process memory only.
	DBPath string

	SessionSecret string
	SessionTTL    time.Duration

	OCRLanguages      []string
	OCRMaxConcurrency int
	LineTolerance     float64

	// OTLPEndpoint enables trace export when set.
	OTLPEndpoint string
}

const devSessionSecret = "dutchie-dev-secret-change-me"

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the configuration from the environment, applying defaults for
// anything unset. A malformed number or duration is an error.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBPath:        getEnv("DB_PATH", ":memory:"),
		SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),
		OTLPEndpoint:  getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getEnv("PORT", "8080")); err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "12h")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.OCRMaxConcurrency, err = strconv.Atoi(getEnv("OCR_MAX_CONCURRENCY", "4")); err != nil {
		return nil, fmt.Errorf("invalid OCR_MAX_CONCURRENCY: %w", err)
	}
	if cfg.LineTolerance, err = strconv.ParseFloat(getEnv("LINE_TOLERANCE", "10"), 64); err != nil {
		return nil, fmt.Errorf("invalid LINE_TOLERANCE: %w", err)
	}

	for _, lang := range strings.Split(getEnv("OCR_LANGUAGES", "eng"), ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			cfg.OCRLanguages = append(cfg.OCRLanguages, lang)
		}
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.OCRMaxConcurrency < 1 {
		cfg.OCRMaxConcurrency = 1
	}
	return cfg, nil
}

// UsingDevSecret reports whether SESSION_SECRET was left unset.
func (c *Config) UsingDevSecret() bool {
	return c.SessionSecret == devSessionSecret
}
