package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// FeatureSource selects where class features come from
type FeatureSource string

const (
	FeatureSourceStatic FeatureSource = "static"
	FeatureSourceDND5E  FeatureSource = "dnd5e"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	DND5E   DND5EConfig
	Catalog CatalogConfig
}

// RedisConfig holds Redis-specific configuration.
// An empty URL selects the in-memory repository.
type RedisConfig struct {
	URL       string
	KeyPrefix string
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CatalogConfig struct {
	FeatureSource  FeatureSource
	RulesetVersion string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	timeout, err := getEnvAsDurationOrDefault("DND5E_HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Redis: RedisConfig{
			URL:       os.Getenv("REDIS_URL"),
			KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "character"),
		},
		DND5E: DND5EConfig{
			BaseURL: getEnvOrDefault("DND5E_API_URL", "https://www.dnd5eapi.co/api"),
			Timeout: timeout,
		},
		Catalog: CatalogConfig{
			FeatureSource:  FeatureSource(getEnvOrDefault("CATALOG_FEATURE_SOURCE", string(FeatureSourceStatic))),
			RulesetVersion: getEnvOrDefault("RULESET_VERSION", "phb-2014"),
		},
	}

	switch cfg.Catalog.FeatureSource {
	case FeatureSourceStatic, FeatureSourceDND5E:
	default:
		return nil, fmt.Errorf("CATALOG_FEATURE_SOURCE must be %q or %q, got %q",
			FeatureSourceStatic, FeatureSourceDND5E, cfg.Catalog.FeatureSource)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("45s") or plain seconds ("45")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	return d, nil
}
