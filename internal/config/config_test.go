package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/config"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"REDIS_URL", "REDIS_KEY_PREFIX", "DND5E_API_URL",
		"DND5E_HTTP_TIMEOUT", "CATALOG_FEATURE_SOURCE", "RULESET_VERSION",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "character", cfg.Redis.KeyPrefix)
	assert.Equal(t, "https://www.dnd5eapi.co/api", cfg.DND5E.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.DND5E.Timeout)
	assert.Equal(t, config.FeatureSourceStatic, cfg.Catalog.FeatureSource)
	assert.Equal(t, "phb-2014", cfg.Catalog.RulesetVersion)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("REDIS_KEY_PREFIX", "table-7")
	t.Setenv("DND5E_HTTP_TIMEOUT", "5s")
	t.Setenv("CATALOG_FEATURE_SOURCE", "dnd5e")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, "table-7", cfg.Redis.KeyPrefix)
	assert.Equal(t, 5*time.Second, cfg.DND5E.Timeout)
	assert.Equal(t, config.FeatureSourceDND5E, cfg.Catalog.FeatureSource)
}

func TestLoadTimeoutInSeconds(t *testing.T) {
	clearEnv(t)
	t.Setenv("DND5E_HTTP_TIMEOUT", "12")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Second, cfg.DND5E.Timeout)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_FEATURE_SOURCE", "homebrew")
	_, err := config.Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("DND5E_HTTP_TIMEOUT", "soon")
	_, err = config.Load()
	assert.Error(t, err)
}
