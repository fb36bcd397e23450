// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load resolves once per process, so a single test exercises the whole
// environment surface.
func TestLoadReadsEnvironmentWithDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORE_DIR", dir)
	t.Setenv("EXPORT_OUTPUT_DIR", dir)
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SERVER_PORT", "9191")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, dir, cfg.Store.Dir)

	// untouched keys keep their defaults
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, 500, cfg.Analysis.DebounceMillis)
	assert.Equal(t, "Confidential", cfg.Export.WatermarkText)
}
