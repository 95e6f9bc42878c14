package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "stdio", cfg.Server.Transport)
	assert.Equal(t, "https://api.sejm.gov.pl/eli", cfg.SejmAPI.BaseURL)
	assert.Equal(t, 10, cfg.DocStore.MaxDocuments)
	assert.Equal(t, 20, cfg.ResultStore.MaxEntries)
	assert.Equal(t, 5, cfg.Breaker.FailureThreshold)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadHonorsEnvOverrides(t *testing.T) {
	t.Setenv("SEJMKIT_TRANSPORT", "http")
	t.Setenv("SEJMKIT_PORT", "9000")
	t.Setenv("SEJMKIT_API_TIMEOUT_SECONDS", "45")
	t.Setenv("SEJMKIT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http", cfg.Server.Transport)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 45, cfg.SejmAPI.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsBadTransport(t *testing.T) {
	t.Setenv("SEJMKIT_TRANSPORT", "carrier-pigeon")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadIgnoresUnparsableIntAndFallsBackToDefault(t *testing.T) {
	t.Setenv("SEJMKIT_API_TIMEOUT_SECONDS", "not-a-number")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.SejmAPI.TimeoutSeconds)
}

func TestDumpYAMLProducesNonEmptyOutput(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	out, err := cfg.DumpYAML()
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "transport")
}
