package config_test

import (
	"testing"
	"time"

	"github.com/alkime/itranscript/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.Default().TickInterval, cfg.TickInterval)
	assert.Equal(t, 300*time.Millisecond, cfg.UploadStepInterval)
	assert.Equal(t, "strict", cfg.GatingMode)
	assert.True(t, cfg.RequirePatientLink)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("GATING_MODE", "lenient")
	t.Setenv("ID_STRATEGY", "counter")
	t.Setenv("CSP_MODE", "strict")
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("REQUIRE_PATIENT_LINK", "false")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "lenient", cfg.GatingMode)
	assert.Equal(t, "counter", cfg.IDStrategy)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.False(t, cfg.RequirePatientLink)
}

func TestLoadConfig_RejectsUnknownGating(t *testing.T) {
	t.Setenv("GATING_MODE", "open")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GATING_MODE")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.Default().Validate())

	cfg := config.Default()
	cfg.IDStrategy = "snowflake"
	cfg.RevealInterval = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID_STRATEGY")
	assert.Contains(t, err.Error(), "REVEAL_INTERVAL")
}

func TestBuildCSP(t *testing.T) {
	t.Parallel()

	assert.Contains(t, config.BuildCSP("strict"), "object-src 'none'")
	assert.Contains(t, config.BuildCSP("relaxed"), "'unsafe-inline'")
}
