package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validConfigPath       = "testdata/valid_config.yaml"
	expansionConfigPath   = "testdata/expansion_config.yaml"
	invalidConfigPath     = "testdata/invalid_config.yaml"
	nonexistentConfigPath = "testdata/nonexistent_config.yaml"
	testRecordsPath       = "TEST_RECORDS_PATH"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := LoadAndValidate(validConfigPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "salty-sim", cfg.App.Name)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 400.0, cfg.Simulation.SaltMineAmount)
	assert.Equal(t, 0.05, cfg.Simulation.MutationRate)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 1550.0, cfg.Simulation.TournamentBalance())
	assert.Equal(t, "data/records.json", cfg.Records.Path)
	assert.True(t, cfg.Metrics.Enabled)
}

// TestLoadConfigFileNotFoundUsesDefaults tests that a missing file falls back to defaults
func TestLoadConfigFileNotFoundUsesDefaults(t *testing.T) {
	cfg, err := LoadAndValidate(nonexistentConfigPath)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 400.0, cfg.Simulation.SaltMineAmount)
	assert.Equal(t, 1000.0+22*25, cfg.Simulation.TournamentBalance())
	assert.Equal(t, 0.01, cfg.Simulation.MutationRate)
	assert.False(t, cfg.Metrics.Enabled)
}

// TestLoadConfigExpandsEnvironment tests ${VAR} placeholders in the YAML file
func TestLoadConfigExpandsEnvironment(t *testing.T) {
	t.Setenv(testRecordsPath, "/srv/records.json")

	cfg, err := Load(expansionConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "/srv/records.json", cfg.Records.Path)
}

// TestLoadConfigEnvironmentOverride tests SALTY_SIM_ prefixed overrides
func TestLoadConfigEnvironmentOverride(t *testing.T) {
	t.Setenv("SALTY_SIM_SIMULATION_SEED", "7")
	t.Setenv("SALTY_SIM_APP_LOG_LEVEL", "warn")

	cfg, err := LoadAndValidate(validConfigPath)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

// TestValidateRejectsInvalidConfig tests struct tag and custom rule failures
func TestValidateRejectsInvalidConfig(t *testing.T) {
	_, err := LoadAndValidate(invalidConfigPath)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "Environment")
	assert.Contains(t, err.Error(), "SaltMineAmount")
	assert.Contains(t, err.Error(), "MutationRate")
}

// TestValidateMetricsTextfileRequired tests the conditional metrics path
func TestValidateMetricsTextfileRequired(t *testing.T) {
	cfg, err := Load(nonexistentConfigPath)
	require.NoError(t, err)

	cfg.Metrics.Enabled = true
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TextfilePath")
}

// TestValidateCrossField tests the tournament floor rule
func TestValidateCrossField(t *testing.T) {
	cfg, err := Load(nonexistentConfigPath)
	require.NoError(t, err)

	cfg.Simulation.TournamentBase = 10
	cfg.Simulation.TournamentEntries = 0
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tournament balance")
}

// TestValidateNamesAllowedValues tests that enum failures list the accepted values
func TestValidateNamesAllowedValues(t *testing.T) {
	cfg, err := Load(nonexistentConfigPath)
	require.NoError(t, err)

	cfg.App.LogLevel = "loud"
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.App.LogLevel")
	assert.Contains(t, err.Error(), "debug, info, warn, error")

	cfg.App.LogLevel = "debug"
	cfg.Simulation.MutationRate = 1.5
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MutationRate must be lte 1")
}
