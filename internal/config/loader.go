// Package config provides configuration management for the salty-sim application.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. SALTY_SIM_SIMULATION_SEED
const EnvPrefix = "SALTY_SIM"

// setDefaults registers the values used when neither file nor environment sets a key
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "salty-sim")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("simulation.salt_mine_amount", 400.0)
	v.SetDefault("simulation.tournament_base", 1000.0)
	v.SetDefault("simulation.tournament_entries", 22)
	v.SetDefault("simulation.tournament_entry_cost", 25.0)
	v.SetDefault("simulation.mutation_rate", 0.01)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("records.path", "records.json")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile_path", "")
}

// Load reads the configuration from an optional YAML file, a .env file and the environment.
// It expands environment variable placeholders in the YAML file (${VAR_NAME}).
// A missing file is not an error; defaults and the environment still apply.
func Load(configPath string) (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	// Set environment variable prefix
	v.SetEnvPrefix(EnvPrefix)

	// Enable automatic binding of environment variables
	v.AutomaticEnv()

	// Replace dots with underscores in environment variable names
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			// Expand environment variables in the configuration (${VAR} syntax)
			expanded := os.ExpandEnv(string(data))
			if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal configuration into Config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadAndValidate loads the configuration and validates it
func LoadAndValidate(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
