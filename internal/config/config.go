// Package config provides configuration management for the salty-sim application.
package config

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Records    RecordsConfig    `mapstructure:"records"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// SimulationConfig represents bankroll floors and evolution settings
type SimulationConfig struct {
	SaltMineAmount      float64 `mapstructure:"salt_mine_amount" validate:"gt=0"`
	TournamentBase      float64 `mapstructure:"tournament_base" validate:"gt=0"`
	TournamentEntries   int     `mapstructure:"tournament_entries" validate:"gte=0"`
	TournamentEntryCost float64 `mapstructure:"tournament_entry_cost" validate:"gte=0"`
	MutationRate        float64 `mapstructure:"mutation_rate" validate:"gte=0,lte=1"`
	Seed                int64   `mapstructure:"seed"`
}

// RecordsConfig points at the exported match history
type RecordsConfig struct {
	Path string `mapstructure:"path"`
}

// MetricsConfig represents metrics output configuration
type MetricsConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	TextfilePath string `mapstructure:"textfile_path" validate:"required_if=Enabled true"`
}

// TournamentBalance returns the tournament floor: the base plus every entry fee
func (s SimulationConfig) TournamentBalance() float64 {
	return s.TournamentBase + float64(s.TournamentEntries)*s.TournamentEntryCost
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
