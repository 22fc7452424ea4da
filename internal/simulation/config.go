package simulation

import (
	"errors"
	"fmt"

	"github.com/yourusername/salty-sim/internal/config"
)

// ErrInvalidConfig is returned for unusable bankroll floors
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds the bankroll floors. A pool at or below its floor is "in the mines":
// bets are forced all-in, and a pool that drops to zero is reset to the floor.
type Config struct {
	SaltMineAmount    float64
	TournamentBalance float64
}

// DefaultConfig returns the floors used by the live site
func DefaultConfig() Config {
	return Config{
		SaltMineAmount:    400,
		TournamentBalance: 1000 + 22*25,
	}
}

// FromConfig converts app config to simulation config
func FromConfig(cfg *config.SimulationConfig) (Config, error) {
	if cfg == nil {
		return Config{}, fmt.Errorf("%w: simulation config is required", ErrInvalidConfig)
	}
	sc := Config{
		SaltMineAmount:    cfg.SaltMineAmount,
		TournamentBalance: cfg.TournamentBalance(),
	}
	return sc, sc.Validate()
}

// Validate validates the floors
func (c Config) Validate() error {
	if c.SaltMineAmount <= 0 {
		return fmt.Errorf("%w: salt mine amount must be positive", ErrInvalidConfig)
	}
	if c.TournamentBalance <= 0 {
		return fmt.Errorf("%w: tournament balance must be positive", ErrInvalidConfig)
	}
	return nil
}
