package genetic

import (
	"math"

	"github.com/google/uuid"

	"github.com/yourusername/salty-sim/internal/lookup"
	"github.com/yourusername/salty-sim/internal/record"
	"github.com/yourusername/salty-sim/internal/strategy"
)

// Comparison evaluates Score from each participant's point of view and backs the
// higher one with Fraction of the active pool. An earnings score is computed with the
// wager about to be placed. A Sum score is the same from both sides, so such a
// comparison never bets by itself; only the mines floor policy bets for it.
type Comparison struct {
	ID       uuid.UUID
	Score    Lookup
	Fraction float64
}

var (
	_ Gene[*Comparison] = (*Comparison)(nil)
	_ strategy.Strategy = (*Comparison)(nil)
)

// NewComparison creates a comparison strategy with a fresh ID
func NewComparison(score Lookup, fraction float64) *Comparison {
	return &Comparison{
		ID:       uuid.New(),
		Score:    score.Optimize(),
		Fraction: clampFraction(fraction),
	}
}

// RandomComparison creates a comparison strategy with a random score and fraction
func RandomComparison(e *Evolver) *Comparison {
	return NewComparison(RandomLookup(e), e.Rand().Float64())
}

// Choose recombines two comparison strategies into a new one
func (c *Comparison) Choose(other *Comparison, e *Evolver) *Comparison {
	if e.Mutates() {
		return RandomComparison(e)
	}
	return NewComparison(c.Score.Choose(other.Score, e), choose2(e, c.Fraction, other.Fraction))
}

// Bet implements strategy.Strategy
func (c *Comparison) Bet(sim strategy.Simulator, tier record.Tier, left, right string) strategy.Bet {
	amount := c.Fraction * sim.CurrentMoney()
	leftScore := c.score(sim, tier, left, right, amount)
	rightScore := c.score(sim, tier, right, left, amount)

	switch {
	case leftScore > rightScore:
		return strategy.Left(amount)
	case rightScore > leftScore:
		return strategy.Right(amount)
	default:
		return strategy.NoBet
	}
}

func (c *Comparison) score(sim strategy.Simulator, tier record.Tier, left, right string, wager float64) float64 {
	if c.Score.Kind != LookupCharacter || c.Score.Statistic.Dispatchable() {
		return c.Score.Calculate(sim, tier, left, right)
	}
	name, opponent := c.Score.Side.pick(left, right)
	records := c.Score.Filter.Records(opponent, sim.LookupCharacter(name))
	return lookup.Earnings(records, name, wager)
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
