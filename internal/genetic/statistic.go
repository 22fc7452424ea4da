package genetic

import (
	"fmt"
	"strings"

	"github.com/yourusername/salty-sim/internal/lookup"
	"github.com/yourusername/salty-sim/internal/record"
)

// Statistic selects which aggregate a lookup computes
type Statistic uint8

const (
	StatisticUpsets Statistic = iota
	StatisticFavored
	StatisticWinrate
	StatisticOdds
	StatisticEarnings
	StatisticBetAmount
	StatisticDuration
	StatisticMatchesLen

	statisticCount = int(StatisticMatchesLen) + 1
)

var statisticNames = [...]string{
	StatisticUpsets:     "upsets",
	StatisticFavored:    "favored",
	StatisticWinrate:    "winrate",
	StatisticOdds:       "odds",
	StatisticEarnings:   "earnings",
	StatisticBetAmount:  "bet_amount",
	StatisticDuration:   "duration",
	StatisticMatchesLen: "matches_len",
}

var _ Gene[Statistic] = Statistic(0)

// String returns the snake_case statistic name
func (s Statistic) String() string {
	if int(s) < len(statisticNames) {
		return statisticNames[s]
	}
	return fmt.Sprintf("statistic(%d)", uint8(s))
}

// ParseStatistic resolves a statistic by its name
func ParseStatistic(name string) (Statistic, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range statisticNames {
		if candidate == name {
			return Statistic(i), nil
		}
	}
	return 0, fmt.Errorf("unknown statistic %q", name)
}

// Statistics returns every statistic in declaration order
func Statistics() []Statistic {
	all := make([]Statistic, statisticCount)
	for i := range all {
		all[i] = Statistic(i)
	}
	return all
}

// Dispatchable reports whether Lookup can compute s; earnings needs a wager size
func (s Statistic) Dispatchable() bool {
	return s != StatisticEarnings
}

// RandomStatistic picks a statistic uniformly
func RandomStatistic(e *Evolver) Statistic {
	return Statistic(e.Intn(statisticCount))
}

// Choose recombines two statistics
func (s Statistic) Choose(other Statistic, e *Evolver) Statistic {
	if e.Mutates() {
		return RandomStatistic(e)
	}
	return choose2(e, s, other)
}

// Lookup computes the statistic for name over records.
// It panics for StatisticEarnings: call lookup.Earnings with an explicit wager instead.
func (s Statistic) Lookup(name string, records []record.Record) float64 {
	switch s {
	case StatisticUpsets:
		return lookup.Upsets(records, name)
	case StatisticFavored:
		return lookup.Favored(records, name)
	case StatisticWinrate:
		return lookup.Winrate(records, name)
	case StatisticOdds:
		return lookup.Odds(records, name)
	case StatisticEarnings:
		panic("genetic: earnings cannot be computed without a wager size; use lookup.Earnings")
	case StatisticBetAmount:
		return lookup.BetAmount(records, name)
	case StatisticDuration:
		return lookup.Duration(records)
	case StatisticMatchesLen:
		return lookup.MatchesLen(records)
	default:
		panic(fmt.Sprintf("genetic: unknown statistic %d", uint8(s)))
	}
}
