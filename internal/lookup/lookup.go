// Package lookup computes per-party statistics over a slice of historical records.
//
// Every function is pure and leaves its input untouched. Aggregations over an empty
// slice return a fixed default instead of dividing by zero.
package lookup

import (
	"github.com/yourusername/salty-sim/internal/record"
)

// percentage returns the share of records accepted by matches, or def when empty
func percentage(records []record.Record, def float64, matches func(record.Record) bool) float64 {
	if len(records) == 0 {
		return def
	}
	hits := 0.0
	for _, r := range records {
		if matches(r) {
			hits++
		}
	}
	return hits / float64(len(records))
}

// mean folds f over records and divides by the count; an empty slice yields 0
func mean(records []record.Record, f func(record.Record) float64) float64 {
	total := 0.0
	for _, r := range records {
		total += f(r)
	}
	if len(records) == 0 {
		return total
	}
	return total / float64(len(records))
}

// ownWager returns the amount on name's side and on the opposing side
func ownWager(r record.Record, name string) (own, opponent float64) {
	if r.Left.Name == name {
		return r.Left.BetAmount, r.Right.BetAmount
	}
	return r.Right.BetAmount, r.Left.BetAmount
}

// Upsets is the fraction of records where name was the less favored side.
// An empty slice yields 0.0; whether 0.5 would be a better prior is still undecided.
func Upsets(records []record.Record, name string) float64 {
	return percentage(records, 0.0, func(r record.Record) bool {
		return (r.Left.Name == name && r.Right.BetAmount/r.Left.BetAmount > 1.0) ||
			(r.Right.Name == name && r.Left.BetAmount/r.Right.BetAmount > 1.0)
	})
}

// Favored is the fraction of records where name was the more favored side
func Favored(records []record.Record, name string) float64 {
	return percentage(records, 0.0, func(r record.Record) bool {
		return (r.Left.Name == name && r.Left.BetAmount/r.Right.BetAmount > 1.0) ||
			(r.Right.Name == name && r.Right.BetAmount/r.Left.BetAmount > 1.0)
	})
}

// Winrate is the fraction of records name won, 0.5 when there is no history
func Winrate(records []record.Record, name string) float64 {
	return percentage(records, 0.5, func(r record.Record) bool {
		return r.IsWinner(name)
	})
}

// BetAmount is the mean amount wagered on name's side
func BetAmount(records []record.Record, name string) float64 {
	return mean(records, func(r record.Record) float64 {
		own, _ := ownWager(r, name)
		return own
	})
}

// Odds is the mean of opponent wager divided by name's wager
func Odds(records []record.Record, name string) float64 {
	return mean(records, func(r record.Record) float64 {
		own, opponent := ownWager(r, name)
		return opponent / own
	})
}

// Duration is the mean match length in seconds
func Duration(records []record.Record) float64 {
	return mean(records, func(r record.Record) float64 {
		return float64(r.Duration)
	})
}

// MatchesLen is the number of records
func MatchesLen(records []record.Record) float64 {
	return float64(len(records))
}

// Earnings simulates a fixed wager of betAmount on name in every non-mirror record
// and returns the net result, paying out against the pool the wager would have joined.
func Earnings(records []record.Record, name string, betAmount float64) float64 {
	earnings := 0.0
	for _, r := range records {
		if r.IsMirror() {
			continue
		}
		switch r.Winner {
		case record.WinnerLeft:
			if r.Left.Name == name {
				earnings += betAmount * (r.Right.BetAmount / (r.Left.BetAmount + betAmount))
			} else {
				earnings -= betAmount
			}
		case record.WinnerRight:
			if r.Right.Name == name {
				earnings += betAmount * (r.Left.BetAmount / (r.Right.BetAmount + betAmount))
			} else {
				earnings -= betAmount
			}
		}
	}
	return earnings
}

// Against returns the records in which opponent also fought, preserving order
func Against(records []record.Record, opponent string) []record.Record {
	filtered := make([]record.Record, 0, len(records))
	for _, r := range records {
		if r.Involves(opponent) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
