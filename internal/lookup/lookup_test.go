package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/salty-sim/internal/record"
)

func match(left string, leftBet float64, right string, rightBet float64, winner record.Winner, duration uint32) record.Record {
	return record.Record{
		Left:     record.Character{Name: left, BetAmount: leftBet},
		Right:    record.Character{Name: right, BetAmount: rightBet},
		Winner:   winner,
		Mode:     record.ModeMatchmaking,
		Duration: duration,
	}
}

func history() []record.Record {
	return []record.Record{
		match("A", 10, "B", 20, record.WinnerLeft, 60),  // A underdog, wins
		match("C", 30, "A", 10, record.WinnerLeft, 120), // A underdog, loses
		match("A", 40, "D", 10, record.WinnerLeft, 90),  // A favored, wins
		match("E", 25, "A", 25, record.WinnerRight, 30), // even, A wins
	}
}

func TestEmptyDefaults(t *testing.T) {
	var empty []record.Record

	assert.Equal(t, 0.5, Winrate(empty, "A"))
	assert.Equal(t, 0.0, Upsets(empty, "A"))
	assert.Equal(t, 0.0, Favored(empty, "A"))
	assert.Equal(t, 0.0, BetAmount(empty, "A"))
	assert.Equal(t, 0.0, Odds(empty, "A"))
	assert.Equal(t, 0.0, Duration(empty))
	assert.Equal(t, 0.0, MatchesLen(empty))
	assert.Equal(t, 0.0, Earnings(empty, "A", 100))
}

func TestWinrate(t *testing.T) {
	assert.InDelta(t, 0.75, Winrate(history(), "A"), 1e-9)
	assert.InDelta(t, 0.0, Winrate(history(), "Z"), 1e-9)
}

func TestWinrateBounds(t *testing.T) {
	records := history()
	for k := 1; k <= len(records); k++ {
		for _, name := range []string{"A", "B", "C", "Z"} {
			w := Winrate(records[:k], name)
			assert.GreaterOrEqual(t, w, 0.0)
			assert.LessOrEqual(t, w, 1.0)
		}
	}
}

func TestUpsetsAndFavoredAreNameBased(t *testing.T) {
	assert.InDelta(t, 0.5, Upsets(history(), "A"), 1e-9)
	assert.InDelta(t, 0.25, Favored(history(), "A"), 1e-9)

	// identity, not position, decides the outcome
	swapped := make([]record.Record, 0, len(history()))
	for _, r := range history() {
		swapped = append(swapped, r.Swap())
	}
	assert.InDelta(t, Upsets(history(), "A"), Upsets(swapped, "A"), 1e-9)
	assert.InDelta(t, Favored(history(), "A"), Favored(swapped, "A"), 1e-9)
}

func TestBetAmountAndOdds(t *testing.T) {
	assert.InDelta(t, (10.0+10+40+25)/4, BetAmount(history(), "A"), 1e-9)
	assert.InDelta(t, (2.0+3+0.25+1)/4, Odds(history(), "A"), 1e-9)
}

func TestDurationAndMatchesLen(t *testing.T) {
	assert.InDelta(t, 75.0, Duration(history()), 1e-9)
	for k := 0; k <= len(history()); k++ {
		assert.Equal(t, float64(k), MatchesLen(history()[:k]))
	}
}

func TestEarnings(t *testing.T) {
	records := []record.Record{
		match("A", 10, "B", 20, record.WinnerLeft, 0),
		match("C", 30, "A", 10, record.WinnerLeft, 0),
		match("A", 5, "A", 5, record.WinnerLeft, 0),
	}
	expected := 10*(20.0/(10+10)) - 10
	assert.InDelta(t, expected, Earnings(records, "A", 10), 1e-9)
}

func TestAgainstFiltersBeforeAggregation(t *testing.T) {
	records := history()
	filtered := Against(records, "C")

	assert.Len(t, filtered, 1)
	assert.Equal(t, 0.0, Winrate(filtered, "A"))
	assert.Len(t, records, 4, "input must not be mutated")
}

func TestOrderIndependence(t *testing.T) {
	records := history()
	reversed := make([]record.Record, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}
	assert.InDelta(t, Winrate(records, "A"), Winrate(reversed, "A"), 1e-12)
	assert.InDelta(t, Odds(records, "A"), Odds(reversed, "A"), 1e-12)
	assert.InDelta(t, Earnings(records, "A", 7), Earnings(reversed, "A", 7), 1e-12)
}
