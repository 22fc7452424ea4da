package record

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		Left:     Character{Name: "A", BetAmount: 10},
		Right:    Character{Name: "B", BetAmount: 20},
		Winner:   WinnerLeft,
		Mode:     ModeMatchmaking,
		Tier:     "S",
		Duration: 90,
	}
}

func TestSwapFlipsSidesAndWinner(t *testing.T) {
	r := sampleRecord()
	swapped := r.Swap()

	assert.Equal(t, "B", swapped.Left.Name)
	assert.Equal(t, "A", swapped.Right.Name)
	assert.Equal(t, WinnerRight, swapped.Winner)
	assert.True(t, swapped.IsWinner("A"))
	assert.Equal(t, r, swapped.Swap())
}

func TestShuffleProducesBothOrientations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := sampleRecord()

	seenSwapped, seenKept := false, false
	for i := 0; i < 64; i++ {
		shuffled := r.Shuffle(rng)
		assert.True(t, shuffled.IsWinner("A"), "winner identity must survive a shuffle")
		if shuffled.Left.Name == "A" {
			seenKept = true
		} else {
			seenSwapped = true
		}
	}
	assert.True(t, seenKept)
	assert.True(t, seenSwapped)
}

func TestIsMirrorAndInvolves(t *testing.T) {
	r := sampleRecord()
	assert.False(t, r.IsMirror())
	assert.True(t, r.Involves("B"))
	assert.False(t, r.Involves("C"))

	r.Right.Name = "A"
	assert.True(t, r.IsMirror())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Record)
		shouldHave string
	}{
		{name: "valid", mutate: func(*Record) {}},
		{name: "zero wager", mutate: func(r *Record) { r.Left.BetAmount = 0 }, shouldHave: "Left.BetAmount"},
		{name: "negative wager", mutate: func(r *Record) { r.Right.BetAmount = -3 }, shouldHave: "Right.BetAmount"},
		{name: "missing name", mutate: func(r *Record) { r.Right.Name = "" }, shouldHave: "Right.Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRecord()
			tt.mutate(&r)
			err := r.Validate()
			if tt.shouldHave == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRecord)
			assert.Contains(t, err.Error(), tt.shouldHave)
		})
	}
}

func TestValidateAllReportsIndex(t *testing.T) {
	bad := sampleRecord()
	bad.Left.BetAmount = 0

	err := ValidateAll([]Record{sampleRecord(), bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestDecode(t *testing.T) {
	input := `[
		{"left": {"name": "A", "bet_amount": 10}, "right": {"name": "B", "bet_amount": "20.5"},
		 "winner": "Right", "mode": "Tournament", "tier": "X", "duration": 120}
	]`

	records, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, 10.0, r.Left.BetAmount)
	assert.Equal(t, 20.5, r.Right.BetAmount)
	assert.Equal(t, WinnerRight, r.Winner)
	assert.Equal(t, ModeTournament, r.Mode)
	assert.Equal(t, Tier("X"), r.Tier)
	assert.Equal(t, uint32(120), r.Duration)
}

func TestDecodeRejectsUnknownWinner(t *testing.T) {
	input := `[{"left": {"name": "A", "bet_amount": 1}, "right": {"name": "B", "bet_amount": 1},
		"winner": "Draw", "mode": "Matchmaking"}]`

	_, err := Decode(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
