// Package record defines the historical match observations replayed by the simulation.
package record

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord is returned when a record fails input validation
var ErrInvalidRecord = errors.New("invalid record")

// Winner identifies the side that won a match
type Winner uint8

const (
	WinnerLeft Winner = iota
	WinnerRight
)

// String returns the winner label
func (w Winner) String() string {
	if w == WinnerRight {
		return "Right"
	}
	return "Left"
}

// Swap returns the opposite side
func (w Winner) Swap() Winner {
	if w == WinnerLeft {
		return WinnerRight
	}
	return WinnerLeft
}

// Mode classifies a match as ordinary or tournament
type Mode uint8

const (
	ModeMatchmaking Mode = iota
	ModeTournament
)

// String returns the mode label
func (m Mode) String() string {
	if m == ModeTournament {
		return "Tournament"
	}
	return "Matchmaking"
}

// Tier is an opaque classification consulted by strategies
type Tier string

// Character is one party of a match together with the total wagered on it
type Character struct {
	Name      string  `json:"name" validate:"required"`
	BetAmount float64 `json:"bet_amount" validate:"gt=0"`
}

// Record is an immutable observation of one concluded match
type Record struct {
	Left     Character `json:"left"`
	Right    Character `json:"right"`
	Winner   Winner    `json:"winner" validate:"lte=1"`
	Mode     Mode      `json:"mode" validate:"lte=1"`
	Tier     Tier      `json:"tier"`
	Duration uint32    `json:"duration"`
}

// IsMirror reports whether both sides are the same party
func (r Record) IsMirror() bool {
	return r.Left.Name == r.Right.Name
}

// IsWinner reports whether name won the match
func (r Record) IsWinner(name string) bool {
	switch r.Winner {
	case WinnerLeft:
		return r.Left.Name == name
	default:
		return r.Right.Name == name
	}
}

// Involves reports whether name fought on either side
func (r Record) Involves(name string) bool {
	return r.Left.Name == name || r.Right.Name == name
}

// Swap exchanges the left and right sides and flips the winner accordingly
func (r Record) Swap() Record {
	r.Left, r.Right = r.Right, r.Left
	r.Winner = r.Winner.Swap()
	return r
}

// Shuffle swaps the sides with probability one half
func (r Record) Shuffle(rng *rand.Rand) Record {
	if rng.Intn(2) == 0 {
		return r.Swap()
	}
	return r
}

var validate = validator.New()

// Validate checks that both parties are named and carry a strictly positive wager
func (r Record) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s failed on '%s'", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(messages, "; "))
}

// ValidateAll validates every record and reports the first failing index
func ValidateAll(records []Record) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d (%s vs %s): %w", i, r.Left.Name, r.Right.Name, err)
		}
	}
	return nil
}
