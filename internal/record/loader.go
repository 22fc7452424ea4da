package record

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// rawCharacter mirrors one side of an exported match; wagers may be numbers or strings
type rawCharacter struct {
	Name      string          `json:"name"`
	BetAmount decimal.Decimal `json:"bet_amount"`
}

// rawRecord mirrors one match as exported by the browser extension
type rawRecord struct {
	Left     rawCharacter `json:"left"`
	Right    rawCharacter `json:"right"`
	Winner   string       `json:"winner"`
	Mode     string       `json:"mode"`
	Tier     string       `json:"tier"`
	Duration uint32       `json:"duration"`
}

// LoadFile reads an exported match file in chronological order
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open records file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return records, nil
}

// Decode parses a JSON array of matches and normalizes it into records
func Decode(r io.Reader) ([]Record, error) {
	var raw []rawRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for i, entry := range raw {
		rec, err := entry.normalize()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r rawRecord) normalize() (Record, error) {
	winner, err := ParseWinner(r.Winner)
	if err != nil {
		return Record{}, err
	}
	mode, err := ParseMode(r.Mode)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Left:     Character{Name: r.Left.Name, BetAmount: r.Left.BetAmount.InexactFloat64()},
		Right:    Character{Name: r.Right.Name, BetAmount: r.Right.BetAmount.InexactFloat64()},
		Winner:   winner,
		Mode:     mode,
		Tier:     Tier(r.Tier),
		Duration: r.Duration,
	}, nil
}

// ParseWinner parses "Left" or "Right", case-insensitively
func ParseWinner(s string) (Winner, error) {
	switch strings.ToLower(s) {
	case "left":
		return WinnerLeft, nil
	case "right":
		return WinnerRight, nil
	default:
		return WinnerLeft, fmt.Errorf("%w: unknown winner %q", ErrInvalidRecord, s)
	}
}

// ParseMode parses "Matchmaking" or "Tournament", case-insensitively
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "matchmaking":
		return ModeMatchmaking, nil
	case "tournament":
		return ModeTournament, nil
	default:
		return ModeMatchmaking, fmt.Errorf("%w: unknown mode %q", ErrInvalidRecord, s)
	}
}
