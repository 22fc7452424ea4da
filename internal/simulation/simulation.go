// Package simulation replays historical records against betting strategies and keeps
// the bankroll books.
package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/salty-sim/internal/logger"
	"github.com/yourusername/salty-sim/internal/lookup"
	"github.com/yourusername/salty-sim/internal/metrics"
	"github.com/yourusername/salty-sim/internal/record"
	"github.com/yourusername/salty-sim/internal/strategy"
)

// Simulation holds the bankroll state and per-party history of one replay.
// It is not safe for concurrent use; run one Simulation per goroutine.
type Simulation struct {
	ID uuid.UUID

	MatchmakingStrategy strategy.Strategy
	TournamentStrategy  strategy.Strategy

	RecordLen       int
	Sum             float64
	TournamentSum   float64
	InTournament    bool
	Successes       int
	Failures        int
	MaxCharacterLen int

	config     Config
	characters map[string][]record.Record
	shuffle    func(record.Record) record.Record
	logger     *logger.SimulationLogger
}

var _ strategy.Simulator = (*Simulation)(nil)

// NewSimulation creates an empty simulation seeded with the configured floors.
// A nil rng is replaced by a time-seeded source and a nil log by a default logger.
func NewSimulation(cfg Config, rng *rand.Rand, log *logrus.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	id := uuid.New()

	return &Simulation{
		ID:            id,
		Sum:           cfg.SaltMineAmount,
		TournamentSum: cfg.TournamentBalance,
		config:        cfg,
		characters:    make(map[string][]record.Record),
		shuffle: func(r record.Record) record.Record {
			return r.Shuffle(rng)
		},
		logger: logger.NewSimulationLogger(log, id.String()),
	}, nil
}

// Config returns the floors the simulation was built with
func (s *Simulation) Config() Config {
	return s.config
}

// Characters returns the per-party history. Callers must not modify it.
func (s *Simulation) Characters() map[string][]record.Record {
	return s.characters
}

// MatchesLen implements strategy.Simulator
func (s *Simulation) MatchesLen(name string) int {
	return len(s.characters[name])
}

// CurrentMoney implements strategy.Simulator
func (s *Simulation) CurrentMoney() float64 {
	if s.InTournament {
		return s.TournamentSum
	}
	return s.Sum
}

// LookupCharacter implements strategy.Simulator
func (s *Simulation) LookupCharacter(name string) []record.Record {
	return s.characters[name]
}

// Winrate returns name's win rate over its whole recorded history
func (s *Simulation) Winrate(name string) float64 {
	return lookup.Winrate(s.LookupCharacter(name), name)
}

// IsInMines reports whether the active pool is at or below its floor
func (s *Simulation) IsInMines() bool {
	if s.InTournament {
		return s.TournamentSum <= s.config.TournamentBalance
	}
	return s.Sum <= s.config.SaltMineAmount
}

// Clamp turns a requested wager into one the active pool can cover. In the mines the
// whole pool is wagered; otherwise the amount is rounded and bounded to [1, pool].
func (s *Simulation) Clamp(amount float64) float64 {
	sum := s.CurrentMoney()
	if s.IsInMines() {
		return sum
	}
	rounded := math.Round(amount)
	switch {
	case rounded < 1:
		return 1
	case rounded > sum:
		return sum
	default:
		return rounded
	}
}

// PickWinner asks strat for a bet and clamps it. When strat is nil or declines, or the
// parties are identical, the only bet placed is an all-in on the left while in the mines.
func (s *Simulation) PickWinner(strat strategy.Strategy, tier record.Tier, left, right string) strategy.Bet {
	if left != right && strat != nil {
		bet := strat.Bet(s, tier, left, right)
		switch bet.Side {
		case strategy.BetLeft:
			if bet.Amount > 0 {
				return strategy.Left(s.Clamp(bet.Amount))
			}
		case strategy.BetRight:
			if bet.Amount > 0 {
				return strategy.Right(s.Clamp(bet.Amount))
			}
		}
	}

	if s.IsInMines() {
		return strategy.Left(s.CurrentMoney())
	}
	return strategy.NoBet
}

// closeTournament folds the tournament pool into the main bankroll
func (s *Simulation) closeTournament() {
	s.InTournament = false
	s.Sum += s.TournamentSum
	s.TournamentSum = s.config.TournamentBalance

	s.logger.LogTournamentClosed(s.TournamentSum, s.Sum)
	metrics.RecordTournamentClosed()
}

// settle resolves a bet against the record's winner and returns the pool change
func (s *Simulation) settle(bet strategy.Bet, r record.Record) float64 {
	var own, opponent float64
	var won bool

	switch bet.Side {
	case strategy.BetLeft:
		own, opponent = r.Left.BetAmount, r.Right.BetAmount
		won = r.Winner == record.WinnerLeft
	case strategy.BetRight:
		own, opponent = r.Right.BetAmount, r.Left.BetAmount
		won = r.Winner == record.WinnerRight
	default:
		return 0
	}

	var increase float64
	if won {
		s.Successes++
		increase = math.Ceil(bet.Amount * (opponent / own))
		metrics.RecordBetSettled(r.Mode.String(), "success")
	} else {
		s.Failures++
		increase = -bet.Amount
		metrics.RecordBetSettled(r.Mode.String(), "failure")
	}

	s.logger.LogBetSettled(r.Mode.String(), bet.String(), won, increase, s.CurrentMoney()+increase)
	return increase
}

// apply adds increase to the active pool, resetting it to its floor if it runs dry
func (s *Simulation) apply(increase float64) {
	if s.InTournament {
		s.TournamentSum += increase
		if s.TournamentSum <= 0 {
			s.TournamentSum = s.config.TournamentBalance
			s.logger.LogMinesReset("tournament", s.TournamentSum)
			metrics.RecordMinesReset("tournament")
		}
		return
	}

	s.Sum += increase
	if s.Sum <= 0 {
		s.Sum = s.config.SaltMineAmount
		s.logger.LogMinesReset("main", s.Sum)
		metrics.RecordMinesReset("main")
	}
}

// calculate places and settles the bet for one record. It must run before the record
// is inserted so strategies only see strictly earlier history.
func (s *Simulation) calculate(r record.Record) {
	r = s.shuffle(r)

	var strat strategy.Strategy
	switch r.Mode {
	case record.ModeTournament:
		s.InTournament = true
		strat = s.TournamentStrategy
	default:
		if s.InTournament {
			s.closeTournament()
		}
		strat = s.MatchmakingStrategy
	}

	if strat == nil || r.IsMirror() {
		return
	}

	bet := s.PickWinner(strat, r.Tier, r.Left.Name, r.Right.Name)
	s.apply(s.settle(bet, r))
}

func (s *Simulation) insertMatch(name string, r record.Record) {
	matches := append(s.characters[name], r)
	s.characters[name] = matches

	if len(matches) > s.MaxCharacterLen {
		s.MaxCharacterLen = len(matches)
	}
}

// InsertRecord appends a record to both parties' history. Mirror matches are skipped.
func (s *Simulation) InsertRecord(r record.Record) {
	if r.IsMirror() {
		return
	}
	s.RecordLen++
	s.insertMatch(r.Left.Name, r)
	s.insertMatch(r.Right.Name, r)
}

// InsertRecords ingests history without betting on it
func (s *Simulation) InsertRecords(records []record.Record) error {
	if err := record.ValidateAll(records); err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}
	for _, r := range records {
		s.InsertRecord(r)
	}
	return nil
}

// Simulate replays records in order, betting on each before adding it to history.
// The whole batch is validated first; an invalid record aborts the replay untouched.
func (s *Simulation) Simulate(records []record.Record) error {
	if err := record.ValidateAll(records); err != nil {
		return fmt.Errorf("replay aborted: %w", err)
	}

	start := time.Now()
	for _, r := range records {
		s.calculate(r)
		s.InsertRecord(r)
		metrics.RecordReplayed(r.Mode.String())
	}

	if s.InTournament {
		s.closeTournament()
	}

	metrics.UpdateBankrolls(s.Sum, s.TournamentSum)
	metrics.RecordReplayDuration(time.Since(start).Seconds())
	s.logger.LogReplayCompleted(len(records), s.Successes, s.Failures, s.Sum)
	return nil
}
