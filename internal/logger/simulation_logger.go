// Package logger provides simulation-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// SimulationLogger provides dedicated logging for replay bookkeeping.
type SimulationLogger struct {
	*logrus.Entry
}

// NewSimulationLogger creates a new simulation logger.
func NewSimulationLogger(baseLogger *logrus.Logger, runID string) *SimulationLogger {
	if baseLogger == nil {
		baseLogger = logrus.New()
	}
	return &SimulationLogger{
		Entry: baseLogger.WithFields(logrus.Fields{
			"component": "simulation",
			"run_id":    runID,
		}),
	}
}

// LogBetSettled logs the outcome of a clamped bet.
func (sl *SimulationLogger) LogBetSettled(mode, bet string, won bool, increase, pool float64) {
	sl.WithFields(logrus.Fields{
		"mode":     mode,
		"bet":      bet,
		"won":      won,
		"increase": increase,
		"pool":     pool,
	}).Debug("Bet settled")
}

// LogMinesReset logs a pool dropping to zero and being reset to its floor.
func (sl *SimulationLogger) LogMinesReset(pool string, floor float64) {
	sl.WithFields(logrus.Fields{
		"pool":  pool,
		"floor": floor,
	}).Debug("Pool exhausted, reset to floor")
}

// LogTournamentClosed logs the tournament pool being folded into the main bankroll.
func (sl *SimulationLogger) LogTournamentClosed(tournamentSum, sum float64) {
	sl.WithFields(logrus.Fields{
		"tournament_sum": tournamentSum,
		"sum":            sum,
	}).Debug("Tournament closed")
}

// LogReplayCompleted logs the totals after a replay batch.
func (sl *SimulationLogger) LogReplayCompleted(records, successes, failures int, sum float64) {
	sl.WithFields(logrus.Fields{
		"records":   records,
		"successes": successes,
		"failures":  failures,
		"sum":       sum,
	}).Info("Replay completed")
}
