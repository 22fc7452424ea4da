// Package metrics provides the Prometheus registry for replay bookkeeping.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	RecordsReplayedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salty_sim",
		Name:      "records_replayed_total",
		Help:      "Total number of records replayed by mode",
	}, []string{"mode"})
	BetsSettledTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salty_sim",
		Name:      "bets_settled_total",
		Help:      "Total number of settled bets by mode and outcome",
	}, []string{"mode", "outcome"})
	MinesResetsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salty_sim",
		Name:      "mines_resets_total",
		Help:      "Total number of pool resets to the floor by pool",
	}, []string{"pool"})
	TournamentsClosedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "salty_sim",
		Name:      "tournaments_closed_total",
		Help:      "Total number of tournaments folded back into the main bankroll",
	})
)

// Gauge metrics
var (
	CurrentBankroll = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "salty_sim",
		Name:      "current_bankroll",
		Help:      "Main bankroll after the last replayed record",
	})
	TournamentBankroll = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "salty_sim",
		Name:      "tournament_bankroll",
		Help:      "Tournament pool after the last replayed record",
	})
)

// Histogram metrics
var (
	ReplayDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "salty_sim",
		Name:      "replay_duration_seconds",
		Help:      "Duration of replay batches in seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(RecordsReplayedTotal)
		registry.MustRegister(BetsSettledTotal)
		registry.MustRegister(MinesResetsTotal)
		registry.MustRegister(TournamentsClosedTotal)

		registry.MustRegister(CurrentBankroll)
		registry.MustRegister(TournamentBankroll)

		registry.MustRegister(ReplayDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// WriteTextfile writes the registry in the text exposition format, for batch runs
// scraped through a textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, GetRegistry())
}

// RecordReplayed records one replayed record.
// mode should be one of: "Matchmaking", "Tournament"
func RecordReplayed(mode string) {
	RecordsReplayedTotal.WithLabelValues(mode).Inc()
}

// RecordBetSettled records a settled bet.
// outcome should be one of: "success", "failure"
func RecordBetSettled(mode, outcome string) {
	BetsSettledTotal.WithLabelValues(mode, outcome).Inc()
}

// RecordMinesReset records a pool reset to its floor.
// pool should be one of: "main", "tournament"
func RecordMinesReset(pool string) {
	MinesResetsTotal.WithLabelValues(pool).Inc()
}

// RecordTournamentClosed records a tournament close-out.
func RecordTournamentClosed() {
	TournamentsClosedTotal.Inc()
}

// UpdateBankrolls sets both pool gauges.
func UpdateBankrolls(sum, tournamentSum float64) {
	CurrentBankroll.Set(sum)
	TournamentBankroll.Set(tournamentSum)
}

// RecordReplayDuration records replay duration.
func RecordReplayDuration(durationSeconds float64) {
	ReplayDuration.Observe(durationSeconds)
}
