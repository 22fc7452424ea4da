// Package main provides the salty-sim command line: replay record exports against a
// strategy and inspect per-party statistics.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/salty-sim/internal/config"
	"github.com/yourusername/salty-sim/internal/genetic"
	"github.com/yourusername/salty-sim/internal/logger"
	"github.com/yourusername/salty-sim/internal/lookup"
	"github.com/yourusername/salty-sim/internal/metrics"
	"github.com/yourusername/salty-sim/internal/record"
	"github.com/yourusername/salty-sim/internal/report"
	"github.com/yourusername/salty-sim/internal/simulation"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile  string
	recordsPath string
	cfg         *config.Config
	log         *logrus.Logger
)

var replayFlags struct {
	statistic string
	filter    string
	side      string
	fraction  float64
	random    bool
	warmup    int
	csvPath   string
}

var statsFlags struct {
	opponent string
	wager    float64
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&recordsPath, "records", "r", "", "Path to the JSON record export (overrides records.path)")

	replayCmd.Flags().StringVar(&replayFlags.statistic, "statistic", "winrate", "Statistic compared between the two parties")
	replayCmd.Flags().StringVar(&replayFlags.filter, "filter", "all", "History filter: all or specific")
	replayCmd.Flags().StringVar(&replayFlags.side, "side", "left", "Which party the statistic is read for: left or right")
	replayCmd.Flags().Float64Var(&replayFlags.fraction, "fraction", 0.1, "Fraction of the active pool wagered per bet")
	replayCmd.Flags().BoolVar(&replayFlags.random, "random", false, "Draw a random comparison strategy instead of using the flags")
	replayCmd.Flags().IntVar(&replayFlags.warmup, "warmup", 0, "Number of leading records ingested as history without betting")
	replayCmd.Flags().StringVar(&replayFlags.csvPath, "csv", "", "Optional path for a CSV summary")

	statsCmd.Flags().StringVar(&statsFlags.opponent, "opponent", "", "Restrict statistics to matches against this party")
	statsCmd.Flags().Float64Var(&statsFlags.wager, "wager", 100, "Wager used for the earnings statistic")

	rootCmd.AddCommand(replayCmd, statsCmd)
}

var rootCmd = &cobra.Command{
	Use:     "salty-sim",
	Short:   "Backtest betting strategies against exported match records",
	Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadAndValidate(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		log = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		if recordsPath == "" {
			recordsPath = cfg.Records.Path
		}
		return nil
	},
	SilenceUsage: true,
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay the record export against a comparison strategy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Print every statistic for one party",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd, args[0])
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRand() *rand.Rand {
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func buildSimulation(rng *rand.Rand) (*simulation.Simulation, error) {
	simConfig, err := simulation.FromConfig(&cfg.Simulation)
	if err != nil {
		return nil, err
	}
	return simulation.NewSimulation(simConfig, rng, log)
}

func buildStrategy(rng *rand.Rand) (*genetic.Comparison, error) {
	if replayFlags.random {
		return genetic.RandomComparison(genetic.NewEvolver(rng, cfg.Simulation.MutationRate)), nil
	}

	stat, err := genetic.ParseStatistic(replayFlags.statistic)
	if err != nil {
		return nil, err
	}
	if !stat.Dispatchable() {
		return nil, fmt.Errorf("statistic %q needs a wager size and cannot drive a comparison", stat)
	}
	filter, err := genetic.ParseFilter(replayFlags.filter)
	if err != nil {
		return nil, err
	}
	side, err := genetic.ParseSide(replayFlags.side)
	if err != nil {
		return nil, err
	}
	return genetic.NewComparison(genetic.Character(side, filter, stat), replayFlags.fraction), nil
}

func runReplay(cmd *cobra.Command) error {
	records, err := record.LoadFile(recordsPath)
	if err != nil {
		return err
	}
	if replayFlags.warmup < 0 || replayFlags.warmup > len(records) {
		return fmt.Errorf("warmup %d out of range for %d records", replayFlags.warmup, len(records))
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	rng := newRand()
	sim, err := buildSimulation(rng)
	if err != nil {
		return err
	}
	strat, err := buildStrategy(rng)
	if err != nil {
		return err
	}
	sim.MatchmakingStrategy = strat
	sim.TournamentStrategy = strat

	log.WithFields(logrus.Fields{
		"run_id":      sim.ID.String(),
		"strategy_id": strat.ID.String(),
		"score":       strat.Score.String(),
		"fraction":    strat.Fraction,
		"records":     len(records),
		"warmup":      replayFlags.warmup,
	}).Info("Starting replay")

	if err := sim.InsertRecords(records[:replayFlags.warmup]); err != nil {
		return err
	}
	if err := sim.Simulate(records[replayFlags.warmup:]); err != nil {
		return err
	}

	summary := report.NewSummary(sim)
	if err := report.WriteSummary(cmd.OutOrStdout(), summary); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if replayFlags.csvPath != "" {
		if err := report.WriteCSV(summary, replayFlags.csvPath); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}
	if cfg.Metrics.Enabled {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

func runStats(cmd *cobra.Command, name string) error {
	records, err := record.LoadFile(recordsPath)
	if err != nil {
		return err
	}
	sim, err := buildSimulation(newRand())
	if err != nil {
		return err
	}
	if err := sim.InsertRecords(records); err != nil {
		return err
	}

	history := sim.LookupCharacter(name)
	filter := genetic.FilterAll
	if statsFlags.opponent != "" {
		filter = genetic.FilterSpecific
		history = lookup.Against(history, statsFlags.opponent)
	}

	rows := make([]report.StatisticRow, 0, len(genetic.Statistics()))
	for _, stat := range genetic.Statistics() {
		var value float64
		if stat.Dispatchable() {
			value = filter.Lookup(stat, name, statsFlags.opponent, sim.LookupCharacter(name))
		} else {
			value = lookup.Earnings(history, name, statsFlags.wager)
		}
		rows = append(rows, report.StatisticRow{Statistic: stat.String(), Value: value})
	}
	return report.WriteStatistics(cmd.OutOrStdout(), name, statsFlags.opponent, len(history), rows)
}
