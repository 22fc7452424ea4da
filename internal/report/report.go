// Package report renders replay results for the terminal and for spreadsheets.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/yourusername/salty-sim/internal/simulation"
)

// Summary is the outcome of one replay
type Summary struct {
	RunID      string
	Records    int
	Characters int
	Successes  int
	Failures   int
	Sum        decimal.Decimal
	Floor      decimal.Decimal
}

// NewSummary snapshots a finished simulation
func NewSummary(sim *simulation.Simulation) Summary {
	return Summary{
		RunID:      sim.ID.String(),
		Records:    sim.RecordLen,
		Characters: len(sim.Characters()),
		Successes:  sim.Successes,
		Failures:   sim.Failures,
		Sum:        decimal.NewFromFloat(sim.Sum),
		Floor:      decimal.NewFromFloat(sim.Config().SaltMineAmount),
	}
}

// Bets is the number of settled bets
func (s Summary) Bets() int {
	return s.Successes + s.Failures
}

// Accuracy is the share of settled bets that won, zero when nothing was bet
func (s Summary) Accuracy() decimal.Decimal {
	if s.Bets() == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.Successes)).Div(decimal.NewFromInt(int64(s.Bets())))
}

// Profit is the main bankroll above the salt mine floor
func (s Summary) Profit() decimal.Decimal {
	return s.Sum.Sub(s.Floor)
}

// WriteSummary renders the summary as a two-column table
func WriteSummary(w io.Writer, s Summary) error {
	fmt.Fprintf(w, "Replay Report (%s)\n", s.RunID)

	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	rows := [][]string{
		{"Records", fmt.Sprintf("%d", s.Records)},
		{"Characters", fmt.Sprintf("%d", s.Characters)},
		{"Bets", fmt.Sprintf("%d", s.Bets())},
		{"Successes", fmt.Sprintf("%d", s.Successes)},
		{"Failures", fmt.Sprintf("%d", s.Failures)},
		{"Accuracy", s.Accuracy().Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"},
		{"Bankroll", "$" + s.Sum.StringFixed(2)},
		{"Profit", "$" + s.Profit().StringFixed(2)},
	}
	for _, row := range rows {
		if err := table.Append(row[0], row[1]); err != nil {
			return err
		}
	}
	return table.Render()
}

// StatisticRow is one named statistic for a party
type StatisticRow struct {
	Statistic string
	Value     float64
}

// WriteStatistics renders a party's statistics, optionally restricted to one opponent
func WriteStatistics(w io.Writer, name, opponent string, matches int, rows []StatisticRow) error {
	if opponent != "" {
		fmt.Fprintf(w, "%s vs %s (%d matches)\n", name, opponent, matches)
	} else {
		fmt.Fprintf(w, "%s (%d matches)\n", name, matches)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Statistic", "Value")
	for _, row := range rows {
		if err := table.Append(row.Statistic, decimal.NewFromFloat(row.Value).StringFixed(4)); err != nil {
			return err
		}
	}
	return table.Render()
}

// WriteCSV exports the summary for spreadsheets
func WriteCSV(s Summary, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	csv := "metric,value\n" +
		fmt.Sprintf("run_id,%s\n", s.RunID) +
		fmt.Sprintf("records,%d\n", s.Records) +
		fmt.Sprintf("characters,%d\n", s.Characters) +
		fmt.Sprintf("successes,%d\n", s.Successes) +
		fmt.Sprintf("failures,%d\n", s.Failures) +
		fmt.Sprintf("accuracy,%s\n", s.Accuracy().StringFixed(4)) +
		fmt.Sprintf("bankroll,%s\n", s.Sum.StringFixed(2)) +
		fmt.Sprintf("profit,%s\n", s.Profit().StringFixed(2))
	return os.WriteFile(outputPath, []byte(csv), 0o644)
}
