// Package cmd implements the budgetflow CLI commands.
package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tryny8/App-budget-flow/internal/config"
	"github.com/Tryny8/App-budget-flow/internal/model"
	"github.com/Tryny8/App-budget-flow/internal/store"
)

var (
	flagDataDir string
	flagDay     int
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "budgetflow",
	Short: "Personal budget tracker",
	Long:  "Track recurring incomes and deductions and project your monthly balance.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().IntVar(&flagDay, "day", 0, "Treat this day of month as today (1-31, for testing)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// dbPath resolves the database location: flag, then config, then XDG default.
func dbPath(cfg config.Config) string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "budgetflow.db")
	}
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "budgetflow.db")
	}
	return store.DefaultPath()
}

// openStore loads config and opens the budget database.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	s, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

// currentDay returns the --day override when set, otherwise today's
// day of month.
func currentDay() int {
	if flagDay >= 1 && flagDay <= 31 {
		return flagDay
	}
	return time.Now().Day()
}

// snapshot holds one consistent read of the record store.
type snapshot struct {
	incomes    []model.Income
	deductions []model.Deduction
	days       []int
}

func loadSnapshot(s *store.Store) (snapshot, error) {
	var snap snapshot
	var err error
	if snap.incomes, err = s.ListIncomes(); err != nil {
		return snap, err
	}
	if snap.deductions, err = s.ListDeductions(); err != nil {
		return snap, err
	}
	if snap.days, err = s.ProjectionDays(); err != nil {
		return snap, err
	}
	return snap, nil
}
