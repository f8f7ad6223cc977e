package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tryny8/App-budget-flow/internal/budget"
	"github.com/Tryny8/App-budget-flow/internal/cli"
)

var budgetAtCmd = &cobra.Command{
	Use:   "budget-at <day>",
	Short: "Actual budget as of a day of the month",
	Long: "Processed income minus processed deductions as of the given day. " +
		"Days after today collapse to today: this reports what has actually " +
		"happened, never scheduled future money. Use `projection` for forecasts.",
	Args: cobra.ExactArgs(1),
	RunE: runBudgetAt,
}

func init() {
	rootCmd.AddCommand(budgetAtCmd)
}

func runBudgetAt(_ *cobra.Command, args []string) error {
	target, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", args[0], err)
	}
	if target < 1 || target > 31 {
		return fmt.Errorf("day must be between 1 and 31, got %d", target)
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	snap, err := loadSnapshot(s)
	if err != nil {
		return err
	}

	day := currentDay()
	got := budget.BudgetAtDate(snap.incomes, snap.deductions, day, target)

	if target > day {
		fmt.Printf("  Budget as of the %s (clamped to today, the %s): %s\n",
			cli.FormatDay(target), cli.FormatDay(day), cli.FormatAmount(got))
	} else {
		fmt.Printf("  Budget as of the %s: %s\n", cli.FormatDay(target), cli.FormatAmount(got))
	}
	return nil
}
