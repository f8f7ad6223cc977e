package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tryny8/App-budget-flow/internal/budget"
	"github.com/Tryny8/App-budget-flow/internal/cli"
)

// defaultProjectionDays samples the month when no days have been chosen yet.
var defaultProjectionDays = []int{1, 5, 10, 15, 20, 25, 31}

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Budget forecast sampled at selected days of the month",
	RunE:  runProjectionShow,
}

var projectionAddDateCmd = &cobra.Command{
	Use:   "add-date <day>",
	Short: "Add a sampling day to the projection set",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectionAddDate,
}

var projectionRemoveDateCmd = &cobra.Command{
	Use:   "remove-date <day>",
	Short: "Remove a sampling day from the projection set",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectionRemoveDate,
}

func init() {
	projectionCmd.AddCommand(projectionAddDateCmd, projectionRemoveDateCmd)
	rootCmd.AddCommand(projectionCmd)
}

func runProjectionShow(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	snap, err := loadSnapshot(s)
	if err != nil {
		return err
	}

	days := snap.days
	usingDefaults := false
	if len(days) == 0 {
		days = defaultProjectionDays
		usingDefaults = true
	}

	day := currentDay()
	points := budget.ProjectionSeries(snap.incomes, snap.deductions, day, days)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROJECTION  Day %s", cli.FormatDay(day))))
	fmt.Println()

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		state := ""
		switch {
		case p.IsToday:
			state = "today"
		case p.IsPast:
			state = "past"
		}
		rows = append(rows, []string{
			cli.FormatDay(p.Date),
			cli.FormatAmount(p.CumulativeIncome),
			cli.FormatAmount(p.CumulativeDeductions),
			cli.FormatAmount(p.Budget),
			state,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Forecast",
		Headers: []string{"Day", "Income", "Deductions", "Budget", ""},
		Rows:    rows,
	}))

	if usingDefaults {
		fmt.Println("  Showing default sampling days. Pick your own with `budgetflow projection add-date <day>`.")
		fmt.Println()
	}

	return nil
}

func runProjectionAddDate(_ *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", args[0], err)
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	// Out-of-range and duplicate days are silent no-ops in the set; the
	// CLI still tells the user what happened.
	if day < 1 || day > 31 {
		if !flagQuiet {
			fmt.Printf("  Ignored day %d: must be between 1 and 31.\n", day)
		}
		return nil
	}
	if err := s.AddProjectionDay(day); err != nil {
		return err
	}

	if !flagQuiet {
		days, err := s.ProjectionDays()
		if err != nil {
			return err
		}
		fmt.Printf("  Projection days: %s\n", formatDayList(days))
	}
	return nil
}

func runProjectionRemoveDate(_ *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", args[0], err)
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.RemoveProjectionDay(day); err != nil {
		return err
	}

	if !flagQuiet {
		days, err := s.ProjectionDays()
		if err != nil {
			return err
		}
		fmt.Printf("  Projection days: %s\n", formatDayList(days))
	}
	return nil
}

func formatDayList(days []int) string {
	if len(days) == 0 {
		return "(none)"
	}
	out := ""
	for i, d := range days {
		if i > 0 {
			out += ", "
		}
		out += cli.FormatDay(d)
	}
	return out
}
