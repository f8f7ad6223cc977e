package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Tryny8/App-budget-flow/internal/budget"
	"github.com/Tryny8/App-budget-flow/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Month totals, processed/pending state, and available budget",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	snap, err := loadSnapshot(s)
	if err != nil {
		return err
	}

	day := currentDay()
	totals := budget.ComputeTotals(snap.incomes, snap.deductions)
	procInc, pendInc := budget.SplitIncomes(snap.incomes, day)
	procDed, pendDed := budget.SplitDeductions(snap.deductions, day)
	rawBudget := budget.BudgetAtDate(snap.incomes, snap.deductions, day, day)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET FLOW  Day %s", cli.FormatDay(day))))
	fmt.Println()

	if len(snap.incomes) == 0 && len(snap.deductions) == 0 {
		fmt.Println("  No entries yet. Add some with `budgetflow income add` or `budgetflow deduction add`.")
		fmt.Println()
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Month Totals",
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Total income", cli.FormatAmount(totals.TotalIncome)},
			{"Total deductions", cli.FormatAmount(totals.TotalDeductions)},
			{"---"},
			{"Remaining budget", cli.FormatAmount(totals.RemainingBudget)},
		},
	}))

	sumInc := budget.ComputeTotals(procInc, nil).TotalIncome
	sumDed := budget.ComputeTotals(nil, procDed).TotalDeductions
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("As of the %s", cli.FormatDay(day)),
		Headers: []string{"", "Count", "Amount"},
		Rows: [][]string{
			{"Processed income", fmt.Sprintf("%d", len(procInc)), cli.FormatAmount(sumInc)},
			{"Processed deductions", fmt.Sprintf("%d", len(procDed)), cli.FormatAmount(sumDed)},
			{"Pending income", fmt.Sprintf("%d", len(pendInc)), cli.FormatAmount(budget.ComputeTotals(pendInc, nil).TotalIncome)},
			{"Pending deductions", fmt.Sprintf("%d", len(pendDed)), cli.FormatAmount(budget.ComputeTotals(nil, pendDed).TotalDeductions)},
			{"---"},
			{"Budget so far", "", cli.FormatAmount(rawBudget)},
		},
	}))

	printAvailability(cfg.Overdraft.Enabled, cfg.Overdraft.Limit, totals.RemainingBudget, rawBudget)

	return nil
}

// printAvailability renders the two overdraft views: the whole-month
// dashboard figure and the processed-only monthly tracking figure.
func printAvailability(enabled bool, limit, remaining, rawBudget decimal.Decimal) {
	if !enabled {
		if remaining.IsNegative() {
			fmt.Printf("  Over budget by %s this month (overdraft disabled).\n\n", cli.FormatAmount(remaining.Abs()))
		}
		return
	}

	dashboard := budget.Availability(remaining, true, limit)
	tracking := budget.Availability(rawBudget, true, limit)

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Overdraft",
		Headers: []string{"View", "Available", "Used", "Credit left"},
		Rows: [][]string{
			{"Dashboard (full month)",
				cli.FormatAmount(dashboard.Available),
				cli.FormatAmount(dashboard.Used),
				cli.FormatAmount(dashboard.Remaining)},
			{"Tracking (as of today)",
				cli.FormatAmount(tracking.Available),
				cli.FormatAmount(tracking.Used),
				cli.FormatAmount(tracking.Remaining)},
		},
	}))

	if limit.IsPositive() && dashboard.Used.IsPositive() {
		pct, _ := dashboard.Used.Div(limit).Float64()
		fmt.Printf("  Overdraft used  %s %s\n\n",
			cli.RenderMiniBar(pct, 20), cli.FormatPercent(pct))
	}
}
