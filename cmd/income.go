package cmd

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Tryny8/App-budget-flow/internal/budget"
	"github.com/Tryny8/App-budget-flow/internal/cli"
	"github.com/Tryny8/App-budget-flow/internal/model"
	"github.com/Tryny8/App-budget-flow/internal/store"
)

var (
	flagIncomeDescription string
	flagIncomeAmount      string
	flagIncomeFrequency   string
	flagIncomeDate        int
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Manage recurring income entries",
	RunE:  runIncomeList,
}

var incomeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an income entry",
	RunE:  runIncomeAdd,
}

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List income entries",
	RunE:  runIncomeList,
}

var incomeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an income entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeUpdate,
}

var incomeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an income entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeDelete,
}

func init() {
	for _, c := range []*cobra.Command{incomeAddCmd, incomeUpdateCmd} {
		c.Flags().StringVar(&flagIncomeDescription, "description", "", "Description of the income")
		c.Flags().StringVar(&flagIncomeAmount, "amount", "", "Amount, e.g. 2000.00")
		c.Flags().StringVar(&flagIncomeFrequency, "frequency", "", "monthly, weekly, or yearly (default monthly)")
		c.Flags().IntVar(&flagIncomeDate, "date", 0, "Day of month the income arrives (1-31)")
	}
	_ = incomeAddCmd.MarkFlagRequired("description")
	_ = incomeAddCmd.MarkFlagRequired("amount")
	_ = incomeAddCmd.MarkFlagRequired("date")

	incomeCmd.AddCommand(incomeAddCmd, incomeListCmd, incomeUpdateCmd, incomeDeleteCmd)
	rootCmd.AddCommand(incomeCmd)
}

func runIncomeAdd(_ *cobra.Command, _ []string) error {
	amount, err := decimal.NewFromString(flagIncomeAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", flagIncomeAmount, err)
	}
	freq, err := model.ParseFrequency(flagIncomeFrequency)
	if err != nil {
		return err
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	in := &model.Income{
		Description: flagIncomeDescription,
		Amount:      amount,
		Frequency:   freq,
		IncomeDate:  flagIncomeDate,
	}
	if err := s.CreateIncome(in); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added income %q: %s on the %s (%s)\n  id: %s\n",
			in.Description, cli.FormatAmount(in.Amount), cli.FormatDay(in.IncomeDate),
			in.Frequency.Label(), in.ID)
	}
	return nil
}

func runIncomeList(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	incomes, err := s.ListIncomes()
	if err != nil {
		return err
	}
	if len(incomes) == 0 {
		fmt.Println("\n  No income entries. Add one with `budgetflow income add`.")
		return nil
	}

	day := currentDay()
	rows := make([][]string, 0, len(incomes)+2)
	for _, in := range incomes {
		state := "pending"
		if in.IncomeDate <= day {
			state = "processed"
		}
		rows = append(rows, []string{
			in.Description,
			cli.FormatDay(in.IncomeDate),
			in.Frequency.Label(),
			state,
			cli.FormatAmount(in.Amount),
			in.ID,
		})
	}
	total := budget.ComputeTotals(incomes, nil).TotalIncome
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", "", "", cli.FormatAmount(total), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Income (%d entries)", len(incomes)),
		Headers: []string{"Description", "Day", "Frequency", "State", "Amount", "ID"},
		Rows:    rows,
	}))
	return nil
}

func runIncomeUpdate(cmd *cobra.Command, args []string) error {
	var upd store.IncomeUpdate
	if cmd.Flags().Changed("description") {
		upd.Description = &flagIncomeDescription
	}
	if cmd.Flags().Changed("amount") {
		amount, err := decimal.NewFromString(flagIncomeAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", flagIncomeAmount, err)
		}
		upd.Amount = &amount
	}
	if cmd.Flags().Changed("frequency") {
		freq, err := model.ParseFrequency(flagIncomeFrequency)
		if err != nil {
			return err
		}
		upd.Frequency = &freq
	}
	if cmd.Flags().Changed("date") {
		upd.IncomeDate = &flagIncomeDate
	}
	if upd.Description == nil && upd.Amount == nil && upd.Frequency == nil && upd.IncomeDate == nil {
		return errors.New("nothing to update: pass at least one of --description, --amount, --frequency, --date")
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	in, err := s.UpdateIncome(args[0], upd)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("income %s not found", args[0])
	}
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Updated income %q: %s on the %s (%s)\n",
			in.Description, cli.FormatAmount(in.Amount), cli.FormatDay(in.IncomeDate), in.Frequency.Label())
	}
	return nil
}

func runIncomeDelete(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteIncome(args[0]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("income %s not found", args[0])
		}
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Deleted income %s\n", args[0])
	}
	return nil
}
