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
	flagDeductionDescription string
	flagDeductionAmount      string
	flagDeductionCategory    string
	flagDeductionDate        int
)

var deductionCmd = &cobra.Command{
	Use:   "deduction",
	Short: "Manage recurring deduction entries",
	RunE:  runDeductionList,
}

var deductionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a deduction entry",
	RunE:  runDeductionAdd,
}

var deductionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deduction entries",
	RunE:  runDeductionList,
}

var deductionUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a deduction entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeductionUpdate,
}

var deductionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a deduction entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeductionDelete,
}

func init() {
	for _, c := range []*cobra.Command{deductionAddCmd, deductionUpdateCmd} {
		c.Flags().StringVar(&flagDeductionDescription, "description", "", "Description of the deduction")
		c.Flags().StringVar(&flagDeductionAmount, "amount", "", "Amount, e.g. 800.00")
		c.Flags().StringVar(&flagDeductionCategory, "category", "", "housing, transport, insurance, utilities, subscription, or other")
		c.Flags().IntVar(&flagDeductionDate, "date", 0, "Day of month the deduction is taken (1-31)")
	}
	_ = deductionAddCmd.MarkFlagRequired("description")
	_ = deductionAddCmd.MarkFlagRequired("amount")
	_ = deductionAddCmd.MarkFlagRequired("date")

	deductionCmd.AddCommand(deductionAddCmd, deductionListCmd, deductionUpdateCmd, deductionDeleteCmd)
	rootCmd.AddCommand(deductionCmd)
}

func runDeductionAdd(_ *cobra.Command, _ []string) error {
	amount, err := decimal.NewFromString(flagDeductionAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", flagDeductionAmount, err)
	}
	cat, err := model.ParseCategory(flagDeductionCategory)
	if err != nil {
		return err
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	d := &model.Deduction{
		Description:   flagDeductionDescription,
		Amount:        amount,
		Category:      cat,
		DeductionDate: flagDeductionDate,
	}
	if err := s.CreateDeduction(d); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added deduction %q: %s on the %s (%s)\n  id: %s\n",
			d.Description, cli.FormatAmount(d.Amount), cli.FormatDay(d.DeductionDate),
			d.Category.Label(), d.ID)
	}
	return nil
}

func runDeductionList(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	deductions, err := s.ListDeductions()
	if err != nil {
		return err
	}
	if len(deductions) == 0 {
		fmt.Println("\n  No deduction entries. Add one with `budgetflow deduction add`.")
		return nil
	}

	day := currentDay()
	rows := make([][]string, 0, len(deductions)+2)
	for _, d := range deductions {
		state := "pending"
		if d.DeductionDate <= day {
			state = "processed"
		}
		rows = append(rows, []string{
			d.Description,
			cli.FormatDay(d.DeductionDate),
			d.Category.Label(),
			state,
			cli.FormatAmount(d.Amount),
			d.ID,
		})
	}
	total := budget.ComputeTotals(nil, deductions).TotalDeductions
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", "", "", cli.FormatAmount(total), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Deductions (%d entries)", len(deductions)),
		Headers: []string{"Description", "Day", "Category", "State", "Amount", "ID"},
		Rows:    rows,
	}))
	return nil
}

func runDeductionUpdate(cmd *cobra.Command, args []string) error {
	var upd store.DeductionUpdate
	if cmd.Flags().Changed("description") {
		upd.Description = &flagDeductionDescription
	}
	if cmd.Flags().Changed("amount") {
		amount, err := decimal.NewFromString(flagDeductionAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", flagDeductionAmount, err)
		}
		upd.Amount = &amount
	}
	if cmd.Flags().Changed("category") {
		cat, err := model.ParseCategory(flagDeductionCategory)
		if err != nil {
			return err
		}
		upd.Category = &cat
	}
	if cmd.Flags().Changed("date") {
		upd.DeductionDate = &flagDeductionDate
	}
	if upd.Description == nil && upd.Amount == nil && upd.Category == nil && upd.DeductionDate == nil {
		return errors.New("nothing to update: pass at least one of --description, --amount, --category, --date")
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.UpdateDeduction(args[0], upd)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("deduction %s not found", args[0])
	}
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Updated deduction %q: %s on the %s (%s)\n",
			d.Description, cli.FormatAmount(d.Amount), cli.FormatDay(d.DeductionDate), d.Category.Label())
	}
	return nil
}

func runDeductionDelete(_ *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteDeduction(args[0]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("deduction %s not found", args[0])
		}
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Deleted deduction %s\n", args[0])
	}
	return nil
}
