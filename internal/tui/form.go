package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/Tryny8/App-budget-flow/internal/model"
)

// entryValues collects the raw string inputs of an add-entry form.
// Parsing happens after the form completes.
type entryValues struct {
	description string
	amount      string
	day         string
	choice      string // frequency for incomes, category for deductions
}

func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("description is required")
	}
	return nil
}

func validateAmountInput(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter an amount like 1250.00")
	}
	if !d.IsPositive() {
		return errors.New("amount must be positive")
	}
	if d.Exponent() < -2 {
		return errors.New("at most two decimal places")
	}
	return nil
}

func validateDayInput(s string) error {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || day < 1 || day > 31 {
		return errors.New("day must be between 1 and 31")
	}
	return nil
}

func newIncomeForm(v *entryValues) *huh.Form {
	freqOpts := make([]huh.Option[string], 0, len(model.Frequencies))
	for _, f := range model.Frequencies {
		freqOpts = append(freqOpts, huh.NewOption(f.Label(), string(f)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("Salary").
				Value(&v.description).
				Validate(validateDescription),
			huh.NewInput().
				Title("Amount").
				Placeholder("2500.00").
				Value(&v.amount).
				Validate(validateAmountInput),
			huh.NewInput().
				Title("Day of month (1-31)").
				Placeholder("1").
				Value(&v.day).
				Validate(validateDayInput),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(freqOpts...).
				Value(&v.choice),
		).Title("Add income"),
	)
}

func newDeductionForm(v *entryValues) *huh.Form {
	catOpts := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		catOpts = append(catOpts, huh.NewOption(c.Label(), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("Rent").
				Value(&v.description).
				Validate(validateDescription),
			huh.NewInput().
				Title("Amount").
				Placeholder("800.00").
				Value(&v.amount).
				Validate(validateAmountInput),
			huh.NewInput().
				Title("Day of month (1-31)").
				Placeholder("5").
				Value(&v.day).
				Validate(validateDayInput),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOpts...).
				Value(&v.choice),
		).Title("Add deduction"),
	)
}

func newProjectionDayForm(v *entryValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day of month (1-31)").
				Placeholder("15").
				Value(&v.day).
				Validate(validateDayInput),
		).Title("Add projection day"),
	)
}

// incomeFromValues builds an income record from completed form values.
// The form validators guarantee the fields parse.
func incomeFromValues(v entryValues) model.Income {
	amount, _ := decimal.NewFromString(strings.TrimSpace(v.amount))
	day, _ := strconv.Atoi(strings.TrimSpace(v.day))
	return model.Income{
		Description: strings.TrimSpace(v.description),
		Amount:      amount,
		Frequency:   model.Frequency(v.choice),
		IncomeDate:  day,
	}
}

func deductionFromValues(v entryValues) model.Deduction {
	amount, _ := decimal.NewFromString(strings.TrimSpace(v.amount))
	day, _ := strconv.Atoi(strings.TrimSpace(v.day))
	return model.Deduction{
		Description:   strings.TrimSpace(v.description),
		Amount:        amount,
		Category:      model.Category(v.choice),
		DeductionDate: day,
	}
}
