// Package budget implements the projection core: pure computations over a
// snapshot of income and deduction records plus an explicit current day.
// Nothing in this package reads the clock or mutates its inputs; callers
// pass the current day so any date can be pinned in tests.
//
// Inputs are trusted to satisfy the model validation rules (positive
// amounts, days within 1-31); validation happens upstream in model and
// store before records get here.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/Tryny8/App-budget-flow/internal/model"
)

// ComputeTotals sums the full snapshot regardless of whether each entry's
// day has occurred yet. Empty collections yield zero totals.
func ComputeTotals(incomes []model.Income, deductions []model.Deduction) model.Totals {
	var t model.Totals
	for _, in := range incomes {
		t.TotalIncome = t.TotalIncome.Add(in.Amount)
	}
	for _, d := range deductions {
		t.TotalDeductions = t.TotalDeductions.Add(d.Amount)
	}
	t.RemainingBudget = t.TotalIncome.Sub(t.TotalDeductions)
	return t
}

// sumIncomesThrough returns the sum of incomes scheduled on or before day.
func sumIncomesThrough(incomes []model.Income, day int) decimal.Decimal {
	var sum decimal.Decimal
	for _, in := range incomes {
		if in.IncomeDate <= day {
			sum = sum.Add(in.Amount)
		}
	}
	return sum
}

// sumDeductionsThrough returns the sum of deductions scheduled on or before day.
func sumDeductionsThrough(deductions []model.Deduction, day int) decimal.Decimal {
	var sum decimal.Decimal
	for _, d := range deductions {
		if d.DeductionDate <= day {
			sum = sum.Add(d.Amount)
		}
	}
	return sum
}
