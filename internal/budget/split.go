package budget

import "github.com/Tryny8/App-budget-flow/internal/model"

// SplitIncomes partitions incomes into processed (income date on or before
// currentDay, inclusive) and pending (after currentDay). Every record lands
// in exactly one side.
func SplitIncomes(incomes []model.Income, currentDay int) (processed, pending []model.Income) {
	for _, in := range incomes {
		if in.IncomeDate <= currentDay {
			processed = append(processed, in)
		} else {
			pending = append(pending, in)
		}
	}
	return processed, pending
}

// SplitDeductions partitions deductions by the same inclusive-boundary rule.
func SplitDeductions(deductions []model.Deduction, currentDay int) (processed, pending []model.Deduction) {
	for _, d := range deductions {
		if d.DeductionDate <= currentDay {
			processed = append(processed, d)
		} else {
			pending = append(pending, d)
		}
	}
	return processed, pending
}
