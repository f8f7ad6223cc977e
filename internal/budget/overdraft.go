package budget

import (
	"github.com/shopspring/decimal"

	"github.com/Tryny8/App-budget-flow/internal/model"
)

// Availability applies the overdraft adjustment to a budget figure.
//
// With overdraft disabled, the raw budget passes through unchanged; a
// negative value is the caller's signal that the money ran out. With
// overdraft enabled, the available budget floors at zero, the deficit is
// reported as used overdraft, and the remaining credit never goes negative.
//
// Callers apply this twice: once to the full-month remaining budget (the
// dashboard view) and once to the processed-only budget (the monthly
// tracking view). The two results are different numbers.
func Availability(remaining decimal.Decimal, overdraftEnabled bool, overdraftLimit decimal.Decimal) model.Availability {
	if !overdraftEnabled {
		return model.Availability{Available: remaining}
	}

	av := model.Availability{
		Available: remaining,
		Remaining: overdraftLimit,
	}
	if remaining.IsNegative() {
		av.Available = decimal.Zero
		av.Used = remaining.Abs()
		av.Remaining = overdraftLimit.Sub(av.Used)
		if av.Remaining.IsNegative() {
			av.Remaining = decimal.Zero
		}
	}
	return av
}
