package budget

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Tryny8/App-budget-flow/internal/model"
)

// BudgetAtDate returns processed income minus processed deductions as of
// targetDay, clamped to currentDay. The clamp means the answer is always
// "what has actually happened by day X": asking about a future day
// collapses to today's state, never speculative future money.
//
// ProjectionSeries deliberately does NOT apply this clamp; a forecast for a
// future sampling day includes entries that haven't occurred yet. The two
// behaviors answer different questions and must stay distinct.
func BudgetAtDate(incomes []model.Income, deductions []model.Deduction, currentDay, targetDay int) decimal.Decimal {
	day := targetDay
	if day > currentDay {
		day = currentDay
	}
	return sumIncomesThrough(incomes, day).Sub(sumDeductionsThrough(deductions, day))
}

// ProjectionSeries samples the cumulative budget at each requested day of
// month. Days are deduplicated and the result is sorted ascending by day.
// Cumulative sums use the inclusive boundary rule and are not clamped to
// currentDay, so future days show the genuine month-end forecast.
func ProjectionSeries(incomes []model.Income, deductions []model.Deduction, currentDay int, days []int) []model.ProjectionPoint {
	seen := make(map[int]struct{}, len(days))
	distinct := make([]int, 0, len(days))
	for _, day := range days {
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		distinct = append(distinct, day)
	}
	sort.Ints(distinct)

	points := make([]model.ProjectionPoint, 0, len(distinct))
	for _, day := range distinct {
		income := sumIncomesThrough(incomes, day)
		deducted := sumDeductionsThrough(deductions, day)
		points = append(points, model.ProjectionPoint{
			Date:                 day,
			CumulativeIncome:     income,
			CumulativeDeductions: deducted,
			Budget:               income.Sub(deducted),
			IsPast:               day <= currentDay,
			IsToday:              day == currentDay,
		})
	}
	return points
}
