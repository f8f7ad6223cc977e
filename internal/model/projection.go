package model

import "github.com/shopspring/decimal"

// Totals holds the full-month sums over the current record snapshot.
// No date filtering applies; scheduled-but-not-yet-occurred entries count.
type Totals struct {
	TotalIncome     decimal.Decimal
	TotalDeductions decimal.Decimal
	RemainingBudget decimal.Decimal
}

// ProjectionPoint is the derived budget state sampled at one day of the month.
type ProjectionPoint struct {
	Date                 int // day of month, 1-31
	CumulativeIncome     decimal.Decimal
	CumulativeDeductions decimal.Decimal
	Budget               decimal.Decimal
	IsPast               bool
	IsToday              bool
}

// Availability is the overdraft-adjusted view of a budget figure.
// With overdraft disabled, Available mirrors the raw budget and may be
// negative; Used and Remaining are zero.
type Availability struct {
	Available decimal.Decimal
	Used      decimal.Decimal // overdraft consumed by a negative budget
	Remaining decimal.Decimal // overdraft credit still untouched
}
