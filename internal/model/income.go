// Package model defines domain types for budget-flow records and projections.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Frequency describes how often an income recurs.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyYearly  Frequency = "yearly"
)

// Frequencies lists all valid frequencies in display order.
var Frequencies = []Frequency{FrequencyMonthly, FrequencyWeekly, FrequencyYearly}

// ParseFrequency parses a frequency string, case-insensitive.
// An empty string defaults to monthly.
func ParseFrequency(s string) (Frequency, error) {
	if s == "" {
		return FrequencyMonthly, nil
	}
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("invalid frequency %q (expected monthly, weekly, or yearly)", s)
	}
	return f, nil
}

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyWeekly, FrequencyYearly:
		return true
	}
	return false
}

// Label returns the display string for the frequency.
func (f Frequency) Label() string {
	switch f {
	case FrequencyMonthly:
		return "Monthly"
	case FrequencyWeekly:
		return "Weekly"
	case FrequencyYearly:
		return "Yearly"
	}
	return string(f)
}

// Income is a recurring income entry anchored to a day of the month.
type Income struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Frequency   Frequency
	IncomeDate  int // day of month, 1-31
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the record field constraints before it reaches the
// store or the projection core.
func (in Income) Validate() error {
	if err := validateDescription(in.Description); err != nil {
		return err
	}
	if err := validateAmount(in.Amount); err != nil {
		return err
	}
	if !in.Frequency.Valid() {
		return fmt.Errorf("invalid frequency %q", in.Frequency)
	}
	return validateDay("income date", in.IncomeDate)
}

func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("description must not be empty")
	}
	return nil
}

func validateAmount(d decimal.Decimal) error {
	if d.Cmp(decimal.Zero) <= 0 {
		return fmt.Errorf("amount must be positive, got %s", d)
	}
	if d.Exponent() < -2 {
		return fmt.Errorf("amount %s has more than 2 decimal places", d)
	}
	return nil
}

func validateDay(field string, day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("%s must be between 1 and 31, got %d", field, day)
	}
	return nil
}
