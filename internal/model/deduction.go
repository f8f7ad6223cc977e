package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a recurring deduction.
type Category string

const (
	CategoryHousing      Category = "housing"
	CategoryTransport    Category = "transport"
	CategoryInsurance    Category = "insurance"
	CategoryUtilities    Category = "utilities"
	CategorySubscription Category = "subscription"
	CategoryOther        Category = "other"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryHousing,
	CategoryTransport,
	CategoryInsurance,
	CategoryUtilities,
	CategorySubscription,
	CategoryOther,
}

// ParseCategory parses a category string, case-insensitive.
// An empty string defaults to other.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryOther, nil
	}
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("invalid category %q (expected housing, transport, insurance, utilities, subscription, or other)", s)
	}
	return c, nil
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryHousing, CategoryTransport, CategoryInsurance,
		CategoryUtilities, CategorySubscription, CategoryOther:
		return true
	}
	return false
}

// Label returns the display string for the category.
func (c Category) Label() string {
	switch c {
	case CategoryHousing:
		return "Housing"
	case CategoryTransport:
		return "Transport"
	case CategoryInsurance:
		return "Insurance"
	case CategoryUtilities:
		return "Utilities"
	case CategorySubscription:
		return "Subscription"
	case CategoryOther:
		return "Other"
	}
	return string(c)
}

// Deduction is a recurring expense entry anchored to a day of the month.
type Deduction struct {
	ID            string
	Description   string
	Amount        decimal.Decimal
	Category      Category
	DeductionDate int // day of month, 1-31
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the record field constraints before it reaches the
// store or the projection core.
func (d Deduction) Validate() error {
	if err := validateDescription(d.Description); err != nil {
		return err
	}
	if err := validateAmount(d.Amount); err != nil {
		return err
	}
	if !d.Category.Valid() {
		return fmt.Errorf("invalid category %q", d.Category)
	}
	return validateDay("deduction date", d.DeductionDate)
}
