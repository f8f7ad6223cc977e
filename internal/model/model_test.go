package model

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func validIncome(t *testing.T) Income {
	t.Helper()
	return Income{
		Description: "salary",
		Amount:      dec(t, "2000.00"),
		Frequency:   FrequencyMonthly,
		IncomeDate:  1,
	}
}

func TestIncomeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Income)
		wantErr string
	}{
		{"valid", func(*Income) {}, ""},
		{"empty description", func(in *Income) { in.Description = "  " }, "description"},
		{"zero amount", func(in *Income) { in.Amount = decimal.Zero }, "positive"},
		{"negative amount", func(in *Income) { in.Amount = dec(t, "-5.00") }, "positive"},
		{"three decimal places", func(in *Income) { in.Amount = dec(t, "10.001") }, "decimal places"},
		{"day zero", func(in *Income) { in.IncomeDate = 0 }, "between 1 and 31"},
		{"day 32", func(in *Income) { in.IncomeDate = 32 }, "between 1 and 31"},
		{"bad frequency", func(in *Income) { in.Frequency = "fortnightly" }, "frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validIncome(t)
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDeductionValidate(t *testing.T) {
	d := Deduction{
		Description:   "rent",
		Amount:        dec(t, "800.00"),
		Category:      CategoryHousing,
		DeductionDate: 5,
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	d.Category = "groceries"
	if err := d.Validate(); err == nil {
		t.Fatal("Validate() accepted unknown category")
	}

	d.Category = CategoryOther
	d.DeductionDate = 32
	if err := d.Validate(); err == nil {
		t.Fatal("Validate() accepted day 32")
	}
}

func TestParseFrequency(t *testing.T) {
	f, err := ParseFrequency("")
	if err != nil || f != FrequencyMonthly {
		t.Fatalf("ParseFrequency(\"\") = %v, %v; want monthly default", f, err)
	}
	if f, _ := ParseFrequency("Weekly"); f != FrequencyWeekly {
		t.Fatalf("ParseFrequency(\"Weekly\") = %v, want weekly", f)
	}
	if _, err := ParseFrequency("daily"); err == nil {
		t.Fatal("ParseFrequency accepted \"daily\"")
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("")
	if err != nil || c != CategoryOther {
		t.Fatalf("ParseCategory(\"\") = %v, %v; want other default", c, err)
	}
	if c, _ := ParseCategory("HOUSING"); c != CategoryHousing {
		t.Fatalf("ParseCategory(\"HOUSING\") = %v, want housing", c)
	}
	if _, err := ParseCategory("misc"); err == nil {
		t.Fatal("ParseCategory accepted \"misc\"")
	}
}

func TestLabels(t *testing.T) {
	if got := FrequencyMonthly.Label(); got != "Monthly" {
		t.Fatalf("FrequencyMonthly.Label() = %q, want Monthly", got)
	}
	if got := CategorySubscription.Label(); got != "Subscription" {
		t.Fatalf("CategorySubscription.Label() = %q, want Subscription", got)
	}
}
