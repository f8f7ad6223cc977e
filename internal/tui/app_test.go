package tui

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Tryny8/App-budget-flow/internal/config"
	"github.com/Tryny8/App-budget-flow/internal/model"
)

func testApp(t *testing.T) App {
	t.Helper()
	amt := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("bad amount %q: %v", s, err)
		}
		return d
	}

	cfg := config.DefaultConfig()
	cfg.Overdraft.Enabled = true
	cfg.Overdraft.Limit = amt("300.00")

	a := NewApp(nil, cfg, 10)
	a.incomes = []model.Income{
		{ID: "i1", Description: "Salary", Amount: amt("2000.00"), Frequency: model.FrequencyMonthly, IncomeDate: 1},
	}
	a.deductions = []model.Deduction{
		{ID: "d1", Description: "Rent", Amount: amt("800.00"), Category: model.CategoryHousing, DeductionDate: 5},
		{ID: "d2", Description: "Insurance", Amount: amt("500.00"), Category: model.CategoryInsurance, DeductionDate: 20},
	}
	a.projDays = []int{1, 10, 25}
	a.loaded = true
	a.recompute()
	return a
}

func TestRecomputeSplitsAndSeries(t *testing.T) {
	a := testApp(t)

	if len(a.procIncomes) != 1 || len(a.pendIncomes) != 0 {
		t.Errorf("incomes split = %d/%d, want 1/0", len(a.procIncomes), len(a.pendIncomes))
	}
	if len(a.procDeducts) != 1 || len(a.pendDeducts) != 1 {
		t.Errorf("deductions split = %d/%d, want 1/1", len(a.procDeducts), len(a.pendDeducts))
	}

	if got := a.totals.RemainingBudget.StringFixed(2); got != "700.00" {
		t.Errorf("RemainingBudget = %s, want 700.00", got)
	}

	if len(a.series) != 3 {
		t.Fatalf("series length = %d, want 3", len(a.series))
	}
	// Day 25 forecast includes the pending insurance deduction, unclamped.
	if got := a.series[2].Budget.StringFixed(2); got != "700.00" {
		t.Errorf("series[2].Budget = %s, want 700.00", got)
	}
	if !a.series[1].IsToday {
		t.Errorf("series[1].IsToday = false, want true for day 10")
	}
}

func TestRecomputeOverdraftViews(t *testing.T) {
	a := testApp(t)

	// Full month remaining is positive, so nothing is drawn from the buffer.
	if !a.monthAvail.Used.IsZero() {
		t.Errorf("month Used = %s, want 0", a.monthAvail.Used)
	}
	if got := a.monthAvail.Remaining.StringFixed(2); got != "300.00" {
		t.Errorf("month Remaining = %s, want 300.00", got)
	}

	// Processed-only budget on day 10 is 2000 - 800 = 1200.
	if got := a.trackingAvail.Available.StringFixed(2); got != "1200.00" {
		t.Errorf("tracking Available = %s, want 1200.00", got)
	}
}

func TestRecomputeClampsCursors(t *testing.T) {
	a := testApp(t)
	a.incCursor = 99
	a.projCursor = 99
	a.recompute()

	if a.incCursor != len(a.incomes)-1 {
		t.Errorf("incCursor = %d, want %d", a.incCursor, len(a.incomes)-1)
	}
	if a.projCursor != len(a.projDays)-1 {
		t.Errorf("projCursor = %d, want %d", a.projCursor, len(a.projDays)-1)
	}
}

func TestClampCursorEmptyList(t *testing.T) {
	if got := clampCursor(5, 0); got != 0 {
		t.Errorf("clampCursor(5, 0) = %d, want 0", got)
	}
}

func TestTruncStr(t *testing.T) {
	for _, tc := range []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"much too long for this", 8, "much to…"},
		{"anything", 0, ""},
	} {
		if got := truncStr(tc.in, tc.limit); got != tc.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestIncomeFromValuesParsesForm(t *testing.T) {
	in := incomeFromValues(entryValues{
		description: "  Salary ",
		amount:      "2500.00",
		day:         "1",
		choice:      "monthly",
	})
	if in.Description != "Salary" {
		t.Errorf("Description = %q, want Salary", in.Description)
	}
	if got := in.Amount.StringFixed(2); got != "2500.00" {
		t.Errorf("Amount = %s, want 2500.00", got)
	}
	if in.IncomeDate != 1 {
		t.Errorf("IncomeDate = %d, want 1", in.IncomeDate)
	}
	if in.Frequency != model.FrequencyMonthly {
		t.Errorf("Frequency = %q, want monthly", in.Frequency)
	}
}

func TestFormValidators(t *testing.T) {
	if err := validateAmountInput("12.345"); err == nil {
		t.Error("validateAmountInput accepted three decimal places")
	}
	if err := validateAmountInput("-5"); err == nil {
		t.Error("validateAmountInput accepted a negative amount")
	}
	if err := validateAmountInput("1250.50"); err != nil {
		t.Errorf("validateAmountInput(1250.50) = %v, want nil", err)
	}
	if err := validateDayInput("32"); err == nil {
		t.Error("validateDayInput accepted 32")
	}
	if err := validateDayInput("31"); err != nil {
		t.Errorf("validateDayInput(31) = %v, want nil", err)
	}
}
