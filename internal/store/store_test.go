package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Tryny8/App-budget-flow/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "budgetflow.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestIncomeCRUD(t *testing.T) {
	s := openTestStore(t)

	in := &model.Income{
		Description: "salary",
		Amount:      dec(t, "2000.00"),
		Frequency:   model.FrequencyMonthly,
		IncomeDate:  1,
	}
	if err := s.CreateIncome(in); err != nil {
		t.Fatalf("CreateIncome: %v", err)
	}
	if in.ID == "" {
		t.Fatal("CreateIncome did not assign an id")
	}

	list, err := s.ListIncomes()
	if err != nil {
		t.Fatalf("ListIncomes: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListIncomes returned %d records, want 1", len(list))
	}
	if !list[0].Amount.Equal(dec(t, "2000.00")) {
		t.Fatalf("round-tripped amount = %s, want 2000.00", list[0].Amount)
	}

	// Partial update: only the amount changes.
	newAmount := dec(t, "2100.00")
	updated, err := s.UpdateIncome(in.ID, IncomeUpdate{Amount: &newAmount})
	if err != nil {
		t.Fatalf("UpdateIncome: %v", err)
	}
	if updated.Description != "salary" {
		t.Fatalf("partial update lost description, got %q", updated.Description)
	}
	if !updated.Amount.Equal(newAmount) {
		t.Fatalf("updated amount = %s, want 2100.00", updated.Amount)
	}
	if updated.ID != in.ID {
		t.Fatalf("update changed id from %s to %s", in.ID, updated.ID)
	}

	if err := s.DeleteIncome(in.ID); err != nil {
		t.Fatalf("DeleteIncome: %v", err)
	}
	list, err = s.ListIncomes()
	if err != nil {
		t.Fatalf("ListIncomes after delete: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("income survived delete, list = %v", list)
	}
}

func TestIncomeIDsNotReused(t *testing.T) {
	s := openTestStore(t)

	first := &model.Income{Description: "a", Amount: dec(t, "1.00"), Frequency: model.FrequencyMonthly, IncomeDate: 1}
	if err := s.CreateIncome(first); err != nil {
		t.Fatalf("CreateIncome: %v", err)
	}
	if err := s.DeleteIncome(first.ID); err != nil {
		t.Fatalf("DeleteIncome: %v", err)
	}

	second := &model.Income{Description: "b", Amount: dec(t, "1.00"), Frequency: model.FrequencyMonthly, IncomeDate: 1}
	if err := s.CreateIncome(second); err != nil {
		t.Fatalf("CreateIncome: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("id %s reused after deletion", first.ID)
	}
}

func TestUpdateDeleteNotFound(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.UpdateIncome("missing", IncomeUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateIncome on missing id = %v, want ErrNotFound", err)
	}
	if err := s.DeleteIncome("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteIncome on missing id = %v, want ErrNotFound", err)
	}
	if _, err := s.UpdateDeduction("missing", DeductionUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateDeduction on missing id = %v, want ErrNotFound", err)
	}
	if err := s.DeleteDeduction("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteDeduction on missing id = %v, want ErrNotFound", err)
	}
}

func TestCreateRejectsInvalidRecords(t *testing.T) {
	s := openTestStore(t)

	bad := &model.Income{Description: "", Amount: dec(t, "10.00"), IncomeDate: 5}
	if err := s.CreateIncome(bad); err == nil {
		t.Fatal("CreateIncome accepted empty description")
	}

	badDay := &model.Deduction{Description: "x", Amount: dec(t, "10.00"), DeductionDate: 40}
	if err := s.CreateDeduction(badDay); err == nil {
		t.Fatal("CreateDeduction accepted day 40")
	}

	negative := &model.Deduction{Description: "x", Amount: dec(t, "-1.00"), DeductionDate: 5}
	if err := s.CreateDeduction(negative); err == nil {
		t.Fatal("CreateDeduction accepted negative amount")
	}
}

func TestUpdateRejectsInvalidResult(t *testing.T) {
	s := openTestStore(t)

	d := &model.Deduction{Description: "rent", Amount: dec(t, "800.00"), Category: model.CategoryHousing, DeductionDate: 5}
	if err := s.CreateDeduction(d); err != nil {
		t.Fatalf("CreateDeduction: %v", err)
	}

	badDay := 0
	if _, err := s.UpdateDeduction(d.ID, DeductionUpdate{DeductionDate: &badDay}); err == nil {
		t.Fatal("UpdateDeduction accepted day 0")
	}

	// The stored record must be untouched after a rejected update.
	list, err := s.ListDeductions()
	if err != nil {
		t.Fatalf("ListDeductions: %v", err)
	}
	if len(list) != 1 || list[0].DeductionDate != 5 {
		t.Fatalf("rejected update modified stored record: %+v", list)
	}
}

func TestListOrderedByDay(t *testing.T) {
	s := openTestStore(t)

	for _, day := range []int{20, 5, 12} {
		d := &model.Deduction{Description: "d", Amount: dec(t, "10.00"), Category: model.CategoryOther, DeductionDate: day}
		if err := s.CreateDeduction(d); err != nil {
			t.Fatalf("CreateDeduction day %d: %v", day, err)
		}
	}

	list, err := s.ListDeductions()
	if err != nil {
		t.Fatalf("ListDeductions: %v", err)
	}
	var days []int
	for _, d := range list {
		days = append(days, d.DeductionDate)
	}
	if !reflect.DeepEqual(days, []int{5, 12, 20}) {
		t.Fatalf("list order = %v, want [5 12 20]", days)
	}
}

func TestProjectionDaysPersistence(t *testing.T) {
	s := openTestStore(t)

	for _, day := range []int{15, 5, 15, 0, 32, 28} {
		if err := s.AddProjectionDay(day); err != nil {
			t.Fatalf("AddProjectionDay(%d): %v", day, err)
		}
	}

	days, err := s.ProjectionDays()
	if err != nil {
		t.Fatalf("ProjectionDays: %v", err)
	}
	if !reflect.DeepEqual(days, []int{5, 15, 28}) {
		t.Fatalf("days = %v, want [5 15 28]", days)
	}

	if err := s.RemoveProjectionDay(15); err != nil {
		t.Fatalf("RemoveProjectionDay: %v", err)
	}
	if err := s.RemoveProjectionDay(22); err != nil { // absent: no-op
		t.Fatalf("RemoveProjectionDay absent: %v", err)
	}

	days, err = s.ProjectionDays()
	if err != nil {
		t.Fatalf("ProjectionDays: %v", err)
	}
	if !reflect.DeepEqual(days, []int{5, 28}) {
		t.Fatalf("days = %v, want [5 28]", days)
	}
}
