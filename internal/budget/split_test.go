package budget

import (
	"testing"

	"github.com/Tryny8/App-budget-flow/internal/model"
)

func TestSplitDeductionsBoundaryInclusive(t *testing.T) {
	deductions := []model.Deduction{
		deduction(t, "before", "10.00", 9),
		deduction(t, "on the day", "20.00", 10),
		deduction(t, "after", "30.00", 11),
	}

	processed, pending := SplitDeductions(deductions, 10)

	if len(processed) != 2 {
		t.Fatalf("processed count = %d, want 2", len(processed))
	}
	if processed[1].Description != "on the day" {
		t.Fatalf("record scheduled on the current day landed in pending; processed = %v", processed)
	}
	if len(pending) != 1 || pending[0].Description != "after" {
		t.Fatalf("pending = %v, want only the day-11 record", pending)
	}
}

func TestSplitIncomesPartitionTotalAndDisjoint(t *testing.T) {
	incomes := []model.Income{
		income(t, "a", "1.00", 1),
		income(t, "b", "2.00", 15),
		income(t, "c", "3.00", 31),
	}

	for day := 1; day <= 31; day++ {
		processed, pending := SplitIncomes(incomes, day)

		if len(processed)+len(pending) != len(incomes) {
			t.Fatalf("day %d: partition lost records, %d + %d != %d",
				day, len(processed), len(pending), len(incomes))
		}

		seen := make(map[string]int)
		for _, in := range processed {
			seen[in.ID]++
		}
		for _, in := range pending {
			seen[in.ID]++
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("day %d: record %s appeared %d times across the partition", day, id, n)
			}
		}
	}
}

func TestSplitEmpty(t *testing.T) {
	processed, pending := SplitIncomes(nil, 15)
	if len(processed) != 0 || len(pending) != 0 {
		t.Fatalf("empty split = %d processed, %d pending, want 0/0", len(processed), len(pending))
	}
}
