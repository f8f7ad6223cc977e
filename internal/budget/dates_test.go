package budget

import (
	"reflect"
	"testing"
)

func TestAddProjectionDayKeepsSorted(t *testing.T) {
	days := []int{5, 20}

	days = AddProjectionDay(days, 10)
	if !reflect.DeepEqual(days, []int{5, 10, 20}) {
		t.Fatalf("days = %v, want [5 10 20]", days)
	}

	days = AddProjectionDay(days, 1)
	days = AddProjectionDay(days, 31)
	if !reflect.DeepEqual(days, []int{1, 5, 10, 20, 31}) {
		t.Fatalf("days = %v, want [1 5 10 20 31]", days)
	}
}

func TestAddProjectionDayRejectsSilently(t *testing.T) {
	days := []int{5, 10}

	for _, bad := range []int{0, 32, -1} {
		got := AddProjectionDay(days, bad)
		if !reflect.DeepEqual(got, days) {
			t.Fatalf("adding out-of-range day %d changed set to %v", bad, got)
		}
	}

	// Duplicate add is a no-op, not an error.
	got := AddProjectionDay(days, 10)
	if !reflect.DeepEqual(got, []int{5, 10}) {
		t.Fatalf("duplicate add changed set to %v", got)
	}
}

func TestRemoveProjectionDay(t *testing.T) {
	days := []int{5, 10, 20}

	days = RemoveProjectionDay(days, 10)
	if !reflect.DeepEqual(days, []int{5, 20}) {
		t.Fatalf("days = %v, want [5 20]", days)
	}

	// Absent day is a no-op.
	got := RemoveProjectionDay(days, 15)
	if !reflect.DeepEqual(got, []int{5, 20}) {
		t.Fatalf("removing absent day changed set to %v", got)
	}
}

func TestProjectionDaySetNeverDuplicates(t *testing.T) {
	var days []int
	for _, d := range []int{15, 3, 15, 28, 3, 1, 28, 28} {
		days = AddProjectionDay(days, d)
	}
	if !reflect.DeepEqual(days, []int{1, 3, 15, 28}) {
		t.Fatalf("days = %v, want [1 3 15 28]", days)
	}
}
