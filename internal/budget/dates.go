package budget

import "sort"

// AddProjectionDay inserts a day into a sorted, duplicate-free day set.
// Out-of-range days (outside 1-31) and duplicates are ignored silently;
// the original slice is returned unchanged in those cases.
func AddProjectionDay(days []int, day int) []int {
	if day < 1 || day > 31 {
		return days
	}
	idx := sort.SearchInts(days, day)
	if idx < len(days) && days[idx] == day {
		return days
	}
	out := make([]int, 0, len(days)+1)
	out = append(out, days[:idx]...)
	out = append(out, day)
	out = append(out, days[idx:]...)
	return out
}

// RemoveProjectionDay deletes a day from the set; absent days are a no-op.
func RemoveProjectionDay(days []int, day int) []int {
	idx := sort.SearchInts(days, day)
	if idx >= len(days) || days[idx] != day {
		return days
	}
	out := make([]int, 0, len(days)-1)
	out = append(out, days[:idx]...)
	out = append(out, days[idx+1:]...)
	return out
}
