package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

func init() {
	// Force Ascii output so rendered strings carry no ANSI codes
	lipgloss.SetColorProfile(termenv.Ascii)
	theme.SetActive("terminal")
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{80, 3},
		{7, 7},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) len = %d, want %d", tc.total, tc.n, len(widths), tc.n)
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sum = %d, want %d", tc.total, tc.n, sum, tc.total)
		}
	}
}

func TestLayoutRowZeroItems(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	short := ContentCard("Short", "one line", 24)
	tall := ContentCard("Tall", "a\nb\nc\nd", 24)

	joined := CardRow(tall, short)
	gotLines := len(strings.Split(joined, "\n"))
	wantLines := len(strings.Split(tall, "\n"))
	if gotLines != wantLines {
		t.Errorf("joined height = %d lines, want %d (tallest card)", gotLines, wantLines)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('o'); got != 0 {
		t.Errorf("TabIdxByKey('o') = %d, want 0", got)
	}
	if got := TabIdxByKey('x'); got != len(Tabs)-1 {
		t.Errorf("TabIdxByKey('x') = %d, want %d", got, len(Tabs)-1)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestSparklineCoversNegativeRange(t *testing.T) {
	// A mixed-sign series must normalize over min..max, with the lowest
	// value mapping to the smallest block and the highest to the largest.
	got := Sparkline([]float64{-500, 0, 500}, theme.Active.Green)
	runes := []rune(got)
	if len(runes) != 3 {
		t.Fatalf("Sparkline length = %d runes, want 3", len(runes))
	}
	if runes[0] != '▁' {
		t.Errorf("lowest value rendered %q, want ▁", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("highest value rendered %q, want █", runes[2])
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	got := Sparkline([]float64{100, 100, 100}, theme.Active.Green)
	for _, r := range got {
		if r != '▁' {
			t.Errorf("flat series rendered %q, want all ▁", r)
		}
	}
}

func TestBudgetBarsNegativeGetsBar(t *testing.T) {
	rows := []BudgetBarRow{
		{Label: "5th", Value: 1200, ValueText: "1,200.00"},
		{Label: "20th", Value: -100, ValueText: "-100.00"},
	}
	out := BudgetBars(rows, 60)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("BudgetBars rendered %d lines, want 2", len(lines))
	}
	// Both rows should have at least one bar cell, even the small negative.
	for i, line := range lines {
		if !strings.Contains(line, "█") {
			t.Errorf("row %d has no bar: %q", i, line)
		}
	}
}
