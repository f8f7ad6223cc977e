// Package components provides reusable TUI widgets for the budgetflow dashboard.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

// Metric describes the content of a single metric card.
type Metric struct {
	Label string
	Value string
	Note  string
	Color lipgloss.Color // value color, zero means TextPrimary
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	rem := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < rem {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small bordered card with a label, a bold value, and an
// optional dim note below it. outerWidth includes the border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}

	valueColor := m.Color
	if valueColor == "" {
		valueColor = t.TextPrimary
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(inner).
		Padding(0, 1)

	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) + "\n" +
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(m.Value)
	if m.Note != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note)
	}

	return card.Render(body)
}

// MetricCardRow renders metric cards side by side, summing to totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered card with an optional bold title line.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(inner).
		Padding(0, 1)

	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n" + body
	}

	return card.Render(content)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards ...string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border and padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
