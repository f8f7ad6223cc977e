package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values. Values may be negative;
// the line is normalized over the min..max range.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3) // UTF-8 block chars are 3 bytes
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// BudgetBarRow is one labeled row in a BudgetBars chart.
type BudgetBarRow struct {
	Label     string
	Value     float64
	ValueText string
	Highlight bool // render the label in the accent color (e.g. today)
}

// BudgetBars renders horizontal bars scaled to the largest magnitude in the
// set. Positive values draw in green, negative in red, so an overdrawn
// projection day stands out at a glance.
func BudgetBars(rows []BudgetBarRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	valueW := 0
	maxMag := 0.0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > labelW {
			labelW = w
		}
		if w := lipgloss.Width(r.ValueText); w > valueW {
			valueW = w
		}
		mag := r.Value
		if mag < 0 {
			mag = -mag
		}
		if mag > maxMag {
			maxMag = mag
		}
	}
	if maxMag == 0 {
		maxMag = 1
	}

	barMax := width - labelW - valueW - 4
	if barMax < 4 {
		barMax = 4
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	hlStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, r := range rows {
		mag := r.Value
		barStyle := posStyle
		if mag < 0 {
			mag = -mag
			barStyle = negStyle
		}
		barLen := int(mag / maxMag * float64(barMax))
		if barLen < 1 && r.Value != 0 {
			barLen = 1
		}

		ls := labelStyle
		if r.Highlight {
			ls = hlStyle
		}
		b.WriteString(ls.Render(fmt.Sprintf("%-*s", labelW, r.Label)))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString(strings.Repeat(" ", barMax-barLen+1))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%*s", valueW, r.ValueText)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
