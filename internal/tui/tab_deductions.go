package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tryny8/App-budget-flow/internal/cli"
	"github.com/Tryny8/App-budget-flow/internal/tui/components"
	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

func (a App) renderDeductionsTab(cw int) string {
	t := theme.Active

	if len(a.deductions) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No deductions yet. Press [a] to add one.")
		return components.ContentCard("Deductions", hint, cw)
	}

	inner := components.CardInnerWidth(cw)
	descW := inner - 38
	if descW < 12 {
		descW = 12
	}

	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	doneStyle := lipgloss.NewStyle().Foreground(t.Orange)
	pendStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	var b strings.Builder
	for i, d := range a.deductions {
		state := pendStyle.Render("pending  ")
		if d.DeductionDate <= a.day {
			state = doneStyle.Render("deducted ")
		}
		line := fmt.Sprintf("%-*s %-13s %5s  %10s  ",
			descW, truncStr(d.Description, descW),
			d.Category.Label(),
			cli.FormatDay(d.DeductionDate),
			cli.FormatAmount(d.Amount))

		if i == a.dedCursor {
			b.WriteString(selStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString(state)
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render(fmt.Sprintf("%-*s %26s %10s",
		descW+2, "TOTAL", "", cli.FormatAmount(a.totals.TotalDeductions))))

	return components.ContentCard(
		fmt.Sprintf("Deductions (%d deducted, %d pending)", len(a.procDeducts), len(a.pendDeducts)),
		b.String(), cw)
}
