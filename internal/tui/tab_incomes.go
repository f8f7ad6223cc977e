package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tryny8/App-budget-flow/internal/cli"
	"github.com/Tryny8/App-budget-flow/internal/tui/components"
	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

func (a App) renderIncomesTab(cw int) string {
	t := theme.Active

	if len(a.incomes) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No incomes yet. Press [a] to add one.")
		return components.ContentCard("Incomes", hint, cw)
	}

	inner := components.CardInnerWidth(cw)
	descW := inner - 34
	if descW < 12 {
		descW = 12
	}

	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	pendStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	var b strings.Builder
	for i, in := range a.incomes {
		state := pendStyle.Render("pending  ")
		if in.IncomeDate <= a.day {
			state = doneStyle.Render("received ")
		}
		line := fmt.Sprintf("%-*s %-9s %5s  %10s  ",
			descW, truncStr(in.Description, descW),
			in.Frequency.Label(),
			cli.FormatDay(in.IncomeDate),
			cli.FormatAmount(in.Amount))

		if i == a.incCursor {
			b.WriteString(selStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString(state)
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render(fmt.Sprintf("%-*s %22s %10s",
		descW+2, "TOTAL", "", cli.FormatAmount(a.totals.TotalIncome))))

	return components.ContentCard(
		fmt.Sprintf("Incomes (%d received, %d pending)", len(a.procIncomes), len(a.pendIncomes)),
		b.String(), cw)
}
