package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tryny8/App-budget-flow/internal/cli"
	"github.com/Tryny8/App-budget-flow/internal/tui/components"
	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

func (a App) renderProjectionTab(cw int) string {
	t := theme.Active

	if len(a.projDays) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No projection days configured. Press [a] to add one.")
		return components.ContentCard("Forecast", hint, cw)
	}

	inner := components.CardInnerWidth(cw)

	// Bar chart of the running budget across all projection days
	rows := make([]components.BudgetBarRow, len(a.series))
	for i, p := range a.series {
		v, _ := p.Budget.Float64()
		rows[i] = components.BudgetBarRow{
			Label:     cli.FormatDay(p.Date),
			Value:     v,
			ValueText: cli.FormatSigned(p.Budget),
			Highlight: p.IsToday,
		}
	}
	chartCard := components.ContentCard("Budget by day", components.BudgetBars(rows, inner), cw)

	// Day list with cursor for add/remove
	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	accStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var b strings.Builder
	for i, p := range a.series {
		state := ""
		switch {
		case p.IsToday:
			state = accStyle.Render("today")
		case p.IsPast:
			state = dimStyle.Render("past")
		}

		line := fmt.Sprintf("%5s  in %10s  out %10s  = %10s  ",
			cli.FormatDay(p.Date),
			cli.FormatAmount(p.CumulativeIncome),
			cli.FormatAmount(p.CumulativeDeductions),
			cli.FormatSigned(p.Budget))

		if i == a.projCursor {
			b.WriteString(selStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString(state)
		if i < len(a.series)-1 {
			b.WriteString("\n")
		}
	}
	listCard := components.ContentCard(
		fmt.Sprintf("Projection days (%d)", len(a.projDays)), b.String(), cw)

	return chartCard + "\n" + listCard
}
