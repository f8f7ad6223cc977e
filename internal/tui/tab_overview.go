package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Tryny8/App-budget-flow/internal/budget"
	"github.com/Tryny8/App-budget-flow/internal/cli"
	"github.com/Tryny8/App-budget-flow/internal/model"
	"github.com/Tryny8/App-budget-flow/internal/tui/components"
	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: month totals
	remainColor := t.Green
	if a.totals.RemainingBudget.IsNegative() {
		remainColor = t.Red
	}
	availColor := t.Green
	if a.monthAvail.Available.IsNegative() {
		availColor = t.Red
	}

	metrics := []components.Metric{
		{Label: "Income", Value: cli.FormatAmount(a.totals.TotalIncome), Color: t.Green,
			Note: fmt.Sprintf("%d sources", len(a.incomes))},
		{Label: "Deductions", Value: cli.FormatAmount(a.totals.TotalDeductions), Color: t.Red,
			Note: fmt.Sprintf("%d recurring", len(a.deductions))},
		{Label: "Remaining", Value: cli.FormatSigned(a.totals.RemainingBudget), Color: remainColor,
			Note: "full month"},
		{Label: "Available", Value: cli.FormatSigned(a.monthAvail.Available), Color: availColor,
			Note: availabilityNote(a.cfg.Overdraft.Enabled)},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: month to date + forecast sparkline side by side
	halves := components.LayoutRow(cw, 2)

	soFar := budget.BudgetAtDate(a.incomes, a.deductions, a.day, a.day)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var mtd strings.Builder
	fmt.Fprintf(&mtd, "%s %s\n",
		labelStyle.Render("Income received "),
		valueStyle.Render(cli.FormatAmount(sumIncomes(a.procIncomes))))
	fmt.Fprintf(&mtd, "%s %s\n",
		labelStyle.Render("Deducted so far "),
		valueStyle.Render(cli.FormatAmount(sumDeductions(a.procDeducts))))
	fmt.Fprintf(&mtd, "%s %s\n",
		labelStyle.Render("Budget so far   "),
		valueStyle.Render(cli.FormatSigned(soFar)))
	fmt.Fprintf(&mtd, "%s %s",
		labelStyle.Render("Still pending   "),
		valueStyle.Render(fmt.Sprintf("%d incomes, %d deductions",
			len(a.pendIncomes), len(a.pendDeducts))))

	mtdCard := components.ContentCard(
		fmt.Sprintf("As of the %s", cli.FormatDay(a.day)),
		mtd.String(), halves[0])

	var forecastBody string
	if len(a.series) > 1 {
		vals := make([]float64, len(a.series))
		for i, p := range a.series {
			vals[i], _ = p.Budget.Float64()
		}
		forecastBody = components.Sparkline(vals, t.Accent) + "\n" +
			labelStyle.Render(fmt.Sprintf("days %s", formatSeriesDays(a.series)))
	} else {
		forecastBody = labelStyle.Render("Add projection days on the [p] tab.")
	}
	forecastCard := components.ContentCard("Forecast", forecastBody, halves[1])

	b.WriteString(components.CardRow(mtdCard, forecastCard))
	b.WriteString("\n")

	// Row 3: overdraft usage bars when the allowance is on
	if a.cfg.Overdraft.Enabled {
		inner := components.CardInnerWidth(cw)
		barW := inner - 24
		if barW < 10 {
			barW = 10
		}

		var od strings.Builder
		od.WriteString(components.UsageBar("Month", overdraftPct(a.monthAvail), 12, barW))
		od.WriteString("\n")
		od.WriteString(components.UsageBar("So far", overdraftPct(a.trackingAvail), 12, barW))
		od.WriteString("\n")
		od.WriteString(labelStyle.Render(fmt.Sprintf("Limit %s, remaining %s",
			cli.FormatAmount(a.cfg.Overdraft.Limit),
			cli.FormatAmount(a.monthAvail.Remaining))))

		b.WriteString(components.ContentCard("Overdraft", od.String(), cw))
	}

	return b.String()
}

func availabilityNote(overdraft bool) string {
	if overdraft {
		return "with overdraft"
	}
	return "overdraft off"
}

func overdraftPct(av model.Availability) float64 {
	limit, _ := av.Used.Add(av.Remaining).Float64()
	if limit <= 0 {
		return 0
	}
	used, _ := av.Used.Float64()
	return used / limit
}

func formatSeriesDays(series []model.ProjectionPoint) string {
	parts := make([]string, len(series))
	for i, p := range series {
		parts[i] = fmt.Sprintf("%d", p.Date)
	}
	return strings.Join(parts, " ")
}

func sumIncomes(incomes []model.Income) decimal.Decimal {
	sum := decimal.Zero
	for _, in := range incomes {
		sum = sum.Add(in.Amount)
	}
	return sum
}

func sumDeductions(deductions []model.Deduction) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range deductions {
		sum = sum.Add(d.Amount)
	}
	return sum
}
