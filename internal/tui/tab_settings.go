package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tryny8/App-budget-flow/internal/cli"
	"github.com/Tryny8/App-budget-flow/internal/config"
	"github.com/Tryny8/App-budget-flow/internal/store"
	"github.com/Tryny8/App-budget-flow/internal/tui/components"
	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	selStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	overdraft := "off"
	if a.cfg.Overdraft.Enabled {
		overdraft = fmt.Sprintf("on, limit %s", cli.FormatAmount(a.cfg.Overdraft.Limit))
	}

	fields := []struct{ label, value string }{
		{"Overdraft", overdraft},
		{"Theme", a.cfg.Appearance.Theme},
	}

	var b strings.Builder
	for i, f := range fields {
		line := fmt.Sprintf("%-12s %s", f.label, f.value)
		if i == a.setCursor {
			b.WriteString(selStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Enter toggles overdraft or cycles the theme."))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Run `budgetflow setup` to change the overdraft limit."))

	settingsCard := components.ContentCard("Settings", b.String(), cw)

	dataDir := a.cfg.General.DataDir
	if dataDir == "" {
		dataDir = store.DataDir()
	}

	var p strings.Builder
	fmt.Fprintf(&p, "%s %s\n",
		labelStyle.Render("Config  "), config.Path())
	fmt.Fprintf(&p, "%s %s",
		labelStyle.Render("Data dir"), dataDir)
	pathsCard := components.ContentCard("Paths", p.String(), cw)

	return settingsCard + "\n" + pathsCard
}
