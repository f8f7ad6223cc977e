package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o', KeyPos: 0},
	{Name: "Incomes", Key: 'i', KeyPos: 0},
	{Name: "Deductions", Key: 'd', KeyPos: 0},
	{Name: "Projection", Key: 'p', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	bracketStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
			parts = append(parts,
				inactiveStyle.Render(tab.Name[:tab.KeyPos])+
					bracketStyle.Render("[")+keyStyle.Render(string(tab.Name[tab.KeyPos]))+bracketStyle.Render("]")+
					inactiveStyle.Render(tab.Name[tab.KeyPos+1:]))
		} else {
			parts = append(parts,
				inactiveStyle.Render(tab.Name)+
					bracketStyle.Render("[")+keyStyle.Render(string(tab.Key))+bracketStyle.Render("]"))
		}
	}

	return " " + strings.Join(parts, "  ")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
