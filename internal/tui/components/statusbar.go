package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and a right-aligned context string (usually the current day).
func RenderStatusBar(width int, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [a]dd  [r]emove  [?]help  [q]uit"
	if right != "" {
		right += " "
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 0 {
		pad = 0
	}

	return style.Render(left + strings.Repeat(" ", pad) + right)
}
