// Package tui provides the interactive Bubble Tea dashboard for budgetflow.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tryny8/App-budget-flow/internal/budget"
	"github.com/Tryny8/App-budget-flow/internal/cli"
	"github.com/Tryny8/App-budget-flow/internal/config"
	"github.com/Tryny8/App-budget-flow/internal/model"
	"github.com/Tryny8/App-budget-flow/internal/store"
	"github.com/Tryny8/App-budget-flow/internal/tui/components"
	"github.com/Tryny8/App-budget-flow/internal/tui/theme"
)

// dataLoadedMsg is sent when the store finishes loading all records.
type dataLoadedMsg struct {
	incomes    []model.Income
	deductions []model.Deduction
	projDays   []int
	err        error
}

const (
	tabOverview = iota
	tabIncomes
	tabDeductions
	tabProjection
	tabSettings
)

// form kinds, zero means no form is active
const (
	formNone = iota
	formIncome
	formDeduction
	formProjDay
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5

	settingsFieldCount = 2 // overdraft toggle, theme
)

// App is the root Bubble Tea model.
type App struct {
	st  *store.Store
	cfg config.Config
	day int // current day of month

	// Data
	incomes    []model.Income
	deductions []model.Deduction
	projDays   []int
	loaded     bool
	loadErr    error

	// Computed on every data change
	totals        model.Totals
	procIncomes   []model.Income
	pendIncomes   []model.Income
	procDeducts   []model.Deduction
	pendDeducts   []model.Deduction
	series        []model.ProjectionPoint
	monthAvail    model.Availability
	trackingAvail model.Availability

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab cursors
	incCursor  int
	dedCursor  int
	projCursor int
	setCursor  int

	// Add-entry form (huh). formVals is a pointer so the form inputs and
	// every copy of the model share the same backing struct.
	form     *huh.Form
	formVals *entryValues
	formKind int
}

// NewApp creates the TUI app model. day is the effective current day of month.
func NewApp(st *store.Store, cfg config.Config, day int) App {
	return App{st: st, cfg: cfg, day: day}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return loadDataCmd(a.st)
}

func loadDataCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		incomes, err := st.ListIncomes()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		deductions, err := st.ListDeductions()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		projDays, err := st.ProjectionDays()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{incomes: incomes, deductions: deductions, projDays: projDays}
	}
}

func (a *App) recompute() {
	a.totals = budget.ComputeTotals(a.incomes, a.deductions)
	a.procIncomes, a.pendIncomes = budget.SplitIncomes(a.incomes, a.day)
	a.procDeducts, a.pendDeducts = budget.SplitDeductions(a.deductions, a.day)
	a.series = budget.ProjectionSeries(a.incomes, a.deductions, a.day, a.projDays)

	a.monthAvail = budget.Availability(a.totals.RemainingBudget,
		a.cfg.Overdraft.Enabled, a.cfg.Overdraft.Limit)

	soFar := budget.BudgetAtDate(a.incomes, a.deductions, a.day, a.day)
	a.trackingAvail = budget.Availability(soFar,
		a.cfg.Overdraft.Enabled, a.cfg.Overdraft.Limit)

	a.incCursor = clampCursor(a.incCursor, len(a.incomes))
	a.dedCursor = clampCursor(a.dedCursor, len(a.deductions))
	a.projCursor = clampCursor(a.projCursor, len(a.projDays))
}

func clampCursor(cur, n int) int {
	if cur >= n {
		cur = n - 1
	}
	if cur < 0 {
		cur = 0
	}
	return cur
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// An active form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		return a.updateTabKeys(key)

	case dataLoadedMsg:
		a.loadErr = msg.err
		if msg.err == nil {
			a.incomes = msg.incomes
			a.deductions = msg.deductions
			a.projDays = msg.projDays
			a.loaded = true
			a.recompute()
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

// updateTabKeys handles the list navigation and edit keys of the active tab.
func (a App) updateTabKeys(key string) (tea.Model, tea.Cmd) {
	switch a.activeTab {
	case tabIncomes:
		switch key {
		case "j", "down":
			a.incCursor = clampCursor(a.incCursor+1, len(a.incomes))
		case "k", "up":
			a.incCursor = clampCursor(a.incCursor-1, len(a.incomes))
		case "a":
			a.formVals = &entryValues{choice: string(model.FrequencyMonthly)}
			a.formKind = formIncome
			a.form = a.newSizedForm(newIncomeForm(a.formVals))
			return a, a.form.Init()
		case "r":
			if len(a.incomes) > 0 {
				return a, a.deleteIncomeCmd(a.incomes[a.incCursor].ID)
			}
		}

	case tabDeductions:
		switch key {
		case "j", "down":
			a.dedCursor = clampCursor(a.dedCursor+1, len(a.deductions))
		case "k", "up":
			a.dedCursor = clampCursor(a.dedCursor-1, len(a.deductions))
		case "a":
			a.formVals = &entryValues{choice: string(model.CategoryOther)}
			a.formKind = formDeduction
			a.form = a.newSizedForm(newDeductionForm(a.formVals))
			return a, a.form.Init()
		case "r":
			if len(a.deductions) > 0 {
				return a, a.deleteDeductionCmd(a.deductions[a.dedCursor].ID)
			}
		}

	case tabProjection:
		switch key {
		case "j", "down":
			a.projCursor = clampCursor(a.projCursor+1, len(a.projDays))
		case "k", "up":
			a.projCursor = clampCursor(a.projCursor-1, len(a.projDays))
		case "a":
			a.formVals = &entryValues{}
			a.formKind = formProjDay
			a.form = a.newSizedForm(newProjectionDayForm(a.formVals))
			return a, a.form.Init()
		case "r":
			if len(a.projDays) > 0 {
				return a, a.removeProjDayCmd(a.projDays[a.projCursor])
			}
		}

	case tabSettings:
		switch key {
		case "j", "down":
			a.setCursor = clampCursor(a.setCursor+1, settingsFieldCount)
		case "k", "up":
			a.setCursor = clampCursor(a.setCursor-1, settingsFieldCount)
		case "enter", " ":
			return a.settingsApply()
		}
	}

	return a, nil
}

// settingsApply toggles or cycles the selected settings field and persists it.
func (a App) settingsApply() (tea.Model, tea.Cmd) {
	switch a.setCursor {
	case 0:
		a.cfg.Overdraft.Enabled = !a.cfg.Overdraft.Enabled
	case 1:
		idx := 0
		for i, th := range theme.All {
			if th.Name == a.cfg.Appearance.Theme {
				idx = i
				break
			}
		}
		a.cfg.Appearance.Theme = theme.All[(idx+1)%len(theme.All)].Name
		theme.SetActive(a.cfg.Appearance.Theme)
	}

	// Best-effort persist, the in-memory value applies either way
	_ = config.Save(a.cfg)
	a.recompute()
	return a, nil
}

func (a App) newSizedForm(f *huh.Form) *huh.Form {
	if a.width > 0 {
		f = f.WithWidth(a.width).WithHeight(a.height)
	}
	return f
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		kind, vals := a.formKind, *a.formVals
		a.form = nil
		a.formKind = formNone
		a.formVals = nil

		switch kind {
		case formIncome:
			return a, a.createIncomeCmd(incomeFromValues(vals))
		case formDeduction:
			return a, a.createDeductionCmd(deductionFromValues(vals))
		case formProjDay:
			return a, a.addProjDayCmd(vals)
		}
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

// ─── Store commands ─────────────────────────────────────────────

func (a App) createIncomeCmd(in model.Income) tea.Cmd {
	st := a.st
	return func() tea.Msg {
		if err := st.CreateIncome(&in); err != nil {
			return dataLoadedMsg{err: err}
		}
		return loadDataCmd(st)()
	}
}

func (a App) createDeductionCmd(d model.Deduction) tea.Cmd {
	st := a.st
	return func() tea.Msg {
		if err := st.CreateDeduction(&d); err != nil {
			return dataLoadedMsg{err: err}
		}
		return loadDataCmd(st)()
	}
}

func (a App) deleteIncomeCmd(id string) tea.Cmd {
	st := a.st
	return func() tea.Msg {
		if err := st.DeleteIncome(id); err != nil {
			return dataLoadedMsg{err: err}
		}
		return loadDataCmd(st)()
	}
}

func (a App) deleteDeductionCmd(id string) tea.Cmd {
	st := a.st
	return func() tea.Msg {
		if err := st.DeleteDeduction(id); err != nil {
			return dataLoadedMsg{err: err}
		}
		return loadDataCmd(st)()
	}
}

func (a App) addProjDayCmd(vals entryValues) tea.Cmd {
	st := a.st
	day, _ := strconv.Atoi(strings.TrimSpace(vals.day))
	return func() tea.Msg {
		if err := st.AddProjectionDay(day); err != nil {
			return dataLoadedMsg{err: err}
		}
		return loadDataCmd(st)()
	}
}

func (a App) removeProjDayCmd(day int) tea.Cmd {
	st := a.st
	return func() tea.Msg {
		if err := st.RemoveProjectionDay(day); err != nil {
			return dataLoadedMsg{err: err}
		}
		return loadDataCmd(st)()
	}
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		if a.loadErr != nil {
			return fmt.Sprintf("\n  Could not load data: %s\n", a.loadErr)
		}
		return "\n  Loading..."
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  budgetflow needs at least %d columns.\n",
		a.width, minTerminalWidth)
	return padHeight(msg, a.height)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"o i d p x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move cursor"},
		{"a", "Add entry on the current tab"},
		{"r", "Remove selected entry"},
		{"Enter", "Toggle setting (Settings tab)"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"

	right := "Day " + cli.FormatDay(a.day)
	if a.loadErr != nil {
		right = "error: " + a.loadErr.Error()
	}
	statusBar := components.RenderStatusBar(w, right)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabIncomes:
		content = a.renderIncomesTab(cw)
	case tabDeductions:
		content = a.renderDeductionsTab(cw)
	case tabProjection:
		content = a.renderProjectionTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
