// internal/tui/app.go
//
// This is the main TUI for the organizational health dashboard.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: the filter selections, form inputs and the fabricated tables
// 2. Update: folds key presses into that state
// 3. View: recomputes the whole screen from it on every render
//
// Nothing derived (projections, alerts, KPI bands) is cached between renders.

package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/tablero/internal/actionplan"
	"github.com/kingrea/tablero/internal/config"
	"github.com/kingrea/tablero/internal/dataset"
	"github.com/kingrea/tablero/internal/export"
	"github.com/kingrea/tablero/internal/filter"
	"github.com/kingrea/tablero/internal/logbook"
	"github.com/kingrea/tablero/internal/logging"
)

const (
	clockInterval = time.Minute
	timestampFmt  = "02/01/2006 15:04"
	logPanelLines = 6
)

// focusArea is the panel that receives key presses.
type focusArea int

const (
	focusDashboard focusArea = iota
	focusSidebar
	focusForm
)

type clockTickMsg time.Time

type exportDoneMsg struct {
	ack export.Ack
	err error
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClock overrides the wall clock used for the header and form defaults.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLogbook injects the activity journal.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		if lb != nil {
			a.logbook = lb
		}
	}
}

// WithPlanSink replaces the sink that receives saved action plans.
func WithPlanSink(sink actionplan.Sink) AppOption {
	return func(a *App) {
		if sink != nil {
			a.sink = sink
		}
	}
}

// WithCache shares a dataset cache across App instances.
func WithCache(cache *dataset.Cache) AppOption {
	return func(a *App) {
		if cache != nil {
			a.cache = cache
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	config   *config.Config
	cache    *dataset.Cache
	tables   *dataset.Tables
	logbook  *logbook.Logbook
	activity *logbook.Ring
	logger   *slog.Logger
	sink     actionplan.Sink
	now      func() time.Time

	keys    keyMap
	help    help.Model
	sidebar *sidebar
	form    *planForm
	exports []export.Action

	focus     focusArea
	tab       dashTab
	statusMsg string
	showHelp  bool

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance for cfg.
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	if cfg == nil {
		return nil, errors.New("tui: config is required")
	}
	app := &App{
		config:   cfg,
		activity: logbook.NewRing(logPanelLines),
		logger:   logging.New("tui"),
		now:      time.Now,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.cache == nil {
		app.cache = dataset.NewCache()
	}
	if app.sink == nil {
		app.sink = actionplan.DiscardSink{Now: app.now}
	}
	if app.logbook == nil {
		lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "journey.log"))
		if err == nil {
			app.logbook = lb
		} else {
			app.logger.Warn("activity journal unavailable", "err", err)
		}
	}

	app.tables = app.cache.Get(cfg.Seed())
	start, end := cfg.Range()
	app.sidebar = newSidebar(start, end)
	app.form = newPlanForm(actionplan.NewController(app.sink), app.now)
	app.exports = export.Actions(app.now)

	app.note(logbook.LevelInfo, logbook.CategorySession, "Sesión iniciada · semilla %d", cfg.Seed())
	app.logger.Info("dashboard ready", "seed", cfg.Seed(), "departments", len(app.tables.Nom))
	return app, nil
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return a.tickClock()
}

// tickClock asks for a re-render so the header timestamp stays current.
func (a *App) tickClock() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case clockTickMsg:
		return a, a.tickClock()

	case exportDoneMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("Exportación fallida: %v", msg.err)
			a.note(logbook.LevelError, logbook.CategoryExport, "%v", msg.err)
			return a, nil
		}
		a.statusMsg = "✅ " + msg.ack.Message
		a.note(logbook.LevelInfo, logbook.CategoryExport, "%s", msg.ack.Action)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		if a.focus != focusDashboard {
			return a, a.setFocus(focusDashboard)
		}
		return a, nil
	}
	switch {
	case key.Matches(msg, a.keys.NextFocus):
		return a, a.cycleFocus(1)
	case key.Matches(msg, a.keys.PrevFocus):
		return a, a.cycleFocus(-1)
	}

	switch a.focus {
	case focusSidebar:
		return a, a.handleSidebarKey(msg)
	case focusForm:
		return a, a.handleFormKey(msg)
	default:
		return a.handleDashboardKey(msg)
	}
}

func (a *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.TabNOM):
		a.tab = tabNOM
	case key.Matches(msg, a.keys.TabLEAN):
		a.tab = tabLEAN
	case key.Matches(msg, a.keys.TabWell):
		a.tab = tabWellbeing
	case key.Matches(msg, a.keys.Right):
		a.tab = (a.tab + 1) % tabCount
	case key.Matches(msg, a.keys.Left):
		a.tab = (a.tab + tabCount - 1) % tabCount
	case key.Matches(msg, a.keys.Form):
		cmd := a.form.toggleOpen()
		if a.form.open {
			return a, tea.Batch(cmd, a.setFocus(focusForm))
		}
		return a, cmd
	case key.Matches(msg, a.keys.PDF):
		return a, a.runExport(0)
	case key.Matches(msg, a.keys.Excel):
		return a, a.runExport(1)
	case key.Matches(msg, a.keys.Email):
		return a, a.runExport(2)
	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
	}
	return a, nil
}

func (a *App) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Up):
		return a.sidebar.move(-1)
	case key.Matches(msg, a.keys.Down):
		return a.sidebar.move(1)
	}
	if a.sidebar.editingDate() {
		if msg.Type == tea.KeyEnter {
			return a.sidebar.move(1)
		}
		return a.sidebar.updateDate(msg)
	}
	if key.Matches(msg, a.keys.Toggle) {
		if a.sidebar.toggle() {
			a.applyFilters()
		}
	}
	return nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Up):
		return a.form.move(-1)
	case key.Matches(msg, a.keys.Down):
		return a.form.move(1)
	}
	switch a.form.field {
	case fieldDepartment:
		switch {
		case key.Matches(msg, a.keys.Left):
			a.form.cycleDepartment(-1)
		case key.Matches(msg, a.keys.Right), key.Matches(msg, a.keys.Toggle):
			a.form.cycleDepartment(1)
		}
		return nil
	case fieldSubmit:
		if key.Matches(msg, a.keys.Toggle) {
			a.submitPlan()
		}
		return nil
	}
	if msg.Type == tea.KeyEnter {
		return a.form.move(1)
	}
	return a.form.updateInput(msg)
}

func (a *App) submitPlan() {
	ack, ok, err := a.form.submit(context.Background())
	if !ok {
		if errors.Is(err, actionplan.ErrIncomplete) {
			a.logger.Debug("plan submission suppressed", "err", err)
			return
		}
		a.statusMsg = fmt.Sprintf("No se pudo guardar el plan: %v", err)
		a.note(logbook.LevelError, logbook.CategoryPlan, "%v", err)
		return
	}
	a.statusMsg = "✅ " + ack.Message
	a.note(logbook.LevelInfo, logbook.CategoryPlan, "Plan de acción · %s · %s", ack.Department, ack.ID)
}

func (a *App) applyFilters() {
	state := a.sidebar.state
	depts := state.Selected()
	names := make([]string, len(depts))
	for i, d := range depts {
		names[i] = string(d)
	}
	metrics := make([]string, len(state.Metrics))
	for i, m := range state.Metrics {
		metrics[i] = string(m)
	}
	a.statusMsg = fmt.Sprintf("Filtros aplicados · %d departamento(s)", len(depts))
	a.note(logbook.LevelInfo, logbook.CategoryFilters, "%s · métricas: %s · %s → %s",
		strings.Join(names, ", "),
		strings.Join(metrics, ", "),
		state.Start.Format(config.DateLayout),
		state.End.Format(config.DateLayout),
	)
	if !state.RangeValid() {
		a.note(logbook.LevelWarn, logbook.CategoryFilters, "la fecha de inicio es posterior a la fecha de fin")
	}
}

func (a *App) runExport(i int) tea.Cmd {
	if i < 0 || i >= len(a.exports) {
		return nil
	}
	action := a.exports[i]
	return func() tea.Msg {
		ack, err := action.Perform(context.Background())
		return exportDoneMsg{ack: ack, err: err}
	}
}

func (a *App) cycleFocus(delta int) tea.Cmd {
	order := []focusArea{focusDashboard, focusSidebar}
	if a.form.open {
		order = append(order, focusForm)
	}
	idx := 0
	for i, f := range order {
		if f == a.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return a.setFocus(order[idx])
}

func (a *App) setFocus(f focusArea) tea.Cmd {
	a.focus = f
	a.sidebar.blur()
	a.form.blur()
	switch f {
	case focusSidebar:
		return a.sidebar.syncFocus()
	case focusForm:
		return a.form.syncFocus()
	}
	return nil
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 140
	}
	sideWidth := 30
	mainWidth := width - sideWidth - 6
	if mainWidth < 60 {
		mainWidth = 60
	}

	view := filter.Apply(a.tables, a.sidebar.state)

	main := lipgloss.JoinVertical(lipgloss.Left,
		renderCards(a.config.Cards(), mainWidth),
		"",
		renderTabBar(a.tab),
		renderSummary(dataset.Summarize(view.Nom, view.Lean, view.Wellbeing)),
		panel(a.focus == focusDashboard).Width(mainWidth).Render(a.renderTab(view, mainWidth-4)),
		"",
		renderAlerts(view, mainWidth),
		"",
		a.form.View(a.focus == focusForm, mainWidth),
		"",
		renderExportButtons(a.exportLabels()),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.sidebar.View(a.focus == focusSidebar, sideWidth),
		"  ",
		main,
	)

	sections := []string{a.renderHeader(), body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	if a.statusMsg != "" {
		sections = append(sections, a.renderStatus())
	}
	if a.showHelp {
		sections = append(sections, a.help.FullHelpView(a.keys.FullHelp()))
	} else {
		sections = append(sections, a.help.ShortHelpView(a.keys.ShortHelp()))
	}
	sections = append(sections, a.renderFooter())
	return strings.Join(sections, "\n")
}

func (a *App) renderTab(view filter.View, width int) string {
	switch a.tab {
	case tabLEAN:
		return renderLEANTab(view.Lean, width)
	case tabWellbeing:
		return renderWellbeingTab(view.Wellbeing)
	default:
		return renderNOMTab(view.Nom, width)
	}
}

func (a *App) renderHeader() string {
	title := titleStyle.Render("📊 Dashboard de Monitoreo Organizacional")
	stamp := mutedStyle.Render("Última actualización: " + a.now().Format(timestampFmt))
	state := a.sidebar.state
	metrics := make([]string, len(state.Metrics))
	for i, m := range state.Metrics {
		metrics[i] = string(m)
	}
	if len(metrics) == 0 {
		metrics = []string{"ninguna"}
	}
	period := hintStyle.Render(fmt.Sprintf("NOM-035 · LEAN 2.0 · Bienestar    Periodo %s – %s    Métricas: %s",
		state.Start.Format(config.DateLayout),
		state.End.Format(config.DateLayout),
		strings.Join(metrics, ", "),
	))
	return lipgloss.JoinVertical(lipgloss.Left, title+"  "+stamp, period, "")
}

func (a *App) renderLogPanel() string {
	entries, total := a.activity.Entries(), a.activity.Total()
	if len(entries) == 0 {
		return ""
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	head := headingStyle.Render(fmt.Sprintf("ACTIVIDAD · %d evento(s)", total))
	body := hintStyle.Render(strings.Join(lines, "\n"))
	return panelStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}

func (a *App) renderStatus() string {
	style := hintStyle
	if strings.HasPrefix(a.statusMsg, "✅") {
		style = successStyle
	}
	return style.MarginTop(1).Render(a.statusMsg)
}

func (a *App) renderFooter() string {
	footer := a.config.Footer()
	return mutedStyle.MarginTop(1).Render(strings.Join([]string{
		footer.Organization,
		footer.Contact,
		footer.Email,
	}, " · "))
}

func (a *App) exportLabels() []string {
	labels := make([]string, len(a.exports))
	for i, action := range a.exports {
		labels[i] = action.Label()
	}
	return labels
}

// note records one activity entry for this session. The panel reads the
// in-memory ring; the journal file is only written.
func (a *App) note(level logbook.Level, cat logbook.Category, format string, args ...any) {
	entry := logbook.NewEntry(a.now(), level, cat, fmt.Sprintf(format, args...))
	a.activity.Add(entry)
	if err := a.logbook.Append(entry); err != nil {
		a.logger.Warn("activity journal write failed", "err", err)
	}
}
