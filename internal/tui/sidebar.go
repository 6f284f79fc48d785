package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/tablero/internal/config"
	"github.com/kingrea/tablero/internal/dataset"
	"github.com/kingrea/tablero/internal/filter"
)

type sidebarItemKind int

const (
	itemStartDate sidebarItemKind = iota
	itemEndDate
	itemDepartment
	itemMetric
	itemApply
)

type sidebarItem struct {
	kind   sidebarItemKind
	dept   dataset.Department
	metric filter.Metric
}

// sidebar edits the filter state. Widget changes apply immediately, the
// same way a reactive page reruns on every input; "Aplicar filtros"
// confirms the current selection.
type sidebar struct {
	state     filter.State
	items     []sidebarItem
	cursor    int
	startIn   textinput.Model
	endIn     textinput.Model
	dateErr   string
	confirmed int
}

func newSidebar(start, end time.Time) *sidebar {
	items := []sidebarItem{{kind: itemStartDate}, {kind: itemEndDate}}
	for _, d := range dataset.Departments() {
		items = append(items, sidebarItem{kind: itemDepartment, dept: d})
	}
	for _, m := range filter.Metrics() {
		items = append(items, sidebarItem{kind: itemMetric, metric: m})
	}
	items = append(items, sidebarItem{kind: itemApply})

	s := &sidebar{
		state:   filter.NewState(start, end),
		items:   items,
		startIn: newDateInput(start),
		endIn:   newDateInput(end),
	}
	return s
}

func newDateInput(value time.Time) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "AAAA-MM-DD"
	in.CharLimit = len(config.DateLayout)
	in.Width = len(config.DateLayout) + 1
	if !value.IsZero() {
		in.SetValue(value.Format(config.DateLayout))
	}
	return in
}

func (s *sidebar) current() sidebarItem {
	return s.items[s.cursor]
}

func (s *sidebar) move(delta int) tea.Cmd {
	s.cursor = (s.cursor + delta + len(s.items)) % len(s.items)
	return s.syncFocus()
}

// focus/blur the date inputs so typing only reaches the one under the cursor.
func (s *sidebar) syncFocus() tea.Cmd {
	s.startIn.Blur()
	s.endIn.Blur()
	switch s.current().kind {
	case itemStartDate:
		return s.startIn.Focus()
	case itemEndDate:
		return s.endIn.Focus()
	}
	return nil
}

func (s *sidebar) blur() {
	s.startIn.Blur()
	s.endIn.Blur()
}

func (s *sidebar) editingDate() bool {
	kind := s.current().kind
	return kind == itemStartDate || kind == itemEndDate
}

// toggle acts on the item under the cursor and reports whether the apply
// button was pressed.
func (s *sidebar) toggle() bool {
	item := s.current()
	switch item.kind {
	case itemDepartment:
		s.state.Toggle(item.dept)
	case itemMetric:
		s.state.ToggleMetric(item.metric)
	case itemApply:
		s.confirmed++
		return true
	}
	return false
}

// updateDate forwards msg to the focused date input and re-parses both.
func (s *sidebar) updateDate(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.current().kind {
	case itemStartDate:
		s.startIn, cmd = s.startIn.Update(msg)
	case itemEndDate:
		s.endIn, cmd = s.endIn.Update(msg)
	}
	s.parseDates()
	return cmd
}

func (s *sidebar) parseDates() {
	start, errStart := time.Parse(config.DateLayout, strings.TrimSpace(s.startIn.Value()))
	end, errEnd := time.Parse(config.DateLayout, strings.TrimSpace(s.endIn.Value()))
	switch {
	case errStart != nil:
		s.dateErr = "Fecha de inicio: formato AAAA-MM-DD"
	case errEnd != nil:
		s.dateErr = "Fecha de fin: formato AAAA-MM-DD"
	default:
		s.dateErr = ""
		s.state.SetRange(start, end)
	}
}

func (s *sidebar) View(focused bool, width int) string {
	lines := []string{headingStyle.Render("Filtros Generales"), ""}
	for i, item := range s.items {
		selected := focused && i == s.cursor
		pointer := "  "
		if selected {
			pointer = cursorStyle.Render("› ")
		}
		switch item.kind {
		case itemStartDate:
			lines = append(lines, "Fecha de inicio", pointer+s.startIn.View())
		case itemEndDate:
			lines = append(lines, "Fecha de fin", pointer+s.endIn.View())
			if s.dateErr != "" {
				lines = append(lines, warnStyle.Render("⚠ "+s.dateErr))
			} else if !s.state.RangeValid() {
				lines = append(lines, warnStyle.Render("⚠ La fecha de inicio es posterior a la fecha de fin"))
			}
			lines = append(lines, "", "Departamentos")
		case itemDepartment:
			lines = append(lines, pointer+checkbox(len(s.state.Departments) > 0 && s.state.IsSelected(item.dept))+" "+string(item.dept))
			if item.dept == dataset.TI {
				if len(s.state.Departments) == 0 {
					lines = append(lines, mutedStyle.Render("  (sin selección: todos)"))
				}
				lines = append(lines, "", "Métricas clave")
			}
		case itemMetric:
			lines = append(lines, pointer+checkbox(s.state.HasMetric(item.metric))+" "+string(item.metric))
		case itemApply:
			style := buttonStyle
			if selected {
				style = activeButtonStyle
			}
			lines = append(lines, "", pointer+style.Render("Aplicar filtros"))
			if s.confirmed > 0 {
				lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %d departamento(s) activos", len(s.state.Selected()))))
			}
		}
	}
	return panel(focused).Width(max(24, width)).Render(strings.Join(lines, "\n"))
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
