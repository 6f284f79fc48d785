package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/tablero/internal/actionplan"
	"github.com/kingrea/tablero/internal/config"
	"github.com/kingrea/tablero/internal/dataset"
)

type formField int

const (
	fieldDepartment formField = iota
	fieldProblem
	fieldOwner
	fieldAction
	fieldDeadline
	fieldSubmit
	fieldCount
)

var fieldLabels = map[formField]string{
	fieldDepartment: "Departamento",
	fieldProblem:    "Problema identificado",
	fieldOwner:      "Responsable asignado",
	fieldAction:     "Acción propuesta",
	fieldDeadline:   "Plazo estimado",
}

// planForm is the collapsible "Registrar nuevo plan de acción" container.
type planForm struct {
	controller *actionplan.Controller
	now        func() time.Time
	open       bool
	field      formField
	deptIdx    int
	inputs     map[formField]*textinput.Model
	missing    []string
}

func newPlanForm(controller *actionplan.Controller, now func() time.Time) *planForm {
	f := &planForm{
		controller: controller,
		now:        now,
		inputs:     map[formField]*textinput.Model{},
	}
	for _, field := range []formField{fieldProblem, fieldOwner, fieldAction, fieldDeadline} {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 200
		in.Width = 40
		f.inputs[field] = &in
	}
	f.inputs[fieldDeadline].Placeholder = "AAAA-MM-DD"
	f.inputs[fieldDeadline].CharLimit = len(config.DateLayout)
	f.clear()
	return f
}

func (f *planForm) clear() {
	for field, in := range f.inputs {
		in.Reset()
		if field == fieldDeadline {
			in.SetValue(f.now().AddDate(0, 0, 30).Format(config.DateLayout))
		}
	}
	f.deptIdx = 0
	f.field = fieldDepartment
	f.missing = nil
	_ = f.syncFocus()
}

func (f *planForm) toggleOpen() tea.Cmd {
	f.open = !f.open
	if f.open {
		f.controller.Begin()
		return f.syncFocus()
	}
	f.blur()
	return nil
}

func (f *planForm) move(delta int) tea.Cmd {
	f.field = formField((int(f.field) + delta + int(fieldCount)) % int(fieldCount))
	return f.syncFocus()
}

func (f *planForm) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for field, in := range f.inputs {
		if field == f.field && f.open {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (f *planForm) blur() {
	for _, in := range f.inputs {
		in.Blur()
	}
}

func (f *planForm) cycleDepartment(delta int) {
	n := len(dataset.Departments())
	f.deptIdx = (f.deptIdx + delta + n) % n
}

func (f *planForm) updateInput(msg tea.Msg) tea.Cmd {
	in, ok := f.inputs[f.field]
	if !ok {
		return nil
	}
	next, cmd := in.Update(msg)
	*in = next
	return cmd
}

func (f *planForm) plan() actionplan.Plan {
	deadline, _ := time.Parse(config.DateLayout, strings.TrimSpace(f.inputs[fieldDeadline].Value()))
	return actionplan.Plan{
		Department:     dataset.Departments()[f.deptIdx],
		Problem:        f.inputs[fieldProblem].Value(),
		Owner:          f.inputs[fieldOwner].Value(),
		ProposedAction: f.inputs[fieldAction].Value(),
		Deadline:       deadline,
	}
}

// submit validates and acknowledges the plan. Incomplete plans return
// ok=false and leave the inputs untouched.
func (f *planForm) submit(ctx context.Context) (actionplan.Ack, bool, error) {
	plan := f.plan()
	f.missing = plan.Missing()
	ack, err := f.controller.Submit(ctx, plan)
	if err != nil {
		return actionplan.Ack{}, false, err
	}
	f.controller.Reset()
	f.clear()
	return ack, true, nil
}

func (f *planForm) View(focused bool, width int) string {
	title := headingStyle.Render("Registrar nuevo plan de acción")
	if !f.open {
		return panel(focused).Width(max(30, width)).Render(title + mutedStyle.Render("  ▸ (a) desplegar"))
	}
	lines := []string{title + mutedStyle.Render("  ▾ (a) plegar"), ""}
	for field := fieldDepartment; field < fieldSubmit; field++ {
		pointer := "  "
		if focused && f.field == field {
			pointer = cursorStyle.Render("› ")
		}
		var value string
		if field == fieldDepartment {
			value = "‹ " + string(dataset.Departments()[f.deptIdx]) + " ›"
		} else {
			value = f.inputs[field].View()
		}
		lines = append(lines, pointer+padLabel(fieldLabels[field])+value)
	}
	style := buttonStyle
	pointer := "  "
	if focused && f.field == fieldSubmit {
		style = activeButtonStyle
		pointer = cursorStyle.Render("› ")
	}
	lines = append(lines, "", pointer+style.Render("Guardar Plan"))
	if len(f.missing) > 0 {
		lines = append(lines, hintStyle.Render("Completa: "+strings.Join(f.missing, ", ")))
	}
	return panel(focused).Width(max(30, width)).Render(strings.Join(lines, "\n"))
}

func padLabel(label string) string {
	const width = 24
	if n := len([]rune(label)); n < width {
		return label + strings.Repeat(" ", width-n)
	}
	return label + " "
}
