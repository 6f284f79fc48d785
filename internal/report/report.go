// Package report renders a headless snapshot of the dashboard: KPI tiles,
// the projected NOM-035, LEAN and wellbeing tables, and both alert lists.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kingrea/tablero/internal/alerts"
	"github.com/kingrea/tablero/internal/dataset"
	"github.com/kingrea/tablero/internal/filter"
	"github.com/kingrea/tablero/internal/kpi"
)

const emptyAlerts = "Sin alertas para la selección actual"

// Snapshot is everything a report needs. Derived values are recomputed from
// Tables and State on every Render.
type Snapshot struct {
	Tables *dataset.Tables
	State  filter.State
	Cards  []kpi.Card
	At     time.Time
}

// Render writes the snapshot to w in mode m.
func Render(w io.Writer, snap Snapshot, m Mode) error {
	if snap.Tables == nil {
		return fmt.Errorf("report: no tables")
	}
	view := filter.Apply(snap.Tables, snap.State)

	sections := []string{
		renderTitle(snap, m),
		section(m, "Indicadores clave", kpiTable(snap.Cards, m)),
		section(m, "NOM-035", nomTable(view.Nom, m)),
		section(m, "LEAN 2.0", leanTable(view.Lean, m)),
		section(m, "Bienestar", wellbeingTable(view.Wellbeing, m)),
		section(m, "Áreas Críticas NOM-035", criticalTable(alerts.CriticalNom(view.Nom), m)),
		section(m, "Oportunidades de Mejora LEAN", improvementTable(alerts.ImprovementLean(view.Lean), m)),
	}
	if _, err := io.WriteString(w, strings.Join(sections, "\n\n")+"\n"); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}

func renderTitle(snap Snapshot, m Mode) string {
	depts := snap.State.Selected()
	names := make([]string, len(depts))
	for i, d := range depts {
		names[i] = string(d)
	}
	title := "Dashboard de Monitoreo Organizacional"
	lines := []string{
		"Última actualización: " + snap.At.Format("02/01/2006 15:04"),
		fmt.Sprintf("Semilla: %d", snap.Tables.Seed),
		"Departamentos: " + strings.Join(names, ", "),
	}
	if m == Markdown {
		return "# " + title + "\n\n" + strings.Join(lines, "  \n")
	}
	return title + "\n" + strings.Repeat("=", len([]rune(title))) + "\n" + strings.Join(lines, "\n")
}

func section(m Mode, heading, body string) string {
	if m == Markdown {
		return "## " + heading + "\n\n" + body
	}
	return heading + "\n" + body
}

func kpiTable(cards []kpi.Card, m Mode) string {
	tb := newTable(m)
	tb.header("Indicador", "Valor", "Meta", "Δ", "Estado")
	for _, card := range cards {
		band := card.Band()
		tok := kpi.Tokens(band)
		tb.row(card.Title,
			kpi.FormatValue(card.Value)+"%",
			kpi.FormatValue(card.Target)+"%",
			signed(card.Delta()),
			tok.Symbol+" "+band.String(),
		)
	}
	tb.alignRight(2, 3, 4)
	return tb.String()
}

func nomTable(rows []dataset.NomRow, m Mode) string {
	tb := newTable(m)
	tb.header("Departamento", "Evaluaciones", "Capacitaciones", "Incidentes", "Tendencia")
	for _, row := range rows {
		tb.row(string(row.Department), row.Evaluations, row.Trainings, row.Incidents, signed(row.Trend))
	}
	s := dataset.Summarize(rows, nil, nil)
	tb.footer("Promedio / total", kpi.FormatValue(s.MeanEvaluations), kpi.FormatValue(s.MeanTrainings), s.TotalIncidents, "")
	tb.alignRight(2, 3, 4, 5)
	return tb.String()
}

func leanTable(rows []dataset.LeanRow, m Mode) string {
	tb := newTable(m)
	tb.header("Departamento", "Eficiencia", "Reducción desperdicio", "Proyectos activos")
	for _, row := range rows {
		tb.row(string(row.Department), row.Efficiency, row.WasteReduction, row.ActiveProjects)
	}
	s := dataset.Summarize(nil, rows, nil)
	tb.footer("Promedio / total", kpi.FormatValue(s.MeanEfficiency), "", s.TotalProjects)
	tb.alignRight(2, 3, 4)
	return tb.String()
}

func wellbeingTable(rows []dataset.WellbeingRow, m Mode) string {
	tb := newTable(m)
	tb.header("Mes", "Índice de bienestar", "Ausentismo", "Rotación")
	for _, row := range rows {
		tb.row(row.Month.Format("2006-01-02"),
			kpi.FormatValue(row.WellbeingIndex),
			kpi.FormatValue(row.Absenteeism),
			kpi.FormatValue(row.Turnover),
		)
	}
	tb.alignRight(2, 3, 4)
	return tb.String()
}

func criticalTable(rows []dataset.NomRow, m Mode) string {
	if len(rows) == 0 {
		return emptyAlerts
	}
	tb := newTable(m)
	tb.header("Departamento", "Evaluaciones", "Capacitaciones", "Incidentes")
	for _, row := range rows {
		tb.row(string(row.Department), row.Evaluations, row.Trainings, row.Incidents)
	}
	tb.alignRight(2, 3, 4)
	return tb.String()
}

func improvementTable(rows []dataset.LeanRow, m Mode) string {
	if len(rows) == 0 {
		return emptyAlerts
	}
	tb := newTable(m)
	tb.header("Departamento", "Eficiencia", "Reducción desperdicio", "Proyectos activos")
	for _, row := range rows {
		tb.row(string(row.Department), row.Efficiency, row.WasteReduction, row.ActiveProjects)
	}
	tb.alignRight(2, 3, 4)
	return tb.String()
}

func signed(v float64) string {
	if v >= 0 {
		return "+" + kpi.FormatValue(v)
	}
	return kpi.FormatValue(v)
}

// ParseDepartments splits a comma list such as "Calidad,TI" into
// departments, rejecting unknown names.
func ParseDepartments(value string) ([]dataset.Department, error) {
	var out []dataset.Department
	for _, part := range strings.Split(value, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		d := dataset.Department(name)
		if !dataset.Valid(d) {
			return nil, fmt.Errorf("report: unknown department %s (want one of %s)", strconv.Quote(name), departmentList())
		}
		out = append(out, d)
	}
	return out, nil
}

func departmentList() string {
	depts := dataset.Departments()
	names := make([]string, len(depts))
	for i, d := range depts {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
