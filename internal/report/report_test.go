package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kingrea/tablero/internal/alerts"
	"github.com/kingrea/tablero/internal/dataset"
	"github.com/kingrea/tablero/internal/filter"
	"github.com/kingrea/tablero/internal/kpi"
)

func testSnapshot(depts ...dataset.Department) Snapshot {
	state := filter.NewState(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	state.SetDepartments(depts)
	tables := dataset.Fabricate(dataset.DefaultSeed)
	return Snapshot{
		Tables: &tables,
		State:  state,
		Cards:  kpi.Cards(),
		At:     time.Date(2024, 3, 15, 9, 5, 0, 0, time.UTC),
	}
}

func render(t *testing.T, snap Snapshot, m Mode) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, snap, m); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestRenderASCIIContainsSections(t *testing.T) {
	out := render(t, testSnapshot(), ASCII)
	for _, want := range []string{
		"Dashboard de Monitoreo Organizacional",
		"Última actualización: 15/03/2024 09:05",
		"Semilla: 42",
		"Indicadores clave",
		"Cumplimiento NOM-035",
		"92.0%",
		"Áreas Críticas NOM-035",
		"Oportunidades de Mejora LEAN",
		"───",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	for _, d := range dataset.Departments() {
		if !strings.Contains(out, string(d)) {
			t.Fatalf("expected department %s in output", d)
		}
	}
}

func TestRenderMarkdownUsesHeadings(t *testing.T) {
	out := render(t, testSnapshot(), Markdown)
	if !strings.HasPrefix(out, "# Dashboard de Monitoreo Organizacional") {
		t.Fatalf("expected markdown title, got:\n%s", out)
	}
	if !strings.Contains(out, "## LEAN 2.0") {
		t.Fatalf("expected section heading")
	}
	if !strings.Contains(strings.ToLower(out), "| departamento") {
		t.Fatalf("expected markdown table header")
	}
}

func TestRenderProjectsDepartments(t *testing.T) {
	out := render(t, testSnapshot(dataset.Calidad), ASCII)
	if !strings.Contains(out, "Departamentos: Calidad\n") {
		t.Fatalf("expected selection line, got:\n%s", out)
	}
	if strings.Contains(out, string(dataset.Ventas)) {
		t.Fatalf("unselected department leaked into output")
	}
}

func TestRenderEmptyAlerts(t *testing.T) {
	snap := testSnapshot()
	tables := *snap.Tables
	tables.Nom = nil
	tables.Lean = nil
	snap.Tables = &tables
	out := render(t, snap, ASCII)
	if strings.Count(out, emptyAlerts) != 2 {
		t.Fatalf("expected two empty-alert notes, got:\n%s", out)
	}
}

func TestRenderAlertRowsFollowSelector(t *testing.T) {
	snap := testSnapshot()
	critical := alerts.CriticalNom(snap.Tables.Nom)
	out := render(t, snap, Markdown)
	section := out[strings.Index(out, "## Áreas Críticas NOM-035"):strings.Index(out, "## Oportunidades de Mejora LEAN")]
	if len(critical) == 0 {
		if !strings.Contains(section, emptyAlerts) {
			t.Fatalf("expected empty note")
		}
		return
	}
	last := -1
	for _, row := range critical {
		idx := strings.Index(section, "| "+string(row.Department)+" ")
		if idx < 0 {
			t.Fatalf("missing critical row %s", row.Department)
		}
		if idx < last {
			t.Fatalf("critical rows out of order")
		}
		last = idx
	}
}

func TestRenderRequiresTables(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Snapshot{}, ASCII); err == nil {
		t.Fatalf("expected error for missing tables")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"": ASCII, "ascii": ASCII, "Markdown": Markdown, "md": Markdown}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("pdf"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestParseDepartments(t *testing.T) {
	got, err := ParseDepartments(" Calidad, TI ,")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got[0] != dataset.Calidad || got[1] != dataset.TI {
		t.Fatalf("unexpected departments %v", got)
	}
	if _, err := ParseDepartments("Marketing"); err == nil {
		t.Fatalf("expected error for unknown department")
	}
	if got, _ := ParseDepartments(""); len(got) != 0 {
		t.Fatalf("empty list should parse to none, got %v", got)
	}
}
