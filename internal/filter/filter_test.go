package filter

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kingrea/tablero/internal/dataset"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectNomKeepsCanonicalOrder(t *testing.T) {
	tables := dataset.Fabricate(dataset.DefaultSeed)
	got := ProjectNom(tables.Nom, []dataset.Department{dataset.Logistica, dataset.Produccion, dataset.Calidad})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []dataset.Department{dataset.Produccion, dataset.Calidad, dataset.Logistica}
	for i, row := range got {
		if row.Department != want[i] {
			t.Fatalf("row %d = %s, want %s", i, row.Department, want[i])
		}
		if diff := cmp.Diff(tables.Nom[i], row); diff != "" {
			t.Fatalf("projected row differs from source (-src +got):\n%s", diff)
		}
	}
}

func TestProjectionIsSubsetAndDoesNotMutate(t *testing.T) {
	tables := dataset.Fabricate(dataset.DefaultSeed)
	before := dataset.Fabricate(dataset.DefaultSeed)
	selection := []dataset.Department{dataset.TI, dataset.Ventas}
	nom := ProjectNom(tables.Nom, selection)
	lean := ProjectLean(tables.Lean, selection)
	for _, row := range nom {
		if row.Department != dataset.Ventas && row.Department != dataset.TI {
			t.Fatalf("unexpected department %s", row.Department)
		}
	}
	for _, row := range lean {
		if row.Department != dataset.Ventas && row.Department != dataset.TI {
			t.Fatalf("unexpected department %s", row.Department)
		}
	}
	if len(nom) > 0 {
		nom[0].Evaluations = -1
	}
	if diff := cmp.Diff(before, tables); diff != "" {
		t.Fatalf("projection mutated source tables:\n%s", diff)
	}
}

func TestEmptySelectionMeansAllDepartments(t *testing.T) {
	tables := dataset.Load(dataset.DefaultSeed)
	var s State
	if got := s.Selected(); len(got) != 7 {
		t.Fatalf("empty selection resolved to %d departments, want 7", len(got))
	}
	view := Apply(tables, s)
	if len(view.Nom) != 7 || len(view.Lean) != 7 || len(view.Wellbeing) != 12 {
		t.Fatalf("unexpected view sizes nom=%d lean=%d wellbeing=%d", len(view.Nom), len(view.Lean), len(view.Wellbeing))
	}
	if got := ProjectLean(tables.Lean, nil); len(got) != 7 {
		t.Fatalf("ProjectLean(nil) = %d rows, want 7", len(got))
	}
}

func TestToggleClearsToAll(t *testing.T) {
	s := State{}
	s.SetDepartments([]dataset.Department{dataset.RH})
	s.Toggle(dataset.RH)
	if len(s.Departments) != 0 {
		t.Fatalf("expected explicit selection to be empty, got %v", s.Departments)
	}
	if !s.IsSelected(dataset.TI) {
		t.Fatalf("empty selection should include TI")
	}
	s.Toggle(dataset.TI)
	s.Toggle(dataset.Produccion)
	if diff := cmp.Diff([]dataset.Department{dataset.Produccion, dataset.TI}, s.Departments); diff != "" {
		t.Fatalf("selection not canonical (-want +got):\n%s", diff)
	}
	s.Toggle(dataset.Department("Finanzas"))
	if len(s.Departments) != 2 {
		t.Fatalf("unknown department must be ignored, got %v", s.Departments)
	}
}

func TestSetDepartmentsDropsUnknownAndDuplicates(t *testing.T) {
	var s State
	s.SetDepartments([]dataset.Department{dataset.TI, "Finanzas", dataset.TI, dataset.Calidad})
	if diff := cmp.Diff([]dataset.Department{dataset.Calidad, dataset.TI}, s.Departments); diff != "" {
		t.Fatalf("unexpected selection (-want +got):\n%s", diff)
	}
}

func TestToggleMetricKeepsDisplayOrder(t *testing.T) {
	s := NewState(day(2024, 1, 1), day(2024, 12, 31))
	s.ToggleMetric(MetricCalidad)
	if s.HasMetric(MetricCalidad) {
		t.Fatalf("Calidad should be deselected")
	}
	s.ToggleMetric(MetricCalidad)
	if diff := cmp.Diff(Metrics(), s.Metrics); diff != "" {
		t.Fatalf("metrics out of order (-want +got):\n%s", diff)
	}
	s.ToggleMetric(Metric("Ventas"))
	if len(s.Metrics) != 5 {
		t.Fatalf("unknown metric must be ignored")
	}
}

func TestRangeValidAcceptsInvertedRange(t *testing.T) {
	s := NewState(day(2024, 1, 1), day(2024, 12, 31))
	if !s.RangeValid() {
		t.Fatalf("expected valid range")
	}
	s.SetRange(day(2025, 1, 1), day(2024, 1, 1))
	if s.RangeValid() {
		t.Fatalf("expected inverted range to be reported")
	}
	if !s.Start.Equal(day(2025, 1, 1)) {
		t.Fatalf("inverted range must still be stored")
	}
	if view := Apply(dataset.Load(dataset.DefaultSeed), s); len(view.Wellbeing) != 12 {
		t.Fatalf("dates must not filter wellbeing rows")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	s := NewState(day(2024, 1, 1), day(2024, 12, 31))
	c := s.Clone()
	c.Toggle(dataset.Produccion)
	c.ToggleMetric(MetricLEAN)
	if !s.IsSelected(dataset.Produccion) || !s.HasMetric(MetricLEAN) {
		t.Fatalf("clone edits leaked into original")
	}
}
