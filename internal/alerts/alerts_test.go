package alerts

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kingrea/tablero/internal/dataset"
)

func TestCriticalNomFiltersAndSorts(t *testing.T) {
	rows := []dataset.NomRow{
		{Department: dataset.Produccion, Evaluations: 79},
		{Department: dataset.Calidad, Evaluations: 95},
		{Department: dataset.Logistica, Evaluations: 72},
		{Department: dataset.Administracion, Evaluations: 80},
		{Department: dataset.Ventas, Evaluations: 72},
		{Department: dataset.RH, Evaluations: 70},
	}
	got := CriticalNom(rows)
	want := []dataset.NomRow{
		{Department: dataset.RH, Evaluations: 70},
		{Department: dataset.Logistica, Evaluations: 72},
		{Department: dataset.Ventas, Evaluations: 72},
		{Department: dataset.Produccion, Evaluations: 79},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CriticalNom mismatch (-want +got):\n%s", diff)
	}
	if rows[0].Department != dataset.Produccion {
		t.Fatalf("input rows were reordered")
	}
}

func TestImprovementLeanFiltersAndSorts(t *testing.T) {
	rows := []dataset.LeanRow{
		{Department: dataset.Produccion, Efficiency: 74},
		{Department: dataset.Calidad, Efficiency: 60},
		{Department: dataset.TI, Efficiency: 60},
		{Department: dataset.Ventas, Efficiency: 75},
	}
	got := ImprovementLean(rows)
	want := []dataset.LeanRow{
		{Department: dataset.Calidad, Efficiency: 60},
		{Department: dataset.TI, Efficiency: 60},
		{Department: dataset.Produccion, Efficiency: 74},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ImprovementLean mismatch (-want +got):\n%s", diff)
	}
}

func TestAlertsAreMonotonicAcrossSeeds(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		tables := dataset.Fabricate(seed)
		nom := CriticalNom(tables.Nom)
		for i, row := range nom {
			if row.Evaluations >= NomCutoff {
				t.Fatalf("seed %d: %s evaluations %d not below cutoff", seed, row.Department, row.Evaluations)
			}
			if i > 0 && nom[i-1].Evaluations > row.Evaluations {
				t.Fatalf("seed %d: CriticalNom not sorted at %d", seed, i)
			}
		}
		lean := ImprovementLean(tables.Lean)
		for i, row := range lean {
			if row.Efficiency >= LeanCutoff {
				t.Fatalf("seed %d: %s efficiency %d not below cutoff", seed, row.Department, row.Efficiency)
			}
			if i > 0 && lean[i-1].Efficiency > row.Efficiency {
				t.Fatalf("seed %d: ImprovementLean not sorted at %d", seed, i)
			}
		}
	}
}

func TestEmptyInputsYieldEmptyTables(t *testing.T) {
	if got := CriticalNom(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := ImprovementLean([]dataset.LeanRow{{Department: dataset.TI, Efficiency: 90}}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
