// internal/dataset/dataset.go
//
// Synthetic organizational data for the dashboard. Every table is derived
// from one integer seed so two runs with the same seed show the same numbers.

package dataset

import (
	"math"
	"math/rand"
	"time"
)

// DefaultSeed is used when neither the config file nor a flag sets one.
const DefaultSeed int64 = 42

// Department is one organizational area shown on the dashboard.
type Department string

const (
	Produccion     Department = "Producción"
	Calidad        Department = "Calidad"
	Logistica      Department = "Logística"
	Administracion Department = "Administración"
	Ventas         Department = "Ventas"
	RH             Department = "RH"
	TI             Department = "TI"
)

var canonicalOrder = []Department{
	Produccion,
	Calidad,
	Logistica,
	Administracion,
	Ventas,
	RH,
	TI,
}

// Departments returns the canonical department order. Callers own the slice.
func Departments() []Department {
	out := make([]Department, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// Index returns the canonical position of d, or -1 for unknown departments.
func Index(d Department) int {
	for i, candidate := range canonicalOrder {
		if candidate == d {
			return i
		}
	}
	return -1
}

// Valid reports whether d belongs to the department domain.
func Valid(d Department) bool {
	return Index(d) >= 0
}

// NomRow holds NOM-035 compliance indicators for one department.
type NomRow struct {
	Department  Department
	Evaluations int
	Trainings   int
	Incidents   int
	Trend       float64
}

// LeanRow holds LEAN 2.0 adoption indicators for one department.
type LeanRow struct {
	Department     Department
	Efficiency     int
	WasteReduction int
	ActiveProjects int
}

// WellbeingRow is one month of workforce wellbeing indicators.
type WellbeingRow struct {
	Month          time.Time
	WellbeingIndex float64
	Absenteeism    float64
	Turnover       float64
}

// Tables is the full fabricated dataset for one seed. Treat it as read-only.
type Tables struct {
	Seed      int64
	Nom       []NomRow
	Lean      []LeanRow
	Wellbeing []WellbeingRow
}

const wellbeingMonths = 12

// Fabricate builds the three tables from seed. Values are drawn from a
// single stream, column by column, in this order: nom evaluations,
// trainings, incidents, trend; lean efficiency, waste reduction, active
// projects; wellbeing index, absenteeism, turnover.
func Fabricate(seed int64) Tables {
	rng := rand.New(rand.NewSource(seed))
	n := len(canonicalOrder)

	evaluations := intColumn(rng, n, 70, 100)
	trainings := intColumn(rng, n, 60, 100)
	incidents := intColumn(rng, n, 0, 10)
	trend := normalColumn(rng, n, 0.5, 1.5, 2)

	efficiency := intColumn(rng, n, 60, 95)
	waste := intColumn(rng, n, 5, 25)
	projects := intColumn(rng, n, 1, 6)

	index := normalColumn(rng, wellbeingMonths, 75, 5, 1)
	absenteeism := normalColumn(rng, wellbeingMonths, 8, 2, 1)
	turnover := normalColumn(rng, wellbeingMonths, 12, 3, 1)

	tables := Tables{
		Seed:      seed,
		Nom:       make([]NomRow, n),
		Lean:      make([]LeanRow, n),
		Wellbeing: make([]WellbeingRow, wellbeingMonths),
	}
	for i, dept := range canonicalOrder {
		tables.Nom[i] = NomRow{
			Department:  dept,
			Evaluations: evaluations[i],
			Trainings:   trainings[i],
			Incidents:   incidents[i],
			Trend:       trend[i],
		}
		tables.Lean[i] = LeanRow{
			Department:     dept,
			Efficiency:     efficiency[i],
			WasteReduction: waste[i],
			ActiveProjects: projects[i],
		}
	}
	for i, month := range MonthEnds(2024, time.January, wellbeingMonths) {
		tables.Wellbeing[i] = WellbeingRow{
			Month:          month,
			WellbeingIndex: index[i],
			Absenteeism:    absenteeism[i],
			Turnover:       turnover[i],
		}
	}
	return tables
}

// MonthEnds returns count consecutive month-end dates starting at the given month.
func MonthEnds(year int, month time.Month, count int) []time.Time {
	out := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		// Day 0 of the following month normalizes to the last day of this one.
		out = append(out, time.Date(year, month+time.Month(i)+1, 0, 0, 0, 0, 0, time.UTC))
	}
	return out
}

func intColumn(rng *rand.Rand, n, low, high int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = low + rng.Intn(high-low)
	}
	return out
}

func normalColumn(rng *rand.Rand, n int, mean, std float64, decimals int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = Round(mean+std*rng.NormFloat64(), decimals)
	}
	return out
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
