// Package alerts selects the rows that need a manager's attention.
package alerts

import (
	"sort"

	"github.com/kingrea/tablero/internal/dataset"
)

const (
	// NomCutoff flags departments whose evaluation coverage is below it.
	NomCutoff = 80
	// LeanCutoff flags departments whose efficiency is below it.
	LeanCutoff = 75
)

// CriticalNom returns rows with evaluations below NomCutoff, lowest first.
// Ties keep canonical department order.
func CriticalNom(rows []dataset.NomRow) []dataset.NomRow {
	out := make([]dataset.NomRow, 0, len(rows))
	for _, row := range rows {
		if row.Evaluations < NomCutoff {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Evaluations != out[j].Evaluations {
			return out[i].Evaluations < out[j].Evaluations
		}
		return dataset.Index(out[i].Department) < dataset.Index(out[j].Department)
	})
	return out
}

// ImprovementLean returns rows with efficiency below LeanCutoff, lowest first.
// Ties keep canonical department order.
func ImprovementLean(rows []dataset.LeanRow) []dataset.LeanRow {
	out := make([]dataset.LeanRow, 0, len(rows))
	for _, row := range rows {
		if row.Efficiency < LeanCutoff {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Efficiency != out[j].Efficiency {
			return out[i].Efficiency < out[j].Efficiency
		}
		return dataset.Index(out[i].Department) < dataset.Index(out[j].Department)
	})
	return out
}
