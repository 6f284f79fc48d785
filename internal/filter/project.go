package filter

import "github.com/kingrea/tablero/internal/dataset"

// ProjectNom returns the rows whose department is in depts, preserving input
// order. An empty depts selects every row. The input slice is never modified.
func ProjectNom(rows []dataset.NomRow, depts []dataset.Department) []dataset.NomRow {
	keep := membership(depts)
	out := make([]dataset.NomRow, 0, len(rows))
	for _, row := range rows {
		if keep(row.Department) {
			out = append(out, row)
		}
	}
	return out
}

// ProjectLean is ProjectNom for LEAN rows.
func ProjectLean(rows []dataset.LeanRow, depts []dataset.Department) []dataset.LeanRow {
	keep := membership(depts)
	out := make([]dataset.LeanRow, 0, len(rows))
	for _, row := range rows {
		if keep(row.Department) {
			out = append(out, row)
		}
	}
	return out
}

// View is the projection of one table set through a filter state.
type View struct {
	Nom       []dataset.NomRow
	Lean      []dataset.LeanRow
	Wellbeing []dataset.WellbeingRow
}

// Apply projects tables through the state's effective department selection.
// Wellbeing rows carry no department and pass through unchanged.
func Apply(tables *dataset.Tables, s State) View {
	if tables == nil {
		return View{}
	}
	depts := s.Selected()
	return View{
		Nom:       ProjectNom(tables.Nom, depts),
		Lean:      ProjectLean(tables.Lean, depts),
		Wellbeing: append([]dataset.WellbeingRow(nil), tables.Wellbeing...),
	}
}

func membership(depts []dataset.Department) func(dataset.Department) bool {
	if len(depts) == 0 {
		return func(dataset.Department) bool { return true }
	}
	set := make(map[dataset.Department]struct{}, len(depts))
	for _, d := range depts {
		set[d] = struct{}{}
	}
	return func(d dataset.Department) bool {
		_, ok := set[d]
		return ok
	}
}
