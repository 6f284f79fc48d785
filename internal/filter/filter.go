// Package filter holds the sidebar selections and projects the fabricated
// tables onto them.
package filter

import (
	"time"

	"github.com/kingrea/tablero/internal/dataset"
)

// Metric is one of the key metrics a manager can highlight.
type Metric string

const (
	MetricNOM035       Metric = "NOM-035"
	MetricCalidad      Metric = "Calidad"
	MetricProductivity Metric = "Productividad"
	MetricBienestar    Metric = "Bienestar"
	MetricLEAN         Metric = "LEAN"
)

var metricOrder = []Metric{
	MetricNOM035,
	MetricCalidad,
	MetricProductivity,
	MetricBienestar,
	MetricLEAN,
}

// Metrics returns the metric domain in display order.
func Metrics() []Metric {
	out := make([]Metric, len(metricOrder))
	copy(out, metricOrder)
	return out
}

// State is the current filter selection. The zero value selects every
// department and no metrics.
type State struct {
	Start       time.Time
	End         time.Time
	Departments []dataset.Department
	Metrics     []Metric
}

// NewState selects all departments and all metrics for the given range.
func NewState(start, end time.Time) State {
	return State{
		Start:       start,
		End:         end,
		Departments: dataset.Departments(),
		Metrics:     Metrics(),
	}
}

// Selected returns the effective department set in canonical order. An
// empty selection means every department.
func (s State) Selected() []dataset.Department {
	if len(s.Departments) == 0 {
		return dataset.Departments()
	}
	return canonicalize(s.Departments)
}

// IsSelected reports whether d is part of the effective selection.
func (s State) IsSelected(d dataset.Department) bool {
	if len(s.Departments) == 0 {
		return dataset.Valid(d)
	}
	for _, candidate := range s.Departments {
		if candidate == d {
			return true
		}
	}
	return false
}

// SetDepartments replaces the selection, dropping unknown and duplicate entries.
func (s *State) SetDepartments(depts []dataset.Department) {
	s.Departments = canonicalize(depts)
}

// Toggle flips d in the explicit selection. Clearing the last department
// leaves an empty selection, which Selected treats as all departments.
func (s *State) Toggle(d dataset.Department) {
	if !dataset.Valid(d) {
		return
	}
	for i, candidate := range s.Departments {
		if candidate == d {
			s.Departments = append(s.Departments[:i:i], s.Departments[i+1:]...)
			return
		}
	}
	s.Departments = canonicalize(append(append([]dataset.Department{}, s.Departments...), d))
}

// HasMetric reports whether m is selected.
func (s State) HasMetric(m Metric) bool {
	for _, candidate := range s.Metrics {
		if candidate == m {
			return true
		}
	}
	return false
}

// ToggleMetric flips m in the metric selection, keeping display order.
func (s *State) ToggleMetric(m Metric) {
	if s.HasMetric(m) {
		next := make([]Metric, 0, len(s.Metrics))
		for _, candidate := range s.Metrics {
			if candidate != m {
				next = append(next, candidate)
			}
		}
		s.Metrics = next
		return
	}
	known := false
	for _, candidate := range metricOrder {
		if candidate == m {
			known = true
		}
	}
	if !known {
		return
	}
	next := make([]Metric, 0, len(s.Metrics)+1)
	for _, candidate := range metricOrder {
		if candidate == m || s.HasMetric(candidate) {
			next = append(next, candidate)
		}
	}
	s.Metrics = next
}

// SetRange stores the date range as given. Ranges with start after end are
// accepted; see RangeValid.
func (s *State) SetRange(start, end time.Time) {
	s.Start = start
	s.End = end
}

// RangeValid reports whether Start is not after End.
func (s State) RangeValid() bool {
	return !s.Start.After(s.End)
}

// Clone returns a deep copy so pending sidebar edits never alias the
// applied state.
func (s State) Clone() State {
	out := s
	out.Departments = append([]dataset.Department(nil), s.Departments...)
	out.Metrics = append([]Metric(nil), s.Metrics...)
	return out
}

func canonicalize(depts []dataset.Department) []dataset.Department {
	seen := map[dataset.Department]struct{}{}
	for _, d := range depts {
		seen[d] = struct{}{}
	}
	out := make([]dataset.Department, 0, len(seen))
	for _, d := range dataset.Departments() {
		if _, ok := seen[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
