package dataset

// Summary aggregates a table set for report headers and card subtitles.
type Summary struct {
	MeanEvaluations float64
	MeanTrainings   float64
	TotalIncidents  int
	MeanEfficiency  float64
	TotalProjects   int
	LatestWellbeing float64
	MeanAbsenteeism float64
	MeanTurnover    float64
}

// Summarize computes aggregates over the given rows. Empty inputs yield zeros.
func Summarize(nom []NomRow, lean []LeanRow, wellbeing []WellbeingRow) Summary {
	var s Summary
	if len(nom) > 0 {
		var evals, trainings int
		for _, row := range nom {
			evals += row.Evaluations
			trainings += row.Trainings
			s.TotalIncidents += row.Incidents
		}
		s.MeanEvaluations = Round(float64(evals)/float64(len(nom)), 1)
		s.MeanTrainings = Round(float64(trainings)/float64(len(nom)), 1)
	}
	if len(lean) > 0 {
		var eff int
		for _, row := range lean {
			eff += row.Efficiency
			s.TotalProjects += row.ActiveProjects
		}
		s.MeanEfficiency = Round(float64(eff)/float64(len(lean)), 1)
	}
	if len(wellbeing) > 0 {
		var abs, turn float64
		for _, row := range wellbeing {
			abs += row.Absenteeism
			turn += row.Turnover
		}
		s.LatestWellbeing = wellbeing[len(wellbeing)-1].WellbeingIndex
		s.MeanAbsenteeism = Round(abs/float64(len(wellbeing)), 1)
		s.MeanTurnover = Round(turn/float64(len(wellbeing)), 1)
	}
	return s
}

// Summary aggregates the full tables.
func (t *Tables) Summary() Summary {
	if t == nil {
		return Summary{}
	}
	return Summarize(t.Nom, t.Lean, t.Wellbeing)
}
