package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kingrea/tablero/internal/alerts"
	"github.com/kingrea/tablero/internal/charts"
	"github.com/kingrea/tablero/internal/dataset"
	"github.com/kingrea/tablero/internal/filter"
	"github.com/kingrea/tablero/internal/kpi"
)

type dashTab int

const (
	tabNOM dashTab = iota
	tabLEAN
	tabWellbeing
	tabCount
)

func (t dashTab) String() string {
	switch t {
	case tabNOM:
		return "NOM-035"
	case tabLEAN:
		return "LEAN 2.0"
	case tabWellbeing:
		return "Bienestar"
	default:
		return "?"
	}
}

var monthAbbrev = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

func renderCards(cards []kpi.Card, width int) string {
	if len(cards) == 0 {
		return ""
	}
	cardWidth := max(18, width/len(cards)-2)
	boxes := make([]string, 0, len(cards))
	for _, card := range cards {
		tok := kpi.Tokens(card.Band())
		color := lipgloss.Color(tok.Color)
		value := lipgloss.NewStyle().Bold(true).Foreground(color).
			Render(fmt.Sprintf("%s %s%%", tok.Symbol, kpi.FormatValue(card.Value)))
		delta := card.Delta()
		sign := "+"
		if delta < 0 {
			sign = ""
		}
		meta := mutedStyle.Render(fmt.Sprintf("Meta %s%% · %s%s", kpi.FormatValue(card.Target), sign, kpi.FormatValue(delta)))
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Padding(0, 1).
			Width(cardWidth).
			Render(lipgloss.JoinVertical(lipgloss.Left, card.Title, value, meta))
		boxes = append(boxes, box)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderTabBar(active dashTab) string {
	tabs := make([]string, 0, int(tabCount))
	for t := tabNOM; t < tabCount; t++ {
		style := inactiveTabStyle
		if t == active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderSummary(s dataset.Summary) string {
	return hintStyle.Render(fmt.Sprintf("Prom. evaluaciones %s%% · Prom. eficiencia %s%% · Incidentes %d · Proyectos %d · Bienestar (Dic) %s",
		kpi.FormatValue(s.MeanEvaluations),
		kpi.FormatValue(s.MeanEfficiency),
		s.TotalIncidents,
		s.TotalProjects,
		kpi.FormatValue(s.LatestWellbeing),
	))
}

func renderNOMTab(rows []dataset.NomRow, width int) string {
	labels := make([]string, len(rows))
	evals := make([]float64, len(rows))
	trainings := make([]float64, len(rows))
	heat := make([][]float64, len(rows))
	for i, row := range rows {
		labels[i] = string(row.Department)
		evals[i] = float64(row.Evaluations)
		trainings[i] = float64(row.Trainings)
		heat[i] = []float64{float64(row.Evaluations), float64(row.Trainings), float64(row.Incidents)}
	}
	bars := charts.GroupedBars(labels, []charts.Series{
		{Name: "Evaluaciones", Color: "#5B8DEF", Values: evals},
		{Name: "Capacitaciones", Color: "#F7B801", Values: trainings},
	}, 100, width)
	heatmap := charts.Heatmap(labels, []string{"Evaluaciones", "Capacitaciones", "Incidentes"}, heat, charts.RdYlGnReversed)
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Avance de evaluaciones y capacitaciones por departamento (%)"),
		bars,
		"",
		headingStyle.Render("Mapa de calor de indicadores NOM-035"),
		heatmap,
	)
}

func renderLEANTab(rows []dataset.LeanRow, width int) string {
	labels := make([]string, len(rows))
	eff := make([]float64, len(rows))
	traces := make([]charts.RadarTrace, len(rows))
	for i, row := range rows {
		labels[i] = string(row.Department)
		eff[i] = float64(row.Efficiency)
		traces[i] = charts.RadarTrace{
			Name:   string(row.Department),
			Values: []float64{float64(row.Efficiency), float64(row.WasteReduction), float64(row.ActiveProjects * 20)},
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Eficiencia operativa por departamento (%)"),
		charts.ScaledBars(labels, eff, 100, charts.Greens, width),
		"",
		headingStyle.Render("Radar LEAN 2.0"),
		charts.Radar([]string{"Eficiencia", "Reducción desperdicio", "Proyectos activos ×20"}, traces, 100, width),
	)
}

func renderWellbeingTab(rows []dataset.WellbeingRow) string {
	labels := make([]string, len(rows))
	index := make([]float64, len(rows))
	absent := make([]float64, len(rows))
	turnover := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = monthAbbrev[row.Month.Month()-1]
		index[i] = row.WellbeingIndex
		absent[i] = row.Absenteeism
		turnover[i] = row.Turnover
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Tendencia de indicadores de bienestar"),
		charts.LineChart(labels, []charts.Series{
			{Name: "Índice de bienestar", Color: "#4CAF50", Values: index},
			{Name: "Ausentismo", Color: "#FF6B6B", Values: absent},
			{Name: "Rotación", Color: "#5B8DEF", Values: turnover},
		}, 12),
	)
}

func renderAlerts(view filter.View, width int) string {
	critical := alerts.CriticalNom(view.Nom)
	nomRows := make([][]string, len(critical))
	for i, row := range critical {
		nomRows[i] = []string{string(row.Department), strconv.Itoa(row.Evaluations), strconv.Itoa(row.Trainings), strconv.Itoa(row.Incidents)}
	}
	improve := alerts.ImprovementLean(view.Lean)
	leanRows := make([][]string, len(improve))
	for i, row := range improve {
		leanRows[i] = []string{string(row.Department), strconv.Itoa(row.Efficiency), strconv.Itoa(row.WasteReduction), strconv.Itoa(row.ActiveProjects)}
	}
	half := max(30, width/2-2)
	left := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Áreas Críticas NOM-035"),
		gradientTable([]string{"Departamento", "Evaluaciones", "Capacitaciones", "Incidentes"}, nomRows, charts.Reds),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Oportunidades de Mejora LEAN"),
		gradientTable([]string{"Departamento", "Eficiencia", "Reducción", "Proyectos"}, leanRows, charts.Oranges),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(left),
		"  ",
		lipgloss.NewStyle().Width(half).Render(right),
	)
}

// gradientTable shades rows from the strongest color (first, most urgent)
// to the lightest.
func gradientTable(headers []string, rows [][]string, scale charts.Scale) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Bold(true)
			}
			pos := 1.0
			if len(rows) > 1 {
				pos = 1 - float64(row)/float64(len(rows)-1)*0.8
			}
			bg := scale.Hex(pos)
			return base.Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(charts.Contrast(bg)))
		})
	out := t.Render()
	if len(rows) == 0 {
		out += "\n" + mutedStyle.Render("Sin alertas para la selección actual")
	}
	return out
}

func renderExportButtons(labels []string) string {
	keys := []string{"p", "x", "e"}
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		hint := ""
		if i < len(keys) {
			hint = mutedStyle.Render(" (" + keys[i] + ")")
		}
		parts = append(parts, buttonStyle.Render(label)+hint)
	}
	return strings.Join(parts, "  ")
}
