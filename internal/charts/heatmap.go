package charts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Heatmap draws a labelled grid. Each column is normalized on its own range
// so metrics with different units share one scale; cells show the raw value.
func Heatmap(rowLabels, colLabels []string, values [][]float64, scale Scale) string {
	if len(rowLabels) == 0 || len(colLabels) == 0 {
		return emptyNote()
	}
	labelWidth := widest(rowLabels)
	cellWidth := widest(colLabels) + 2
	if cellWidth < 7 {
		cellWidth = 7
	}

	lo := make([]float64, len(colLabels))
	hi := make([]float64, len(colLabels))
	for c := range colLabels {
		column := make([]float64, 0, len(values))
		for r := range values {
			column = append(column, valueAt(values[r], c))
		}
		lo[c], hi[c] = bounds(column)
	}

	header := []string{strings.Repeat(" ", labelWidth+1)}
	for _, label := range colLabels {
		header = append(header, lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Bold(true).Render(label))
	}
	lines := []string{strings.Join(header, "")}
	for r, label := range rowLabels {
		row := []string{padRight(label, labelWidth) + " "}
		for c := range colLabels {
			var v float64
			if r < len(values) {
				v = valueAt(values[r], c)
			}
			bg := scale.Hex(Normalize(v, lo[c], hi[c]))
			cell := lipgloss.NewStyle().
				Width(cellWidth).
				Align(lipgloss.Center).
				Background(lipgloss.Color(bg)).
				Foreground(lipgloss.Color(Contrast(bg))).
				Render(formatCell(v))
			row = append(row, cell)
		}
		lines = append(lines, strings.Join(row, ""))
	}
	return strings.Join(lines, "\n")
}

func formatCell(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
