package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barRune = "█"

// Series names one set of values and the color it is drawn with.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// Bar draws a single horizontal bar of value/max scaled to width cells.
func Bar(value, max float64, width int, color string) string {
	if width <= 0 || max <= 0 {
		return ""
	}
	n := int(math.Round(value / max * float64(width)))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	filled := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat(barRune, n))
	return filled + strings.Repeat(" ", width-n)
}

// GroupedBars draws, for every label, one bar per series stacked under each
// other, followed by a legend. All bars share the scale [0, max].
func GroupedBars(labels []string, series []Series, max float64, width int) string {
	if len(labels) == 0 {
		return emptyNote()
	}
	labelWidth := widest(labels)
	barWidth := width - labelWidth - 8
	if barWidth < 10 {
		barWidth = 10
	}
	var lines []string
	for i, label := range labels {
		for j, s := range series {
			name := ""
			if j == 0 {
				name = label
			}
			value := valueAt(s.Values, i)
			lines = append(lines, fmt.Sprintf("%s │%s %5.1f",
				padRight(name, labelWidth),
				Bar(value, max, barWidth, s.Color),
				value,
			))
		}
	}
	lines = append(lines, Legend(series))
	return strings.Join(lines, "\n")
}

// ScaledBars draws one bar per label colored by the value's position on scale.
func ScaledBars(labels []string, values []float64, max float64, scale Scale, width int) string {
	if len(labels) == 0 {
		return emptyNote()
	}
	lo, hi := bounds(values)
	labelWidth := widest(labels)
	barWidth := width - labelWidth - 8
	if barWidth < 10 {
		barWidth = 10
	}
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		value := valueAt(values, i)
		color := scale.Hex(Normalize(value, lo, hi))
		lines = append(lines, fmt.Sprintf("%s │%s %5.1f",
			padRight(label, labelWidth),
			Bar(value, max, barWidth, color),
			value,
		))
	}
	return strings.Join(lines, "\n")
}

// Legend lists series names with their color swatch.
func Legend(series []Series) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("■")
		parts = append(parts, swatch+" "+s.Name)
	}
	return strings.Join(parts, "   ")
}

func emptyNote() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("Sin datos para la selección actual")
}

func valueAt(values []float64, i int) float64 {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}

func bounds(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func widest(labels []string) int {
	w := 0
	for _, l := range labels {
		if n := lipgloss.Width(l); n > w {
			w = n
		}
	}
	return w
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
