package charts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RadarTrace is one closed polygon of the radar: a name and one value per axis.
type RadarTrace struct {
	Name   string
	Values []float64
}

var tracePalette = []string{
	"#5B8DEF", "#FF6B6B", "#4CAF50", "#F7B801", "#AB47BC", "#26A69A", "#8D6E63",
}

// TraceColor returns the color used for the i-th trace.
func TraceColor(i int) string {
	if i < 0 {
		i = -i
	}
	return tracePalette[i%len(tracePalette)]
}

// Radar draws a radar chart unrolled into spokes: one block per trace with
// one bar per axis on the shared radial range [0, max]. An area score (mean
// of normalized spokes) summarizes each trace.
func Radar(axes []string, traces []RadarTrace, max float64, width int) string {
	if len(traces) == 0 || len(axes) == 0 {
		return emptyNote()
	}
	axisWidth := widest(axes)
	barWidth := width - axisWidth - 10
	if barWidth < 10 {
		barWidth = 10
	}
	var blocks []string
	for i, trace := range traces {
		color := TraceColor(i)
		var total float64
		lines := []string{}
		for a, axis := range axes {
			v := valueAt(trace.Values, a)
			total += Normalize(v, 0, max)
			lines = append(lines, fmt.Sprintf("  %s ┤%s %5.1f",
				padRight(axis, axisWidth),
				Bar(v, max, barWidth, color),
				v,
			))
		}
		score := total / float64(len(axes)) * 100
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).
			Render(fmt.Sprintf("◆ %s  (área %.0f%%)", trace.Name, score))
		blocks = append(blocks, title+"\n"+strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n")
}
