package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var markers = []rune{'●', '■', '▲', '◆'}

const stepWidth = 5

type cell struct {
	r     rune
	color string
}

// LineChart plots every series on one shared y axis over xLabels, with a
// marker at each point and dotted segments in between.
func LineChart(xLabels []string, series []Series, height int) string {
	if len(xLabels) == 0 || len(series) == 0 {
		return emptyNote()
	}
	if height < 4 {
		height = 4
	}
	var all []float64
	for _, s := range series {
		all = append(all, s.Values...)
	}
	lo, hi := bounds(all)
	lo = math.Floor(lo)
	hi = math.Ceil(hi)
	if hi <= lo {
		hi = lo + 1
	}

	width := (len(xLabels)-1)*stepWidth + 1
	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
		for c := range grid[r] {
			grid[r][c] = cell{r: ' '}
		}
	}
	rowOf := func(v float64) int {
		t := Normalize(v, lo, hi)
		return height - 1 - int(math.Round(t*float64(height-1)))
	}

	for si, s := range series {
		marker := markers[si%len(markers)]
		for i := 0; i+1 < len(xLabels) && i+1 < len(s.Values); i++ {
			r0, r1 := rowOf(s.Values[i]), rowOf(s.Values[i+1])
			for step := 1; step < stepWidth; step++ {
				frac := float64(step) / float64(stepWidth)
				r := int(math.Round(float64(r0) + frac*float64(r1-r0)))
				c := i*stepWidth + step
				if grid[r][c].r == ' ' {
					grid[r][c] = cell{r: '·', color: s.Color}
				}
			}
		}
		for i := 0; i < len(xLabels) && i < len(s.Values); i++ {
			grid[rowOf(s.Values[i])][i*stepWidth] = cell{r: marker, color: s.Color}
		}
	}

	axisWidth := len(fmt.Sprintf("%.0f", hi))
	if w := len(fmt.Sprintf("%.0f", lo)); w > axisWidth {
		axisWidth = w
	}
	lines := make([]string, 0, height+3)
	for r, row := range grid {
		label := ""
		switch r {
		case 0:
			label = fmt.Sprintf("%.0f", hi)
		case height - 1:
			label = fmt.Sprintf("%.0f", lo)
		case (height - 1) / 2:
			label = fmt.Sprintf("%.0f", (hi+lo)/2)
		}
		var b strings.Builder
		for _, c := range row {
			if c.color == "" {
				b.WriteRune(c.r)
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Render(string(c.r)))
		}
		lines = append(lines, padLeft(label, axisWidth)+" ┤"+b.String())
	}
	lines = append(lines, strings.Repeat(" ", axisWidth)+" └"+strings.Repeat("─", width))
	var xs strings.Builder
	for i, label := range xLabels {
		if i == len(xLabels)-1 {
			xs.WriteString(label)
			break
		}
		xs.WriteString(padRight(label, stepWidth))
	}
	lines = append(lines, strings.Repeat(" ", axisWidth+2)+xs.String())

	legend := make([]string, 0, len(series))
	for si, s := range series {
		mark := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(string(markers[si%len(markers)]))
		legend = append(legend, mark+" "+s.Name)
	}
	lines = append(lines, strings.Join(legend, "   "))
	return strings.Join(lines, "\n")
}
