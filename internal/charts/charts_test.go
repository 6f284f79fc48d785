package charts

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestScaleEndpoints(t *testing.T) {
	if got := RdYlGnReversed.Hex(0); got != "#1a9850" {
		t.Fatalf("low end = %s, want green", got)
	}
	if got := RdYlGnReversed.Hex(1); got != "#d73027" {
		t.Fatalf("high end = %s, want red", got)
	}
	if got := RdYlGnReversed.Hex(-3); got != "#1a9850" {
		t.Fatalf("t below range must clamp, got %s", got)
	}
	mid := RdYlGnReversed.Hex(0.5)
	if mid == RdYlGnReversed.Hex(0) || mid == RdYlGnReversed.Hex(1) {
		t.Fatalf("midpoint should differ from endpoints, got %s", mid)
	}
	if (Scale{}).Hex(0.3) != "#000000" {
		t.Fatalf("empty scale should be black")
	}
}

func TestNormalize(t *testing.T) {
	if Normalize(5, 0, 10) != 0.5 || Normalize(-1, 0, 10) != 0 || Normalize(11, 0, 10) != 1 {
		t.Fatalf("unexpected normalization")
	}
	if Normalize(3, 3, 3) != 0.5 {
		t.Fatalf("degenerate range should map to 0.5")
	}
}

func TestContrast(t *testing.T) {
	if Contrast("#FFFFFF") != "#000000" || Contrast("#000000") != "#FFFFFF" {
		t.Fatalf("unexpected contrast choice")
	}
}

func TestBarWidth(t *testing.T) {
	bar := Bar(50, 100, 20, "#4CAF50")
	if lipgloss.Width(bar) != 20 {
		t.Fatalf("bar width = %d, want 20", lipgloss.Width(bar))
	}
	if strings.Count(bar, barRune) != 10 {
		t.Fatalf("expected 10 filled cells, got %q", bar)
	}
	if strings.Count(Bar(500, 100, 8, "#fff"), barRune) != 8 {
		t.Fatalf("overflow should clamp to width")
	}
	if Bar(1, 0, 10, "#fff") != "" {
		t.Fatalf("zero max should render nothing")
	}
}

func TestGroupedBarsIncludesLabelsAndLegend(t *testing.T) {
	out := GroupedBars(
		[]string{"Producción", "Calidad"},
		[]Series{
			{Name: "Evaluaciones", Color: "#5B8DEF", Values: []float64{91, 75}},
			{Name: "Capacitaciones", Color: "#F7B801", Values: []float64{60, 88}},
		},
		100, 60,
	)
	for _, want := range []string{"Producción", "Calidad", "91.0", "88.0", "Evaluaciones", "Capacitaciones"} {
		if !strings.Contains(out, want) {
			t.Fatalf("grouped bars missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 5 {
		t.Fatalf("expected 4 bars and a legend, got %d lines", len(lines))
	}
}

func TestEmptyChartsShowNote(t *testing.T) {
	for name, out := range map[string]string{
		"grouped": GroupedBars(nil, nil, 100, 40),
		"scaled":  ScaledBars(nil, nil, 100, Greens, 40),
		"heatmap": Heatmap(nil, []string{"a"}, nil, RdYlGnReversed),
		"radar":   Radar([]string{"a"}, nil, 100, 40),
		"line":    LineChart(nil, nil, 8),
	} {
		if !strings.Contains(out, "Sin datos") {
			t.Fatalf("%s: expected empty note, got %q", name, out)
		}
	}
}

func TestHeatmapRendersEveryCell(t *testing.T) {
	out := Heatmap(
		[]string{"RH", "TI"},
		[]string{"Evaluaciones", "Incidentes"},
		[][]float64{{71, 3}, {98, 9}},
		RdYlGnReversed,
	)
	for _, want := range []string{"Evaluaciones", "Incidentes", "RH", "TI", "71", "98", "3", "9"} {
		if !strings.Contains(out, want) {
			t.Fatalf("heatmap missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d", len(lines))
	}
}

func TestRadarScoresTraces(t *testing.T) {
	out := Radar(
		[]string{"Eficiencia", "Reducción desperdicio", "Proyectos activos ×20"},
		[]RadarTrace{{Name: "Ventas", Values: []float64{90, 20, 100}}},
		100, 60,
	)
	if !strings.Contains(out, "Ventas") || !strings.Contains(out, "área 70%") {
		t.Fatalf("unexpected radar output:\n%s", out)
	}
}

func TestLineChartPlacesMarkers(t *testing.T) {
	labels := []string{"Ene", "Feb", "Mar"}
	out := LineChart(labels, []Series{
		{Name: "Índice de bienestar", Color: "#4CAF50", Values: []float64{70, 80, 75}},
		{Name: "Ausentismo", Color: "#FF6B6B", Values: []float64{8, 9, 7}},
	}, 10)
	if got := strings.Count(out, "●"); got != 4 {
		t.Fatalf("expected 3 point markers plus legend for first series, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "■"); got != 4 {
		t.Fatalf("expected 3 point markers plus legend for second series, got %d:\n%s", got, out)
	}
	for _, want := range []string{"Ene", "Mar", "80", "7", "Ausentismo"} {
		if !strings.Contains(out, want) {
			t.Fatalf("line chart missing %q:\n%s", want, out)
		}
	}
}
