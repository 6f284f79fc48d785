// Package charts draws the dashboard figures as styled terminal text.
package charts

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Scale is a continuous color scale interpolated in Lab space between stops.
type Scale struct {
	stops []colorful.Color
}

// NewScale builds a scale from hex stops, lowest value first. Invalid hex
// strings are skipped.
func NewScale(hexes ...string) Scale {
	s := Scale{}
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		s.stops = append(s.stops, c)
	}
	return s
}

var (
	// RdYlGnReversed runs green → yellow → red, so high values read as hot.
	RdYlGnReversed = NewScale("#1A9850", "#91CF60", "#FEE08B", "#FC8D59", "#D73027")
	// Greens is a sequential light-to-dark green scale.
	Greens = NewScale("#E5F5E0", "#A1D99B", "#41AB5D", "#006D2C")
	// Reds is the gradient for critical rows.
	Reds = NewScale("#FFEBEE", "#EF9A9A", "#E53935")
	// Oranges is the gradient for improvement rows.
	Oranges = NewScale("#FFF3E0", "#FFCC80", "#FB8C00")
)

// At returns the color at position t in [0,1]; t is clamped.
func (s Scale) At(t float64) colorful.Color {
	switch len(s.stops) {
	case 0:
		return colorful.Color{}
	case 1:
		return s.stops[0]
	}
	if t <= 0 {
		return s.stops[0]
	}
	if t >= 1 {
		return s.stops[len(s.stops)-1]
	}
	pos := t * float64(len(s.stops)-1)
	i := int(pos)
	return s.stops[i].BlendLab(s.stops[i+1], pos-float64(i)).Clamped()
}

// Hex returns the color at t as "#rrggbb".
func (s Scale) Hex(t float64) string {
	return s.At(t).Hex()
}

// Normalize maps v from [lo, hi] to [0, 1]. A degenerate range maps to 0.5.
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	t := (v - lo) / (hi - lo)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Contrast picks black or white text for a background color.
func Contrast(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
