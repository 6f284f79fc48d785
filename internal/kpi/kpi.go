// Package kpi classifies indicator values against their targets.
package kpi

import (
	"fmt"
	"strconv"
)

// DefaultTarget applies when a KPI does not declare its own target.
const DefaultTarget = 90.0

// WarningMargin is how far below the target a value may fall before it is
// considered critical.
const WarningMargin = 10.0

// Band is the discrete status of a KPI.
type Band int

const (
	BandOK Band = iota
	BandWarning
	BandCritical
)

func (b Band) String() string {
	switch b {
	case BandOK:
		return "ok"
	case BandWarning:
		return "warning"
	case BandCritical:
		return "critical"
	default:
		return fmt.Sprintf("band(%d)", int(b))
	}
}

// Classify maps value to a band relative to target.
func Classify(value, target float64) Band {
	switch {
	case value >= target:
		return BandOK
	case value >= target-WarningMargin:
		return BandWarning
	default:
		return BandCritical
	}
}

// ClassifyDefault classifies value against DefaultTarget.
func ClassifyDefault(value float64) Band {
	return Classify(value, DefaultTarget)
}

// FormatValue renders a KPI value with one decimal.
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}

// Card is one of the summary tiles at the top of the dashboard.
type Card struct {
	Title  string  `yaml:"title"`
	Value  float64 `yaml:"value"`
	Target float64 `yaml:"target"`
}

// Band classifies the card. A zero target falls back to DefaultTarget.
func (c Card) Band() Band {
	target := c.Target
	if target == 0 {
		target = DefaultTarget
	}
	return Classify(c.Value, target)
}

// Delta is the signed distance from value to target.
func (c Card) Delta() float64 {
	target := c.Target
	if target == 0 {
		target = DefaultTarget
	}
	return c.Value - target
}

// Cards returns the four fixed KPI tiles.
func Cards() []Card {
	return []Card{
		{Title: "Cumplimiento NOM-035", Value: 92, Target: 90},
		{Title: "Adopción LEAN 2.0", Value: 85, Target: 80},
		{Title: "Índice Bienestar", Value: 78, Target: 85},
		{Title: "Eficiencia Operativa", Value: 65, Target: 75},
	}
}
