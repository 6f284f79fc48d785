package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode maps a --format flag value to a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "ascii", "text":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("report: unknown format %q (want ascii or markdown)", value)
	}
}

func (m Mode) String() string {
	if m == Markdown {
		return "markdown"
	}
	return "ascii"
}

// tableBuilder wraps go-pretty's writer; build once, render in the Mode set
// at creation.
type tableBuilder struct {
	writer table.Writer
	mode   Mode
}

func newTable(m Mode) *tableBuilder {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &tableBuilder{writer: w, mode: m}
}

func (b *tableBuilder) header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	b.writer.AppendHeader(row)
}

func (b *tableBuilder) row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	b.writer.AppendRow(row)
}

func (b *tableBuilder) footer(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	b.writer.AppendFooter(row)
}

// alignRight right-aligns the given 1-based columns.
func (b *tableBuilder) alignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight}
	}
	b.writer.SetColumnConfigs(cfgs)
}

func (b *tableBuilder) String() string {
	if b.mode == Markdown {
		return b.writer.RenderMarkdown()
	}
	return b.writer.Render()
}
