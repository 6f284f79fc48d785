// Package export reserves the report export actions. Each action
// acknowledges immediately and performs no I/O.
package export

import (
	"context"
	"time"
)

// Ack confirms an export action.
type Ack struct {
	Action  string
	Message string
	At      time.Time
}

// Action is one export button.
type Action interface {
	Label() string
	Perform(ctx context.Context) (Ack, error)
}

// PDF is the "Generar PDF" action.
type PDF struct{ Now func() time.Time }

// Spreadsheet is the "Exportar Excel" action.
type Spreadsheet struct{ Now func() time.Time }

// EmailReport is the "Enviar Reporte" action.
type EmailReport struct{ Now func() time.Time }

func (PDF) Label() string         { return "Generar PDF" }
func (Spreadsheet) Label() string { return "Exportar Excel" }
func (EmailReport) Label() string { return "Enviar Reporte" }

func (a PDF) Perform(ctx context.Context) (Ack, error) {
	return ack(ctx, a.Label(), "Reporte PDF generado exitosamente", a.Now)
}

func (a Spreadsheet) Perform(ctx context.Context) (Ack, error) {
	return ack(ctx, a.Label(), "Datos exportados a Excel", a.Now)
}

func (a EmailReport) Perform(ctx context.Context) (Ack, error) {
	return ack(ctx, a.Label(), "Reporte enviado por correo", a.Now)
}

// Actions returns the export buttons in display order.
func Actions(now func() time.Time) []Action {
	return []Action{PDF{Now: now}, Spreadsheet{Now: now}, EmailReport{Now: now}}
}

func ack(ctx context.Context, label, message string, now func() time.Time) (Ack, error) {
	if err := ctx.Err(); err != nil {
		return Ack{}, err
	}
	if now == nil {
		now = time.Now
	}
	return Ack{Action: label, Message: message, At: now()}, nil
}
