// Package actionplan captures action-plan records from the dashboard form.
// Records are acknowledged and discarded; nothing is stored.
package actionplan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kingrea/tablero/internal/dataset"
)

// ErrIncomplete is returned when a required field is missing.
var ErrIncomplete = errors.New("actionplan: incomplete plan")

// Plan is one action-plan record.
type Plan struct {
	Department     dataset.Department
	Problem        string
	Owner          string
	ProposedAction string
	Deadline       time.Time
}

// Missing lists the labels of required fields that are blank or invalid.
func (p Plan) Missing() []string {
	var missing []string
	if !dataset.Valid(p.Department) {
		missing = append(missing, "Departamento")
	}
	if strings.TrimSpace(p.Problem) == "" {
		missing = append(missing, "Problema identificado")
	}
	if strings.TrimSpace(p.Owner) == "" {
		missing = append(missing, "Responsable asignado")
	}
	if strings.TrimSpace(p.ProposedAction) == "" {
		missing = append(missing, "Acción propuesta")
	}
	return missing
}

// Validate returns ErrIncomplete wrapped with the missing field labels.
func (p Plan) Validate() error {
	if missing := p.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// Ack confirms a submitted plan.
type Ack struct {
	ID         string
	Department dataset.Department
	Message    string
	At         time.Time
}

// Sink receives validated plans.
type Sink interface {
	Submit(ctx context.Context, plan Plan) (Ack, error)
}

// Store is reserved for a persistent plan repository. Nothing in this
// module implements it yet.
type Store interface {
	Save(ctx context.Context, plan Plan) (string, error)
	List(ctx context.Context) ([]Plan, error)
}

// DiscardSink acknowledges every plan without keeping it.
type DiscardSink struct {
	Now func() time.Time
}

// Submit implements Sink.
func (s DiscardSink) Submit(ctx context.Context, plan Plan) (Ack, error) {
	if err := ctx.Err(); err != nil {
		return Ack{}, err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Ack{
		ID:         uuid.NewString(),
		Department: plan.Department,
		Message:    AckMessage(plan.Department),
		At:         now(),
	}, nil
}

// AckMessage is the notice shown after a plan is saved.
func AckMessage(d dataset.Department) string {
	return fmt.Sprintf("Plan de acción registrado para %s", d)
}
