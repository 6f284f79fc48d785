package actionplan

import (
	"context"
	"fmt"
)

// State is the form lifecycle: idle → editing → submitted → idle.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Controller drives the form lifecycle and forwards valid plans to a Sink.
type Controller struct {
	sink  Sink
	state State
	last  *Ack
	count int
}

// NewController returns an idle controller. A nil sink discards plans.
func NewController(sink Sink) *Controller {
	if sink == nil {
		sink = DiscardSink{}
	}
	return &Controller{sink: sink}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Begin moves an idle form into editing.
func (c *Controller) Begin() {
	if c.state == StateIdle {
		c.state = StateEditing
	}
}

// Submit validates plan and hands it to the sink. Invalid plans leave the
// form in editing and produce no acknowledgement.
func (c *Controller) Submit(ctx context.Context, plan Plan) (Ack, error) {
	c.Begin()
	if err := plan.Validate(); err != nil {
		return Ack{}, err
	}
	ack, err := c.sink.Submit(ctx, plan)
	if err != nil {
		return Ack{}, fmt.Errorf("actionplan: submit: %w", err)
	}
	c.state = StateSubmitted
	c.last = &ack
	c.count++
	return ack, nil
}

// Reset returns the form to idle once the acknowledgement has been shown.
func (c *Controller) Reset() {
	c.state = StateIdle
}

// Last returns the most recent acknowledgement, if any.
func (c *Controller) Last() (Ack, bool) {
	if c.last == nil {
		return Ack{}, false
	}
	return *c.last, true
}

// Submitted counts accepted plans in this session.
func (c *Controller) Submitted() int {
	return c.count
}
