// Package creation drives the pick location, fill form, validate, commit flow
// that turns a map click into a stored entry.
package creation

import (
	"errors"
	"fmt"

	"tableflip.dev/maplog/pkg/collection"
	"tableflip.dev/maplog/pkg/entry"
)

// State is the controller state.
type State int

const (
	// Idle holds no pending location; the form is hidden.
	Idle State = iota
	// AwaitingInput holds a pending location while the form is open.
	AwaitingInput
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case AwaitingInput:
		return "AwaitingInput"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrNoPendingLocation is returned when a form is submitted without a map
// click before it.
var ErrNoPendingLocation = errors.New("creation: no pending location")

// FormView is the form surface the controller reveals and hides.
type FormView interface {
	Reveal()
	Hide()
}

// Controller is the creation state machine. There is exactly one pending
// location at a time; it is not safe for concurrent use.
type Controller struct {
	entries *collection.Collection
	factory *entry.Factory
	form    FormView

	state   State
	pending entry.Coordinates
}

// NewController commits into entries. factory and form may be nil.
func NewController(entries *collection.Collection, factory *entry.Factory, form FormView) *Controller {
	if factory == nil {
		factory = &entry.Factory{}
	}
	return &Controller{entries: entries, factory: factory, form: form}
}

func (c *Controller) State() State {
	return c.state
}

// Pending returns the held map location, if any.
func (c *Controller) Pending() (entry.Coordinates, bool) {
	return c.pending, c.state == AwaitingInput
}

// MapClicked holds coords as the pending location and opens the form. A click
// while the form is already open replaces the location.
func (c *Controller) MapClicked(coords entry.Coordinates) {
	c.pending = coords
	c.state = AwaitingInput
	if c.form != nil {
		c.form.Reveal()
	}
}

// Submit validates f and commits a new entry at the pending location. On any
// error no entry is stored and the controller keeps waiting for input.
func (c *Controller) Submit(f Form) (*entry.Entry, error) {
	if c.state != AwaitingInput {
		return nil, ErrNoPendingLocation
	}

	if !c.pending.Valid() {
		return nil, &ValidationError{Fields: []FieldError{{
			Field:  "Coordinates",
			Value:  c.pending.String(),
			Reason: "must be finite numbers",
		}}}
	}

	variant, err := f.Validate()
	if err != nil {
		return nil, err
	}

	e := c.factory.New(variant, c.pending, f.Title, f.Location, f.Tag)
	if err := c.entries.Add(e); err != nil {
		return nil, err
	}

	c.reset()
	return e, nil
}

// Cancel drops the pending location without creating an entry.
func (c *Controller) Cancel() {
	if c.state == Idle {
		return
	}
	c.reset()
}

func (c *Controller) reset() {
	c.pending = entry.Coordinates{}
	c.state = Idle
	if c.form != nil {
		c.form.Hide()
	}
}
