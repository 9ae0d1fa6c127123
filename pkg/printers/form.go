package printers

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/maplog/pkg/entry"
)

// Form tracks whether the entry form is showing.
type Form struct {
	PrettyPrint

	Open bool
}

func (f *Form) Reveal() {
	f.Open = true
	f.Notice("form open")
}

func (f *Form) Hide() {
	f.Open = false
	f.Notice("form closed")
}

// Alerter prints user-facing messages in red.
type Alerter struct {
	PrettyPrint

	Messages []string
}

func (a *Alerter) Alert(msg string) {
	a.Messages = append(a.Messages, msg)
	_, _ = color.New(color.FgRed, color.Bold).Fprintln(a.out(), msg)
}

// ErrNoHome is returned by a StaticLocator without a configured position.
var ErrNoHome = errors.New("printers: no home position configured")

// StaticLocator answers with a fixed position, usually home.lat/home.lng from
// the config file.
type StaticLocator struct {
	Home *[2]float64
}

func (s StaticLocator) CurrentPosition(ctx context.Context) (entry.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return entry.Coordinates{}, err
	}
	if s.Home == nil {
		return entry.Coordinates{}, ErrNoHome
	}
	return entry.NewCoordinates(s.Home[0], s.Home[1]), nil
}
