// Package printers renders the map, list, form and alerts of a session to a
// terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrettyPrint writes to Out, or color.Output when Out is nil. Notices are only
// written when Verbose is set.
type PrettyPrint struct {
	Out     io.Writer
	ShowID  bool
	Verbose bool
}

var (
	spacing = strings.Repeat(" ", len("0059400123-1a  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// None prints the placeholder for an empty list.
func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Notice prints a faint single line.
func (pp *PrettyPrint) Notice(format string, a ...interface{}) {
	if !pp.Verbose {
		return
	}
	_, _ = color.New(color.Faint).Fprintf(pp.out(), format+"\n", a...)
}
