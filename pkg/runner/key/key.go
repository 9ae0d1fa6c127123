// Package key provides CLI helpers to display the entry legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/maplog/pkg/glyph"
)

// Key prints a glyph legend describing entry kinds and list columns.
type Key struct {
	Out io.Writer
}

func (k *Key) out() io.Writer {
	if k.Out == nil {
		return color.Output
	}
	return k.Out
}

// Do renders the variant and field keys.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(k.out(), "")
	k.Key(ctx, glyph.DefaultGlyphs(), false)
	_, _ = fmt.Fprintln(k.out(), "")
	k.Key(ctx, glyph.DefaultGlyphs(), true)
	_, _ = fmt.Fprintln(k.out(), "")
	return nil
}

// Key renders a glyph table; when field is true, the list column icons are
// shown instead of the entry kinds.
func (k *Key) Key(_ context.Context, glyfs []glyph.Glyph, field bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if field {
		tbl.AddRow(bold.Sprint("Columns"), bold.Sprint("Meaning"))
	} else {
		tbl.AddRow(bold.Sprint("  Kinds"), bold.Sprint("Meaning"))
	}
	for _, v := range glyfs {
		if field == v.Field {
			tbl.AddRow(v.Symbol, v.Meaning)
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.out(), tbl)
}
