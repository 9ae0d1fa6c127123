package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/maplog/pkg/glyph"
	"tableflip.dev/maplog/pkg/view"
)

// List collects list items in the order they are added and prints them as a
// table.
type List struct {
	PrettyPrint

	items []view.ListItem
}

func (l *List) Add(item view.ListItem) {
	l.items = append(l.items, item)
}

// Print writes the title with the item count followed by one row per item.
func (l *List) Print(title string) {
	l.TitleWithCount(title, len(l.items))
	if len(l.items) == 0 {
		l.None()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = " "
	header := []interface{}{"", glyph.Bold("Date"), glyph.Title.String(), glyph.Location.String(), glyph.Tag.String()}
	if l.ShowID {
		header = append([]interface{}{""}, header...)
	}
	tbl.AddRow(header...)

	for _, item := range l.items {
		row := []interface{}{item.Glyph.String(), item.Description, item.Title, item.Location, item.Tag}
		if l.ShowID {
			row = append([]interface{}{y.Sprint(item.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(l.out(), tbl)
	l.NewLine()
}
