package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/maplog/pkg/entry"
	"tableflip.dev/maplog/pkg/view"
)

// Map is a map without tiles: every call is written to Out as a line of text.
// Click delivers a map click to the registered handler.
type Map struct {
	PrettyPrint

	Center  entry.Coordinates
	Zoom    int
	Layer   view.TileLayer
	Markers []*Marker

	onClick func(entry.Coordinates)
}

func (m *Map) CreateView(center entry.Coordinates, zoom int) {
	m.Center, m.Zoom = center, zoom
	m.Notice("map centred on %s at zoom %d", center, zoom)
}

func (m *Map) AddTileLayer(layer view.TileLayer) {
	m.Layer = layer
}

func (m *Map) OnClick(handler func(entry.Coordinates)) {
	m.onClick = handler
}

// Click reports whether a handler received the click.
func (m *Map) Click(at entry.Coordinates) bool {
	if m.onClick == nil {
		return false
	}
	m.onClick(at)
	return true
}

func (m *Map) AddMarker(at entry.Coordinates, style view.MarkerStyle) view.Marker {
	mk := &Marker{At: at, Icon: style.Icon, pp: &m.PrettyPrint}
	m.Markers = append(m.Markers, mk)
	return mk
}

func (m *Map) SetView(center entry.Coordinates, zoom int, anim view.Animation) {
	m.Center, m.Zoom = center, zoom
	verb := "jumped"
	if anim.Animate {
		verb = fmt.Sprintf("panned over %s", anim.PanDuration)
	}
	_, _ = color.New(color.FgCyan).Fprintf(m.out(), "map %s to %s at zoom %d\n", verb, center, zoom)
}

type Marker struct {
	At      entry.Coordinates
	Icon    string
	Content string
	Style   view.PopupStyle

	pp *PrettyPrint
}

func (mk *Marker) BindPopup(content string, style view.PopupStyle) {
	mk.Content, mk.Style = content, style
	mk.pp.Notice("%s marker at %s: %s [%s]", mk.Icon, mk.At, content, style.ClassName)
}
