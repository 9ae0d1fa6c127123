// Package view keeps the list and the map in step with the committed entries.
// The map and list widgets themselves are supplied by the caller.
package view

import (
	"time"

	"tableflip.dev/maplog/pkg/entry"
)

// TileLayer configures the map tiles.
type TileLayer struct {
	URL        string
	MaxZoom    int
	Subdomains []string
}

// DefaultTileLayer is the satellite-with-labels layer.
var DefaultTileLayer = TileLayer{
	URL:        "http://{s}.google.com/vt/lyrs=s,h&x={x}&y={y}&z={z}",
	MaxZoom:    20,
	Subdomains: []string{"mt0", "mt1", "mt2", "mt3"},
}

type MarkerStyle struct {
	Icon string
}

type PopupStyle struct {
	MaxWidth     int
	MinWidth     int
	AutoClose    bool
	CloseOnClick bool
	ClassName    string
}

// Animation controls how SetView moves the map.
type Animation struct {
	Animate     bool
	PanDuration time.Duration
}

// Map is the mapping widget.
type Map interface {
	CreateView(center entry.Coordinates, zoom int)
	AddTileLayer(layer TileLayer)
	OnClick(handler func(entry.Coordinates))
	AddMarker(at entry.Coordinates, style MarkerStyle) Marker
	SetView(center entry.Coordinates, zoom int, anim Animation)
}

// Marker is a placed map marker.
type Marker interface {
	BindPopup(content string, style PopupStyle)
}

// List is the visible entry list. Items are only ever added.
type List interface {
	Add(item ListItem)
}

// ListTarget is whatever the user clicked inside the list. EntryID reports
// false when the click did not land on an entry item.
type ListTarget interface {
	EntryID() (string, bool)
}

// ItemID is a ListTarget for a known entry id.
type ItemID string

func (i ItemID) EntryID() (string, bool) {
	return string(i), i != ""
}
