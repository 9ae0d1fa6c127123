package view

import (
	"time"

	"tableflip.dev/maplog/pkg/collection"
	"tableflip.dev/maplog/pkg/entry"
	"tableflip.dev/maplog/pkg/glyph"
)

const (
	popupMaxWidth = 250
	popupMinWidth = 100
	markerIcon    = "red"
)

// ListItem is the presentation of one entry in the list.
type ListItem struct {
	ID          string
	Title       string
	Location    string
	Variant     entry.Variant
	Glyph       glyph.Glyph
	Tag         string
	Description string
}

func NewListItem(e *entry.Entry) ListItem {
	return ListItem{
		ID:          e.ID,
		Title:       e.Title,
		Location:    e.Location,
		Variant:     e.Variant,
		Glyph:       e.Glyph(),
		Tag:         e.Tag,
		Description: e.Description(),
	}
}

// Sync renders entries to the list and the map and turns list clicks back into
// map navigation.
type Sync struct {
	Map     Map
	List    List
	Entries *collection.Collection
	Zoom    int
}

func (s *Sync) RenderListItem(e *entry.Entry) {
	if s.List == nil || e == nil {
		return
	}
	s.List.Add(NewListItem(e))
}

// RenderMarker places a marker for e with a popup carrying its description.
func (s *Sync) RenderMarker(e *entry.Entry) {
	if s.Map == nil || e == nil {
		return
	}
	m := s.Map.AddMarker(e.Coordinates, MarkerStyle{Icon: markerIcon})
	if m == nil {
		return
	}
	m.BindPopup(e.Description(), PopupStyle{
		MaxWidth:     popupMaxWidth,
		MinWidth:     popupMinWidth,
		AutoClose:    false,
		CloseOnClick: false,
		ClassName:    e.PopupClass(),
	})
}

// ResolveClick finds the entry behind a list click and pans the map to it.
// Clicks outside an item or on an id that is no longer known do nothing.
func (s *Sync) ResolveClick(target ListTarget) (*entry.Entry, bool) {
	if target == nil || s.Entries == nil {
		return nil, false
	}
	id, ok := target.EntryID()
	if !ok {
		return nil, false
	}
	e, ok := s.Entries.FindByID(id)
	if !ok {
		return nil, false
	}
	if s.Map != nil {
		s.Map.SetView(e.Coordinates, s.Zoom, Animation{Animate: true, PanDuration: time.Second})
	}
	return e, true
}
