package entry

import (
	"fmt"
	"time"

	"tableflip.dev/maplog/pkg/glyph"
)

// Entry is a single geo-tagged log record. Entries are built by a Factory or
// reconstructed by FromRecord and are not mutated afterwards.
type Entry struct {
	ID          string
	CreatedAt   Timestamp
	Coordinates Coordinates
	Title       string
	Location    string
	Variant     Variant
	Tag         string
	// VisitCount is carried for storage compatibility and is never incremented.
	VisitCount int

	description string
}

// Description returns the "<Month> <Day>" label computed when the entry was
// created.
func (e *Entry) Description() string {
	return e.description
}

func (e *Entry) Glyph() glyph.Glyph {
	return e.Variant.Glyph()
}

// PopupClass is the visual class of the entry's map popup.
func (e *Entry) PopupClass() string {
	return fmt.Sprintf("%s-popup", e.Variant)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s  %s (%s) #%s", e.Glyph(), e.description, e.Title, e.Location, e.Tag)
}

func newEntry(id string, created time.Time, coords Coordinates, title, location string, v Variant, tag string) *Entry {
	return &Entry{
		ID:          id,
		CreatedAt:   Timestamp{Time: created},
		Coordinates: coords,
		Title:       title,
		Location:    location,
		Variant:     v,
		Tag:         tag,
		description: Describe(created),
	}
}
