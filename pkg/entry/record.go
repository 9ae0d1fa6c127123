package entry

import (
	"errors"
	"fmt"
)

// Record is the persisted shape of an Entry.
type Record struct {
	ID          string      `json:"id"`
	CreatedAt   Timestamp   `json:"createdAt"`
	Coordinates Coordinates `json:"coordinates"`
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	Variant     Variant     `json:"variant"`
	Tag         string      `json:"tag"`
	Description string      `json:"description"`
	VisitCount  int         `json:"visitCount"`
}

var ErrMissingID = errors.New("entry: record has no id")

func (e *Entry) Record() Record {
	return Record{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		Coordinates: e.Coordinates,
		Title:       e.Title,
		Location:    e.Location,
		Variant:     e.Variant,
		Tag:         e.Tag,
		Description: e.description,
		VisitCount:  e.VisitCount,
	}
}

// FromRecord rebuilds a typed entry from its stored record, dispatching on the
// variant. The stored id, createdAt and description are kept as they are; a
// record saved without a description gets one computed from createdAt.
func FromRecord(r Record) (*Entry, error) {
	if r.ID == "" {
		return nil, ErrMissingID
	}
	if !r.Coordinates.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCoordinates, r.Coordinates)
	}

	var e *Entry
	switch r.Variant {
	case Finished:
		e = newEntry(r.ID, r.CreatedAt.Time, r.Coordinates, r.Title, r.Location, Finished, r.Tag)
	case Pending:
		e = newEntry(r.ID, r.CreatedAt.Time, r.Coordinates, r.Title, r.Location, Pending, r.Tag)
	default:
		return nil, fmt.Errorf("%w %q in record %s", ErrUnknownVariant, r.Variant, r.ID)
	}

	e.CreatedAt = r.CreatedAt
	e.VisitCount = r.VisitCount
	if r.Description != "" {
		e.description = r.Description
	}
	return e, nil
}
