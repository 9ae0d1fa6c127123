// Package collection holds the ordered set of entries created in a session.
package collection

import (
	"fmt"

	"tableflip.dev/maplog/pkg/entry"
)

// DuplicateIDError rejects an entry whose id is already present.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("collection: duplicate entry id %q", e.ID)
}

// Collection keeps entries in creation order. It is not safe for concurrent
// use; all mutation happens on the event path of a single App.
type Collection struct {
	entries []*entry.Entry
	byID    map[string]*entry.Entry
}

func New() *Collection {
	return &Collection{byID: make(map[string]*entry.Entry)}
}

// Add appends e. The collection is left untouched when the id is taken.
func (c *Collection) Add(e *entry.Entry) error {
	if e == nil {
		return fmt.Errorf("collection: nil entry")
	}
	if c.byID == nil {
		c.byID = make(map[string]*entry.Entry)
	}
	if _, ok := c.byID[e.ID]; ok {
		return &DuplicateIDError{ID: e.ID}
	}
	c.entries = append(c.entries, e)
	c.byID[e.ID] = e
	return nil
}

// FindByID reports false for unknown ids; a stale id is a normal UI event.
func (c *Collection) FindByID(id string) (*entry.Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// All returns the entries in creation order. The slice is a copy.
func (c *Collection) All() []*entry.Entry {
	out := make([]*entry.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Collection) Len() int {
	return len(c.entries)
}

// Snapshot projects every entry onto its persisted record, in order.
func (c *Collection) Snapshot() []entry.Record {
	records := make([]entry.Record, 0, len(c.entries))
	for _, e := range c.entries {
		records = append(records, e.Record())
	}
	return records
}
