package entry

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"
)

// IDSource hands out entry ids derived from the creation time. The clock part
// alone repeats within a millisecond, so every id also carries a sequence
// number that never repeats for the lifetime of the source.
type IDSource struct {
	seq atomic.Uint64
}

// NewIDSource returns a source whose first sequence number is start+1.
// Processes sharing one store start from different offsets so their ids do not
// meet within the same millisecond.
func NewIDSource(start uint64) *IDSource {
	s := &IDSource{}
	s.seq.Store(start)
	return s
}

// Next returns the last ten digits of t in milliseconds, a dash, and the next
// sequence number in base 36.
func (s *IDSource) Next(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 10 {
		ms = ms[len(ms)-10:]
	}
	n := s.seq.Add(1)
	return fmt.Sprintf("%s-%s", ms, strconv.FormatUint(n, 36))
}

// Factory builds new entries. The zero value uses time.Now and a private
// IDSource.
type Factory struct {
	Now func() time.Time
	IDs *IDSource
}

func (f *Factory) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

func (f *Factory) ids() *IDSource {
	if f.IDs == nil {
		f.IDs = &IDSource{}
	}
	return f.IDs
}

// New creates an entry of variant v at the current time.
func (f *Factory) New(v Variant, coords Coordinates, title, location, tag string) *Entry {
	created := f.now()
	return newEntry(f.ids().Next(created), created, coords, title, location, v, tag)
}

func (f *Factory) NewFinished(coords Coordinates, title, location, tag string) *Entry {
	return f.New(Finished, coords, title, location, tag)
}

func (f *Factory) NewPending(coords Coordinates, title, location, tag string) *Entry {
	return f.New(Pending, coords, title, location, tag)
}

var defaultFactory = &Factory{IDs: &IDSource{}}

// NewFinished creates a Finished entry with the package default factory.
func NewFinished(coords Coordinates, title, location, tag string) *Entry {
	return defaultFactory.NewFinished(coords, title, location, tag)
}

// NewPending creates a Pending entry with the package default factory.
func NewPending(coords Coordinates, title, location, tag string) *Entry {
	return defaultFactory.NewPending(coords, title, location, tag)
}
