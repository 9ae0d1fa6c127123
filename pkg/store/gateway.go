package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/maplog/pkg/collection"
	"tableflip.dev/maplog/pkg/entry"
)

var (
	// ErrStorageUnavailable wraps any backend failure. The in-memory
	// collection stays valid when it is returned.
	ErrStorageUnavailable = errors.New("store: storage unavailable")
	// ErrCorruptData means the stored value could not be parsed at all.
	ErrCorruptData = errors.New("store: corrupt persisted data")
	// ErrRecordDropped marks a single stored record that could not be
	// reconstructed and was skipped.
	ErrRecordDropped = errors.New("store: record dropped")
)

// Gateway saves and loads a whole collection under one key.
type Gateway struct {
	Backend Backend
	Key     string
	Logger  *zap.SugaredLogger
}

func NewGateway(b Backend, key string, logger *zap.SugaredLogger) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	return &Gateway{Backend: b, Key: key, Logger: logger}
}

func (g *Gateway) logger() *zap.SugaredLogger {
	if g.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return g.Logger
}

func (g *Gateway) key() string {
	if g.Key == "" {
		return DefaultKey
	}
	return g.Key
}

// Save overwrites the stored value with the collection snapshot.
func (g *Gateway) Save(ctx context.Context, c *collection.Collection) error {
	if g.Backend == nil {
		return fmt.Errorf("%w: no backend configured", ErrStorageUnavailable)
	}
	records := []entry.Record{}
	if c != nil {
		records = c.Snapshot()
	}
	data, err := json.Marshal(records)
	if err != nil {
		g.logger().Warnw("snapshot could not be encoded", "key", g.key(), "entries", len(records), "error", err)
		return fmt.Errorf("%w: encode snapshot: %w", ErrStorageUnavailable, err)
	}
	if err := g.Backend.Set(ctx, g.key(), data); err != nil {
		g.logger().Warnw("save failed, continuing without persistence", "key", g.key(), "entries", len(records), "error", err)
		return fmt.Errorf("%w: save %q: %w", ErrStorageUnavailable, g.key(), err)
	}
	g.logger().Debugw("saved entries", "key", g.key(), "entries", len(records))
	return nil
}

// Load reconstructs the stored collection. It always returns a usable
// collection: absent data yields an empty one with a nil error, unreadable or
// unparsable data yields an empty one with an error, and records that cannot
// be rebuilt are skipped and reported through a joined error while the rest
// load in stored order.
func (g *Gateway) Load(ctx context.Context) (*collection.Collection, error) {
	c := collection.New()
	if g.Backend == nil {
		return c, fmt.Errorf("%w: no backend configured", ErrStorageUnavailable)
	}

	raw, ok, err := g.Backend.Get(ctx, g.key())
	if err != nil {
		g.logger().Warnw("load failed, starting empty", "key", g.key(), "error", err)
		return c, fmt.Errorf("%w: load %q: %w", ErrStorageUnavailable, g.key(), err)
	}
	if !ok {
		return c, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		g.logger().Warnw("stored data is corrupt, starting empty", "key", g.key(), "error", err)
		return c, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	var dropped []error
	for i, item := range items {
		e, err := decodeRecord(item)
		if err == nil {
			err = c.Add(e)
		}
		if err != nil {
			g.logger().Warnw("dropping stored record", "key", g.key(), "index", i, "error", err)
			dropped = append(dropped, fmt.Errorf("%w: index %d: %w", ErrRecordDropped, i, err))
		}
	}
	g.logger().Debugw("loaded entries", "key", g.key(), "entries", c.Len(), "dropped", len(dropped))
	return c, errors.Join(dropped...)
}

// Clear removes the stored value.
func (g *Gateway) Clear(ctx context.Context) error {
	if g.Backend == nil {
		return fmt.Errorf("%w: no backend configured", ErrStorageUnavailable)
	}
	if err := g.Backend.Remove(ctx, g.key()); err != nil {
		return fmt.Errorf("%w: clear %q: %w", ErrStorageUnavailable, g.key(), err)
	}
	return nil
}

func decodeRecord(item json.RawMessage) (*entry.Entry, error) {
	var r entry.Record
	if err := json.Unmarshal(item, &r); err != nil {
		return nil, err
	}
	return entry.FromRecord(r)
}
