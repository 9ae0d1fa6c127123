// Package app wires the entry model, creation controller, persistence and view
// sync to the map, list, form and geolocation collaborators.
package app

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/maplog/pkg/collection"
	"tableflip.dev/maplog/pkg/creation"
	"tableflip.dev/maplog/pkg/entry"
	"tableflip.dev/maplog/pkg/store"
	"tableflip.dev/maplog/pkg/view"
)

var (
	// ErrGeolocationUnavailable leaves the app without a map. The list still
	// works; creating entries does not.
	ErrGeolocationUnavailable = errors.New("app: geolocation unavailable")
	// ErrMapNotReady is returned for map operations attempted before the
	// position resolved.
	ErrMapNotReady = errors.New("app: map not ready")
)

// Messages shown to the user through the Alerter.
const (
	MsgNoPosition   = "Could not get your position"
	MsgBadInput     = "Inputs have to be finite numbers, and elevation has to be positive!"
	MsgNotSaved     = "Entries could not be saved; they are kept for this session only"
	MsgLoadFailed   = "Saved entries could not be loaded"
	MsgResetFailed  = "Saved entries could not be cleared"
	MsgRejectedDupe = "Entry was rejected because its id is already taken"
)

// Locator resolves the device position once.
type Locator interface {
	CurrentPosition(ctx context.Context) (entry.Coordinates, error)
}

// Alerter shows a message to the user.
type Alerter interface {
	Alert(msg string)
}

type Options struct {
	Map       view.Map
	List      view.List
	Form      creation.FormView
	Locator   Locator
	Alerter   Alerter
	Gateway   *store.Gateway
	Logger    *zap.SugaredLogger
	Factory   *entry.Factory
	Zoom      int
	TileLayer *view.TileLayer
}

// App is one running session. Events must be delivered from a single
// goroutine; nothing here is locked.
type App struct {
	opts Options
	log  *zap.SugaredLogger

	entries *collection.Collection
	ctrl    *creation.Controller
	sync    *view.Sync

	started  bool
	mapReady bool
}

func New(o Options) *App {
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
	if o.Gateway == nil {
		o.Gateway = store.NewGateway(store.NewMemory(), "", o.Logger)
	}
	if o.Factory == nil {
		o.Factory = &entry.Factory{}
	}
	if o.Zoom <= 0 {
		o.Zoom = store.DefaultZoom
	}
	if o.TileLayer == nil {
		layer := view.DefaultTileLayer
		o.TileLayer = &layer
	}
	a := &App{
		opts: o,
		log:  o.Logger.With("session", uuid.NewString()),
	}
	a.bind(collection.New())
	return a
}

func (a *App) bind(c *collection.Collection) {
	a.entries = c
	a.ctrl = creation.NewController(c, a.opts.Factory, a.opts.Form)
	a.sync = &view.Sync{List: a.opts.List, Entries: c, Zoom: a.opts.Zoom}
	if a.mapReady {
		a.sync.Map = a.opts.Map
	}
}

func (a *App) alert(msg string) {
	if a.opts.Alerter != nil {
		a.opts.Alerter.Alert(msg)
	}
}

// Start loads the stored entries, renders them to the list and asks for the
// position once. Storage and geolocation failures are reported and leave the
// app running; only a done context is returned as an error.
func (a *App) Start(ctx context.Context) error {
	if a.started {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	a.started = true

	loaded, err := a.opts.Gateway.Load(ctx)
	if err != nil {
		a.log.Warnw("loaded entries with errors", "entries", loaded.Len(), "error", err)
		a.alert(MsgLoadFailed)
	}
	a.bind(loaded)
	for _, e := range loaded.All() {
		a.sync.RenderListItem(e)
	}

	a.locate(ctx)
	return nil
}

func (a *App) locate(ctx context.Context) {
	pos, err := a.position(ctx)
	if err != nil {
		a.log.Warnw("running without a map", "error", err)
		a.alert(MsgNoPosition)
		return
	}

	m := a.opts.Map
	m.CreateView(pos, a.opts.Zoom)
	m.AddTileLayer(*a.opts.TileLayer)
	m.OnClick(a.MapClicked)

	a.mapReady = true
	a.sync.Map = m
	for _, e := range a.entries.All() {
		a.sync.RenderMarker(e)
	}
	a.log.Infow("map ready", "center", pos.String(), "zoom", a.opts.Zoom, "entries", a.entries.Len())
}

func (a *App) position(ctx context.Context) (entry.Coordinates, error) {
	if a.opts.Locator == nil || a.opts.Map == nil {
		return entry.Coordinates{}, ErrGeolocationUnavailable
	}
	pos, err := a.opts.Locator.CurrentPosition(ctx)
	if err != nil {
		return entry.Coordinates{}, errors.Join(ErrGeolocationUnavailable, err)
	}
	if !pos.Valid() {
		return entry.Coordinates{}, errors.Join(ErrGeolocationUnavailable, entry.ErrInvalidCoordinates)
	}
	return pos, nil
}

// MapReady reports whether the position resolved and the map is live.
func (a *App) MapReady() bool {
	return a.mapReady
}

func (a *App) State() creation.State {
	return a.ctrl.State()
}

// MapClicked opens the form at coords. It is ignored until the map is ready.
func (a *App) MapClicked(coords entry.Coordinates) {
	if !a.mapReady {
		a.log.Debugw("map click before map ready", "at", coords.String())
		return
	}
	a.ctrl.MapClicked(coords)
}

// Submit commits the form, persists the collection and renders the new entry.
// A failed save is reported but the entry is kept for the session.
func (a *App) Submit(ctx context.Context, f creation.Form) (*entry.Entry, error) {
	if !a.mapReady {
		return nil, ErrMapNotReady
	}

	e, err := a.ctrl.Submit(f)
	if err != nil {
		var verr *creation.ValidationError
		var dup *collection.DuplicateIDError
		switch {
		case errors.As(err, &verr):
			a.alert(MsgBadInput)
		case errors.As(err, &dup):
			a.log.Errorw("rejected duplicate entry", "id", dup.ID)
			a.alert(MsgRejectedDupe)
		}
		return nil, err
	}
	a.log.Infow("entry created", "id", e.ID, "variant", e.Variant, "at", e.Coordinates.String())

	if err := a.opts.Gateway.Save(ctx, a.entries); err != nil {
		a.alert(MsgNotSaved)
	}

	a.sync.RenderListItem(e)
	a.sync.RenderMarker(e)
	return e, nil
}

// Cancel closes the form without creating an entry.
func (a *App) Cancel() {
	a.ctrl.Cancel()
}

// ListClicked pans the map to the clicked entry. Unknown targets are ignored.
func (a *App) ListClicked(target view.ListTarget) (*entry.Entry, bool) {
	return a.sync.ResolveClick(target)
}

// Entries returns the session's entries in creation order.
func (a *App) Entries() []*entry.Entry {
	return a.entries.All()
}

// Reset clears the stored entries and returns the app to its unstarted state
// with an empty collection. Reloading the surfaces is left to the caller, who
// calls Start again.
func (a *App) Reset(ctx context.Context) error {
	if err := a.opts.Gateway.Clear(ctx); err != nil {
		a.log.Warnw("reset failed", "error", err)
		a.alert(MsgResetFailed)
		return err
	}
	a.started = false
	a.mapReady = false
	a.bind(collection.New())
	a.log.Infow("reset stored entries")
	return nil
}
