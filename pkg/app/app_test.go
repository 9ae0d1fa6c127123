package app

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"tableflip.dev/maplog/pkg/creation"
	"tableflip.dev/maplog/pkg/entry"
	"tableflip.dev/maplog/pkg/store"
	"tableflip.dev/maplog/pkg/view"
)

type fakeMarker struct {
	content string
	class   string
}

func (m *fakeMarker) BindPopup(content string, style view.PopupStyle) {
	m.content = content
	m.class = style.ClassName
}

type fakeMap struct {
	center  entry.Coordinates
	zoom    int
	layer   view.TileLayer
	onClick func(entry.Coordinates)
	markers []*fakeMarker
	views   []entry.Coordinates
}

func (m *fakeMap) CreateView(c entry.Coordinates, zoom int) { m.center, m.zoom = c, zoom }
func (m *fakeMap) AddTileLayer(l view.TileLayer)             { m.layer = l }
func (m *fakeMap) OnClick(h func(entry.Coordinates))         { m.onClick = h }
func (m *fakeMap) SetView(c entry.Coordinates, _ int, _ view.Animation) {
	m.views = append(m.views, c)
}
func (m *fakeMap) AddMarker(entry.Coordinates, view.MarkerStyle) view.Marker {
	mk := &fakeMarker{}
	m.markers = append(m.markers, mk)
	return mk
}

func (m *fakeMap) click(c entry.Coordinates) {
	if m.onClick != nil {
		m.onClick(c)
	}
}

type fakeList struct{ items []view.ListItem }

func (l *fakeList) Add(item view.ListItem) { l.items = append(l.items, item) }

type fakeForm struct{ open bool }

func (f *fakeForm) Reveal() { f.open = true }
func (f *fakeForm) Hide()   { f.open = false }

type fakeLocator struct {
	pos   entry.Coordinates
	err   error
	calls int
}

func (l *fakeLocator) CurrentPosition(context.Context) (entry.Coordinates, error) {
	l.calls++
	return l.pos, l.err
}

type fakeAlerter struct{ messages []string }

func (a *fakeAlerter) Alert(msg string) { a.messages = append(a.messages, msg) }

func (a *fakeAlerter) saw(msg string) bool {
	for _, m := range a.messages {
		if m == msg {
			return true
		}
	}
	return false
}

type brokenBackend struct{ store.Backend }

func (brokenBackend) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

type harness struct {
	app     *App
	m       *fakeMap
	list    *fakeList
	form    *fakeForm
	locator *fakeLocator
	alerts  *fakeAlerter
	backend store.Backend
}

func newHarness(t *testing.T, backend store.Backend) *harness {
	t.Helper()
	if backend == nil {
		backend = store.NewMemory()
	}
	h := &harness{
		m:       &fakeMap{},
		list:    &fakeList{},
		form:    &fakeForm{},
		locator: &fakeLocator{pos: entry.NewCoordinates(38.7, -9.1)},
		alerts:  &fakeAlerter{},
		backend: backend,
	}
	h.app = New(Options{
		Map:     h.m,
		List:    h.list,
		Form:    h.form,
		Locator: h.locator,
		Alerter: h.alerts,
		Gateway: store.NewGateway(backend, "", nil),
		Factory: &entry.Factory{Now: func() time.Time { return time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC) }},
	})
	return h
}

func morning() creation.Form {
	return creation.Form{Variant: "Finished", Title: "Morning", Location: "Park", Tag: "178"}
}

func TestStartBuildsMap(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.app.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !h.app.MapReady() {
		t.Fatalf("expected map ready")
	}
	if h.m.center != h.locator.pos || h.m.zoom != 13 {
		t.Fatalf("unexpected view %v zoom %d", h.m.center, h.m.zoom)
	}
	if h.m.layer.MaxZoom != 20 || len(h.m.layer.Subdomains) != 4 {
		t.Fatalf("unexpected tile layer %+v", h.m.layer)
	}
	if h.m.onClick == nil {
		t.Fatalf("expected click handler")
	}

	if err := h.app.Start(context.Background()); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if h.locator.calls != 1 {
		t.Fatalf("expected a single position request, got %d", h.locator.calls)
	}
}

func TestCreateFlow(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	_ = h.app.Start(ctx)

	h.m.click(entry.NewCoordinates(39.0, -12.0))
	if !h.form.open || h.app.State() != creation.AwaitingInput {
		t.Fatalf("expected open form after click")
	}

	e, err := h.app.Submit(ctx, morning())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if e.Description() != "March 10" || e.Variant != entry.Finished || e.Coordinates != entry.NewCoordinates(39.0, -12.0) {
		t.Fatalf("unexpected entry %+v", e)
	}
	if h.form.open || h.app.State() != creation.Idle {
		t.Fatalf("expected closed form after commit")
	}
	if len(h.list.items) != 1 || h.list.items[0].ID != e.ID {
		t.Fatalf("expected list item for new entry, got %+v", h.list.items)
	}
	if len(h.m.markers) != 1 || h.m.markers[0].content != "March 10" || h.m.markers[0].class != "Finished-popup" {
		t.Fatalf("unexpected markers %+v", h.m.markers)
	}

	// A fresh session on the same storage sees the entry again.
	again := newHarness(t, h.backend)
	_ = again.app.Start(ctx)
	got := again.app.Entries()
	if len(got) != 1 || got[0].ID != e.ID || got[0].Variant != entry.Finished || got[0].Description() != "March 10" {
		t.Fatalf("entry not restored: %+v", got)
	}
	if len(again.list.items) != 1 || len(again.m.markers) != 1 {
		t.Fatalf("expected restored entry rendered to list and map")
	}
}

func TestInvalidSubmitKeepsFormOpen(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	_ = h.app.Start(ctx)
	h.m.click(entry.NewCoordinates(1, 2))

	f := morning()
	f.Elevation = "-20"
	_, err := h.app.Submit(ctx, f)
	var verr *creation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(h.app.Entries()) != 0 || h.app.State() != creation.AwaitingInput || !h.form.open {
		t.Fatalf("invalid submit must not change entries or close the form")
	}
	if !h.alerts.saw(MsgBadInput) {
		t.Fatalf("expected user-visible message, got %v", h.alerts.messages)
	}
	if _, ok, _ := h.backend.Get(ctx, store.DefaultKey); ok {
		t.Fatalf("nothing should be saved")
	}
}

func TestGeolocationFailureDegrades(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemory()
	seed := newHarness(t, backend)
	_ = seed.app.Start(ctx)
	seed.m.click(entry.NewCoordinates(1, 2))
	if _, err := seed.app.Submit(ctx, morning()); err != nil {
		t.Fatalf("seed submit: %v", err)
	}

	h := newHarness(t, backend)
	h.locator.err = errors.New("denied")
	if err := h.app.Start(ctx); err != nil {
		t.Fatalf("start must not fail: %v", err)
	}
	if h.app.MapReady() {
		t.Fatalf("expected degraded mode")
	}
	if !h.alerts.saw(MsgNoPosition) {
		t.Fatalf("expected position alert, got %v", h.alerts.messages)
	}
	if len(h.list.items) != 1 || len(h.m.markers) != 0 {
		t.Fatalf("expected list only, got %d items %d markers", len(h.list.items), len(h.m.markers))
	}

	h.app.MapClicked(entry.NewCoordinates(3, 4))
	if h.app.State() != creation.Idle {
		t.Fatalf("clicks must be ignored without a map")
	}
	if _, err := h.app.Submit(ctx, morning()); !errors.Is(err, ErrMapNotReady) {
		t.Fatalf("expected ErrMapNotReady, got %v", err)
	}
}

func TestSaveFailureKeepsEntry(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, brokenBackend{Backend: store.NewMemory()})
	_ = h.app.Start(ctx)
	h.m.click(entry.NewCoordinates(1, 2))

	e, err := h.app.Submit(ctx, morning())
	if err != nil {
		t.Fatalf("save failure must not fail the submit: %v", err)
	}
	if len(h.app.Entries()) != 1 || h.app.Entries()[0] != e {
		t.Fatalf("entry must stay in memory")
	}
	if !h.alerts.saw(MsgNotSaved) {
		t.Fatalf("expected save alert, got %v", h.alerts.messages)
	}
	if len(h.list.items) != 1 {
		t.Fatalf("entry must still be rendered")
	}
}

func TestCorruptStorageStartsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemory()
	_ = backend.Set(ctx, store.DefaultKey, []byte("{broken"))

	h := newHarness(t, backend)
	if err := h.app.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(h.app.Entries()) != 0 || !h.app.MapReady() {
		t.Fatalf("expected empty, working app")
	}
	if !h.alerts.saw(MsgLoadFailed) {
		t.Fatalf("expected load alert, got %v", h.alerts.messages)
	}
}

func TestListClicked(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	_ = h.app.Start(ctx)
	h.m.click(entry.NewCoordinates(39, -12))
	e, _ := h.app.Submit(ctx, morning())

	if _, ok := h.app.ListClicked(view.ItemID("stale")); ok {
		t.Fatalf("stale id must not resolve")
	}
	if len(h.m.views) != 0 {
		t.Fatalf("stale click must not navigate")
	}

	got, ok := h.app.ListClicked(view.ItemID(e.ID))
	if !ok || got != e {
		t.Fatalf("expected to resolve %s", e.ID)
	}
	if len(h.m.views) != 1 || h.m.views[0] != e.Coordinates {
		t.Fatalf("expected navigation to %v, got %v", e.Coordinates, h.m.views)
	}
}

func TestCancel(t *testing.T) {
	h := newHarness(t, nil)
	_ = h.app.Start(context.Background())
	h.m.click(entry.NewCoordinates(1, 1))
	h.app.Cancel()
	if h.form.open || h.app.State() != creation.Idle || len(h.app.Entries()) != 0 {
		t.Fatalf("cancel must close the form without an entry")
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	_ = h.app.Start(ctx)
	h.m.click(entry.NewCoordinates(1, 1))
	if _, err := h.app.Submit(ctx, morning()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := h.app.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(h.app.Entries()) != 0 || h.app.MapReady() {
		t.Fatalf("expected empty, unstarted app after reset")
	}
	if _, ok, _ := h.backend.Get(ctx, store.DefaultKey); ok {
		t.Fatalf("expected stored key removed")
	}

	if err := h.app.Start(ctx); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !h.app.MapReady() || h.locator.calls != 2 {
		t.Fatalf("expected a fresh start after reset")
	}
}

func TestStartWithoutLocator(t *testing.T) {
	alerts := &fakeAlerter{}
	a := New(Options{Alerter: alerts})
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if a.MapReady() || !alerts.saw(MsgNoPosition) {
		t.Fatalf("expected degraded mode without a locator")
	}
}

func TestStartCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(Options{}).Start(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNonFiniteClickIsNotStored(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, nil)
	_ = h.app.Start(ctx)

	h.m.click(entry.NewCoordinates(math.NaN(), 1))
	e, err := h.app.Submit(ctx, morning())
	var verr *creation.ValidationError
	if !errors.As(err, &verr) || e != nil {
		t.Fatalf("expected ValidationError, got %v %v", e, err)
	}
	if len(h.app.Entries()) != 0 || !h.alerts.saw(MsgBadInput) {
		t.Fatalf("expected no entry and a user-visible message")
	}

	h.m.click(entry.NewCoordinates(39, -12))
	if _, err := h.app.Submit(ctx, morning()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if h.alerts.saw(MsgNotSaved) {
		t.Fatalf("valid entry must be saved, got %v", h.alerts.messages)
	}

	again := newHarness(t, h.backend)
	_ = again.app.Start(ctx)
	if got := again.app.Entries(); len(got) != 1 || got[0].Coordinates != entry.NewCoordinates(39, -12) {
		t.Fatalf("expected the valid entry stored, got %+v", got)
	}
}
