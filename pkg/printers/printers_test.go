package printers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/maplog/pkg/entry"
	"tableflip.dev/maplog/pkg/view"
)

func init() {
	color.NoColor = true
}

func item(id, title string, v entry.Variant) view.ListItem {
	return view.ListItem{ID: id, Title: title, Location: "Park", Variant: v, Glyph: v.Glyph(), Tag: "178", Description: "March 10"}
}

func TestListPrint(t *testing.T) {
	out := &bytes.Buffer{}
	l := &List{PrettyPrint: PrettyPrint{Out: out, ShowID: true}}
	l.Add(item("0059400123-1", "Morning", entry.Finished))
	l.Add(item("0059400123-2", "Evening", entry.Pending))

	l.Print("Entries")
	got := out.String()
	for _, want := range []string{"Entries - 2 entries", "0059400123-1", "Morning", "Evening", "✅", "⛔", "March 10"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Index(got, "Morning") > strings.Index(got, "Evening") {
		t.Fatalf("expected items in insertion order:\n%s", got)
	}
	if len(l.items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(l.items))
	}
}

func TestListPrintEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	l := &List{PrettyPrint: PrettyPrint{Out: out}}
	l.Print("Entries")
	if !strings.Contains(out.String(), "none") || !strings.Contains(out.String(), "0 entries") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestMap(t *testing.T) {
	out := &bytes.Buffer{}
	m := &Map{PrettyPrint: PrettyPrint{Out: out}}

	if m.Click(entry.NewCoordinates(1, 2)) {
		t.Fatalf("click without handler must not be delivered")
	}

	var clicked []entry.Coordinates
	m.CreateView(entry.NewCoordinates(38.7, -9.1), 13)
	m.AddTileLayer(view.DefaultTileLayer)
	m.OnClick(func(c entry.Coordinates) { clicked = append(clicked, c) })
	if !m.Click(entry.NewCoordinates(39, -12)) || len(clicked) != 1 {
		t.Fatalf("expected click delivered")
	}

	mk := m.AddMarker(entry.NewCoordinates(39, -12), view.MarkerStyle{Icon: "red"})
	mk.BindPopup("March 10", view.PopupStyle{MaxWidth: 250, MinWidth: 100, ClassName: "Finished-popup"})
	if len(m.Markers) != 1 || m.Markers[0].Content != "March 10" || m.Markers[0].Style.ClassName != "Finished-popup" {
		t.Fatalf("unexpected markers %+v", m.Markers)
	}

	m.SetView(entry.NewCoordinates(39, -12), 13, view.Animation{Animate: true, PanDuration: time.Second})
	if m.Center != entry.NewCoordinates(39, -12) {
		t.Fatalf("expected centre to move, got %v", m.Center)
	}
	if !strings.Contains(out.String(), "panned over 1s") {
		t.Fatalf("expected pan in output:\n%s", out.String())
	}
}

func TestFormAndAlerter(t *testing.T) {
	out := &bytes.Buffer{}
	f := &Form{PrettyPrint: PrettyPrint{Out: out}}
	f.Reveal()
	if !f.Open {
		t.Fatalf("expected open form")
	}
	f.Hide()
	if f.Open {
		t.Fatalf("expected closed form")
	}

	a := &Alerter{PrettyPrint: PrettyPrint{Out: out}}
	a.Alert("Could not get your position")
	if len(a.Messages) != 1 || !strings.Contains(out.String(), "Could not get your position") {
		t.Fatalf("expected alert printed:\n%s", out.String())
	}
}

func TestStaticLocator(t *testing.T) {
	if _, err := (StaticLocator{}).CurrentPosition(context.Background()); !errors.Is(err, ErrNoHome) {
		t.Fatalf("expected ErrNoHome, got %v", err)
	}

	home := [2]float64{38.7, -9.1}
	got, err := StaticLocator{Home: &home}.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != entry.NewCoordinates(38.7, -9.1) {
		t.Fatalf("got %v", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (StaticLocator{Home: &home}).CurrentPosition(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
