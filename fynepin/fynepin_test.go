// SPDX-License-Identifier: Unlicense OR MIT

package fynepin

import (
	"testing"

	"fyne.io/fyne/v2"

	"gioui.org/pin"
	"gioui.org/pin/layout"
)

// object is a minimal fyne.CanvasObject.
type object struct {
	name   string
	min    fyne.Size
	pos    fyne.Position
	size   fyne.Size
	hidden bool
}

func (o *object) MinSize() fyne.Size      { return o.min }
func (o *object) Move(p fyne.Position)    { o.pos = p }
func (o *object) Position() fyne.Position { return o.pos }
func (o *object) Resize(s fyne.Size)      { o.size = s }
func (o *object) Size() fyne.Size         { return o.size }
func (o *object) Hide()                   { o.hidden = true }
func (o *object) Visible() bool           { return !o.hidden }
func (o *object) Show()                   { o.hidden = false }
func (o *object) Refresh()                {}
func (o *object) String() string          { return o.name }
func (o *object) frame() (x, y, w, h float32) {
	return o.pos.X, o.pos.Y, o.size.Width, o.size.Height
}

func TestLayout(t *testing.T) {
	title := &object{name: "title", min: fyne.NewSize(80, 20)}
	body := &object{name: "body"}
	rec := new(pin.Recorder)
	l := New(pin.WithSink(rec))
	l.Pin(title, func(p *pin.Layout, _ *Pass) {
		p.TopCenter().Width(200).Height(40).SizeToFit()
	})
	l.Pin(body, func(p *pin.Layout, pass *Pass) {
		p.BelowAligned(layout.Middle, pass.View(title)).Width(100).Bottom(0)
	})
	l.Layout([]fyne.CanvasObject{title, body}, fyne.NewSize(300, 400))

	if x, y, w, h := title.frame(); x != 110 || y != 0 || w != 80 || h != 20 {
		t.Errorf("title frame %v %v %v %v, want 110 0 80 20", x, y, w, h)
	}
	if x, y, w, h := body.frame(); x != 100 || y != 20 || w != 100 || h != 380 {
		t.Errorf("body frame %v %v %v %v, want 100 20 100 380", x, y, w, h)
	}
	if len(rec.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics %v", rec.Diagnostics)
	}
}

func TestLayoutSkips(t *testing.T) {
	hidden := &object{name: "hidden", hidden: true}
	outside := &object{name: "outside"}
	free := &object{name: "free", pos: fyne.NewPos(3, 4), size: fyne.NewSize(5, 6)}
	ran := 0
	l := New(pin.WithSink(pin.Discard))
	l.Pin(hidden, func(p *pin.Layout, _ *Pass) { ran++ })
	l.Pin(outside, func(p *pin.Layout, _ *Pass) { ran++ })
	l.Layout([]fyne.CanvasObject{hidden, free}, fyne.NewSize(100, 100))
	if ran != 0 {
		t.Errorf("%d rules ran for skipped objects", ran)
	}
	if x, y, w, h := free.frame(); x != 3 || y != 4 || w != 5 || h != 6 {
		t.Errorf("unpinned object moved to %v %v %v %v", x, y, w, h)
	}
}

func TestPinReplacesRule(t *testing.T) {
	o := &object{name: "o", size: fyne.NewSize(10, 10)}
	l := New(pin.WithSink(pin.Discard))
	l.Pin(o, func(p *pin.Layout, _ *Pass) { p.Left(1) })
	l.Pin(o, func(p *pin.Layout, _ *Pass) { p.Left(2) })
	l.Layout([]fyne.CanvasObject{o}, fyne.NewSize(100, 100))
	if o.pos.X != 2 {
		t.Errorf("x = %v, want 2", o.pos.X)
	}
	l.Unpin(o)
	o.Move(fyne.NewPos(0, 0))
	l.Layout([]fyne.CanvasObject{o}, fyne.NewSize(100, 100))
	if o.pos.X != 0 {
		t.Errorf("unpinned object moved to x = %v", o.pos.X)
	}
}

func TestReferenceOutsideContainer(t *testing.T) {
	o := &object{name: "o", size: fyne.NewSize(10, 10)}
	stranger := &object{name: "stranger"}
	rec := new(pin.Recorder)
	l := New(pin.WithSink(rec))
	l.Pin(o, func(p *pin.Layout, pass *Pass) {
		p.TopTo(pin.VEdgeOf(pass.View(stranger), pin.BottomEdge))
	})
	l.Layout([]fyne.CanvasObject{o}, fyne.NewSize(100, 100))
	d, ok := rec.Last()
	if !ok || d.Kind != pin.DetachedElement {
		t.Fatalf("got %v, want a DetachedElement diagnostic", rec.Diagnostics)
	}
	if want := `top(to: bottom, of: "stranger")`; d.Context != want {
		t.Errorf("context = %q, want %q", d.Context, want)
	}
}

func TestMinSize(t *testing.T) {
	a := &object{min: fyne.NewSize(10, 40)}
	b := &object{min: fyne.NewSize(30, 20)}
	c := &object{min: fyne.NewSize(500, 500), hidden: true}
	got := New().MinSize([]fyne.CanvasObject{a, b, c})
	if got != fyne.NewSize(30, 40) {
		t.Errorf("MinSize = %v, want 30x40", got)
	}
}
