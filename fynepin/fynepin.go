// SPDX-License-Identifier: Unlicense OR MIT

/*
Package fynepin runs pin layouts inside fyne containers.

A Layout holds one Rule per pinned object. Each time fyne lays out the
container, the rules run in the order they were added, each in its own
pin session, so later rules can refer to the frames of earlier
objects:

	l := fynepin.New()
	l.Pin(title, func(p *pin.Layout, _ *fynepin.Pass) {
		p.TopCenter().Margin(8)
	})
	l.Pin(body, func(p *pin.Layout, pass *fynepin.Pass) {
		p.Below(pass.View(title)).Left(0).Right(0).Bottom(0)
	})
	c := container.New(l, title, body)

Objects without a rule keep the position and size they have.
*/
package fynepin

import (
	"fmt"

	"fyne.io/fyne/v2"

	"gioui.org/pin"
	"gioui.org/pin/f32"
	"gioui.org/pin/layout"
	"gioui.org/pin/unit"
)

// Rule issues the constraints of one object for a layout pass.
type Rule func(l *pin.Layout, p *Pass)

// Layout is a fyne.Layout placing objects with pin rules.
type Layout struct {
	// Metric snaps frames to the pixel grid. The zero value snaps to
	// whole fyne units.
	Metric unit.Metric

	opts  []pin.Option
	rules []rule
}

type rule struct {
	obj fyne.CanvasObject
	fn  Rule
}

// Pass is one run of the rules of a Layout over a container.
type Pass struct {
	parent *parentView
	views  map[fyne.CanvasObject]*objectView
}

// parentView stands in for the container. It only provides the size
// the pinned objects are laid out in.
type parentView struct {
	size fyne.Size
}

// objectView adapts a fyne.CanvasObject to pin.View.
type objectView struct {
	obj    fyne.CanvasObject
	parent *parentView
}

type host struct {
	metric unit.Metric
}

var (
	_ fyne.Layout = (*Layout)(nil)
	_ pin.View    = (*objectView)(nil)
	_ pin.View    = (*parentView)(nil)
)

// New returns an empty Layout. The options apply to every session it
// runs.
func New(opts ...pin.Option) *Layout {
	return &Layout{opts: opts}
}

// Pin sets the rule for o, replacing any previous rule for it. It
// returns l.
func (l *Layout) Pin(o fyne.CanvasObject, r Rule) *Layout {
	for i := range l.rules {
		if l.rules[i].obj == o {
			l.rules[i].fn = r
			return l
		}
	}
	l.rules = append(l.rules, rule{obj: o, fn: r})
	return l
}

// Unpin removes the rule for o.
func (l *Layout) Unpin(o fyne.CanvasObject) {
	for i := range l.rules {
		if l.rules[i].obj == o {
			l.rules = append(l.rules[:i], l.rules[i+1:]...)
			return
		}
	}
}

// Layout implements fyne.Layout. Hidden objects and objects that are not
// in objects are skipped.
func (l *Layout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	p := newPass(objects, size)
	h := host{metric: l.Metric}
	for _, r := range l.rules {
		v, ok := p.views[r.obj]
		if !ok || !r.obj.Visible() {
			continue
		}
		pin.Do(h, v, func(pl *pin.Layout) {
			r.fn(pl, p)
		}, l.opts...)
	}
}

// MinSize implements fyne.Layout. Rules are not evaluated; the result
// is the largest minimum size of the visible objects.
func (l *Layout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var sz fyne.Size
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		m := o.MinSize()
		sz = fyne.NewSize(max(sz.Width, m.Width), max(sz.Height, m.Height))
	}
	return sz
}

func newPass(objects []fyne.CanvasObject, size fyne.Size) *Pass {
	p := &Pass{
		parent: &parentView{size: size},
		views:  make(map[fyne.CanvasObject]*objectView, len(objects)),
	}
	for _, o := range objects {
		p.views[o] = &objectView{obj: o, parent: p.parent}
	}
	return p
}

// View returns the pin view of o for use as a reference. Objects outside
// the container are returned detached, and constraints relative to them
// are dropped with a diagnostic.
func (p *Pass) View(o fyne.CanvasObject) pin.View {
	if v, ok := p.views[o]; ok {
		return v
	}
	return &objectView{obj: o}
}

// Size returns the size of the container.
func (p *Pass) Size() fyne.Size {
	return p.parent.size
}

func (v *objectView) Parent() pin.View {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

func (v *objectView) Frame() f32.Rectangle {
	pos, sz := v.obj.Position(), v.obj.Size()
	return f32.Rect(pos.X, pos.Y, sz.Width, sz.Height)
}

func (v *objectView) SetFrame(r f32.Rectangle) {
	v.obj.Move(fyne.NewPos(r.Min.X, r.Min.Y))
	v.obj.Resize(fyne.NewSize(r.Dx(), r.Dy()))
}

// SizeThatFits returns the minimum size of the object, clamped to cs.
func (v *objectView) SizeThatFits(cs layout.Constraints) f32.Point {
	sz := v.obj.MinSize()
	return cs.Constrain(f32.Pt(sz.Width, sz.Height))
}

func (v *objectView) String() string {
	if s, ok := v.obj.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v.obj)
}

func (p *parentView) Parent() pin.View { return nil }

func (p *parentView) Frame() f32.Rectangle {
	return f32.Rect(0, 0, p.size.Width, p.size.Height)
}

func (p *parentView) SetFrame(f32.Rectangle) {}

func (p *parentView) SizeThatFits(layout.Constraints) f32.Point {
	return f32.Pt(p.size.Width, p.size.Height)
}

// Convert implements pin.Host. All views of a pass share the container
// space.
func (h host) Convert(pt f32.Point, from, to pin.View) f32.Point {
	return pt
}

func (h host) Snap(r f32.Rectangle) f32.Rectangle {
	return h.metric.Snap(r)
}
