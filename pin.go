// SPDX-License-Identifier: Unlicense OR MIT

package pin

import (
	"gioui.org/pin/f32"
)

// Layout accumulates the constraints of one element for one layout
// pass. Create it with New, chain constraint methods and finish with
// Apply, or use Do.
//
// A Layout is not safe for concurrent use.
type Layout struct {
	view View
	host Host
	sink Sink

	// Positions are offsets from the parent's top left corner.
	top, left, bottom, right opt
	hCenter, vCenter         opt
	width, height            opt

	marginTop, marginLeft, marginBottom, marginRight opt

	pinEdges  bool
	sizeToFit bool

	applied bool
	frame   f32.Rectangle
}

// Option configures a Layout.
type Option func(l *Layout)

// describer lazily formats the call a constraint originates from.
type describer func() string

// opt is an optional coordinate.
type opt struct {
	v  float32
	ok bool
}

// WithSink directs the diagnostics of a Layout to s.
func WithSink(s Sink) Option {
	return func(l *Layout) {
		l.sink = s
	}
}

// New starts a layout pass for v.
func New(h Host, v View, opts ...Option) *Layout {
	l := &Layout{view: v, host: h}
	for _, o := range opts {
		o(l)
	}
	if l.sink == nil {
		l.sink = defaultSink()
	}
	return l
}

// Do runs fn on a new Layout for v and applies it when fn returns, even
// if fn panics.
func Do(h Host, v View, fn func(l *Layout), opts ...Option) f32.Rectangle {
	l := New(h, v, opts...)
	defer l.Apply()
	fn(l)
	// The deferred Apply is a no-op after this one.
	return l.Apply()
}

// Apply computes the frame from the accumulated constraints, snaps it
// to the pixel grid and commits it to the view. Only the first call has
// an effect; later calls return the committed frame.
func (l *Layout) Apply() f32.Rectangle {
	if l.applied {
		return l.frame
	}
	l.applied = true
	l.frame = l.host.Snap(l.compute())
	l.view.SetFrame(l.frame)
	return l.frame
}

// Applied reports whether Apply has run.
func (l *Layout) Applied() bool {
	return l.applied
}

// Frame returns the committed frame, or the view's current frame if
// the layout has not been applied yet.
func (l *Layout) Frame() f32.Rectangle {
	if l.applied {
		return l.frame
	}
	return l.view.Frame()
}

// accepting reports whether the layout still accepts constraints.
func (l *Layout) accepting(context describer) bool {
	if l.applied {
		l.warn(AlreadyApplied, "the layout has already been applied.", context)
		return false
	}
	return true
}

func some(v float32) opt {
	return opt{v: v, ok: true}
}

func (o opt) or(def float32) float32 {
	if o.ok {
		return o.v
	}
	return def
}
